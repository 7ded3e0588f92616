package http

import "github.com/gin-gonic/gin"

// Register attaches directory routes to rg. The mutate middlewares guard
// every state-changing route.
func (h *Handler) Register(rg *gin.RouterGroup, mutate ...gin.HandlerFunc) {
	rg.GET("/view", h.view)
	rg.GET("/profiles", h.listProfiles)
	rg.GET("/profiles/filtered", h.filteredProfiles)
	rg.GET("/profiles/:id", h.getProfile)
	rg.GET("/draft", h.getDraft)
	rg.GET("/selection", h.getSelection)
	rg.GET("/events", h.streamEvents)

	m := rg.Group("", mutate...)
	m.POST("/profiles", h.addProfile)
	m.PUT("/profiles/:id", h.updateProfile)
	m.DELETE("/profiles/:id", h.deleteProfile)
	m.POST("/profiles/:id/edit", h.beginEdit)
	m.DELETE("/edit", h.cancelEdit)
	m.PUT("/draft", h.updateDraft)
	m.POST("/draft/photo", h.uploadPhoto)
	m.POST("/draft/submit", h.submitDraft)
	m.PUT("/search", h.setSearch)
	m.PUT("/selection", h.setSelection)
	m.POST("/mode/toggle", h.toggleMode)
}
