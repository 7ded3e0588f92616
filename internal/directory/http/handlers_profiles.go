package http

import (
	"net/http"
	"slices"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"
	"github.com/GoSim-25-26J-441/profile-directory/internal/logging"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listProfiles(c *gin.Context) {
	items := h.store.Profiles()
	if items == nil {
		items = []domain.Profile{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "profiles": items})
}

func (h *Handler) filteredProfiles(c *gin.Context) {
	items := slices.Collect(h.store.FilteredProfiles())
	if items == nil {
		items = []domain.Profile{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "search_term": h.store.SearchTerm(), "profiles": items})
}

func (h *Handler) getProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.store.Get(id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": p})
}

func (h *Handler) addProfile(c *gin.Context) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.AddProfile(c.Request.Context(), req.toDraft())
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "profile": p})
}

func (h *Handler) updateProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.UpdateProfile(c.Request.Context(), id, req.toDraft())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	h.syncMap(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": p})
}

// deleteProfile always succeeds; "deleted" tells whether anything was removed.
func (h *Handler) deleteProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted := h.store.DeleteProfile(c.Request.Context(), id)
	if !deleted {
		logging.NewLogger(c.Request.Context(), h.logger).LogInfof("delete_profile", "profile %d already absent", id)
	}
	h.syncMap(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}

func (h *Handler) beginEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.store.BeginEdit(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "edit_id": id, "draft": d})
}

func (h *Handler) cancelEdit(c *gin.Context) {
	h.store.CancelEdit(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
