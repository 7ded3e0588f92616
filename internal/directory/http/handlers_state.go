package http

import (
	"net/http"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) view(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "view": h.store.View(h.projector.Options())})
}

func (h *Handler) getDraft(c *gin.Context) {
	resp := gin.H{"ok": true, "draft": h.store.Draft()}
	if id, editing := h.store.EditTarget(); editing {
		resp["edit_id"] = id
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) updateDraft(c *gin.Context) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	d := req.toDraft()
	h.store.UpdateDraft(c.Request.Context(), d)
	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": d})
}

func (h *Handler) submitDraft(c *gin.Context) {
	_, editing := h.store.EditTarget()

	p, err := h.store.SubmitDraft(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	h.syncMap(c.Request.Context())

	status := http.StatusCreated
	if editing {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"ok": true, "profile": p})
}

func (h *Handler) setSearch(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	h.store.SetSearchTerm(c.Request.Context(), req.Term)
	c.JSON(http.StatusOK, gin.H{"ok": true, "search_term": req.Term})
}

func (h *Handler) getSelection(c *gin.Context) {
	p, ok := h.store.Selected()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"ok": true, "selection": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "selection": p, "panel": h.panelFor(p)})
}

func (h *Handler) setSelection(c *gin.Context) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	var target *domain.Profile
	if req.ID != nil {
		p, err := h.store.Get(*req.ID)
		if err != nil {
			writeStoreError(c, err)
			return
		}
		target = &p
	}

	if err := h.store.SelectProfile(c.Request.Context(), target); err != nil {
		writeStoreError(c, err)
		return
	}

	panel := h.syncMap(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "selection": target, "panel": panel})
}

func (h *Handler) toggleMode(c *gin.Context) {
	mode := h.store.ToggleMode(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "mode": mode})
}
