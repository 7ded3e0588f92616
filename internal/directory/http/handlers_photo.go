package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/photo"
	"github.com/GoSim-25-26J-441/profile-directory/internal/logging"
	"github.com/gin-gonic/gin"
)

// uploadPhoto accepts a multipart "photo" file. Size and content type are
// checked before replying; encoding runs in the background and fills the
// draft's photo field only if the same form is still open when it completes.
func (h *Handler) uploadPhoto(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing photo file"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable photo file"})
		return
	}
	defer f.Close()

	// the multipart temp file is gone once the request ends, so copy it first
	data, err := io.ReadAll(io.LimitReader(f, h.encoder.MaxBytes()+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable photo file"})
		return
	}

	mime, err := h.encoder.Check(data)
	if err != nil {
		writePhotoError(c, err)
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	log := logging.NewLogger(ctx, h.logger)
	gen := h.store.DraftGeneration()
	h.encoder.EncodeAsync(bytes.NewReader(data), func(uri string, err error) {
		if err != nil {
			log.LogError("upload_photo", err)
			return
		}
		if !h.store.SetDraftPhoto(ctx, gen, uri) {
			log.LogInfof("upload_photo", "photo %q dropped, form changed while encoding", fh.Filename)
			return
		}
		log.LogInfof("upload_photo", "photo %q stored in draft", fh.Filename)
	})

	c.JSON(http.StatusAccepted, gin.H{"ok": true, "status": "encoding", "mime": mime})
}

func writePhotoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, photo.ErrEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, photo.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, photo.ErrNotImage):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
