package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"
	"github.com/gin-gonic/gin"
)

// coordinate accepts both "19.07" and 19.07 so form posts and API clients
// can send either; the text is parsed later like any other draft field.
type coordinate string

func (c *coordinate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("coordinate must be a string or number")
	}
	*c = coordinate(n.String())
	return nil
}

type draftReq struct {
	Name        string     `json:"name"`
	Photo       string     `json:"photo"`
	Description string     `json:"description"`
	City        string     `json:"city"`
	Lat         coordinate `json:"lat"`
	Lng         coordinate `json:"lng"`
}

func (r draftReq) toDraft() domain.Draft {
	return domain.Draft{
		Name:        r.Name,
		Photo:       r.Photo,
		Description: r.Description,
		City:        r.City,
		Lat:         string(r.Lat),
		Lng:         string(r.Lng),
	}
}

type searchReq struct {
	Term string `json:"term"`
}

// selectionReq clears the selection when ID is null or absent.
type selectionReq struct {
	ID *int64 `json:"id"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid profile id"})
		return 0, false
	}
	return id, true
}

func writeStoreError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error(), "missing": verr.Missing})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "profile not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
