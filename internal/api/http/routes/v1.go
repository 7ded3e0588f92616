package routes

import (
	"github.com/GoSim-25-26J-441/profile-directory/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/events"
	dirhttp "github.com/GoSim-25-26J-441/profile-directory/internal/directory/http"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/mapview"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/photo"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type V1Deps struct {
	Store *service.Store
	Hub   *events.Hub
	// Publisher receives map recenter events; it normally includes Hub.
	Publisher     events.Publisher
	Logger        *zap.Logger
	MapZoom       int
	TileURL       string
	PhotoMaxBytes int64
	RateLimit     float64
	RateBurst     int
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	publisher := dep.Publisher
	if publisher == nil {
		publisher = dep.Hub
	}

	projector := mapview.NewProjector(mapview.NewEventRenderer(publisher), mapview.Options{
		Zoom:    dep.MapZoom,
		TileURL: dep.TileURL,
	})

	handler := dirhttp.New(dep.Store, projector, photo.NewEncoder(dep.PhotoMaxBytes), dep.Hub, dep.Logger)

	api := r.Group("/api/v1")
	var mutate []gin.HandlerFunc
	if dep.RateLimit > 0 && dep.RateBurst > 0 {
		mutate = append(mutate, middleware.RateLimit(dep.RateLimit, dep.RateBurst))
	}
	handler.Register(api.Group("/directory"), mutate...)
}
