package bootstrap

import (
	httpapi "github.com/GoSim-25-26J-441/profile-directory/internal/api/http"
	"github.com/GoSim-25-26J-441/profile-directory/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/profile-directory/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/events"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	MapZoom        int
	TileURL        string
	PhotoMaxBytes  int64
	RateLimit      float64
	RateBurst      int
	Redis          *redis.Client
	Logger         *zap.Logger
	Store          *service.Store
	Hub            *events.Hub
	Publisher      events.Publisher
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Store:         dep.Store,
		Hub:           dep.Hub,
		Publisher:     dep.Publisher,
		Logger:        dep.Logger,
		MapZoom:       dep.MapZoom,
		TileURL:       dep.TileURL,
		PhotoMaxBytes: dep.PhotoMaxBytes,
		RateLimit:     dep.RateLimit,
		RateBurst:     dep.RateBurst,
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
