package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/profile-directory/config"
	"github.com/GoSim-25-26J-441/profile-directory/internal/bootstrap"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/events"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/service"
	"go.uber.org/zap"
)

const serviceName = "profile-directory"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{URL: cfg.Redis.URL})
	if err != nil {
		logger.Warn("redis unavailable, events stay in-process", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	}

	hub := events.NewHub()
	publishers := events.Multi{hub}
	if rdb != nil {
		rp := events.NewRedisPublisher(rdb, events.DefaultChannel, cfg.Redis.PublishTimeout)
		publishers = append(publishers, rp)
		logger.Info("mirroring events to redis", zap.String("channel", rp.Channel()), zap.Duration("timeout", cfg.Redis.PublishTimeout))
	}

	opts := []service.Option{service.WithPublisher(publishers), service.WithLogger(logger)}
	if cfg.Directory.Seed {
		opts = append(opts, service.WithProfiles(service.DefaultProfiles()...))
	}
	store := service.NewStore(opts...)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MapZoom:        cfg.Directory.MapZoom,
		TileURL:        cfg.Directory.TileURL,
		PhotoMaxBytes:  cfg.Directory.PhotoMaxBytes,
		RateLimit:      cfg.Server.AdminRateLimit,
		RateBurst:      cfg.Server.AdminRateBurst,
		Redis:          rdb,
		Logger:         logger,
		Store:          store,
		Hub:            hub,
		Publisher:      publishers,
	})

	// cancelled on shutdown so open event streams end
	baseCtx, stopStreams := context.WithCancel(ctx)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.Int("profiles", store.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down")
	stopStreams()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
}
