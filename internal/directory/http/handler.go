package http

import (
	"context"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/events"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/mapview"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/photo"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/service"
	"github.com/GoSim-25-26J-441/profile-directory/internal/logging"
	"go.uber.org/zap"
)

// Handler bundles the dependencies for directory HTTP endpoints.
type Handler struct {
	store     *service.Store
	projector *mapview.Projector
	encoder   *photo.Encoder
	hub       *events.Hub
	logger    *zap.Logger
}

func New(store *service.Store, projector *mapview.Projector, encoder *photo.Encoder, hub *events.Hub, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:     store,
		projector: projector,
		encoder:   encoder,
		hub:       hub,
		logger:    logger,
	}
}

// syncMap keeps the map widget centred on the live selection.
func (h *Handler) syncMap(ctx context.Context) *mapview.Panel {
	var selected *domain.Profile
	if p, ok := h.store.Selected(); ok {
		selected = &p
	}
	panel, _, err := h.projector.Sync(ctx, selected)
	if err != nil {
		logging.NewLogger(ctx, h.logger).LogWarnf("sync_map", "map not recentered: %v", err)
	}
	return panel
}

func (h *Handler) panelFor(p domain.Profile) mapview.Panel {
	return mapview.BuildPanel(p, h.projector.Options())
}
