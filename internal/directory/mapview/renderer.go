package mapview

import (
	"context"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/events"
)

type recenterPayload struct {
	View    View `json:"view"`
	Animate bool `json:"animate"`
}

// EventRenderer forwards recenter requests to the browser as map.recenter events.
type EventRenderer struct {
	publisher events.Publisher
}

func NewEventRenderer(p events.Publisher) *EventRenderer {
	return &EventRenderer{publisher: p}
}

func (r *EventRenderer) Recenter(ctx context.Context, v View, animate bool) error {
	return r.publisher.Publish(ctx, events.New(events.MapRecenter, nil, recenterPayload{View: v, Animate: animate}))
}
