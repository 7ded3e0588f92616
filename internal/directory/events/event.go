package events

import (
	"context"
	"time"
)

// Type names a directory state change.
type Type string

const (
	ProfileAdded     Type = "profile.added"
	ProfileUpdated   Type = "profile.updated"
	ProfileDeleted   Type = "profile.deleted"
	SelectionChanged Type = "selection.changed"
	ModeToggled      Type = "mode.toggled"
	SearchChanged    Type = "search.changed"
	DraftChanged     Type = "draft.changed"
	MapRecenter      Type = "map.recenter"
)

// Event is a one-way notification. Subscribers never feed it back into the store.
type Event struct {
	Type      Type        `json:"type"`
	ProfileID *int64      `json:"profile_id,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	At        time.Time   `json:"at"`
}

func New(t Type, profileID *int64, payload interface{}) Event {
	return Event{Type: t, ProfileID: profileID, Payload: payload, At: time.Now().UTC()}
}

// Publisher delivers events. Implementations must not block the caller for long.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi fans an event out to several publishers and returns the first error.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, ev Event) error {
	var first error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
