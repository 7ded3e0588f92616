// Package mapview turns the selected profile into the input consumed by the
// map widget, or into a text fallback when its coordinates cannot be shown.
package mapview

import (
	"context"
	"fmt"
	"sync"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"
)

const (
	FallbackMessage = "Invalid coordinates. Unable to display map."
	DefaultZoom     = 10
	DefaultTileURL  = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Popup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type Marker struct {
	Position LatLng `json:"position"`
	Popup    Popup  `json:"popup"`
}

// View is what the map widget renders: a centered map with one marker.
type View struct {
	Center  LatLng `json:"center"`
	Zoom    int    `json:"zoom"`
	TileURL string `json:"tile_url"`
	Marker  Marker `json:"marker"`
}

// Panel is the selection area shown under the browse list. Exactly one of
// Map and Fallback is set.
type Panel struct {
	ProfileID int64  `json:"profile_id"`
	Title     string `json:"title"`
	Map       *View  `json:"map,omitempty"`
	Fallback  string `json:"fallback,omitempty"`
}

type Options struct {
	Zoom    int
	TileURL string
}

func (o Options) withDefaults() Options {
	if o.Zoom == 0 {
		o.Zoom = DefaultZoom
	}
	if o.TileURL == "" {
		o.TileURL = DefaultTileURL
	}
	return o
}

// Project builds the map view for p. It returns false when either coordinate
// is not a finite number; range is not checked.
func Project(p domain.Profile, opts Options) (View, bool) {
	if !p.Location.Renderable() {
		return View{}, false
	}
	opts = opts.withDefaults()
	pos := LatLng{Lat: p.Location.Lat, Lng: p.Location.Lng}
	return View{
		Center:  pos,
		Zoom:    opts.Zoom,
		TileURL: opts.TileURL,
		Marker: Marker{
			Position: pos,
			Popup:    Popup{Name: p.Name, Description: p.Description, City: p.City},
		},
	}, true
}

func BuildPanel(p domain.Profile, opts Options) Panel {
	panel := Panel{ProfileID: p.ID, Title: fmt.Sprintf("Location for %s", p.Name)}
	if v, ok := Project(p, opts); ok {
		panel.Map = &v
	} else {
		panel.Fallback = FallbackMessage
	}
	return panel
}

// Renderer is the map widget. Recenter moves the view to v; each call fully
// supersedes the previous one.
type Renderer interface {
	Recenter(ctx context.Context, v View, animate bool) error
}

// Projector remembers the last rendered center and only asks the renderer to
// move when the selection's coordinates change.
type Projector struct {
	mu       sync.Mutex
	opts     Options
	renderer Renderer
	last     *LatLng
}

func NewProjector(renderer Renderer, opts Options) *Projector {
	return &Projector{renderer: renderer, opts: opts.withDefaults()}
}

func (p *Projector) Options() Options {
	return p.opts
}

// Sync updates the projection for the current selection. A nil selection or
// a non-renderable one never reaches the renderer.
func (p *Projector) Sync(ctx context.Context, selected *domain.Profile) (*Panel, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if selected == nil {
		p.last = nil
		return nil, false, nil
	}

	panel := BuildPanel(*selected, p.opts)
	if panel.Map == nil {
		p.last = nil
		return &panel, false, nil
	}

	center := panel.Map.Center
	if p.last != nil && *p.last == center {
		return &panel, false, nil
	}

	if p.renderer != nil {
		if err := p.renderer.Recenter(ctx, *panel.Map, true); err != nil {
			return &panel, false, fmt.Errorf("recenter map: %w", err)
		}
	}
	p.last = &center
	return &panel, true, nil
}
