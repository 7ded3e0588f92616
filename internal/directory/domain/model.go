package domain

import (
	"encoding/json"
	"math"
)

// Profile is a single directory record. The store owns every Profile; callers
// only ever receive copies.
type Profile struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Photo       string   `json:"photo"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Location    Location `json:"location"`
}

// Location holds a coordinate pair. Either coordinate may be NaN when the
// draft it came from did not parse; such a location is not renderable.
type Location struct {
	Lat float64
	Lng float64
}

// Renderable reports whether both coordinates are finite numbers.
func (l Location) Renderable() bool {
	return isFinite(l.Lat) && isFinite(l.Lng)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type locationJSON struct {
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Renderable bool     `json:"renderable"`
}

// MarshalJSON writes non-finite coordinates as null, since JSON has no NaN.
func (l Location) MarshalJSON() ([]byte, error) {
	out := locationJSON{Renderable: l.Renderable()}
	if isFinite(l.Lat) {
		lat := l.Lat
		out.Lat = &lat
	}
	if isFinite(l.Lng) {
		lng := l.Lng
		out.Lng = &lng
	}
	return json.Marshal(out)
}

func (l *Location) UnmarshalJSON(b []byte) error {
	var in locationJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	l.Lat, l.Lng = math.NaN(), math.NaN()
	if in.Lat != nil {
		l.Lat = *in.Lat
	}
	if in.Lng != nil {
		l.Lng = *in.Lng
	}
	return nil
}

// Mode selects which of the two mutually exclusive views is active.
type Mode string

const (
	ModeBrowse Mode = "browse"
	ModeAdmin  Mode = "admin"
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeAdmin {
		return ModeBrowse
	}
	return ModeAdmin
}
