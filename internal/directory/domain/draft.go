package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
)

// leadingNumber matches the longest decimal prefix of a coordinate field, so
// "19.0760°" and "72.8777 E" still yield a number.
var leadingNumber = regexp.MustCompile(`^[\s\x{FEFF}]*([+-]?(?:Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?))`)

// Draft is the unvalidated admin form buffer. All six fields are required;
// Lat and Lng stay text until the draft is committed.
type Draft struct {
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
	City        string `json:"city"`
	Lat         string `json:"lat"`
	Lng         string `json:"lng"`
}

// Validate checks presence of every field. Content is not inspected, so a
// field holding only spaces counts as filled. Coordinates are not range checked.
func (d Draft) Validate() error {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"photo", d.Photo},
		{"description", d.Description},
		{"city", d.City},
		{"lat", d.Lat},
		{"lng", d.Lng},
	}
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Apply copies the draft's fields onto p, keeping p.ID. Unparseable
// coordinates become NaN rather than an error.
func (d Draft) Apply(p Profile) Profile {
	p.Name = d.Name
	p.Photo = d.Photo
	p.Description = d.Description
	p.City = d.City
	p.Location = Location{Lat: ParseCoordinate(d.Lat), Lng: ParseCoordinate(d.Lng)}
	return p
}

// DraftFrom loads a profile into a form buffer. Non-finite coordinates load
// as empty fields so the form has to be corrected before it can be submitted.
func DraftFrom(p Profile) Draft {
	return Draft{
		Name:        p.Name,
		Photo:       p.Photo,
		Description: p.Description,
		City:        p.City,
		Lat:         formatCoordinate(p.Location.Lat),
		Lng:         formatCoordinate(p.Location.Lng),
	}
}

// ParseCoordinate reads the leading decimal number of s and ignores whatever
// follows it. Text with no leading number, hex literals and "nan" give NaN.
// Out-of-range exponents saturate to ±Inf.
func ParseCoordinate(s string) float64 {
	m := leadingNumber.FindStringSubmatch(s)
	if m == nil {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func formatCoordinate(f float64) string {
	if !isFinite(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
