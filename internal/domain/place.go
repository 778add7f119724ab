package domain

import "strings"

// Represents a single place record handled by the system: a point of
// interest, a saved favorite, a search result. The coordinate is optional
// because records from partial sources legitimately lack one, and an absent
// coordinate is not the same thing as being located at (0,0).
type Place struct {
	PlaceID string
	Name    string
	Coord   *Coordinate
	City    string
	Region  string
	Country string
}

func (p Place) ID() string { return p.PlaceID }

// The place's location, ok=false when none is known.
func (p Place) Coordinate() (Coordinate, bool) {
	if p.Coord == nil {
		return Coordinate{}, false
	}
	return *p.Coord, true
}

// Display label built from the non-empty locality parts joined with ", ",
// e.g. "Lyon, Auvergne-Rhône-Alpes, France". Empty when no part is set.
func (p Place) Locality() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.City, p.Region, p.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
