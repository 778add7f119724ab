package ports

import "place-proximity/internal/domain"

// Contract the proximity operations consume: an identified record that may
// or may not carry a coordinate. Services depend on nothing else about the
// records they filter, sort, and group.
type LocatedItem interface {
	ID() string
	// Return the item's coordinate, ok=false when the record has none.
	Coordinate() (domain.Coordinate, bool)
	// Return the display locality label, empty when unknown.
	Locality() string
}
