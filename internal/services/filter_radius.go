package services

import (
	"place-proximity/internal/domain"
	"place-proximity/internal/ports"
)

// Keep the items lying within radiusMeters of origin.
//
// A nil origin disables filtering and returns the input unchanged, matching
// how proximity features behave when no user location is available. Items
// without a coordinate are excluded, input order is preserved, and the
// input slice is not modified. A bounding-box prescreen skips the spherical
// math for items that cannot possibly be in range; survivors are confirmed
// against the exact distance, boundary included.
func FilterWithinRadius(origin *domain.Coordinate, radiusMeters float64, items []ports.LocatedItem) []ports.LocatedItem {
	if origin == nil {
		return items
	}

	box := domain.BoundsAround(*origin, radiusMeters)

	kept := make([]ports.LocatedItem, 0, len(items))
	for _, it := range items {
		c, ok := it.Coordinate()
		if !ok {
			continue
		}
		if !box.Contains(c) {
			continue
		}
		if origin.DistanceTo(c) <= radiusMeters {
			kept = append(kept, it)
		}
	}
	return kept
}
