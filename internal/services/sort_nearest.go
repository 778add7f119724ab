package services

import (
	"math"
	"slices"

	"place-proximity/internal/domain"
	"place-proximity/internal/ports"
)

// Sort items nearest-first as seen from origin.
//
// The sort is stable: items at equal distance keep their input order, and
// items without a coordinate sink to the end (distance +Inf) while keeping
// their order among themselves. The input slice is not modified.
func SortByDistance(origin domain.Coordinate, items []ports.LocatedItem) []ports.LocatedItem {
	type measured struct {
		item ports.LocatedItem
		dist float64
	}

	ranked := make([]measured, 0, len(items))
	for _, it := range items {
		d := math.Inf(1)
		if c, ok := it.Coordinate(); ok {
			d = origin.DistanceTo(c)
		}
		ranked = append(ranked, measured{item: it, dist: d})
	}

	slices.SortStableFunc(ranked, func(a, b measured) int {
		if a.dist < b.dist {
			return -1
		}
		if a.dist > b.dist {
			return 1
		}
		return 0
	})

	out := make([]ports.LocatedItem, len(ranked))
	for i, m := range ranked {
		out[i] = m.item
	}
	return out
}
