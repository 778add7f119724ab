package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"place-proximity/internal/domain"
	"place-proximity/internal/ports"
)

// Parameters for assembling a nearby-places view.
type NearbyViewRequest struct {
	// Origin is the coordinate to measure from, nil when the user's
	// location is unknown. With a nil origin the view degrades to an
	// unfiltered, unsorted listing.
	Origin       *domain.Coordinate
	RadiusMeters float64
	Scope        LocalityScope
	Workers      int
}

// A locality bucket of the view, nearest item first when an origin is known.
type LocalityGroup struct {
	Name  string
	Items []Annotated
}

// Assembled proximity report: the filtered, annotated, grouped places plus
// the aggregates a map viewport needs.
type NearbyView struct {
	Origin       *domain.Coordinate
	RadiusMeters float64
	Groups       []LocalityGroup
	Center       *domain.Coordinate
	Viewport     *domain.BoundingBox
}

// Assemble the nearby view for one query.
//
// Places are loaded from source, cut down to the search radius, grouped by
// locality at the requested scope, sorted nearest-first within each group,
// and annotated with distances. Group order is deterministic: lexical by
// name with the "Unknown" bucket last.
func BuildNearbyView(ctx context.Context, req NearbyViewRequest, source ports.PlaceSource) (*NearbyView, error) {
	if req.Origin != nil && req.RadiusMeters < 0 {
		return nil, errors.New("nearby view: radius must be non-negative")
	}

	places, err := source.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearby view: list places: %w", err)
	}

	items := make([]ports.LocatedItem, 0, len(places))
	for _, p := range places {
		items = append(items, p)
	}

	if req.Origin != nil {
		items = FilterWithinRadius(req.Origin, req.RadiusMeters, items)
	}

	grouped := GroupByLocality(items, KeyByScope(req.Scope))

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if a == UnknownLocality && b != UnknownLocality {
			return 1
		}
		if b == UnknownLocality && a != UnknownLocality {
			return -1
		}
		return strings.Compare(a, b)
	})

	groups := make([]LocalityGroup, 0, len(names))
	for _, name := range names {
		members := grouped[name]

		var annotated []Annotated
		if req.Origin != nil {
			members = SortByDistance(*req.Origin, members)
			annotated, err = AnnotateDistances(ctx, *req.Origin, members, req.Workers)
			if err != nil {
				return nil, fmt.Errorf("nearby view: group %q: %w", name, err)
			}
		} else {
			annotated = make([]Annotated, 0, len(members))
			for _, it := range members {
				annotated = append(annotated, Annotated{Item: it})
			}
		}

		groups = append(groups, LocalityGroup{Name: name, Items: annotated})
	}

	view := &NearbyView{
		Origin:       req.Origin,
		RadiusMeters: req.RadiusMeters,
		Groups:       groups,
	}

	if center, ok := Center(items, req.Origin); ok {
		view.Center = &center
	}

	coords := make([]domain.Coordinate, 0, len(items))
	for _, it := range items {
		if c, ok := it.Coordinate(); ok {
			coords = append(coords, c)
		}
	}
	if box, ok := domain.BoundsOf(coords); ok {
		view.Viewport = &box
	}

	return view, nil
}
