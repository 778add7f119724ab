package ports

import (
	"context"

	"place-proximity/internal/domain"
)

// Port: a boundary for resolving the user's current origin coordinate.
// A nil coordinate with a nil error means no origin is available, as when
// location permission was declined; proximity features degrade rather than
// fail in that case.
type OriginSource interface {
	// Return the origin to measure from, or nil when none is available.
	Origin(ctx context.Context) (*domain.Coordinate, error)
}
