// Package origin supplies ports.OriginSource implementations for callers
// that already know the user's location and for CLI runs configured through
// the environment.
package origin

import (
	"context"
	"fmt"

	"place-proximity/internal/config"
	"place-proximity/internal/domain"
)

// Fixed origin. A nil Coord models a user who declined location access.
type StaticSource struct {
	Coord *domain.Coordinate
}

func NewStaticSource(c *domain.Coordinate) StaticSource {
	return StaticSource{Coord: c}
}

func (s StaticSource) Origin(ctx context.Context) (*domain.Coordinate, error) {
	return s.Coord, nil
}

// Origin resolved from the DEFAULT_ORIGIN environment variable, read at
// call time so a reload picks up changes. Unset means no origin; a set but
// malformed value is a configuration error and is reported as one.
type EnvSource struct{}

func (EnvSource) Origin(ctx context.Context) (*domain.Coordinate, error) {
	raw := config.Get("DEFAULT_ORIGIN", "")
	if raw == "" {
		return nil, nil
	}

	c, ok := domain.ParseLatLng(raw)
	if !ok {
		return nil, fmt.Errorf("origin: DEFAULT_ORIGIN %q is not a lat,lng pair", raw)
	}
	c = c.Clamped()
	return &c, nil
}
