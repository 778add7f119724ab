package ports

import (
	"context"

	"place-proximity/internal/domain"
)

// Port: a boundary for retrieving place records from a data source.
type PlaceSource interface {
	// Retrieve all places available for proximity queries.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
