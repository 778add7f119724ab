package services

import (
	"context"
	"fmt"
	"sync"

	"place-proximity/internal/domain"
	"place-proximity/internal/ports"
)

const (
	defaultAnnotateWorkers = 5
	maxAnnotateWorkers     = 32

	// Inputs at or below this size are annotated inline, without goroutines.
	annotateInlineLimit = 64

	// Contiguous index band handled by one worker task.
	annotateBandSize = 256
)

// An item paired with its measured distance from the query origin.
// Distance is nil when the item has no coordinate.
type Annotated struct {
	Item     ports.LocatedItem
	Distance *domain.Distance
}

// Annotate every item with its distance from origin.
//
// Output order matches input order, and items without a coordinate carry a
// nil Distance. Inputs past a size threshold fan out across a bounded worker
// pool in contiguous bands; the result is identical to the sequential
// computation. workers outside [1, 32] is replaced with the default width.
// The only error is context cancellation.
func AnnotateDistances(ctx context.Context, origin domain.Coordinate, items []ports.LocatedItem, workers int) ([]Annotated, error) {
	out := make([]Annotated, len(items))
	if len(items) == 0 {
		return out, nil
	}
	if workers <= 0 || workers > maxAnnotateWorkers {
		workers = defaultAnnotateWorkers
	}

	if len(items) <= annotateInlineLimit || workers == 1 {
		for i, it := range items {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("annotate distances: %w", err)
			}
			out[i] = annotateOne(origin, it)
		}
		return out, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bands := (len(items) + annotateBandSize - 1) / annotateBandSize
	errCh := make(chan error, bands)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	// Each task fills a disjoint band of out, so no locking is needed.
	for start := 0; start < len(items); start += annotateBandSize {
		end := min(start+annotateBandSize, len(items))

		wg.Add(1)
		go func(start, end int) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					errCh <- fmt.Errorf("annotate distances: band %d-%d: %w", start, end, err)
					cancel()
					return
				}
				out[i] = annotateOne(origin, items[i])
			}
		}(start, end)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func annotateOne(origin domain.Coordinate, it ports.LocatedItem) Annotated {
	c, ok := it.Coordinate()
	if !ok {
		return Annotated{Item: it}
	}
	return Annotated{Item: it, Distance: &domain.Distance{Meters: origin.DistanceTo(c)}}
}
