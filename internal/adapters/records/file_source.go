package records

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"place-proximity/internal/domain"
	"place-proximity/internal/platform/obs"
)

// File-backed place source: a single JSON array of loose records, the shape
// exports and seed fixtures come in.
type FilePlaceSource struct {
	Path string
}

func NewFilePlaceSource(path string) *FilePlaceSource {
	return &FilePlaceSource{Path: path}
}

// Read and extract every record. A path of "-" reads standard input.
func (s *FilePlaceSource) ListPlaces(ctx context.Context) (places []domain.Place, err error) {
	defer obs.Time(ctx, "records.ListPlaces")(&err)

	var data []byte
	if s.Path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("list places: read %q: %w", s.Path, err)
	}

	var recs []map[string]any
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("list places: parse %q: %w", s.Path, err)
	}

	return PlacesFrom(recs), nil
}
