// Package records turns loosely-shaped place records, JSON objects from
// exports, scrapes, and older clients, into domain values. Field names vary
// across sources, so extraction works off alias tables and coerces the
// numeric encodings that show up in the wild.
package records

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"place-proximity/internal/domain"
)

// Alias tables, first match wins.
var (
	latKeys  = []string{"lat", "latitude", "y"}
	lonKeys  = []string{"lng", "lon", "longitude", "x"}
	nestKeys = []string{"coordinates", "coord", "location", "position", "geo"}

	idKeys      = []string{"id", "_id", "uuid", "placeId", "place_id"}
	nameKeys    = []string{"name", "title", "label"}
	cityKeys    = []string{"city", "town", "locality"}
	regionKeys  = []string{"region", "state", "province"}
	countryKeys = []string{"country"}
)

// Numeric value for the first alias present in rec, or 0.0 when none
// parses. The zero fallback makes this unsuitable on its own for deciding
// whether a record is located; CoordinateFrom keeps that distinction.
func FloatField(rec map[string]any, keys ...string) float64 {
	v, _ := numericField(rec, keys)
	return v
}

// Coordinate carried by a record, ok=false when the record has none.
//
// The latitude is read from "lat"/"latitude"/"y" and the longitude from
// "lng"/"lon"/"longitude"/"x", either on the record itself or one level
// down under a nesting key such as "coordinates" or "location". GeoJSON
// Point values under those keys are understood too. Out-of-range values
// are wrapped and clamped; non-finite ones count as absent.
func CoordinateFrom(rec map[string]any) (domain.Coordinate, bool) {
	if c, ok := coordinatePair(rec); ok {
		return c, true
	}
	if c, ok := geoJSONPoint(rec); ok {
		return c, true
	}

	for _, key := range nestKeys {
		nested, ok := rec[key].(map[string]any)
		if !ok {
			continue
		}
		if c, ok := coordinatePair(nested); ok {
			return c, true
		}
		if c, ok := geoJSONPoint(nested); ok {
			return c, true
		}
	}
	return domain.Coordinate{}, false
}

// Place assembled from one loose record. Records without any identifier get
// a generated UUID so downstream grouping and clients can still tell items
// apart. A record without a resolvable coordinate yields a Place with a nil
// Coord, never one parked at (0,0).
func PlaceFrom(rec map[string]any) domain.Place {
	p := domain.Place{
		PlaceID: stringField(rec, idKeys),
		Name:    stringField(rec, nameKeys),
		City:    stringField(rec, cityKeys),
		Region:  stringField(rec, regionKeys),
		Country: stringField(rec, countryKeys),
	}
	if p.PlaceID == "" {
		p.PlaceID = uuid.NewString()
	}
	if c, ok := CoordinateFrom(rec); ok {
		p.Coord = &c
	}
	return p
}

// Places assembled from a batch of loose records, in input order.
func PlacesFrom(recs []map[string]any) []domain.Place {
	places := make([]domain.Place, 0, len(recs))
	for _, rec := range recs {
		places = append(places, PlaceFrom(rec))
	}
	return places
}

func coordinatePair(rec map[string]any) (domain.Coordinate, bool) {
	lat, okLat := numericField(rec, latKeys)
	lon, okLon := numericField(rec, lonKeys)
	if !okLat || !okLon {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Lat: lat, Lon: lon}.Clamped(), true
}

func geoJSONPoint(rec map[string]any) (domain.Coordinate, bool) {
	kind, _ := rec["type"].(string)
	if kind != "Point" {
		return domain.Coordinate{}, false
	}
	coords, ok := rec["coordinates"].([]any)
	if !ok || len(coords) < 2 {
		return domain.Coordinate{}, false
	}

	lon, okLon := coerceNumber(coords[0])
	lat, okLat := coerceNumber(coords[1])
	if !okLon || !okLat {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Lat: lat, Lon: lon}.Clamped(), true
}

func numericField(rec map[string]any, keys []string) (float64, bool) {
	for _, key := range keys {
		raw, present := rec[key]
		if !present {
			continue
		}
		if v, ok := coerceNumber(raw); ok {
			return v, true
		}
	}
	return 0, false
}

// Accepts the numeric encodings loose records use: JSON numbers, string
// numbers, and integers from non-JSON sources. Non-finite values are
// rejected.
func coerceNumber(raw any) (float64, bool) {
	var v float64

	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func stringField(rec map[string]any, keys []string) string {
	for _, key := range keys {
		raw, present := rec[key]
		if !present {
			continue
		}
		switch v := raw.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			// Numeric ids survive as their decimal form.
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		}
	}
	return ""
}
