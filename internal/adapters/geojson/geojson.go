// Package geojson converts between domain coordinates and the wire shapes
// clients exchange: a verbose latitude/longitude object, a compact lat/lng
// object kept for older clients, and GeoJSON Point geometry.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"

	"place-proximity/internal/domain"
)

// Primary wire shape.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Secondary compact shape.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeoJSON Point geometry. Coordinates are [lon, lat], longitude first.
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

const pointType = "Point"

func EncodePosition(c domain.Coordinate) ([]byte, error) {
	data, err := json.Marshal(Position{Latitude: c.Lat, Longitude: c.Lon})
	if err != nil {
		return nil, fmt.Errorf("encode position: %w", err)
	}
	return data, nil
}

func DecodePosition(data []byte) (domain.Coordinate, error) {
	var raw struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode position: %w", err)
	}
	if raw.Latitude == nil || raw.Longitude == nil {
		return domain.Coordinate{}, errors.New("decode position: latitude and longitude are required")
	}
	return domain.Coordinate{Lat: *raw.Latitude, Lon: *raw.Longitude}, nil
}

func EncodeLatLng(c domain.Coordinate) ([]byte, error) {
	data, err := json.Marshal(LatLng{Lat: c.Lat, Lng: c.Lon})
	if err != nil {
		return nil, fmt.Errorf("encode latlng: %w", err)
	}
	return data, nil
}

func DecodeLatLng(data []byte) (domain.Coordinate, error) {
	var raw struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode latlng: %w", err)
	}
	if raw.Lat == nil || raw.Lng == nil {
		return domain.Coordinate{}, errors.New("decode latlng: lat and lng are required")
	}
	return domain.Coordinate{Lat: *raw.Lat, Lon: *raw.Lng}, nil
}

func EncodePoint(c domain.Coordinate) ([]byte, error) {
	data, err := json.Marshal(Point{Type: pointType, Coordinates: c.CoordsToList()})
	if err != nil {
		return nil, fmt.Errorf("encode point: %w", err)
	}
	return data, nil
}

// DecodePoint reads GeoJSON Point geometry. Geometries of any other type
// and coordinate arrays with fewer than two elements are rejected. Extra
// elements (altitude) are ignored.
func DecodePoint(data []byte) (domain.Coordinate, error) {
	var p Point
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Coordinate{}, fmt.Errorf("decode point: %w", err)
	}
	if p.Type != pointType {
		return domain.Coordinate{}, fmt.Errorf("decode point: geometry type %q is not %q", p.Type, pointType)
	}
	if len(p.Coordinates) < 2 {
		return domain.Coordinate{}, fmt.Errorf("decode point: got %d coordinates, need 2", len(p.Coordinates))
	}
	return domain.Coordinate{Lat: p.Coordinates[1], Lon: p.Coordinates[0]}, nil
}

// DecodeAny accepts any of the three wire shapes, sniffing in order:
// position, lat/lng, GeoJSON Point.
func DecodeAny(data []byte) (domain.Coordinate, error) {
	if c, err := DecodePosition(data); err == nil {
		return c, nil
	}
	if c, err := DecodeLatLng(data); err == nil {
		return c, nil
	}
	if c, err := DecodePoint(data); err == nil {
		return c, nil
	}
	return domain.Coordinate{}, errors.New("decode coordinate: unrecognized shape")
}
