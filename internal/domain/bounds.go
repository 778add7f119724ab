package domain

import "math"

// Meters per degree of latitude, slightly under the true figure so windows
// derived from it err on the inclusive side.
const metersPerDegree = 111000.0

// Axis-aligned coordinate window. A box with MinLon > MaxLon crosses the
// antimeridian and covers the two longitude intervals on either side of it.
// Boxes are a cheap prescreen for linear scans, not an index.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Window guaranteed to contain every coordinate within radiusMeters of
// center. Longitude widening grows with latitude; close enough to a pole the
// window spans all longitudes.
func BoundsAround(center Coordinate, radiusMeters float64) BoundingBox {
	latDelta := radiusMeters / metersPerDegree

	minLat := math.Max(center.Lat-latDelta, -90)
	maxLat := math.Min(center.Lat+latDelta, 90)

	cosLat := math.Cos(degreesToRadians(center.Lat))
	if cosLat < 1e-6 {
		return BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLon: -180, MaxLon: 180}
	}
	lonDelta := radiusMeters / (metersPerDegree * cosLat)
	if lonDelta >= 180 {
		return BoundingBox{MinLat: minLat, MaxLat: maxLat, MinLon: -180, MaxLon: 180}
	}

	return BoundingBox{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLon: wrapLongitude(center.Lon - lonDelta),
		MaxLon: wrapLongitude(center.Lon + lonDelta),
	}
}

// Inclusive containment check. Wrapped boxes accept longitudes on either
// side of the antimeridian.
func (b BoundingBox) Contains(c Coordinate) bool {
	if c.Lat < b.MinLat || c.Lat > b.MaxLat {
		return false
	}
	if b.MinLon <= b.MaxLon {
		return c.Lon >= b.MinLon && c.Lon <= b.MaxLon
	}
	return c.Lon >= b.MinLon || c.Lon <= b.MaxLon
}

// Smallest box covering both the receiver and c, treating longitude as a
// plain axis. Suited to fitting a map viewport around results, not to
// antimeridian-aware queries.
func (b BoundingBox) ExtendWithPoint(c Coordinate) BoundingBox {
	return BoundingBox{
		MinLat: math.Min(b.MinLat, c.Lat),
		MaxLat: math.Max(b.MaxLat, c.Lat),
		MinLon: math.Min(b.MinLon, c.Lon),
		MaxLon: math.Max(b.MaxLon, c.Lon),
	}
}

// Tight box around the given coordinates. ok=false when the slice is empty.
func BoundsOf(coords []Coordinate) (BoundingBox, bool) {
	if len(coords) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{
		MinLat: coords[0].Lat, MaxLat: coords[0].Lat,
		MinLon: coords[0].Lon, MaxLon: coords[0].Lon,
	}
	for _, c := range coords[1:] {
		b = b.ExtendWithPoint(c)
	}
	return b, true
}
