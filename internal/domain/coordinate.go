package domain

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Mean Earth radius in meters, used by every spherical computation here.
const EarthRadiusMeters = 6371000.0

// Number of fraction digits kept by RoundedDefault, roughly 0.1 m of precision.
const DefaultFractionDigits = 6

// Immutable geographic coordinate (latitude, longitude) in decimal degrees.
// Valid latitudes lie in [-90, 90] and longitudes in [-180, 180]; values are
// stored as given and normalized on demand via Clamped. Every method returns
// a new value, a Coordinate is never modified in place.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Return the coordinate as [lon, lat] for GeoJSON-style consumers.
func (c Coordinate) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Great-circle distance to o in meters over the mean Earth sphere.
// Symmetric, and exactly zero when both coordinates are identical.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return DistanceWithRadius(c, o, EarthRadiusMeters)
}

// Haversine distance between a and b over a sphere of the given radius.
// The radius unit decides the result unit.
func DistanceWithRadius(a, b Coordinate, radius float64) float64 {
	if a == b {
		return 0
	}

	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLon := degreesToRadians(b.Lon - a.Lon)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return radius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Initial great-circle bearing from c to o in degrees, normalized to
// [0, 360) with 0 pointing north and angles growing clockwise. The bearing
// from a coordinate to itself is 0.
func (c Coordinate) BearingTo(o Coordinate) float64 {
	lat1 := degreesToRadians(c.Lat)
	lat2 := degreesToRadians(o.Lat)
	deltaLon := degreesToRadians(o.Lon - c.Lon)

	x := math.Sin(deltaLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	return math.Mod(radiansToDegrees(math.Atan2(x, y))+360, 360)
}

// Spherical midpoint between c and o. The resulting longitude is wrapped so
// midpoints across the antimeridian land near ±180 rather than near 0.
func (c Coordinate) MidpointTo(o Coordinate) Coordinate {
	lat1 := degreesToRadians(c.Lat)
	lat2 := degreesToRadians(o.Lat)
	lon1 := degreesToRadians(c.Lon)
	deltaLon := degreesToRadians(o.Lon - c.Lon)

	bx := math.Cos(lat2) * math.Cos(deltaLon)
	by := math.Cos(lat2) * math.Sin(deltaLon)

	lat3 := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	lon3 := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return Coordinate{
		Lat: radiansToDegrees(lat3),
		Lon: wrapLongitude(radiansToDegrees(lon3)),
	}
}

// Destination reached by travelling distanceMeters from c along the given
// initial bearing in degrees. Any finite bearing is accepted; it does not
// need to be pre-normalized.
func (c Coordinate) OffsetBy(distanceMeters, bearingDegrees float64) Coordinate {
	lat1 := degreesToRadians(c.Lat)
	lon1 := degreesToRadians(c.Lon)
	bearing := degreesToRadians(bearingDegrees)
	angular := distanceMeters / EarthRadiusMeters

	lat2 := math.Asin(
		math.Sin(lat1)*math.Cos(angular) +
			math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing),
	)
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2),
	)

	return Coordinate{
		Lat: radiansToDegrees(lat2),
		Lon: wrapLongitude(radiansToDegrees(lon2)),
	}
}

// Copy with the latitude clamped into [-90, 90] and the longitude wrapped
// into range: 181 becomes -179, -181 becomes 179. Longitude is never clamped
// to the boundary, wrapping keeps the coordinate on the meridian it meant.
func (c Coordinate) Clamped() Coordinate {
	lat := c.Lat
	if lat > 90 {
		lat = 90
	}
	if lat < -90 {
		lat = -90
	}
	return Coordinate{Lat: lat, Lon: wrapLongitude(c.Lon)}
}

// Copy with both fields rounded half-away-from-zero to fractionDigits
// decimal places. Negative digit counts are treated as 0.
func (c Coordinate) Rounded(fractionDigits int) Coordinate {
	return Coordinate{
		Lat: roundTo(c.Lat, fractionDigits),
		Lon: roundTo(c.Lon, fractionDigits),
	}
}

// Rounded with DefaultFractionDigits.
func (c Coordinate) RoundedDefault() Coordinate { return c.Rounded(DefaultFractionDigits) }

// Random coordinate within maxMeters of c, for display privacy. The offset
// distance and bearing are drawn from rng, so results are reproducible with
// a seeded source. A nil rng or non-positive radius returns c unchanged.
func (c Coordinate) Obscured(maxMeters float64, rng *rand.Rand) Coordinate {
	if rng == nil || maxMeters <= 0 {
		return c
	}
	return c.OffsetBy(rng.Float64()*maxMeters, rng.Float64()*360)
}

// "lat,lon" with six fraction digits. The output parses back through
// ParseLatLng.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// Parse a "lat,lng" or "lat lng" pair, comma or whitespace separated, with
// surrounding spaces tolerated. Returns ok=false on malformed input and
// never panics. Out-of-range values parse successfully and are returned
// as-is; callers that need range guarantees apply Clamped.
func ParseLatLng(s string) (Coordinate, bool) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 2 {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lon: lon}, true
}

// Map a longitude onto (-180, 180]. In-range values come back unchanged, so
// wrapping is the identity for already-valid coordinates.
func wrapLongitude(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon-180, 360)
	if lon <= 0 {
		lon += 360
	}
	return lon - 180
}

func roundTo(v float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

func degreesToRadians(d float64) float64 { return d * math.Pi / 180 }

func radiansToDegrees(r float64) float64 { return r * 180 / math.Pi }
