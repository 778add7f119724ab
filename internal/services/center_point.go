package services

import (
	"place-proximity/internal/domain"
	"place-proximity/internal/ports"
)

// Geographic center of the coordinate-bearing items: the arithmetic mean of
// their latitudes and of their longitudes. Items without a coordinate do
// not participate. When nothing carries a coordinate the fallback is
// returned with ok=true if one was given, otherwise ok=false.
//
// The mean is planar, which holds up for the city-scale clusters a map
// viewport centers on; clusters straddling the antimeridian average toward
// the wrong side of the globe.
func Center(items []ports.LocatedItem, fallback *domain.Coordinate) (domain.Coordinate, bool) {
	var latSum, lonSum float64
	count := 0

	for _, it := range items {
		c, ok := it.Coordinate()
		if !ok {
			continue
		}
		latSum += c.Lat
		lonSum += c.Lon
		count++
	}

	if count == 0 {
		if fallback != nil {
			return *fallback, true
		}
		return domain.Coordinate{}, false
	}

	return domain.Coordinate{
		Lat: latSum / float64(count),
		Lon: lonSum / float64(count),
	}, true
}
