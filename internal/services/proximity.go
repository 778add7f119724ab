package services

// Proximity progress of a distance relative to a search radius, from 100 at
// the origin down to 0 at or beyond the radius edge. Non-positive radii
// yield 0.
func Progress(distanceMeters, radiusMeters float64) float64 {
	if radiusMeters <= 0 {
		return 0
	}
	if distanceMeters >= radiusMeters {
		return 0
	}
	p := (1 - distanceMeters/radiusMeters) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Coarse nearness wording for distance badges. Buckets are relative to the
// search radius rather than absolute distances.
func NearnessLabel(distanceMeters, radiusMeters float64) string {
	switch p := Progress(distanceMeters, radiusMeters); {
	case p >= 75:
		return "Very Close"
	case p >= 50:
		return "Close"
	case p >= 25:
		return "In Range"
	case p > 0:
		return "Near The Edge"
	default:
		return "Far"
	}
}
