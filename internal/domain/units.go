package domain

import (
	"fmt"
	"strings"
)

const (
	feetPerMeter = 3.28084
	feetPerMile  = 5280.0
)

// Display unit system selected by the user. The zero value is Metric.
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

// Parse "metric" or "imperial", case-insensitively. Anything else
// returns ok=false.
func ParseUnitSystem(s string) (UnitSystem, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric":
		return Metric, true
	case "imperial":
		return Imperial, true
	}
	return Metric, false
}

func (u UnitSystem) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Abbreviation for the system's large distance unit.
func (u UnitSystem) DistanceUnit() string {
	if u == Imperial {
		return "mi"
	}
	return "km"
}

func (u UnitSystem) SpeedUnit() string {
	if u == Imperial {
		return "mph"
	}
	return "km/h"
}

func (u UnitSystem) TemperatureUnit() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// Convert a distance in meters into the system's large unit: kilometers for
// Metric, miles for Imperial. The imperial path goes through feet and feet
// per mile rather than a fused meters-to-miles constant. NaN and infinities
// pass through.
func (u UnitSystem) ConvertDistance(meters float64) float64 {
	if u == Imperial {
		return meters * feetPerMeter / feetPerMile
	}
	return meters / 1000
}

// Inverse of ConvertDistance: a distance typed in the system's large unit
// becomes meters.
func (u UnitSystem) ToMeters(distance float64) float64 {
	if u == Imperial {
		return distance * feetPerMile / feetPerMeter
	}
	return distance * 1000
}

// Convert a speed in meters per second into km/h or mph.
func (u UnitSystem) ConvertSpeed(metersPerSecond float64) float64 {
	if u == Imperial {
		return metersPerSecond * 2.23694
	}
	return metersPerSecond * 3.6
}

// Human-readable distance for list rows and badges. Short distances use the
// small unit with no fraction ("850 m", "920 ft"), longer ones the large
// unit with one fraction digit ("12.7 km", "3.4 mi"). The small-unit cutoff
// is 1 km for Metric and a quarter mile for Imperial.
func (u UnitSystem) FormatDistance(meters float64) string {
	if u == Imperial {
		feet := meters * feetPerMeter
		if feet < feetPerMile/4 {
			return fmt.Sprintf("%.0f ft", feet)
		}
		return fmt.Sprintf("%.1f mi", feet/feetPerMile)
	}
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
