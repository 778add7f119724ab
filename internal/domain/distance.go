package domain

// A measured great-circle distance. Carrying the meters inside a named type
// keeps "a distance we computed" distinct from bare float64s at API
// boundaries.
type Distance struct {
	Meters float64
}

func (d Distance) Kilometers() float64 { return Metric.ConvertDistance(d.Meters) }

func (d Distance) Miles() float64 { return Imperial.ConvertDistance(d.Meters) }

// The distance in the system's large unit.
func (d Distance) In(u UnitSystem) float64 { return u.ConvertDistance(d.Meters) }

// Display string in the given unit system, e.g. "850 m" or "3.4 mi".
func (d Distance) Label(u UnitSystem) string { return u.FormatDistance(d.Meters) }
