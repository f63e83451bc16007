package scissor

// Length and force conversions between SI and display units.
// The core works in meters and newtons exclusively.

const (
	// MetersPerInch is meters per inch (0.0254)
	MetersPerInch = 0.0254
	// NewtonsPerPoundForce is newtons per pound-force.
	NewtonsPerPoundForce = 4.4482216152605
)

// MetersFromInches converts inches to meters.
func MetersFromInches(in float64) float64 { return in * MetersPerInch }

// InchesFromMeters converts meters to inches.
func InchesFromMeters(m float64) float64 { return m / MetersPerInch }

// NewtonsFromPoundsForce converts pound-force to newtons.
func NewtonsFromPoundsForce(lbf float64) float64 { return lbf * NewtonsPerPoundForce }

// PoundsForceFromNewtons converts newtons to pound-force.
func PoundsForceFromNewtons(n float64) float64 { return n / NewtonsPerPoundForce }

// LengthUnit selects the unit geometry is displayed in.
type LengthUnit uint8

const (
	Metric LengthUnit = iota // meters
	US                       // inches
)

// ToMeters converts v given in unit u to meters.
func (u LengthUnit) ToMeters(v float64) float64 {
	if u == US {
		return MetersFromInches(v)
	}
	return v
}

// FromMeters converts v meters to unit u.
func (u LengthUnit) FromMeters(m float64) float64 {
	if u == US {
		return InchesFromMeters(m)
	}
	return m
}

// Label returns the unit abbreviation.
func (u LengthUnit) Label() string {
	if u == US {
		return "in"
	}
	return "m"
}

// ForceUnit selects the unit loads and forces are displayed in.
type ForceUnit uint8

const (
	Newton     ForceUnit = iota // N
	PoundForce                  // lbf
)

// ToNewtons converts v given in unit u to newtons.
func (u ForceUnit) ToNewtons(v float64) float64 {
	if u == PoundForce {
		return NewtonsFromPoundsForce(v)
	}
	return v
}

// FromNewtons converts v newtons to unit u.
func (u ForceUnit) FromNewtons(n float64) float64 {
	if u == PoundForce {
		return PoundsForceFromNewtons(n)
	}
	return n
}

// Label returns the unit abbreviation.
func (u ForceUnit) Label() string {
	if u == PoundForce {
		return "lbf"
	}
	return "N"
}
