package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NaN returns a vector with both components set to NaN.
func NaN() r2.Vec {
	return r2.Vec{X: math.NaN(), Y: math.NaN()}
}

// EqualWithin checks if the components of a and b are within tol of each other.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// IsFinite returns true if neither component is NaN or infinite.
func IsFinite(a r2.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

// Lerp does a linear interpolation from a to b, t = [0,1].
func Lerp(a, b r2.Vec, t float64) r2.Vec {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b r2.Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Set is a list of points.
type Set []r2.Vec

// Finite returns true if every point of the set is finite.
func (a Set) Finite() bool {
	for _, v := range a {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
