package scissor

import "math"

const (
	// bisectIterations halves the θ bracket well below a micrometer of
	// actuator travel for any practical lift geometry.
	bisectIterations = 50
	// monotonicSamples is the number of uniformly spaced angles at which the
	// actuator length is checked for direction reversals.
	monotonicSamples = 64
	// zeroStroke is the stroke in meters under which a placement is considered
	// to not change length over the θ range.
	zeroStroke = 1e-12
)

// Reason explains why an inverse solve did not succeed.
type Reason uint8

const (
	ReasonNone             Reason = iota
	ReasonInvalidEndpoints        // actuator length at a θ limit is not finite
	ReasonZeroStroke              // actuator length does not change over the θ range
	ReasonNonMonotonic            // actuator length reverses direction within the θ range
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidEndpoints:
		return "invalid endpoints"
	case ReasonZeroStroke:
		return "zero stroke"
	case ReasonNonMonotonic:
		return "non-monotonic"
	}
	return "unknown"
}

// ThetaResult is the result of recovering the drive angle from an actuator length.
type ThetaResult struct {
	ThetaDeg float64
	// OK is false if the angle could not be trusted to reproduce the target length.
	OK bool
	// Clamped is true if the target was outside the achievable stroke and
	// was moved to the nearest achievable length.
	Clamped bool
	Reason  Reason
}

// SolveTheta finds the drive angle in [θ_min, θ_max] at which actuator act
// has length target (meters) using bisection. Targets outside the stroke
// are clamped. If the length at either θ limit is not finite the result
// has OK false and ThetaDeg equal to θ_min.
//
// Bisection assumes the length is monotonic over the θ range. Placements
// for which it is not are detected by sampling and reported with
// ReasonNonMonotonic; ThetaDeg is then a best effort result.
func SolveTheta(p Parameters, act Actuator, target float64) ThetaResult {
	return newPass(p).solveTheta(act, target)
}

func (ps *pass) solveTheta(act Actuator, target float64) ThetaResult {
	tmin, tmax := ps.p.ThetaMin, ps.p.ThetaMax
	st := ps.stroke(act)
	if !st.Valid() {
		return ThetaResult{ThetaDeg: tmin, Reason: ReasonInvalidEndpoints}
	}
	lo, hi := st.Lo(), st.Hi()
	if hi-lo < zeroStroke {
		return ThetaResult{ThetaDeg: tmin, Reason: ReasonZeroStroke}
	}
	increasing := st.AtMax > st.AtMin

	res := ThetaResult{OK: true}
	if target < lo {
		target = lo
		res.Clamped = true
	}
	if target > hi {
		target = hi
		res.Clamped = true
	}
	if math.IsNaN(target) {
		// No ordering information: settle on the lower limit.
		target = st.AtMin
		res.Clamped = true
	}

	a, b := tmin, tmax
	for i := 0; i < bisectIterations; i++ {
		mid := 0.5 * (a + b)
		lm := act.Length(Solve(ps.p.L, ps.p.N, mid))
		if !IsFinite(lm) {
			break
		}
		if (increasing && lm < target) || (!increasing && lm > target) {
			a = mid
		} else {
			b = mid
		}
	}
	res.ThetaDeg = 0.5 * (a + b)
	if !ps.monotonic(act, increasing, hi-lo) {
		res.OK = false
		res.Reason = ReasonNonMonotonic
	}
	return res
}

// monotonic samples the actuator length over the θ range and reports whether
// it moves in a single direction. Reversals smaller than a small fraction of
// the stroke are ignored.
func (ps *pass) monotonic(act Actuator, increasing bool, stroke float64) bool {
	tol := 1e-9 * stroke
	tmin, tmax := ps.p.ThetaMin, ps.p.ThetaMax
	prev := math.NaN()
	for i := 0; i <= monotonicSamples; i++ {
		t := Mix(tmin, tmax, float64(i)/monotonicSamples)
		l := act.Length(Solve(ps.p.L, ps.p.N, t))
		if !IsFinite(l) {
			return false
		}
		if i > 0 {
			d := l - prev
			if (increasing && d < -tol) || (!increasing && d > tol) {
				return false
			}
		}
		prev = l
	}
	return true
}
