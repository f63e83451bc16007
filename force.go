package scissor

import "math"

// forceStepDeg is the angular half-step of the central difference used
// to estimate height and actuator length rates.
const forceStepDeg = 0.05

// singularRate is the actuator length rate, in bar lengths per radian,
// under which a placement is treated as stationary.
const singularRate = 1e-5

// ForceResult is an actuator force estimate in newtons.
type ForceResult struct {
	// Raw is the frictionless virtual-work force. +Inf signals a
	// near-singular placement, NaN an unresolvable actuator.
	Raw float64
	// Rated is Raw with friction margin and safety factor applied.
	Rated float64
	// PerActuator is Rated divided equally between actuators. NaN if Rated
	// is not finite.
	PerActuator float64
	// DlDTheta is the actuator length rate in meters per radian.
	DlDTheta float64
}

// EstimateForce estimates the actuator force required to hold total weight
// wTotal (newtons) at drive angle thetaDeg using the virtual-work identity
//
//	F · dℓ = W · dH
//
// evaluated with a central difference in θ kept within [θ_min, θ_max].
// A length change under 1e-9 m over the difference step, or a length rate
// under 1e-5·L per radian, is stationary and yields a Raw force of +Inf.
// Only Raw and DlDTheta of the result are set, Rated and PerActuator are
// NaN until the result is rated with Rate.
func EstimateForce(p Parameters, act Actuator, thetaDeg, wTotal float64) ForceResult {
	return newPass(p).estimateForce(act, thetaDeg, wTotal)
}

func (ps *pass) estimateForce(act Actuator, thetaDeg, wTotal float64) ForceResult {
	t1 := Clamp(thetaDeg-forceStepDeg, ps.p.ThetaMin, ps.p.ThetaMax)
	t2 := Clamp(thetaDeg+forceStepDeg, ps.p.ThetaMin, ps.p.ThetaMax)
	sol1, sol2 := ps.solve(t1), ps.solve(t2)
	l1, l2 := act.Length(sol1), act.Length(sol2)
	nan := math.NaN()
	if !IsFinite(l1) || !IsFinite(l2) {
		return ForceResult{Raw: nan, Rated: nan, PerActuator: nan, DlDTheta: nan}
	}
	dH := sol2.H - sol1.H
	dl := l2 - l1
	if math.Abs(dl) < epsilon || math.Abs(dl/DtoR(t2-t1)) < singularRate*ps.p.L {
		inf := math.Inf(1)
		return ForceResult{Raw: inf, Rated: nan, PerActuator: nan, DlDTheta: 0}
	}
	return ForceResult{
		Raw:         math.Abs(wTotal * dH / dl),
		Rated:       nan,
		PerActuator: nan,
		DlDTheta:    dl / DtoR(t2-t1),
	}
}

// RateForce applies a friction margin of frictionPct percent and safety factor
// sf to raw and divides the result between count actuators.
func RateForce(raw, frictionPct, sf float64, count int) ForceResult {
	rated := raw * (1 + frictionPct/100) * sf
	per := math.NaN()
	if IsFinite(rated) && count > 0 {
		per = rated / float64(count)
	}
	return ForceResult{Raw: raw, Rated: rated, PerActuator: per}
}

// Rate returns f with Rated and PerActuator computed from f.Raw and the
// friction, safety factor and actuator count of p.
func (f ForceResult) Rate(p Parameters) ForceResult {
	r := RateForce(f.Raw, p.FrictionPct, p.SafetyFactor, p.Actuators)
	r.DlDTheta = f.DlDTheta
	return r
}
