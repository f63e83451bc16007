package scissor

import "math"

// Result bundles everything derived from one set of Parameters.
type Result struct {
	// Params are the parameters evaluated with actuator keys rebound
	// to the stage count.
	Params Parameters
	// ThetaDeg is the resolved drive angle. Equal to Params.Theta clamped to
	// the θ limits unless the lift is actuator driven.
	ThetaDeg float64
	Solution Solution
	// AtMin and AtMax are the solutions at θ_min and θ_max.
	AtMin, AtMax Solution
	// Inverse is set when the lift is actuator driven.
	Inverse        ThetaResult
	ActuatorLength float64
	Stroke         Stroke
	// StrokeUsed is the actuator extension from θ_min to the current angle.
	StrokeUsed  float64
	TotalWeight float64
	// Force is NaN valued when the lift is not actuator driven.
	Force       ForceResult
	Diagnostics []Diagnostic
}

// Evaluate runs a full solve pass: θ resolution (from the target actuator
// length when actuator driven), forward kinematics at θ and the θ limits,
// actuator stroke, force estimate and diagnostics.
func Evaluate(p Parameters) Result {
	p.Actuator = p.Actuator.Rebind(p.N)
	ps := newPass(p)
	res := Result{
		Params:      p,
		TotalWeight: p.TotalWeight(),
	}
	theta := Clamp(p.Theta, p.ThetaMin, p.ThetaMax)
	if p.ActuatorDriven {
		res.Inverse = ps.solveTheta(p.Actuator, p.TargetLength)
		theta = Clamp(res.Inverse.ThetaDeg, p.ThetaMin, p.ThetaMax)
	}
	res.ThetaDeg = theta
	res.Solution = ps.solve(theta)
	res.AtMin = ps.solve(p.ThetaMin)
	res.AtMax = ps.solve(p.ThetaMax)

	res.ActuatorLength = p.Actuator.Length(res.Solution)
	res.Stroke = Stroke{
		AtMin: p.Actuator.Length(res.AtMin),
		AtMax: p.Actuator.Length(res.AtMax),
	}
	res.StrokeUsed = math.NaN()
	if IsFinite(res.ActuatorLength) && IsFinite(res.Stroke.AtMin) {
		res.StrokeUsed = res.ActuatorLength - res.Stroke.AtMin
	}

	nan := math.NaN()
	res.Force = ForceResult{Raw: nan, Rated: nan, PerActuator: nan, DlDTheta: nan}
	if p.ActuatorDriven {
		res.Force = ps.estimateForce(p.Actuator, theta, res.TotalWeight).Rate(p)
	}
	res.Diagnostics = Diagnose(p, res.Solution, Outcome{
		ThetaDeg:       theta,
		ActuatorDriven: p.ActuatorDriven,
		Inverse:        res.Inverse,
		ActuatorLength: res.ActuatorLength,
		Force:          res.Force,
	})
	return res
}
