package scissor

import (
	"gonum.org/v1/gonum/floats"
)

// Sample is the state of the lift at one angle of a sweep.
type Sample struct {
	ThetaDeg       float64
	Rise           float64 // per-stage rise h
	Span           float64 // per-stage span w
	H              float64 // total rise
	ActuatorLength float64
	Force          ForceResult
}

// Sweep samples the lift at n angles evenly spaced over [θ_min, θ_max]
// including both limits. Forces are estimated for p.Actuator regardless of
// p.ActuatorDriven. Sweep returns nil if n < 2.
func Sweep(p Parameters, n int) []Sample {
	if n < 2 {
		return nil
	}
	p.Actuator = p.Actuator.Rebind(p.N)
	thetas := floats.Span(make([]float64, n), p.ThetaMin, p.ThetaMax)
	w := p.TotalWeight()
	samples := make([]Sample, n)
	for i, theta := range thetas {
		// A new pass per sample keeps the memo small.
		ps := newPass(p)
		sol := ps.solve(theta)
		samples[i] = Sample{
			ThetaDeg:       theta,
			Rise:           sol.Rise,
			Span:           sol.Span,
			H:              sol.H,
			ActuatorLength: p.Actuator.Length(sol),
			Force:          ps.estimateForce(p.Actuator, theta, w).Rate(p),
		}
	}
	return samples
}
