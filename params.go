package scissor

import (
	"errors"
	"fmt"
	"math"
)

// Parameters is the full input of one evaluation pass. Lengths are in meters,
// weights in newtons and angles in degrees.
type Parameters struct {
	L        float64 // bar length, end pivot to end pivot
	N        int     // stage count
	ThetaMin float64
	ThetaMax float64
	// Theta is the drive angle used when the lift is not actuator driven.
	Theta float64

	PlatformWidth float64
	BaseWidth     float64

	PayloadWeight  float64
	PlatformWeight float64
	// ArmWeight is the weight of the arms of a single stage.
	ArmWeight float64

	FrictionPct  float64
	SafetyFactor float64
	// Actuators is the number of actuators sharing the load equally.
	Actuators int

	// ActuatorDriven selects θ from TargetLength instead of Theta.
	ActuatorDriven bool
	Actuator       Actuator
	TargetLength   float64
}

// DefaultParameters returns a two stage, one meter bar lift with a
// single actuator from A0 to P1.
func DefaultParameters() Parameters {
	return Parameters{
		L:              1.0,
		N:              2,
		ThetaMin:       8,
		ThetaMax:       70,
		Theta:          35,
		PlatformWidth:  0.8,
		BaseWidth:      0.8,
		PayloadWeight:  1000,
		PlatformWeight: 200,
		ArmWeight:      100,
		FrictionPct:    15,
		SafetyFactor:   1.5,
		Actuators:      1,
		Actuator:       DefaultActuator(2),
	}
}

// TotalWeight returns payload + platform + N * arm weight, in newtons.
func (p Parameters) TotalWeight() float64 {
	return p.PayloadWeight + p.PlatformWeight + float64(p.N)*p.ArmWeight
}

// Validate returns a non-nil error describing the first parameter that breaks
// the caller contract of the solvers. Solvers never require Validate to have
// been called; invalid parameters yield non-finite results instead.
func (p Parameters) Validate() error {
	switch {
	case !(p.L > 0) || math.IsInf(p.L, 0):
		return fmt.Errorf("bar length must be positive and finite, got %g", p.L)
	case p.N < 1:
		return fmt.Errorf("stage count must be at least 1, got %d", p.N)
	case !(p.ThetaMin > 0) || !(p.ThetaMax < 90):
		return fmt.Errorf("θ limits must lie strictly between 0° and 90°, got [%g, %g]", p.ThetaMin, p.ThetaMax)
	case !(p.ThetaMin < p.ThetaMax):
		return errors.New("θ_min must be less than θ_max")
	case p.Actuators < 1:
		return fmt.Errorf("actuator count must be at least 1, got %d", p.Actuators)
	case !(p.SafetyFactor > 0):
		return fmt.Errorf("safety factor must be positive, got %g", p.SafetyFactor)
	case p.FrictionPct < 0:
		return fmt.Errorf("friction percentage must not be negative, got %g", p.FrictionPct)
	case p.PlatformWidth < 0 || p.BaseWidth < 0:
		return errors.New("platform and base widths must not be negative")
	case p.ActuatorDriven && !p.Actuator.Base.ValidFor(p.N):
		return fmt.Errorf("actuator base %s not valid for %d stages", p.Actuator.Base, p.N)
	case p.ActuatorDriven && !p.Actuator.Move.ValidFor(p.N):
		return fmt.Errorf("actuator move %s not valid for %d stages", p.Actuator.Move, p.N)
	}
	return nil
}

// pass memoizes forward solutions of a single evaluation pass keyed by
// (L, N, θ). It is never shared between passes.
type pass struct {
	p     Parameters
	cache map[solveKey]Solution
}

type solveKey struct {
	L     float64
	N     int
	theta float64
}

func newPass(p Parameters) *pass {
	return &pass{p: p, cache: make(map[solveKey]Solution, 4)}
}

// solve returns the memoized solution at thetaDeg.
func (ps *pass) solve(thetaDeg float64) Solution {
	k := solveKey{L: ps.p.L, N: ps.p.N, theta: thetaDeg}
	if sol, ok := ps.cache[k]; ok {
		return sol
	}
	sol := Solve(ps.p.L, ps.p.N, thetaDeg)
	ps.cache[k] = sol
	return sol
}

// length returns the actuator length at thetaDeg.
func (ps *pass) length(act Actuator, thetaDeg float64) float64 {
	return act.Length(ps.solve(thetaDeg))
}

func (ps *pass) stroke(act Actuator) Stroke {
	return Stroke{
		AtMin: ps.length(act, ps.p.ThetaMin),
		AtMax: ps.length(act, ps.p.ThetaMax),
	}
}
