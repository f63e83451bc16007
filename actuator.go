package scissor

import (
	"math"

	"github.com/soypat/scissor/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Actuator is a virtual linear actuator connecting two mechanism points.
// Offsets are fixed world-frame displacements applied to each endpoint
// after its key has been resolved.
type Actuator struct {
	Base       Key
	Move       Key
	BaseOffset r2.Vec
	MoveOffset r2.Vec
}

// DefaultActuator returns the actuator from A0 to DefaultMoveKey(n).
func DefaultActuator(n int) Actuator {
	return Actuator{Base: DefaultBaseKey(), Move: DefaultMoveKey(n)}
}

// Endpoints returns the offset base and moving points of the actuator.
// ok is false if either key does not resolve in sol.
func (a Actuator) Endpoints(sol Solution) (base, move r2.Vec, ok bool) {
	base, okb := Resolve(sol, a.Base)
	move, okm := Resolve(sol, a.Move)
	if !okb || !okm {
		return r2.Vec{}, r2.Vec{}, false
	}
	return r2.Add(base, a.BaseOffset), r2.Add(move, a.MoveOffset), true
}

// Length returns the distance between actuator endpoints in sol or
// NaN if either key does not resolve for the solution's stage count.
func (a Actuator) Length(sol Solution) float64 {
	base, move, ok := a.Endpoints(sol)
	if !ok {
		return math.NaN()
	}
	return d2.Dist(base, move)
}

// Rebind returns the actuator with keys that are invalid for n stages
// replaced by the defaults.
func (a Actuator) Rebind(n int) Actuator {
	a.Base = Rebind(a.Base, n, DefaultBaseKey())
	a.Move = Rebind(a.Move, n, DefaultMoveKey(n))
	return a
}

// ActuatorLength returns the length of an actuator between base and move
// with the given offsets. See Actuator.Length.
func ActuatorLength(sol Solution, base, move Key, baseOffset, moveOffset r2.Vec) float64 {
	return Actuator{Base: base, Move: move, BaseOffset: baseOffset, MoveOffset: moveOffset}.Length(sol)
}

// Stroke describes the actuator length range over [θ_min, θ_max].
type Stroke struct {
	AtMin float64 // length at θ_min
	AtMax float64 // length at θ_max
}

// Lo returns the shortest of the two end lengths.
func (s Stroke) Lo() float64 { return math.Min(s.AtMin, s.AtMax) }

// Hi returns the longest of the two end lengths.
func (s Stroke) Hi() float64 { return math.Max(s.AtMin, s.AtMax) }

// Total returns the signed length change from θ_min to θ_max. NaN when
// either end is not finite.
func (s Stroke) Total() float64 {
	if !s.Valid() {
		return math.NaN()
	}
	return s.AtMax - s.AtMin
}

// Valid returns true if both end lengths are finite.
func (s Stroke) Valid() bool { return IsFinite(s.AtMin) && IsFinite(s.AtMax) }

// ActuatorStroke returns the actuator lengths at the θ limits of p.
func ActuatorStroke(p Parameters, act Actuator) Stroke {
	return newPass(p).stroke(act)
}
