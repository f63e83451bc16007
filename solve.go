package scissor

import (
	"math"

	"github.com/soypat/scissor/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Stage holds the joint positions of a single scissor stage.
// All points are in meters with the origin at the bottom-left pivot of stage 0.
type Stage struct {
	A r2.Vec // bottom-left
	B r2.Vec // bottom-right
	C r2.Vec // top-right
	D r2.Vec // top-left
	P r2.Vec // center pivot where the arms cross
}

// Edge is a horizontal platform edge.
type Edge struct {
	Left, Right r2.Vec
}

// Solution is the forward kinematic solution of a stacked scissor lift
// at a single drive angle. Arms A→C and B→D have length L exactly.
type Solution struct {
	Theta    float64 // drive angle in radians
	ThetaDeg float64 // drive angle in degrees
	L        float64 // bar length end pivot to end pivot
	Rise     float64 // per-stage rise h = L*sin(θ)
	Span     float64 // per-stage span w = L*cos(θ)
	H        float64 // total rise N*h
	Stages   []Stage
	Bottom   Edge // base platform edge (stage 0 A-B)
	Top      Edge // top platform edge (stage N-1 D-C)
}

// N returns the number of stages in the solution.
func (s Solution) N() int { return len(s.Stages) }

// Solve computes joint positions for a lift of n stages with bars of length L
// at drive angle thetaDeg degrees. No clamping is performed. Degenerate inputs
// (L <= 0, n < 1 or a non-finite angle) produce NaN scalars and NaN points
// instead of panicking; if n < 1 the solution has no stages.
func Solve(L float64, n int, thetaDeg float64) Solution {
	theta := DtoR(thetaDeg)
	sol := Solution{
		Theta:    theta,
		ThetaDeg: thetaDeg,
		L:        L,
	}
	if !(L > 0) || n < 1 || !IsFinite(theta) || math.IsInf(L, 0) {
		return degenerate(sol, n)
	}
	h := L * math.Sin(theta)
	w := L * math.Cos(theta)
	sol.Rise = h
	sol.Span = w
	sol.H = float64(n) * h
	sol.Stages = make([]Stage, n)
	for i := range sol.Stages {
		y := float64(i) * h
		sol.Stages[i] = Stage{
			A: r2.Vec{X: 0, Y: y},
			B: r2.Vec{X: w, Y: y},
			C: r2.Vec{X: w, Y: y + h},
			D: r2.Vec{X: 0, Y: y + h},
			P: r2.Vec{X: w / 2, Y: y + h/2},
		}
	}
	sol.Bottom = Edge{Left: sol.Stages[0].A, Right: sol.Stages[0].B}
	sol.Top = Edge{Left: sol.Stages[n-1].D, Right: sol.Stages[n-1].C}
	return sol
}

func degenerate(sol Solution, n int) Solution {
	nan := math.NaN()
	sol.Rise, sol.Span, sol.H = nan, nan, nan
	p := d2.NaN()
	sol.Bottom = Edge{Left: p, Right: p}
	sol.Top = sol.Bottom
	if n < 1 {
		return sol
	}
	sol.Stages = make([]Stage, n)
	for i := range sol.Stages {
		sol.Stages[i] = Stage{A: p, B: p, C: p, D: p, P: p}
	}
	return sol
}

// Points returns every joint of the solution in stage order A,B,C,D,P.
func (s Solution) Points() d2.Set {
	pts := make(d2.Set, 0, 5*len(s.Stages))
	for _, st := range s.Stages {
		pts = append(pts, st.A, st.B, st.C, st.D, st.P)
	}
	return pts
}
