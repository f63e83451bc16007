package scissor

import (
	"math"
	"testing"

	"github.com/soypat/scissor/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-12

func TestSolveThreeStages(t *testing.T) {
	sol := Solve(1.0, 3, 30)
	w := math.Sqrt(3) / 2
	for _, test := range []struct {
		name      string
		got, want float64
	}{
		{"h", sol.Rise, 0.5},
		{"w", sol.Span, w},
		{"H", sol.H, 1.5},
		{"θ", sol.Theta, math.Pi / 6},
	} {
		if math.Abs(test.got-test.want) > tol {
			t.Errorf("%s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	if sol.N() != 3 {
		t.Fatalf("got %d stages. want 3", sol.N())
	}
	st := sol.Stages[1]
	for _, test := range []struct {
		name      string
		got, want r2.Vec
	}{
		{"A", st.A, r2.Vec{X: 0, Y: 0.5}},
		{"B", st.B, r2.Vec{X: w, Y: 0.5}},
		{"D", st.D, r2.Vec{X: 0, Y: 1.0}},
		{"C", st.C, r2.Vec{X: w, Y: 1.0}},
		{"P", st.P, r2.Vec{X: w / 2, Y: 0.75}},
	} {
		if !d2.EqualWithin(test.got, test.want, tol) {
			t.Errorf("stage 1 joint %s: got %v. want %v", test.name, test.got, test.want)
		}
	}
	if sol.Bottom.Left != sol.Stages[0].A || sol.Bottom.Right != sol.Stages[0].B {
		t.Error("bottom platform does not match stage 0 A-B")
	}
	if sol.Top.Left != sol.Stages[2].D || sol.Top.Right != sol.Stages[2].C {
		t.Error("top platform does not match last stage D-C")
	}
}

func TestSolveTrigonometry(t *testing.T) {
	for _, L := range []float64{0.05, 1, 2.5, 40} {
		for _, n := range []int{1, 2, 5, 12} {
			for _, theta := range []float64{0.5, 10, 33.3, 45, 60, 89.5} {
				sol := Solve(L, n, theta)
				h := L * math.Sin(DtoR(theta))
				w := L * math.Cos(DtoR(theta))
				if !equalRel(sol.Rise, h, 1e-12) || !equalRel(sol.Span, w, 1e-12) {
					t.Errorf("L=%g N=%d θ=%g: got h=%g w=%g. want h=%g w=%g", L, n, theta, sol.Rise, sol.Span, h, w)
				}
				if !equalRel(sol.H, float64(n)*h, 1e-12) {
					t.Errorf("L=%g N=%d θ=%g: got H=%g. want %g", L, n, theta, sol.H, float64(n)*h)
				}
				// Bars A→C and B→D must keep length L.
				for i, st := range sol.Stages {
					if d := d2.Dist(st.A, st.C); math.Abs(d-L) > 1e-9*L {
						t.Errorf("stage %d bar A→C length %g. want %g", i, d, L)
					}
					if d := d2.Dist(st.B, st.D); math.Abs(d-L) > 1e-9*L {
						t.Errorf("stage %d bar B→D length %g. want %g", i, d, L)
					}
				}
			}
		}
	}
}

func TestSolveMonotonic(t *testing.T) {
	const L, n = 1.3, 4
	prev := Solve(L, n, 0.5)
	for theta := 1.0; theta < 90; theta += 0.5 {
		sol := Solve(L, n, theta)
		if sol.H <= prev.H || sol.Rise <= prev.Rise {
			t.Errorf("θ=%g: rise did not increase: H %g -> %g", theta, prev.H, sol.H)
		}
		if sol.Span >= prev.Span {
			t.Errorf("θ=%g: span did not decrease: w %g -> %g", theta, prev.Span, sol.Span)
		}
		prev = sol
	}
}

func TestSolveDegenerate(t *testing.T) {
	for _, test := range []struct {
		name   string
		L      float64
		n      int
		theta  float64
		stages int
	}{
		{"zero length", 0, 2, 30, 2},
		{"negative length", -1, 3, 30, 3},
		{"NaN length", math.NaN(), 1, 30, 1},
		{"zero stages", 1, 0, 30, 0},
		{"negative stages", 1, -4, 30, 0},
		{"NaN angle", 1, 2, math.NaN(), 2},
		{"infinite angle", 1, 2, math.Inf(1), 2},
	} {
		sol := Solve(test.L, test.n, test.theta)
		if IsFinite(sol.H) || IsFinite(sol.Rise) || IsFinite(sol.Span) {
			t.Errorf("%s: got finite H=%g h=%g w=%g", test.name, sol.H, sol.Rise, sol.Span)
		}
		if len(sol.Stages) != test.stages {
			t.Errorf("%s: got %d stages. want %d", test.name, len(sol.Stages), test.stages)
		}
		for _, p := range sol.Points() {
			if d2.IsFinite(p) {
				t.Errorf("%s: got finite joint %v", test.name, p)
			}
		}
	}
}

func TestUnits(t *testing.T) {
	if got := MetersFromInches(1); got != 0.0254 {
		t.Errorf("1in: got %v m. want 0.0254", got)
	}
	if got := NewtonsFromPoundsForce(1); got != 4.4482216152605 {
		t.Errorf("1lbf: got %v N. want 4.4482216152605", got)
	}
	for _, v := range []float64{0, 1e-3, 1, 12.5, 3000} {
		if got := US.FromMeters(US.ToMeters(v)); !equalRel(got, v, 1e-12) {
			t.Errorf("inch roundtrip %g: got %g", v, got)
		}
		if got := PoundForce.FromNewtons(PoundForce.ToNewtons(v)); !equalRel(got, v, 1e-12) {
			t.Errorf("lbf roundtrip %g: got %g", v, got)
		}
		if Metric.ToMeters(v) != v || Newton.ToNewtons(v) != v {
			t.Errorf("SI units must be identity for %g", v)
		}
	}
	if got := DtoR(180); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("180deg: got %v rad. want π", got)
	}
	if US.Label() != "in" || Metric.Label() != "m" || PoundForce.Label() != "lbf" || Newton.Label() != "N" {
		t.Error("bad unit labels")
	}
}

// equalRel compares a and b within a tolerance relative to the larger
// magnitude, or absolute when both are below 1.
func equalRel(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
