package scissor

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestEstimateForceVirtualWork(t *testing.T) {
	// Actuator A0→D0 measures the first stage rise h, so dH/dℓ = N exactly.
	p := DefaultParameters()
	act := Actuator{Base: Key{JointA, 0}, Move: Key{JointD, 0}}
	for _, n := range []int{1, 2, 3, 7} {
		p.N = n
		for _, theta := range []float64{p.ThetaMin, 20, 45, p.ThetaMax} {
			f := EstimateForce(p, act, theta, 1000)
			want := 1000 * float64(n)
			if math.Abs(f.Raw-want) > 1e-6*want {
				t.Errorf("N=%d θ=%g: got F=%v. want %v", n, theta, f.Raw, want)
			}
			// dℓ/dθ = L cos θ, evaluated with a central difference.
			if dl := p.L * math.Cos(DtoR(theta)); math.Abs(f.DlDTheta-dl) > 1e-3 {
				t.Errorf("N=%d θ=%g: got dℓ/dθ=%v. want %v", n, theta, f.DlDTheta, dl)
			}
			if !math.IsNaN(f.Rated) || !math.IsNaN(f.PerActuator) {
				t.Errorf("unrated force has rated values: %+v", f)
			}
		}
	}
}

func TestEstimateForceSingular(t *testing.T) {
	p := DefaultParameters()
	// Bar B0→D0 keeps length L for any θ: dℓ/dθ = 0.
	for _, act := range []Actuator{
		{Base: Key{JointB, 0}, Move: Key{JointD, 0}},
		{Base: Key{JointA, 0}, Move: Key{JointC, 0}},
		{Base: Key{JointA, 1}, Move: Key{JointP, 1}},
		// Base raised to the stage rise at 30°: length is stationary there
		// but changes by a few nanometers over the difference step.
		{Base: Key{JointA, 0}, Move: Key{JointD, 0}, BaseOffset: r2.Vec{X: 0.1, Y: 0.5}},
	} {
		f := EstimateForce(p, act, 30, 1000)
		if IsFinite(f.Raw) || f.DlDTheta != 0 {
			t.Errorf("%s→%s: got F=%v dℓ/dθ=%v. want non-finite force", act.Base, act.Move, f.Raw, f.DlDTheta)
		}
		r := f.Rate(p)
		if IsFinite(r.Rated) || !math.IsNaN(r.PerActuator) {
			t.Errorf("singular rated force: got %+v", r)
		}
	}
}

func TestEstimateForceInvalidKey(t *testing.T) {
	p := DefaultParameters()
	f := EstimateForce(p, Actuator{Base: Key{JointA, 0}, Move: Key{JointP, p.N}}, 30, 1000)
	if !math.IsNaN(f.Raw) {
		t.Errorf("got F=%v. want NaN", f.Raw)
	}
}

func TestRateForce(t *testing.T) {
	for _, test := range []struct {
		raw, friction, sf float64
		count             int
		rated, per        float64
	}{
		{1000, 10, 2, 2, 2200, 1100},
		{1000, 0, 1, 1, 1000, 1000},
		{500, 15, 1.5, 3, 862.5, 287.5},
		{0, 50, 3, 4, 0, 0},
	} {
		got := RateForce(test.raw, test.friction, test.sf, test.count)
		if math.Abs(got.Rated-test.rated) > 1e-9 || math.Abs(got.PerActuator-test.per) > 1e-9 {
			t.Errorf("raw=%g: got rated=%g per=%g. want %g, %g", test.raw, got.Rated, got.PerActuator, test.rated, test.per)
		}
	}
	got := RateForce(math.Inf(1), 10, 2, 2)
	if !math.IsInf(got.Rated, 1) || !math.IsNaN(got.PerActuator) {
		t.Errorf("infinite raw: got %+v", got)
	}
}

func TestTotalWeight(t *testing.T) {
	p := DefaultParameters()
	p.PayloadWeight, p.PlatformWeight, p.ArmWeight, p.N = 1000, 200, 50, 4
	if got := p.TotalWeight(); got != 1400 {
		t.Errorf("got %g. want 1400", got)
	}
}
