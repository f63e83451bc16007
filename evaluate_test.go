package scissor

import (
	"math"
	"testing"
)

func TestEvaluateThetaDriven(t *testing.T) {
	p := DefaultParameters()
	p.Theta = 2 // below θ_min
	res := Evaluate(p)
	if res.ThetaDeg != p.ThetaMin {
		t.Errorf("got θ=%v. want clamp to θ_min=%v", res.ThetaDeg, p.ThetaMin)
	}
	if res.Solution.ThetaDeg != res.ThetaDeg {
		t.Error("solution not at resolved θ")
	}
	if res.AtMin.ThetaDeg != p.ThetaMin || res.AtMax.ThetaDeg != p.ThetaMax {
		t.Error("limit solutions at wrong angles")
	}
	if !math.IsNaN(res.Force.Raw) || !math.IsNaN(res.Force.PerActuator) {
		t.Errorf("θ-driven lift has force estimate %+v", res.Force)
	}
	if res.TotalWeight != p.TotalWeight() {
		t.Errorf("got total weight %v. want %v", res.TotalWeight, p.TotalWeight())
	}
}

func TestEvaluateActuatorDriven(t *testing.T) {
	p := DefaultParameters()
	p.ActuatorDriven = true
	want := p.Actuator.Length(Solve(p.L, p.N, 40))
	p.TargetLength = want
	res := Evaluate(p)
	if !res.Inverse.OK || res.Inverse.Clamped {
		t.Fatalf("inverse failed: %+v", res.Inverse)
	}
	if math.Abs(res.ThetaDeg-40) > 1e-3 {
		t.Errorf("got θ=%v. want 40", res.ThetaDeg)
	}
	if math.Abs(res.ActuatorLength-want) > 1e-9 {
		t.Errorf("got length %v. want %v", res.ActuatorLength, want)
	}
	if math.Abs(res.StrokeUsed-(want-res.Stroke.AtMin)) > 1e-9 {
		t.Errorf("got stroke used %v. want %v", res.StrokeUsed, want-res.Stroke.AtMin)
	}
	f := res.Force
	if !IsFinite(f.Raw) || f.Raw <= 0 {
		t.Fatalf("got force %v. want finite positive", f.Raw)
	}
	rated := f.Raw * (1 + p.FrictionPct/100) * p.SafetyFactor
	if math.Abs(f.Rated-rated) > 1e-9*rated || math.Abs(f.PerActuator-rated/float64(p.Actuators)) > 1e-9*rated {
		t.Errorf("got rated %v per %v. want %v", f.Rated, f.PerActuator, rated)
	}
}

func TestEvaluateRebindsStaleKeys(t *testing.T) {
	p := DefaultParameters()
	p.N = 1
	p.ActuatorDriven = true
	p.Actuator = Actuator{Base: Key{JointA, 0}, Move: Key{JointP, 1}}
	p.TargetLength = 0.4
	res := Evaluate(p)
	if res.Params.Actuator.Move != (Key{JointP, 0}) {
		t.Errorf("got move key %s. want P0", res.Params.Actuator.Move)
	}
	if !IsFinite(res.ActuatorLength) {
		t.Error("rebound actuator has no length")
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	p := DefaultParameters()
	p.ActuatorDriven = true
	p.TargetLength = 0.9
	a, b := Evaluate(p), Evaluate(p)
	if a.ThetaDeg != b.ThetaDeg || a.Force.Raw != b.Force.Raw || a.Solution.H != b.Solution.H {
		t.Error("identical parameters gave different results")
	}
}

func TestSweep(t *testing.T) {
	p := DefaultParameters()
	samples := Sweep(p, 25)
	if len(samples) != 25 {
		t.Fatalf("got %d samples. want 25", len(samples))
	}
	if samples[0].ThetaDeg != p.ThetaMin || samples[24].ThetaDeg != p.ThetaMax {
		t.Errorf("sweep limits %v..%v. want %v..%v", samples[0].ThetaDeg, samples[24].ThetaDeg, p.ThetaMin, p.ThetaMax)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].H <= samples[i-1].H {
			t.Errorf("sample %d: H did not increase", i)
		}
		if !IsFinite(samples[i].Force.PerActuator) {
			t.Errorf("sample %d: non-finite force", i)
		}
	}
	if Sweep(p, 1) != nil {
		t.Error("sweep with one sample should be nil")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name   string
		modify func(p *Parameters)
	}{
		{"zero length", func(p *Parameters) { p.L = 0 }},
		{"no stages", func(p *Parameters) { p.N = 0 }},
		{"θ_min zero", func(p *Parameters) { p.ThetaMin = 0 }},
		{"θ_max 90", func(p *Parameters) { p.ThetaMax = 90 }},
		{"swapped limits", func(p *Parameters) { p.ThetaMin, p.ThetaMax = 60, 20 }},
		{"no actuators", func(p *Parameters) { p.Actuators = 0 }},
		{"zero safety factor", func(p *Parameters) { p.SafetyFactor = 0 }},
		{"negative friction", func(p *Parameters) { p.FrictionPct = -1 }},
		{"negative width", func(p *Parameters) { p.BaseWidth = -1 }},
		{"stale actuator key", func(p *Parameters) {
			p.ActuatorDriven = true
			p.Actuator.Move = Key{JointP, 4}
		}},
	} {
		p := DefaultParameters()
		test.modify(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}
