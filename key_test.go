package scissor

import (
	"testing"

	"github.com/soypat/scissor/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestEnumerateKeys(t *testing.T) {
	if keys := EnumerateKeys(0); len(keys) != 0 {
		t.Errorf("got %d keys for 0 stages. want 0", len(keys))
	}
	for n := 1; n <= 6; n++ {
		keys := EnumerateKeys(n)
		if len(keys) != 9*n {
			t.Fatalf("N=%d: got %d keys. want %d", n, len(keys), 9*n)
		}
		sol := Solve(0.8, n, 40)
		seen := make(map[Key]bool)
		for _, k := range keys {
			if seen[k] {
				t.Errorf("N=%d: duplicate key %s", n, k)
			}
			seen[k] = true
			p, ok := Resolve(sol, k)
			if !ok || !d2.IsFinite(p) {
				t.Errorf("N=%d: key %s did not resolve to finite point: %v %v", n, k, p, ok)
			}
		}
		for f := Feature(0); f < numFeatures; f++ {
			for _, stage := range []int{n, n + 1, -1} {
				k := Key{Feature: f, Stage: stage}
				if _, ok := Resolve(sol, k); ok {
					t.Errorf("N=%d: key %s resolved. want not found", n, k)
				}
			}
		}
	}
}

func TestEnumerateKeysOrder(t *testing.T) {
	want := []string{"A0", "B0", "P0", "D0", "C0", "AP_0", "PC_0", "BP_0", "PD_0", "A1"}
	keys := EnumerateKeys(2)
	for i, w := range want {
		if got := keys[i].String(); got != w {
			t.Errorf("key %d: got %s. want %s", i, got, w)
		}
	}
}

func TestResolveMidpoints(t *testing.T) {
	sol := Solve(1.2, 3, 52)
	for i, st := range sol.Stages {
		for _, test := range []struct {
			f    Feature
			a, b r2.Vec
		}{
			{MidAP, st.A, st.P},
			{MidPC, st.P, st.C},
			{MidBP, st.B, st.P},
			{MidPD, st.P, st.D},
		} {
			got, ok := Resolve(sol, Key{Feature: test.f, Stage: i})
			want := r2.Scale(0.5, r2.Add(test.a, test.b))
			if !ok || !d2.EqualWithin(got, want, tol) {
				t.Errorf("%s_%d: got %v. want %v", test.f, i, got, want)
			}
		}
	}
	if _, ok := Resolve(sol, Key{Feature: numFeatures, Stage: 0}); ok {
		t.Error("invalid feature resolved")
	}
}

func TestParseKey(t *testing.T) {
	for _, k := range EnumerateKeys(12) {
		got, err := ParseKey(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("parse %q: got %v. want %v", k.String(), got, k)
		}
	}
	for _, bad := range []string{"", "A", "Q0", "P_0", "AP0", "A-1", "AP_", "AP_x", "_0", "a0", "A+1", "AP_-0", "P 2", "B1.0", "C99999999999999999999"} {
		if k, err := ParseKey(bad); err == nil {
			t.Errorf("parse %q: got %v. want error", bad, k)
		}
	}
}

func TestKeyLabel(t *testing.T) {
	for _, test := range []struct {
		key  Key
		want string
	}{
		{Key{JointA, 0}, "A0 — Bottom-Left joint"},
		{Key{JointB, 3}, "B3 — Bottom-Right joint"},
		{Key{JointC, 1}, "C1 — Top-Right joint"},
		{Key{JointD, 1}, "D1 — Top-Left joint"},
		{Key{JointP, 10}, "P10 — Center joint"},
		{Key{MidAP, 0}, "AP_0 — Mid(A→P)"},
		{Key{MidPC, 0}, "PC_0 — Mid(P→C)"},
		{Key{MidBP, 2}, "BP_2 — Mid(B→P)"},
		{Key{MidPD, 2}, "PD_2 — Mid(P→D)"},
	} {
		if got := test.key.Label(); got != test.want {
			t.Errorf("got %q. want %q", got, test.want)
		}
	}
}

func TestRebind(t *testing.T) {
	p1 := Key{JointP, 1}
	if got := Rebind(p1, 2, DefaultBaseKey()); got != p1 {
		t.Errorf("valid key rebound: got %s", got)
	}
	if got := DefaultMoveKey(1); got != (Key{JointP, 0}) {
		t.Errorf("default move for 1 stage: got %s. want P0", got)
	}
	act := Actuator{Base: Key{MidBP, 4}, Move: Key{JointC, 3}}.Rebind(2)
	if act.Base != DefaultBaseKey() || act.Move != p1 {
		t.Errorf("stale actuator keys: got %s→%s. want A0→P1", act.Base, act.Move)
	}
}

func TestNearestKey(t *testing.T) {
	sol := Solve(1, 3, 35)
	for _, k := range EnumerateKeys(3) {
		want, _ := Resolve(sol, k)
		got, dist, ok := NearestKey(sol, r2.Add(want, r2.Vec{X: 1e-4, Y: -1e-4}))
		if !ok {
			t.Fatal("no nearest key")
		}
		// Stacked stages share joints (D0 is A1), so compare locations.
		gotP, _ := Resolve(sol, got)
		if !d2.EqualWithin(gotP, want, tol) {
			t.Errorf("near %s: got %s at %v", k, got, gotP)
		}
		if dist > 2e-4 {
			t.Errorf("near %s: got distance %g", k, dist)
		}
	}
	if _, _, ok := NearestKey(Solve(1, 0, 35), r2.Vec{}); ok {
		t.Error("nearest key found in empty solution")
	}
}
