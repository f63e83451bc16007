package scissor

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDriveStep(t *testing.T) {
	p := DefaultParameters() // θ 35 in [8, 70]
	d := NewThetaDrive(p, +1)
	if got := d.Step(time.Second); got != 35+ThetaRate {
		t.Errorf("got θ=%v. want %v", got, 35+ThetaRate)
	}
	if d.Done() {
		t.Fatal("done before reaching bound")
	}
	if got := d.Step(time.Second); got != p.ThetaMax || !d.Done() {
		t.Errorf("got θ=%v done=%v. want %v done", got, d.Done(), p.ThetaMax)
	}
	if got := d.Step(time.Second); got != p.ThetaMax {
		t.Errorf("done drive moved to %v", got)
	}

	d = NewThetaDrive(p, -1)
	for i := 0; i < 100 && !d.Done(); i++ {
		d.Step(time.Second / 60)
	}
	if !d.Done() || d.Value != p.ThetaMin {
		t.Errorf("lowering: got θ=%v done=%v. want %v", d.Value, d.Done(), p.ThetaMin)
	}
}

func TestDriveDirection(t *testing.T) {
	p := DefaultParameters()
	for _, test := range []struct {
		dir, want int
	}{
		{0, 1}, {1, 1}, {2, 1}, {-1, -1}, {-7, -1},
	} {
		d := NewThetaDrive(p, test.dir)
		if d.Dir != test.want {
			t.Errorf("dir %d: got Dir=%d. want %d", test.dir, d.Dir, test.want)
		}
		want := 35 + float64(test.want)*ThetaRate
		if got := d.Step(time.Second); got != want {
			t.Errorf("dir %d: got θ=%v. want %v", test.dir, got, want)
		}
		if l := NewLengthDrive(0, 1, 0.5, test.dir); l.Dir != test.want {
			t.Errorf("length dir %d: got Dir=%d. want %d", test.dir, l.Dir, test.want)
		}
	}
	// A zero value direction still reaches a bound.
	d := &Drive{Value: 0.5, Min: 0, Max: 1, Rate: 1}
	for i := 0; i < 10 && !d.Done(); i++ {
		d.Step(time.Second / 4)
	}
	if !d.Done() || d.Value != 1 {
		t.Errorf("zero Dir: got %v done=%v. want 1 done", d.Value, d.Done())
	}
}

func TestLengthDrive(t *testing.T) {
	d := NewLengthDrive(0.5, 1.5, 0.5, +1)
	if d.Rate != LengthRateFrac {
		t.Errorf("got rate %v. want %v", d.Rate, LengthRateFrac)
	}
	if got := d.Step(2 * time.Second); got != 1.0 {
		t.Errorf("got %v. want 1", got)
	}
	d.Step(10 * time.Second)
	if !d.Done() || d.Value != 1.5 {
		t.Errorf("got %v done=%v. want 1.5 done", d.Value, d.Done())
	}
}

func TestDriveRun(t *testing.T) {
	d := NewLengthDrive(0, 1, 0, +1)
	d.Rate = 1e6 // reach the bound on the first tick
	var calls int
	err := d.Run(context.Background(), time.Millisecond, func(v float64) { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	if !d.Done() || d.Value != 1 || calls != 1 {
		t.Errorf("got value %v after %d calls. want 1 after 1", d.Value, calls)
	}
}

func TestDriveRunCancel(t *testing.T) {
	d := NewLengthDrive(0, 1, 0, +1)
	d.Rate = 1e-9
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := d.Run(ctx, time.Millisecond, func(v float64) { cancel() })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v. want context.Canceled", err)
	}
	if d.Done() {
		t.Error("cancelled drive reports done")
	}
}
