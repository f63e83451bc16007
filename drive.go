package scissor

import (
	"context"
	"math"
	"time"
)

const (
	// ThetaRate is the drive angle animation rate in degrees per second.
	ThetaRate = 18.0
	// LengthRateFrac is the actuator length animation rate as a fraction
	// of the full stroke per second.
	LengthRateFrac = 0.25
)

// Drive animates a single value, either the drive angle or the actuator
// length, towards one of its bounds at a fixed rate. Drive is the sole writer
// of its value and is not safe for concurrent use.
type Drive struct {
	Value    float64
	Min, Max float64
	// Rate is the speed of the value in units per second.
	Rate float64
	// Dir is +1 to lift and -1 to lower. Step only uses its sign and
	// treats zero as +1.
	Dir  int
	done bool
}

// NewThetaDrive returns a drive of the angle of p starting at p.Theta.
// A negative dir lowers the lift, any other value lifts it.
func NewThetaDrive(p Parameters, dir int) *Drive {
	return &Drive{
		Value: Clamp(p.Theta, p.ThetaMin, p.ThetaMax),
		Min:   p.ThetaMin,
		Max:   p.ThetaMax,
		Rate:  ThetaRate,
		Dir:   direction(dir),
	}
}

// NewLengthDrive returns a drive of an actuator length over [min, max]
// starting at v.
func NewLengthDrive(min, max, v float64, dir int) *Drive {
	span := math.Max(1e-9, max-min)
	return &Drive{
		Value: Clamp(v, min, max),
		Min:   min,
		Max:   max,
		Rate:  LengthRateFrac * span,
		Dir:   direction(dir),
	}
}

// Done returns true once the value has reached the bound it was driven to.
func (d *Drive) Done() bool { return d.done }

// Step advances the value by dt and returns it. The value stops at the
// bounds, after which Done returns true.
func (d *Drive) Step(dt time.Duration) float64 {
	if d.done {
		return d.Value
	}
	v := d.Value + float64(direction(d.Dir))*d.Rate*dt.Seconds()
	if v >= d.Max {
		v = d.Max
		d.done = true
	}
	if v <= d.Min {
		v = d.Min
		d.done = true
	}
	d.Value = v
	return v
}

// direction returns -1 for negative dir and +1 otherwise.
func direction(dir int) int {
	if dir < 0 {
		return -1
	}
	return 1
}

// Run steps the drive every interval and calls apply with each new value
// until a bound is reached or ctx is done. It returns ctx.Err() if the
// context ended the run, else nil.
func (d *Drive) Run(ctx context.Context, interval time.Duration, apply func(v float64)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for !d.done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			apply(d.Step(now.Sub(last)))
			last = now
		}
	}
	return nil
}
