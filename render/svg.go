package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/scissor"
	"github.com/soypat/scissor/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	svgWidth  = 1000
	svgHeight = 700
	// svgMargin is the world margin around the lift as a fraction of its
	// span and height.
	svgMargin = 0.18
)

const (
	stylePlatform = "stroke:#a9b1c3;stroke-width:6;stroke-linecap:round;opacity:0.95"
	styleBar      = "stroke:#c3e88d;stroke-width:5;stroke-linecap:round"
	styleActuator = "stroke:#ff9e64;stroke-width:6;stroke-linecap:round;opacity:0.95"
	fillActuator  = "fill:#ff9e64"
	fillGround    = "fill:#7aa2f7"
	fillJoint     = "fill:#c3e88d"
	fillMidpoint  = "fill:#89ddff;opacity:0.95"
	styleLabel    = "fill:#89ddff;font-size:12px;font-family:sans-serif"
	stylePlatText = "fill:#a9b1c3;font-size:14px;font-family:sans-serif"
)

// SVGOptions configures WriteSVG.
type SVGOptions struct {
	// Labels draws the key of every midpoint next to it.
	Labels bool
	// Actuator is drawn from its base to its moving attachment when not nil.
	Actuator *scissor.Actuator
	// Units selects the unit of the platform height annotation.
	Units scissor.LengthUnit
	// Background fill color. Transparent if empty.
	Background string
}

// WriteSVG draws a side view of the lift in a 1000x700 viewport: platforms,
// bars, joints, midpoints and optionally the actuator. World y points up.
func WriteSVG(w io.Writer, sol scissor.Solution, opts SVGOptions) error {
	if sol.N() == 0 || !sol.Points().Finite() {
		return errors.New("cannot draw degenerate solution")
	}
	tf := viewport(sol)
	at := func(p r2.Vec) (int, int) {
		s := tf.Apply(p)
		return int(math.Round(s.X)), int(math.Round(s.Y))
	}
	canvas := svg.New(w)
	canvas.Start(svgWidth, svgHeight)
	if opts.Background != "" {
		canvas.Rect(0, 0, svgWidth, svgHeight, "fill:"+opts.Background)
	}
	line := func(a, b r2.Vec, style string) {
		x1, y1 := at(a)
		x2, y2 := at(b)
		canvas.Line(x1, y1, x2, y2, style)
	}
	dot := func(p r2.Vec, r int, style string) {
		x, y := at(p)
		canvas.Circle(x, y, r, style)
	}

	line(sol.Bottom.Left, sol.Bottom.Right, stylePlatform)
	line(sol.Top.Left, sol.Top.Right, stylePlatform)
	for _, st := range sol.Stages {
		line(st.A, st.C, styleBar)
		line(st.B, st.D, styleBar)
	}
	if opts.Actuator != nil {
		base, move, ok := opts.Actuator.Endpoints(sol)
		if ok {
			line(base, move, styleActuator)
			dot(base, 7, fillActuator)
			dot(move, 7, fillActuator)
		}
	}
	dot(sol.Stages[0].A, 7, fillGround)
	dot(sol.Stages[0].B, 7, fillGround)
	for _, st := range sol.Stages {
		for _, p := range [...]r2.Vec{st.A, st.B, st.C, st.D, st.P} {
			dot(p, 5, fillJoint)
		}
	}
	for i := range sol.Stages {
		for _, f := range [...]scissor.Feature{scissor.MidAP, scissor.MidPC, scissor.MidBP, scissor.MidPD} {
			k := scissor.Key{Feature: f, Stage: i}
			p, _ := scissor.Resolve(sol, k)
			dot(p, 4, fillMidpoint)
			if opts.Labels {
				x, y := at(p)
				canvas.Text(x+6, y-6, k.String(), styleLabel)
			}
		}
	}
	x, y := at(sol.Top.Left)
	canvas.Text(x, y-12, fmt.Sprintf("Top platform y = %.3f %s", opts.Units.FromMeters(sol.H), opts.Units.Label()), stylePlatText)
	x, y = at(sol.Bottom.Left)
	canvas.Text(x, y+18, "Base", stylePlatText)
	canvas.End()
	return nil
}

// viewport fits the lift and a margin around it in the SVG viewport with
// y pointing down. Room for one extra stage rise is left above the platform.
func viewport(sol scissor.Solution) d2.Transform {
	or1 := func(v float64) float64 {
		if v == 0 || math.IsNaN(v) {
			return 1
		}
		return v
	}
	span, height := or1(sol.Span), or1(sol.H)
	bb := d2.Box{
		Min: r2.Vec{X: -svgMargin * span, Y: -svgMargin * height},
		Max: r2.Vec{X: span * (1 + svgMargin), Y: height*(1+svgMargin) + sol.Rise},
	}
	return d2.Fit(bb, r2.Vec{X: svgWidth, Y: svgHeight}, true)
}
