package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform is a uniform-scale 2D transformation with optional y-axis flip,
// used to map mechanism coordinates to screen coordinates.
type Transform struct {
	scale float64
	flipy bool
	t     r2.Vec // translation applied after scaling
}

// Fit returns the transform that fits world box bb, centered, inside a
// viewport of size view. With flipy set the y-axis points down as on screen.
// Degenerate boxes are treated as having a tiny positive size.
func Fit(bb Box, view r2.Vec, flipy bool) Transform {
	const minSize = 1e-6
	size := bb.Size()
	size.X = math.Max(minSize, size.X)
	size.Y = math.Max(minSize, size.Y)
	s := math.Min(view.X/size.X, view.Y/size.Y)
	t := Transform{scale: s, flipy: flipy}
	t.t.X = (view.X-size.X*s)/2 - bb.Min.X*s
	if flipy {
		t.t.Y = (view.Y-size.Y*s)/2 + bb.Max.Y*s
	} else {
		t.t.Y = (view.Y-size.Y*s)/2 - bb.Min.Y*s
	}
	return t
}

// Apply maps a world point to viewport coordinates.
func (t Transform) Apply(p r2.Vec) r2.Vec {
	y := p.Y * t.scale
	if t.flipy {
		y = -y
	}
	return r2.Vec{X: p.X*t.scale + t.t.X, Y: y + t.t.Y}
}
