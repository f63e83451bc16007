package render

import (
	"errors"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/scissor"
	"gonum.org/v1/gonum/spatial/r2"
)

// MeshConfig sizes the solid members of a lift mesh. Lengths are in the
// units of the solution, usually meters.
type MeshConfig struct {
	// BarWidth is the in-plane width of a bar.
	BarWidth float32
	// BarThickness is the out-of-plane thickness of a bar. The two scissor
	// planes are stacked along Y, one bar thickness apart.
	BarThickness float32
	// DeckThickness is the height of the base and platform decks.
	DeckThickness float32
	// PinSize is the side of the square pins at each joint.
	PinSize float32
	// Actuator is drawn between the scissor planes when not nil.
	Actuator *scissor.Actuator
	// Scale multiplies every output coordinate. Zero means 1.
	Scale float32
}

// DefaultMeshConfig returns member sizes proportioned to bar length L.
func DefaultMeshConfig(L float64) MeshConfig {
	l := float32(L)
	return MeshConfig{
		BarWidth:      l / 25,
		BarThickness:  l / 50,
		DeckThickness: l / 30,
		PinSize:       l / 60,
	}
}

// Mesh returns a closed triangle mesh of the lift: the bars of each stage in
// two planes, base and platform decks and a pin through every joint. The
// lift plane maps to the XZ plane with Z up.
func Mesh(sol scissor.Solution, cfg MeshConfig) ([]ms3.Triangle, error) {
	if sol.N() == 0 || !sol.Points().Finite() {
		return nil, errors.New("mesh requires a valid solution with at least one stage")
	}
	if cfg.BarWidth <= 0 || cfg.BarThickness <= 0 || cfg.DeckThickness <= 0 || cfg.PinSize <= 0 {
		return nil, errors.New("mesh member sizes must be positive")
	}
	t := cfg.BarThickness
	var mb meshBuilder
	for _, st := range sol.Stages {
		// A→C in the front plane, B→D behind it.
		mb.bar(st.A, st.C, cfg.BarWidth, 0, t)
		mb.bar(st.B, st.D, cfg.BarWidth, t, t)
		for _, j := range [...]r2.Vec{st.A, st.B, st.C, st.D, st.P} {
			mb.pin(j, cfg.PinSize, -t/2, 3*t)
		}
	}
	depth := 3 * t
	mb.deck(sol.Bottom, -cfg.DeckThickness-cfg.BarWidth/2, cfg.DeckThickness, -t, depth)
	mb.deck(sol.Top, cfg.BarWidth/2, cfg.DeckThickness, -t, depth)
	if cfg.Actuator != nil {
		base, move, ok := cfg.Actuator.Endpoints(sol)
		if !ok {
			return nil, errors.New("actuator endpoints do not resolve for solution stage count")
		}
		mb.bar(base, move, cfg.BarWidth/2, -t, t/2)
	}
	model := mb.buf.buf
	if cfg.Scale != 0 && cfg.Scale != 1 {
		for i := range model {
			for j := range model[i] {
				model[i][j] = ms3.Scale(cfg.Scale, model[i][j])
			}
		}
	}
	return model, nil
}

type meshBuilder struct {
	buf triangleBuffer
}

// bar adds a cuboid of in-plane width w from a to b whose front face lies at
// y0 and is depth thick along Y.
func (mb *meshBuilder) bar(a, b r2.Vec, w, y0, depth float32) {
	d := r2.Sub(b, a)
	if r2.Norm(d) == 0 {
		return
	}
	u := r2.Unit(d)
	n := r2.Scale(float64(w)/2, r2.Vec{X: -u.Y, Y: u.X})
	mb.cuboid([4]r2.Vec{r2.Sub(a, n), r2.Sub(b, n), r2.Add(b, n), r2.Add(a, n)}, y0, depth)
}

// pin adds a square pin of side s centered on joint j spanning
// [y0, y0+depth] along Y.
func (mb *meshBuilder) pin(j r2.Vec, s, y0, depth float32) {
	h := float64(s) / 2
	mb.cuboid([4]r2.Vec{
		{X: j.X - h, Y: j.Y - h},
		{X: j.X + h, Y: j.Y - h},
		{X: j.X + h, Y: j.Y + h},
		{X: j.X - h, Y: j.Y + h},
	}, y0, depth)
}

// deck adds a slab under the span of edge e, from height e.Y+z0 to
// e.Y+z0+thick.
func (mb *meshBuilder) deck(e scissor.Edge, z0, thick, y0, depth float32) {
	lo := float64(z0)
	hi := lo + float64(thick)
	mb.cuboid([4]r2.Vec{
		{X: e.Left.X, Y: e.Left.Y + lo},
		{X: e.Right.X, Y: e.Right.Y + lo},
		{X: e.Right.X, Y: e.Right.Y + hi},
		{X: e.Left.X, Y: e.Left.Y + hi},
	}, y0, depth)
}

// cuboidFaces lists the quads of a cuboid whose corners 0-3 are the front
// face and 4-7 the back face, both in counter clockwise order.
var cuboidFaces = [6][4]int{
	{0, 3, 2, 1}, // front
	{4, 5, 6, 7}, // back
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// cuboid extrudes quad q of the lift plane along Y. Triangles are wound so
// their normals point outwards.
func (mb *meshBuilder) cuboid(q [4]r2.Vec, y0, depth float32) {
	var c [8]ms3.Vec
	var center ms3.Vec
	for i, p := range q {
		c[i] = ms3.Vec{X: float32(p.X), Y: y0, Z: float32(p.Y)}
		c[i+4] = ms3.Vec{X: float32(p.X), Y: y0 + depth, Z: float32(p.Y)}
		center = ms3.Add(center, ms3.Add(c[i], c[i+4]))
	}
	center = ms3.Scale(1.0/8, center)
	var tris [12]ms3.Triangle
	for i, f := range cuboidFaces {
		tris[2*i] = ms3.Triangle{c[f[0]], c[f[1]], c[f[2]]}
		tris[2*i+1] = ms3.Triangle{c[f[0]], c[f[2]], c[f[3]]}
	}
	for i := range tris {
		// Quads may be mirrored depending on bar direction; fix winding.
		tri := tris[i]
		centroid := ms3.Scale(1.0/3, ms3.Add(ms3.Add(tri[0], tri[1]), tri[2]))
		out := ms3.Sub(centroid, center)
		n := tri.Normal()
		if n.X*out.X+n.Y*out.Y+n.Z*out.Z < 0 {
			tris[i][1], tris[i][2] = tris[i][2], tris[i][1]
		}
	}
	mb.buf.Write(tris[:])
}
