package render

import (
	"github.com/soypat/glgl/math/ms3"
)

// Renderer streams triangles of a mesh. ReadTriangles returns io.EOF once
// all triangles have been read.
type Renderer interface {
	ReadTriangles(t []ms3.Triangle) (int, error)
}
