package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
)

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1<<10)
	buf := make([]ms3.Triangle, 256)
	for err == nil {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// NewMeshRenderer returns a Renderer that streams the triangles of model.
func NewMeshRenderer(model []ms3.Triangle) Renderer {
	return &triangleBuffer{buf: model}
}

type triangleBuffer struct {
	buf []ms3.Triangle
}

// ReadTriangles reads from this buffer.
func (b *triangleBuffer) ReadTriangles(t []ms3.Triangle) (int, error) {
	if len(b.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n, nil
}

// Write appends triangles to this buffer.
func (b *triangleBuffer) Write(t []ms3.Triangle) int {
	b.buf = append(b.buf, t...)
	return len(t)
}

func (b *triangleBuffer) Len() int { return len(b.buf) }
