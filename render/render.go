// Package render streams generated meshes as triangle soups for export
// and previewing.
package render

import (
	"errors"
	"io"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
)

// Renderer reads triangles into dst and returns io.EOF once every
// triangle has been read.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (n int, err error)
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like io.ReadAll.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1024)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// BufferRenderer reads the triangles of an indexed mesh in order.
type BufferRenderer struct {
	b    *meshgen.Buffer
	next int
	// skipDegenerate drops triangles with an area below tol.
	skipDegenerate bool
	tol            float32
}

// NewBufferRenderer returns a renderer over b. The buffer must not be
// modified while it is read.
func NewBufferRenderer(b *meshgen.Buffer) *BufferRenderer {
	return &BufferRenderer{b: b}
}

// SkipDegenerate makes the renderer drop triangles that
// ms3.Triangle.IsDegenerate reports with the given tolerance, such as
// those collapsed onto the poles of a sphere.
func (r *BufferRenderer) SkipDegenerate(tol float32) {
	r.skipDegenerate = true
	r.tol = tol
}

// ReadTriangles implements Renderer.
func (r *BufferRenderer) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	if len(dst) == 0 {
		return 0, io.ErrShortBuffer
	}
	if len(r.b.Indices)%3 != 0 {
		return 0, errors.New("index count not a multiple of 3")
	}
	total := r.b.TriangleCount()
	for n < len(dst) && r.next < total {
		t := r.b.Triangle(r.next)
		r.next++
		if r.skipDegenerate && t.IsDegenerate(r.tol) {
			continue
		}
		dst[n] = t
		n++
	}
	if r.next == total {
		return n, io.EOF
	}
	return n, nil
}

// Reset rewinds the renderer to the first triangle.
func (r *BufferRenderer) Reset() { r.next = 0 }
