// Package meshgen defines the boundary between procedural mesh generators
// and whatever consumes their output.
//
// Generators never allocate or own the mesh they write. They are handed a
// [Context] which wraps a [Sink] together with the running vertex offset, so
// several generators can append to the same sink and still produce an
// internally consistent index buffer.
package meshgen

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// MaxTexCoordSets is the maximum number of texture coordinate sets a
// vertex can carry.
const MaxTexCoordSets = 8

// Sink is the capability a mesh consumer implements to receive generated
// geometry. Indices passed to AppendTriangle are absolute: they count every
// vertex appended to the sink, not only those of the current shape.
type Sink interface {
	// AppendVertex adds a vertex. The UV slice in v is only valid for the
	// duration of the call and must be copied if retained.
	AppendVertex(v Vertex)
	// AppendTriangle adds a triangle whose front face is counter-clockwise.
	AppendTriangle(i0, i1, i2 uint32)
	// SetBounds is called once after all geometry of a build is appended.
	SetBounds(box ms3.Box, radius float32)
}

// Vertex holds the attributes of a single generated vertex.
type Vertex struct {
	Pos ms3.Vec
	// Normal is the outward unit normal. Only meaningful if HasNormal is set.
	Normal    ms3.Vec
	HasNormal bool
	// UV holds one texture coordinate per texture coordinate set.
	UV []ms2.Vec
}

// Layout selects which vertex attributes a generator emits.
// The zero value emits normals and no texture coordinates.
type Layout struct {
	NoNormals    bool
	TexCoordSets int
}

// Generator is implemented by every shape that can be written into a sink.
type Generator interface {
	// Counts returns the exact number of vertices and indices
	// AddTo will append.
	Counts() (numVertex, numIndex int)
	// AddTo appends the shape to the context's sink starting at the
	// context's current offset and leaves the offset advanced past
	// the appended vertices.
	AddTo(ctx *Context)
}

// Bounder is implemented by generators that declare their own bounds
// instead of using the bounds accumulated from their vertices.
type Bounder interface {
	Bounds() Bounds
}
