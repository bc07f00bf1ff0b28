package meshgen

import (
	"fmt"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Context is the state threaded through every generator during a build:
// the sink being written and the number of vertices already in it.
// Each sub-shape of a composite build appends through the same Context so
// the indices it emits stay consistent with everything appended before it.
//
// A Context is not safe for concurrent use.
type Context struct {
	sink   Sink
	offset int
	bounds Bounds
	uv     [MaxTexCoordSets]ms2.Vec
}

// NewContext returns a Context writing to sink. offset is the number of
// vertices the sink already holds, zero for a fresh sink.
func NewContext(sink Sink, offset int) *Context {
	if sink == nil {
		panic("nil sink")
	} else if offset < 0 {
		panic("negative vertex offset")
	}
	return &Context{sink: sink, offset: offset, bounds: EmptyBounds()}
}

// Offset returns the index the next appended vertex will have.
func (c *Context) Offset() int { return c.offset }

// Bounds returns the bounds of the vertices appended since the current
// generator started. Build functions reset them between generators.
func (c *Context) Bounds() Bounds { return c.bounds }

// takeBounds returns the accumulated bounds and resets the accumulator.
func (c *Context) takeBounds() Bounds {
	b := c.bounds
	c.bounds = EmptyBounds()
	return b
}

// AddVertex appends a vertex with the attributes selected by l and returns
// its index. The same uv is written to each texture coordinate set.
func (c *Context) AddVertex(l Layout, pos, normal ms3.Vec, uv ms2.Vec) uint32 {
	v := Vertex{Pos: pos}
	if !l.NoNormals {
		v.Normal = normal
		v.HasNormal = true
	}
	if l.TexCoordSets > 0 {
		v.UV = c.uv[:l.TexCoordSets]
		for i := range v.UV {
			v.UV[i] = uv
		}
	}
	c.sink.AppendVertex(v)
	c.bounds = c.bounds.Include(pos)
	idx := uint32(c.offset)
	c.offset++
	return idx
}

// AddTriangle appends a triangle. Every index must refer to a vertex
// already appended.
func (c *Context) AddTriangle(i0, i1, i2 uint32) {
	n := uint32(c.offset)
	if i0 >= n || i1 >= n || i2 >= n {
		panic(fmt.Sprintf("bug: triangle (%d,%d,%d) references vertex past offset %d", i0, i1, i2, n))
	}
	c.sink.AppendTriangle(i0, i1, i2)
}

// Grid appends two triangles per cell of a (rows+1)*(cols+1) vertex grid
// stored row major starting at base. Front faces point along dRow x dCol,
// where dRow is the step from vertex (r,c) to (r+1,c) and dCol the step to
// (r,c+1). flip reverses the winding of every triangle.
func (c *Context) Grid(base uint32, rows, cols int, flip bool) {
	stride := uint32(cols + 1)
	for r := 0; r < rows; r++ {
		row := base + uint32(r)*stride
		for col := 0; col < cols; col++ {
			a := row + uint32(col)
			b := a + 1
			cc := a + stride
			d := cc + 1
			if flip {
				c.AddTriangle(a, b, cc)
				c.AddTriangle(b, d, cc)
			} else {
				c.AddTriangle(a, cc, b)
				c.AddTriangle(b, cc, d)
			}
		}
	}
}

// Fan appends n triangles joining center to consecutive rim vertices
// first, first+1, ..., first+n. flip reverses the winding.
func (c *Context) Fan(center, first uint32, n int, flip bool) {
	for j := uint32(0); j < uint32(n); j++ {
		if flip {
			c.AddTriangle(center, first+j+1, first+j)
		} else {
			c.AddTriangle(center, first+j, first+j+1)
		}
	}
}
