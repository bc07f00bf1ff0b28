package meshgen

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

var _ Sink = (*Buffer)(nil)

// Buffer is an in-memory Sink. Attribute slices are indexed by vertex.
// Normals holds the zero vector for vertices appended without a normal.
// UVs holds one slice per texture coordinate set.
type Buffer struct {
	Positions []ms3.Vec
	Normals   []ms3.Vec
	UVs       [][]ms2.Vec
	Indices   []uint32
	Bounds    Bounds
}

// NewBuffer returns a Buffer with capacity for numVertex vertices and
// numIndex indices, as returned by a Generator's Counts method.
func NewBuffer(numVertex, numIndex int) *Buffer {
	return &Buffer{
		Positions: make([]ms3.Vec, 0, numVertex),
		Normals:   make([]ms3.Vec, 0, numVertex),
		Indices:   make([]uint32, 0, numIndex),
		Bounds:    EmptyBounds(),
	}
}

// AppendVertex implements Sink.
func (b *Buffer) AppendVertex(v Vertex) {
	n := len(b.Positions)
	b.Positions = append(b.Positions, v.Pos)
	b.Normals = append(b.Normals, v.Normal)
	for len(b.UVs) < len(v.UV) {
		// A set first seen now is zero filled for earlier vertices.
		b.UVs = append(b.UVs, make([]ms2.Vec, n, cap(b.Positions)))
	}
	for set := range b.UVs {
		var uv ms2.Vec
		if set < len(v.UV) {
			uv = v.UV[set]
		}
		b.UVs[set] = append(b.UVs[set], uv)
	}
}

// AppendTriangle implements Sink.
func (b *Buffer) AppendTriangle(i0, i1, i2 uint32) {
	b.Indices = append(b.Indices, i0, i1, i2)
}

// SetBounds implements Sink.
func (b *Buffer) SetBounds(box ms3.Box, radius float32) {
	b.Bounds = Bounds{Box: box, Radius: radius}
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int { return len(b.Positions) }

// TriangleCount returns the number of triangles.
func (b *Buffer) TriangleCount() int { return len(b.Indices) / 3 }

// Triangle returns the positions of the ith triangle.
func (b *Buffer) Triangle(i int) ms3.Triangle {
	idx := b.Indices[3*i : 3*i+3]
	return ms3.Triangle{b.Positions[idx[0]], b.Positions[idx[1]], b.Positions[idx[2]]}
}

// Reset empties the buffer keeping the allocated memory.
func (b *Buffer) Reset() {
	b.Positions = b.Positions[:0]
	b.Normals = b.Normals[:0]
	b.Indices = b.Indices[:0]
	b.UVs = b.UVs[:0]
	b.Bounds = EmptyBounds()
}

// appendTo replays the buffer into dst with every index shifted by offset.
func (b *Buffer) appendTo(dst Sink, offset uint32) {
	var uv [MaxTexCoordSets]ms2.Vec
	sets := min(len(b.UVs), MaxTexCoordSets)
	for i, pos := range b.Positions {
		v := Vertex{Pos: pos, Normal: b.Normals[i], UV: uv[:sets]}
		// Vertices appended without a normal were stored as the zero vector.
		v.HasNormal = v.Normal != (ms3.Vec{})
		for set := range v.UV {
			v.UV[set] = b.UVs[set][i]
		}
		dst.AppendVertex(v)
	}
	for i := 0; i+2 < len(b.Indices); i += 3 {
		dst.AppendTriangle(b.Indices[i]+offset, b.Indices[i+1]+offset, b.Indices[i+2]+offset)
	}
}
