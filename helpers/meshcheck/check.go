// Package meshcheck inspects generated meshes for indexing, winding and
// topology defects.
package meshcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"gonum.org/v1/gonum/spatial/r3"
)

// Report summarizes the defects found in a mesh. Edges are counted
// between welded vertices, ignoring degenerate triangles.
type Report struct {
	Vertices  int
	Triangles int
	// Groups is the number of distinct vertex positions after welding.
	Groups int
	// ForwardRefs counts triangle indices that referenced a vertex not yet
	// appended when the triangle was. Only a Recorder can detect these.
	ForwardRefs int
	// OutOfRange counts indices past the final vertex count.
	OutOfRange int
	// BadAttributes counts vertices with a non-finite position or normal,
	// or a normal that is not unit length.
	BadAttributes int
	Unreferenced  int
	Degenerate    int
	// Inverted counts triangles facing away from their vertex normals.
	Inverted int
	// OpenEdges is the number of edges used by a single triangle.
	OpenEdges int
	// NonManifold is the number of edges used by more than two triangles.
	NonManifold int
	// Misoriented is the number of edges traversed twice in the same
	// direction, which happens where neighboring triangles wind oppositely.
	Misoriented int
}

// Err returns an error describing the defects that are never valid for
// generated geometry. Open edges are not considered, see Closed.
func (r Report) Err() error {
	var errs []error
	add := func(n int, what string) {
		if n > 0 {
			errs = append(errs, fmt.Errorf("%d %s", n, what))
		}
	}
	add(r.ForwardRefs, "forward references")
	add(r.OutOfRange, "out of range indices")
	add(r.BadAttributes, "bad vertex attributes")
	add(r.Unreferenced, "unreferenced vertices")
	add(r.Inverted, "inverted triangles")
	add(r.NonManifold, "non manifold edges")
	add(r.Misoriented, "misoriented edges")
	return errors.Join(errs...)
}

// Closed reports whether every edge is shared by exactly two triangles.
func (r Report) Closed() bool {
	return r.OpenEdges == 0 && r.NonManifold == 0
}

func (r Report) String() string {
	return fmt.Sprintf("%d vertices (%d welded), %d triangles (%d degenerate), %d open edges",
		r.Vertices, r.Groups, r.Triangles, r.Degenerate, r.OpenEdges)
}

// Inspect checks the contents of b. Vertices closer than weldTol are
// considered the same for edge counting; weldTol <= 0 picks a tolerance
// relative to the size of the mesh.
func Inspect(b *meshgen.Buffer, weldTol float32) Report {
	r := Report{Vertices: b.VertexCount(), Triangles: b.TriangleCount()}
	hasNormals := false
	for i := range b.Positions {
		pos, n := b.Positions[i], b.Normals[i]
		if !finite(pos) || !finite(n) {
			r.BadAttributes++
			continue
		}
		if n == (ms3.Vec{}) {
			continue // Normals disabled.
		}
		hasNormals = true
		if math.Abs(float64(ms3.Norm(n))-1) > 1e-3 {
			r.BadAttributes++
		}
	}
	if weldTol <= 0 {
		weldTol = suggestTol(b.Positions)
	}
	remap, groups := Weld(b.Positions, weldTol)
	r.Groups = groups

	referenced := make([]bool, r.Vertices)
	directed := make(map[[2]int]int)
	for t := 0; t < r.Triangles; t++ {
		idx := b.Indices[3*t : 3*t+3]
		if int(idx[0]) >= r.Vertices || int(idx[1]) >= r.Vertices || int(idx[2]) >= r.Vertices {
			r.OutOfRange++
			continue
		}
		var w [3]int
		var v [3]r3.Vec
		for k, i := range idx {
			referenced[i] = true
			w[k] = remap[i]
			p := b.Positions[i]
			v[k] = r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
		}
		face := r3.Cross(r3.Sub(v[1], v[0]), r3.Sub(v[2], v[0]))
		if w[0] == w[1] || w[1] == w[2] || w[2] == w[0] || isSliver(v, face) {
			r.Degenerate++
			continue
		}
		if hasNormals {
			var avg r3.Vec
			for _, i := range idx {
				n := b.Normals[i]
				avg = r3.Add(avg, r3.Vec{X: float64(n.X), Y: float64(n.Y), Z: float64(n.Z)})
			}
			if r3.Dot(face, avg) < 0 {
				r.Inverted++
			}
		}
		for k := range w {
			directed[[2]int{w[k], w[(k+1)%3]}]++
		}
	}
	for _, ref := range referenced {
		if !ref {
			r.Unreferenced++
		}
	}
	for e, n := range directed {
		if n > 1 {
			r.Misoriented++
		}
		rev := directed[[2]int{e[1], e[0]}]
		if e[0] > e[1] && rev > 0 {
			continue // Counted from the other direction.
		}
		switch total := n + rev; {
		case total == 1:
			r.OpenEdges++
		case total > 2:
			r.NonManifold++
		}
	}
	return r
}

// isSliver reports whether the triangle area is negligible compared to its
// longest edge, as happens with float32 rounding at poles and apexes.
func isSliver(v [3]r3.Vec, face r3.Vec) bool {
	longest := math.Max(r3.Norm2(r3.Sub(v[1], v[0])), math.Max(r3.Norm2(r3.Sub(v[2], v[1])), r3.Norm2(r3.Sub(v[0], v[2]))))
	return longest == 0 || r3.Norm(face) < 1e-5*longest
}

func finite(v ms3.Vec) bool {
	for _, f := range [3]float32{v.X, v.Y, v.Z} {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}

// Recorder is a Sink that stores the mesh in a Buffer and counts triangle
// indices referencing vertices that were not yet appended.
type Recorder struct {
	*meshgen.Buffer
	ForwardRefs int
}

// NewRecorder returns a Recorder over an empty buffer.
func NewRecorder() *Recorder {
	return &Recorder{Buffer: meshgen.NewBuffer(0, 0)}
}

// AppendTriangle implements meshgen.Sink.
func (r *Recorder) AppendTriangle(i0, i1, i2 uint32) {
	n := uint32(r.VertexCount())
	if i0 >= n || i1 >= n || i2 >= n {
		r.ForwardRefs++
	}
	r.Buffer.AppendTriangle(i0, i1, i2)
}

// Inspect inspects the recorded mesh including forward references.
func (r *Recorder) Inspect(weldTol float32) Report {
	rep := Inspect(r.Buffer, weldTol)
	rep.ForwardRefs = r.ForwardRefs
	return rep
}
