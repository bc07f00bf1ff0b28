package meshcheck

import (
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
)

func TestWeld(t *testing.T) {
	pos := []ms3.Vec{
		{X: 0}, {X: 1}, {X: 1e-7}, {X: 1, Y: 1e-7}, {X: 2},
	}
	remap, groups := Weld(pos, 1e-5)
	if groups != 3 {
		t.Fatalf("got %d groups, want 3", groups)
	}
	want := []int{0, 1, 0, 1, 2}
	for i := range want {
		if remap[i] != want[i] {
			t.Errorf("vertex %d: got group %d, want %d", i, remap[i], want[i])
		}
	}
}

// tetrahedron appends a closed tetrahedron with flat shaded faces. If
// flipLast is set the winding of the last face is reversed.
func tetrahedron(flipLast bool) *Recorder {
	rec := NewRecorder()
	ctx := meshgen.NewContext(rec, 0)
	p := [4]ms3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}
	faces := [4][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}
	for k, f := range faces {
		a, b, c := p[f[0]], p[f[1]], p[f[2]]
		n := ms3.Unit(ms3.Cross(ms3.Sub(b, a), ms3.Sub(c, a)))
		i0 := ctx.AddVertex(meshgen.Layout{}, a, n, ms2.Vec{})
		i1 := ctx.AddVertex(meshgen.Layout{}, b, n, ms2.Vec{})
		i2 := ctx.AddVertex(meshgen.Layout{}, c, n, ms2.Vec{})
		if flipLast && k == len(faces)-1 {
			i1, i2 = i2, i1
		}
		ctx.AddTriangle(i0, i1, i2)
	}
	return rec
}

func TestInspectClosed(t *testing.T) {
	rep := tetrahedron(false).Inspect(0)
	if err := rep.Err(); err != nil {
		t.Fatal(err)
	}
	if !rep.Closed() {
		t.Errorf("tetrahedron should be closed: %v", rep)
	}
	if rep.Groups != 4 {
		t.Errorf("got %d welded vertices, want 4", rep.Groups)
	}
}

func TestInspectFlipped(t *testing.T) {
	rep := tetrahedron(true).Inspect(0)
	if rep.Inverted != 1 {
		t.Errorf("got %d inverted triangles, want 1", rep.Inverted)
	}
	if rep.Misoriented != 3 {
		t.Errorf("got %d misoriented edges, want 3", rep.Misoriented)
	}
	if rep.Err() == nil {
		t.Error("expected error for flipped face")
	}
}

func TestInspectOpen(t *testing.T) {
	b := meshgen.NewBuffer(0, 0)
	ctx := meshgen.NewContext(b, 0)
	for _, p := range []ms3.Vec{{}, {X: 1}, {Z: 1}, {X: 1, Z: 1}} {
		ctx.AddVertex(meshgen.Layout{}, p, ms3.Vec{Y: 1}, ms2.Vec{})
	}
	ctx.Grid(0, 1, 1, false)
	rep := Inspect(b, 0)
	if err := rep.Err(); err != nil {
		t.Fatal(err)
	}
	if rep.OpenEdges != 4 || rep.Closed() {
		t.Errorf("got %d open edges, want 4", rep.OpenEdges)
	}
}

func TestRecorderForwardRefs(t *testing.T) {
	rec := NewRecorder()
	rec.AppendVertex(meshgen.Vertex{})
	rec.AppendTriangle(0, 0, 1)
	rec.AppendVertex(meshgen.Vertex{})
	rep := rec.Inspect(0)
	if rep.ForwardRefs != 1 {
		t.Errorf("got %d forward references, want 1", rep.ForwardRefs)
	}
	if rep.Err() == nil {
		t.Error("expected error")
	}
}
