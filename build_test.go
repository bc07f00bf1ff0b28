package meshgen

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen/internal/d3"
)

// quad is a unit square grid in the XZ plane at height y facing +Y.
type quad struct {
	y    float32
	n    int
	flip bool
	l    Layout
}

func (q quad) Counts() (int, int) { return (q.n + 1) * (q.n + 1), q.n * q.n * 6 }

func (q quad) AddTo(ctx *Context) {
	base := uint32(ctx.Offset())
	step := 1 / float32(q.n)
	for i := 0; i <= q.n; i++ {
		for j := 0; j <= q.n; j++ {
			// Rows advance along +Z, columns along +X: dRow x dCol = Z x X = +Y.
			pos := ms3.Vec{X: float32(j) * step, Y: q.y, Z: float32(i) * step}
			ctx.AddVertex(q.l, pos, d3.YAxis, ms2.Vec{X: float32(i) * step, Y: float32(j) * step})
		}
	}
	ctx.Grid(base, q.n, q.n, q.flip)
}

type fixedBounds struct {
	quad
	b Bounds
}

func (f fixedBounds) Bounds() Bounds { return f.b }

func TestGridWinding(t *testing.T) {
	for _, flip := range []bool{false, true} {
		buf := NewBuffer(0, 0)
		Build(buf, quad{n: 3, flip: flip})
		want := float32(1)
		if flip {
			want = -1
		}
		for i := 0; i < buf.TriangleCount(); i++ {
			n := buf.Triangle(i).Normal()
			if got := ms3.Dot(n, d3.YAxis); got*want <= 0 {
				t.Errorf("flip=%v triangle %d: normal %v", flip, i, n)
			}
		}
	}
}

func TestFanWinding(t *testing.T) {
	buf := NewBuffer(0, 0)
	ctx := NewContext(buf, 0)
	center := ctx.AddVertex(Layout{}, ms3.Vec{}, d3.YAxis, ms2.Vec{})
	first := uint32(ctx.Offset())
	const n = 6
	for j := 0; j <= n; j++ {
		s, c := math32.Sincos(float32(j) * 2 * math32.Pi / n)
		ctx.AddVertex(Layout{}, ms3.Vec{X: c, Z: s}, d3.YAxis, ms2.Vec{})
	}
	ctx.Fan(center, first, n, false)
	ctx.Fan(center, first, n, true)
	for i := 0; i < buf.TriangleCount(); i++ {
		ny := buf.Triangle(i).Normal().Y
		if i < n && ny >= 0 {
			t.Errorf("unflipped fan triangle %d should face -Y, got normal y %v", i, ny)
		} else if i >= n && ny <= 0 {
			t.Errorf("flipped fan triangle %d should face +Y, got normal y %v", i, ny)
		}
	}
}

func TestForwardReferencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on forward reference")
		}
	}()
	ctx := NewContext(NewBuffer(0, 0), 0)
	ctx.AddVertex(Layout{}, ms3.Vec{}, ms3.Vec{}, ms2.Vec{})
	ctx.AddTriangle(0, 0, 1)
}

func TestBuildAllPartition(t *testing.T) {
	gens := []Generator{quad{n: 2}, quad{y: 1, n: 3}, quad{y: 2, n: 1}}
	nv, ni := Counts(gens...)
	buf := NewBuffer(nv, ni)
	BuildAll(buf, gens...)
	if buf.VertexCount() != nv || len(buf.Indices) != ni {
		t.Fatalf("got %d vertices %d indices, want %d %d", buf.VertexCount(), len(buf.Indices), nv, ni)
	}
	// Each generator must reference exactly its own contiguous vertex range.
	var vstart, istart int
	for k, g := range gens {
		gv, gi := g.Counts()
		seen := make([]bool, gv)
		for _, idx := range buf.Indices[istart : istart+gi] {
			if int(idx) < vstart || int(idx) >= vstart+gv {
				t.Fatalf("generator %d: index %d outside [%d,%d)", k, idx, vstart, vstart+gv)
			}
			seen[int(idx)-vstart] = true
		}
		for i, ok := range seen {
			if !ok {
				t.Errorf("generator %d: vertex %d never referenced", k, vstart+i)
			}
		}
		vstart += gv
		istart += gi
	}
}

func TestBuildBounds(t *testing.T) {
	buf := NewBuffer(0, 0)
	got := BuildAll(buf, quad{n: 1}, quad{y: 2, n: 1})
	want := ms3.Box{Min: ms3.Vec{}, Max: ms3.Vec{X: 1, Y: 2, Z: 1}}
	if !d3.BoxEqualWithin(got.Box, want, 1e-6) {
		t.Errorf("got box %v, want %v", got.Box, want)
	}
	if !d3.BoxEqualWithin(buf.Bounds.Box, want, 1e-6) {
		t.Errorf("sink got box %v, want %v", buf.Bounds.Box, want)
	}
	wantR := ms3.Norm(ms3.Vec{X: 1, Y: 2, Z: 1})
	if d := got.Radius - wantR; d > 1e-6 || d < -1e-6 {
		t.Errorf("got radius %v, want %v", got.Radius, wantR)
	}

	declared := Bounds{Box: d3.CenteredBox(d3.Elem(5)), Radius: 9}
	got = Build(NewBuffer(0, 0), fixedBounds{quad: quad{n: 1}, b: declared})
	if got != declared {
		t.Errorf("declared bounds ignored: got %v, want %v", got, declared)
	}
}

// boundsSeen records the context bounds once its quad has been added.
type boundsSeen struct {
	quad
	seen *Bounds
}

func (b boundsSeen) AddTo(ctx *Context) {
	b.quad.AddTo(ctx)
	*b.seen = ctx.Bounds()
}

func TestContextBoundsPerGenerator(t *testing.T) {
	var first, second Bounds
	BuildAll(NewBuffer(0, 0),
		boundsSeen{quad: quad{n: 1}, seen: &first},
		boundsSeen{quad: quad{y: 2, n: 1}, seen: &second},
	)
	want := ms3.Box{Max: ms3.Vec{X: 1, Z: 1}}
	if !d3.BoxEqualWithin(first.Box, want, 1e-6) {
		t.Errorf("first: got box %v, want %v", first.Box, want)
	}
	want = ms3.Box{Min: ms3.Vec{Y: 2}, Max: ms3.Vec{X: 1, Y: 2, Z: 1}}
	if !d3.BoxEqualWithin(second.Box, want, 1e-6) {
		t.Errorf("second: got box %v, want %v", second.Box, want)
	}
}

func TestBuildConcurrentMatchesBuildAll(t *testing.T) {
	l := Layout{TexCoordSets: 2}
	gens := []Generator{quad{n: 2, l: l}, quad{y: 1, n: 4, flip: true, l: l}, quad{y: -1, n: 3, l: l}}
	seq := NewBuffer(0, 0)
	conc := NewBuffer(0, 0)
	bseq := BuildAll(seq, gens...)
	bconc := BuildConcurrent(conc, gens...)
	if bseq != bconc {
		t.Errorf("bounds differ: %v vs %v", bseq, bconc)
	}
	if len(seq.Indices) != len(conc.Indices) || seq.VertexCount() != conc.VertexCount() {
		t.Fatalf("size mismatch: %d/%d vs %d/%d", seq.VertexCount(), len(seq.Indices), conc.VertexCount(), len(conc.Indices))
	}
	for i := range seq.Indices {
		if seq.Indices[i] != conc.Indices[i] {
			t.Fatalf("index %d: got %d, want %d", i, conc.Indices[i], seq.Indices[i])
		}
	}
	for i := range seq.Positions {
		if seq.Positions[i] != conc.Positions[i] || seq.Normals[i] != conc.Normals[i] {
			t.Fatalf("vertex %d differs", i)
		}
	}
	if len(conc.UVs) != 2 {
		t.Fatalf("got %d uv sets, want 2", len(conc.UVs))
	}
	for set := range seq.UVs {
		for i := range seq.UVs[set] {
			if seq.UVs[set][i] != conc.UVs[set][i] {
				t.Fatalf("uv set %d vertex %d differs", set, i)
			}
		}
	}
}

func TestLayoutNoNormals(t *testing.T) {
	var rec recorder
	Build(&rec, quad{n: 1, l: Layout{NoNormals: true, TexCoordSets: 3}})
	for i, v := range rec.v {
		if v.HasNormal {
			t.Errorf("vertex %d has normal", i)
		}
		if len(v.UV) != 3 {
			t.Errorf("vertex %d: got %d uv sets, want 3", i, len(v.UV))
		}
	}
	if rec.bounds != 1 {
		t.Errorf("SetBounds called %d times, want 1", rec.bounds)
	}
}

type recorder struct {
	v      []Vertex
	bounds int
}

func (r *recorder) AppendVertex(v Vertex) {
	v.UV = append([]ms2.Vec(nil), v.UV...)
	r.v = append(r.v, v)
}
func (r *recorder) AppendTriangle(i0, i1, i2 uint32)      {}
func (r *recorder) SetBounds(box ms3.Box, radius float32) { r.bounds++ }
