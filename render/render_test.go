package render_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/form3/must3"
	"github.com/soypat/meshgen/render"
	"gonum.org/v1/plot/cmpimg"
)

// imgDelta is the normalized tolerance for image comparison
// (0 is a perfect match, 1 a loose one).
const imgDelta = 0.02

func TestBufferRenderer(t *testing.T) {
	b := meshgen.NewBuffer(0, 0)
	meshgen.Build(b, must3.Box(ms3.Vec{X: 1, Y: 2, Z: 3}))
	r := render.NewBufferRenderer(b)
	var got []ms3.Triangle
	buf := make([]ms3.Triangle, 5)
	for {
		n, err := r.ReadTriangles(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != b.TriangleCount() {
		t.Fatalf("got %d triangles, want %d", len(got), b.TriangleCount())
	}
	for i := range got {
		if got[i] != b.Triangle(i) {
			t.Errorf("triangle %d: got %v, want %v", i, got[i], b.Triangle(i))
		}
	}
	r.Reset()
	all, err := render.RenderAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(got) {
		t.Errorf("RenderAll after Reset: got %d triangles, want %d", len(all), len(got))
	}
}

func TestSkipDegenerate(t *testing.T) {
	b := meshgen.NewBuffer(0, 0)
	meshgen.Build(b, must3.Sphere(1))
	r := render.NewBufferRenderer(b)
	const tol = 1e-6
	r.SkipDegenerate(tol)
	all, err := render.RenderAll(r)
	if err != nil {
		t.Fatal(err)
	}
	// Each pole row of 16 segments collapses.
	if want := b.TriangleCount() - 2*16; len(all) > want {
		t.Errorf("got %d triangles, want at most %d", len(all), want)
	}
	for i, tri := range all {
		if tri.IsDegenerate(tol) {
			t.Fatalf("triangle %d is degenerate: %v", i, tri)
		}
	}
}

func TestSTLRoundTrip(t *testing.T) {
	b := meshgen.NewBuffer(0, 0)
	meshgen.BuildAll(b, must3.Cylinder(2, 0.5), must3.Torus(1, 0.25))
	model, err := render.RenderAll(render.NewBufferRenderer(b))
	if err != nil {
		t.Fatal(err)
	}
	var stl bytes.Buffer
	n, err := render.WriteBinarySTL(&stl, model)
	if err != nil {
		t.Fatal(err)
	}
	if want := 84 + 50*len(model); n != want || stl.Len() != want {
		t.Fatalf("got %d bytes written, want %d", n, want)
	}
	got, err := render.ReadBinarySTL(&stl)
	if err != nil && !errors.Is(err, render.ErrNormalMismatch) {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("got %d triangles, want %d", len(got), len(model))
	}
	for i := range got {
		if got[i] != model[i] {
			t.Fatalf("triangle %d: got %v, want %v", i, got[i], model[i])
		}
	}
}

func TestWriteEmptySTL(t *testing.T) {
	if _, err := render.WriteBinarySTL(io.Discard, nil); err == nil {
		t.Error("expected error writing empty model")
	}
	if _, err := render.ReadBinarySTL(bytes.NewReader(make([]byte, 84))); err == nil {
		t.Error("expected error reading model with zero triangles")
	}
}

func TestPreviewConcurrentBuild(t *testing.T) {
	gens := func() []meshgen.Generator {
		return []meshgen.Generator{
			must3.Torus(1, 0.3),
			must3.RoundedBox(ms3.Vec{X: 0.8, Y: 0.8, Z: 0.8}, 0.1),
			must3.Cone(1.5, 0.5),
		}
	}
	view := render.DefaultView()
	view.Width, view.Height = 160, 120

	var serial, concurrent render.MeshSink
	meshgen.BuildAll(&serial, gens()...)
	meshgen.BuildConcurrent(&concurrent, gens()...)
	if serial.Bounds() != concurrent.Bounds() {
		t.Errorf("got bounds %v, want %v", concurrent.Bounds(), serial.Bounds())
	}
	img1 := render.Preview(serial.Mesh(), view)
	img2 := render.Preview(concurrent.Mesh(), view)
	if !drawn(img1) {
		t.Fatal("preview is blank")
	}
	equal, err := cmpimg.EqualApprox("png", encodePNG(t, img1), encodePNG(t, img2), imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("concurrent build renders differently from serial build")
	}
}

// drawn reports whether any pixel differs from the top left one, which
// the test views leave as background.
func drawn(img image.Image) bool {
	bounds := img.Bounds()
	br, bg, bb, _ := img.At(bounds.Min.X, bounds.Min.Y).RGBA()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if absDiff(r, br) > 0x800 || absDiff(g, bg) > 0x800 || absDiff(b, bb) > 0x800 {
				return true
			}
		}
	}
	return false
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
