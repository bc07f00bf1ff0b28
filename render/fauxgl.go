package render

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
)

var _ meshgen.Sink = (*MeshSink)(nil)

// MeshSink is a meshgen.Sink that builds a fauxgl mesh for software
// rendering. Texture coordinates are taken from the first set.
type MeshSink struct {
	vertices  []fauxgl.Vertex
	triangles []*fauxgl.Triangle
	bounds    meshgen.Bounds
}

// AppendVertex implements meshgen.Sink.
func (s *MeshSink) AppendVertex(v meshgen.Vertex) {
	fv := fauxgl.Vertex{Position: vector(v.Pos)}
	if v.HasNormal {
		fv.Normal = vector(v.Normal)
	}
	if len(v.UV) > 0 {
		fv.Texture = fauxgl.V(float64(v.UV[0].X), float64(v.UV[0].Y), 0)
	}
	s.vertices = append(s.vertices, fv)
}

// AppendTriangle implements meshgen.Sink. Triangles of vertices without
// normals get flat face normals.
func (s *MeshSink) AppendTriangle(i0, i1, i2 uint32) {
	s.triangles = append(s.triangles, fauxgl.NewTriangle(s.vertices[i0], s.vertices[i1], s.vertices[i2]))
}

// SetBounds implements meshgen.Sink.
func (s *MeshSink) SetBounds(box ms3.Box, radius float32) {
	s.bounds = meshgen.Bounds{Box: box, Radius: radius}
}

// Bounds returns the bounds set by the last build.
func (s *MeshSink) Bounds() meshgen.Bounds { return s.bounds }

// Mesh returns the triangles appended so far as a fauxgl mesh.
func (s *MeshSink) Mesh() *fauxgl.Mesh {
	return fauxgl.NewTriangleMesh(s.triangles)
}

func vector(v ms3.Vec) fauxgl.Vector {
	return fauxgl.V(float64(v.X), float64(v.Y), float64(v.Z))
}

// View configures a preview rendering.
type View struct {
	Width, Height int
	// Supersampling factor, the image is downsampled with bilinear filtering.
	Scale int
	// Eye is the camera position, looking at Center with Up pointing up.
	Eye, Center, Up ms3.Vec
	Near, Far       float64
	FovY            float64 // degrees
	Color           string  // hex object color
	Background      string  // hex background color
}

// DefaultView looks at the origin from (3,3,3) with +Y up.
func DefaultView() View {
	return View{
		Width:      640,
		Height:     480,
		Scale:      2,
		Eye:        ms3.Vec{X: 3, Y: 3, Z: 3},
		Up:         ms3.Vec{Y: 1},
		Near:       1,
		Far:        10,
		FovY:       30,
		Color:      "#468966",
		Background: "#FFF8E3",
	}
}

// Preview renders mesh with a phong shader after fitting it into a bi-unit
// cube centered at the origin. The mesh is modified by the fit.
func Preview(mesh *fauxgl.Mesh, view View) image.Image {
	scale := max(view.Scale, 1)
	mesh.BiUnitCube()
	ctx := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	ctx.ClearColorBufferWith(fauxgl.HexColor(view.Background))
	aspect := float64(view.Width) / float64(view.Height)
	eye := vector(view.Eye)
	matrix := fauxgl.LookAt(eye, vector(view.Center), vector(view.Up)).Perspective(view.FovY, aspect, view.Near, view.Far)
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(view.Color)
	ctx.Shader = shader
	ctx.DrawMesh(mesh)
	img := ctx.Image()
	if scale == 1 {
		return img
	}
	return resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
}
