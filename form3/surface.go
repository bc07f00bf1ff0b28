package form3

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/meshgen"
)

// Surface holds the vertex attribute options shared by every shape.
type Surface struct {
	UTile float32 // texture repeats along the u direction
	VTile float32 // texture repeats along the v direction
	// NoNormals disables normal generation.
	NoNormals bool
	// TexCoordSets is the number of texture coordinate sets per vertex,
	// each holding the same coordinates. At most meshgen.MaxTexCoordSets.
	TexCoordSets int
}

// DefaultSurface returns untiled texture coordinates in one set with normals.
func DefaultSurface() Surface {
	return Surface{UTile: 1, VTile: 1, TexCoordSets: 1}
}

func (s Surface) validate(shape string) error {
	if s.TexCoordSets < 0 || s.TexCoordSets > meshgen.MaxTexCoordSets {
		return &ParamError{Shape: shape, Param: "texture coordinate sets", Value: s.TexCoordSets, Reason: "out of range [0,8]"}
	}
	return firstErr(
		checkFinite(shape, "u tile", s.UTile),
		checkFinite(shape, "v tile", s.VTile),
	)
}

func (s Surface) layout() meshgen.Layout {
	return meshgen.Layout{NoNormals: s.NoNormals, TexCoordSets: s.TexCoordSets}
}

// uv scales fractional coordinates by the tiling factors.
func (s Surface) uv(u, v float32) ms2.Vec {
	return ms2.Vec{X: u * s.UTile, Y: v * s.VTile}
}

// surface is embedded by every shape to provide the shared setters.
type surface struct {
	shape string
	s     Surface
}

// Surface returns the attribute options of the shape.
func (g *surface) Surface() Surface { return g.s }

// SetUTile sets the texture repeat count along u.
func (g *surface) SetUTile(u float32) error {
	if err := checkFinite(g.shape, "u tile", u); err != nil {
		return err
	}
	g.s.UTile = u
	return nil
}

// SetVTile sets the texture repeat count along v.
func (g *surface) SetVTile(v float32) error {
	if err := checkFinite(g.shape, "v tile", v); err != nil {
		return err
	}
	g.s.VTile = v
	return nil
}

// SetNormals enables or disables normal generation.
func (g *surface) SetNormals(enable bool) { g.s.NoNormals = !enable }

// SetTexCoordSets sets the number of texture coordinate sets per vertex.
func (g *surface) SetTexCoordSets(n int) error {
	s := g.s
	s.TexCoordSets = n
	if err := s.validate(g.shape); err != nil {
		return err
	}
	g.s = s
	return nil
}

func newSurface(shape string, s Surface) (surface, error) {
	if err := s.validate(shape); err != nil {
		return surface{}, err
	}
	return surface{shape: shape, s: s}, nil
}
