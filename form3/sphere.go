package form3

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/param"
)

// SphereParms defines a UV sphere centered at the origin.
type SphereParms struct {
	Radius float32
	// NumRings is the number of latitude bands from pole to pole.
	NumRings int
	// NumSegments is the number of longitude bands.
	NumSegments int
	Surface
}

// DefaultSphereParms returns a unit sphere with 16 rings and 16 segments.
func DefaultSphereParms() SphereParms {
	return SphereParms{Radius: 1, NumRings: 16, NumSegments: 16, Surface: DefaultSurface()}
}

// Sphere is a UV sphere with poles on the Y axis. Pole vertices are
// repeated once per segment so every ring carries its own texture seam.
type Sphere struct {
	surface
	radius      float32
	numRings    int
	numSegments int
}

var _ meshgen.Generator = (*Sphere)(nil)

// NewSphere validates p and returns a Sphere.
func NewSphere(p SphereParms) (*Sphere, error) {
	const shape = "sphere"
	err := firstErr(
		checkPositive(shape, "radius", p.Radius),
		checkSegments(shape, "numRings", p.NumRings),
		checkSegments(shape, "numSegments", p.NumSegments),
	)
	if err != nil {
		return nil, err
	}
	s, err := newSurface(shape, p.Surface)
	if err != nil {
		return nil, err
	}
	return &Sphere{surface: s, radius: p.Radius, numRings: p.NumRings, numSegments: p.NumSegments}, nil
}

// Parms returns the current configuration.
func (g *Sphere) Parms() SphereParms {
	return SphereParms{Radius: g.radius, NumRings: g.numRings, NumSegments: g.numSegments, Surface: g.s}
}

// SetRadius sets the sphere radius.
func (g *Sphere) SetRadius(r float32) error {
	if err := checkPositive(g.shape, "radius", r); err != nil {
		return err
	}
	g.radius = r
	return nil
}

// SetNumRings sets the number of latitude bands.
func (g *Sphere) SetNumRings(n int) error {
	if err := checkSegments(g.shape, "numRings", n); err != nil {
		return err
	}
	g.numRings = n
	return nil
}

// SetNumSegments sets the number of longitude bands.
func (g *Sphere) SetNumSegments(n int) error {
	if err := checkSegments(g.shape, "numSegments", n); err != nil {
		return err
	}
	g.numSegments = n
	return nil
}

// Counts implements meshgen.Generator.
func (g *Sphere) Counts() (numVertex, numIndex int) {
	grid := param.NewGrid(g.numRings, g.numSegments)
	return grid.Len(), grid.Cells() * 6
}

// AddTo implements meshgen.Generator.
func (g *Sphere) AddTo(ctx *meshgen.Context) {
	base := uint32(ctx.Offset())
	addSpherePatch(ctx, g.s, ms3.Vec{}, g.radius, param.Half(g.numRings), param.Full(g.numSegments))
	ctx.Grid(base, g.numRings, g.numSegments, false)
}

// addSpherePatch emits the vertices of the sphere region swept by rings
// (polar angle from +Y) and segs (azimuth from +Z toward +X).
// Rows are rings. Normals are the unscaled directions so a zero radius
// still yields unit normals.
func addSpherePatch(ctx *meshgen.Context, s Surface, center ms3.Vec, radius float32, rings, segs param.Sweep) {
	l := s.layout()
	grid := param.NewGrid(rings.N, segs.N)
	grid.ForEach(func(ring, seg int) {
		sinTheta, cosTheta := rings.Sincos(ring)
		sinPhi, cosPhi := segs.Sincos(seg)
		dir := ms3.Vec{X: sinTheta * sinPhi, Y: cosTheta, Z: sinTheta * cosPhi}
		pos := ms3.Add(center, ms3.Scale(radius, dir))
		ctx.AddVertex(l, pos, dir, s.uv(segs.Fraction(seg), rings.Fraction(ring)))
	})
}
