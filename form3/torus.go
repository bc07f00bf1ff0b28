package form3

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
	"github.com/soypat/meshgen/param"
)

// TorusParms defines a torus lying on the XZ plane around the Y axis.
type TorusParms struct {
	// Radius is the distance from the Y axis to the center of the section.
	Radius float32
	// SectionRadius is the radius of the tube.
	SectionRadius float32
	NumSegCircle  int
	NumSegSection int
	Surface
}

// DefaultTorusParms returns a torus of radius 1 and section radius 0.2.
func DefaultTorusParms() TorusParms {
	return TorusParms{
		Radius:        1,
		SectionRadius: 0.2,
		NumSegCircle:  16,
		NumSegSection: 16,
		Surface:       DefaultSurface(),
	}
}

// Torus sweeps a section circle in the XY plane around the Y axis.
// Grid rows follow the sweep and columns the section.
type Torus struct {
	surface
	radius        float32
	sectionRadius float32
	numSegCircle  int
	numSegSection int
}

var _ meshgen.Generator = (*Torus)(nil)

// NewTorus validates p and returns a Torus.
func NewTorus(p TorusParms) (*Torus, error) {
	const shape = "torus"
	err := firstErr(
		checkPositive(shape, "radius", p.Radius),
		checkPositive(shape, "section radius", p.SectionRadius),
		checkSegments(shape, "numSegCircle", p.NumSegCircle),
		checkSegments(shape, "numSegSection", p.NumSegSection),
	)
	if err != nil {
		return nil, err
	}
	s, err := newSurface(shape, p.Surface)
	if err != nil {
		return nil, err
	}
	return &Torus{
		surface:       s,
		radius:        p.Radius,
		sectionRadius: p.SectionRadius,
		numSegCircle:  p.NumSegCircle,
		numSegSection: p.NumSegSection,
	}, nil
}

// Parms returns the current configuration.
func (g *Torus) Parms() TorusParms {
	return TorusParms{
		Radius: g.radius, SectionRadius: g.sectionRadius,
		NumSegCircle: g.numSegCircle, NumSegSection: g.numSegSection, Surface: g.s,
	}
}

// SetRadius sets the distance from the Y axis to the section center.
func (g *Torus) SetRadius(r float32) error {
	if err := checkPositive(g.shape, "radius", r); err != nil {
		return err
	}
	g.radius = r
	return nil
}

// SetSectionRadius sets the radius of the swept section circle.
func (g *Torus) SetSectionRadius(r float32) error {
	if err := checkPositive(g.shape, "section radius", r); err != nil {
		return err
	}
	g.sectionRadius = r
	return nil
}

// SetNumSegCircle sets the number of segments around the Y axis.
func (g *Torus) SetNumSegCircle(n int) error {
	if err := checkSegments(g.shape, "numSegCircle", n); err != nil {
		return err
	}
	g.numSegCircle = n
	return nil
}

// SetNumSegSection sets the number of segments around the section circle.
func (g *Torus) SetNumSegSection(n int) error {
	if err := checkSegments(g.shape, "numSegSection", n); err != nil {
		return err
	}
	g.numSegSection = n
	return nil
}

// Counts implements meshgen.Generator.
func (g *Torus) Counts() (numVertex, numIndex int) {
	grid := param.NewGrid(g.numSegCircle, g.numSegSection)
	return grid.Len(), grid.Cells() * 6
}

// AddTo implements meshgen.Generator.
func (g *Torus) AddTo(ctx *meshgen.Context) {
	l := g.s.layout()
	base := uint32(ctx.Offset())
	circle := param.Full(g.numSegCircle)
	section := param.Full(g.numSegSection)
	center := ms3.Vec{X: g.radius}
	grid := param.NewGrid(circle.N, section.N)
	grid.ForEach(func(i, j int) {
		sin, cos := section.Sincos(j)
		dir := ms3.Vec{X: cos, Y: sin}
		local := ms3.Add(center, ms3.Scale(g.sectionRadius, dir))
		angle := circle.Angle(i)
		pos := d3.RotateY(local, angle)
		normal := d3.RotateY(dir, angle)
		ctx.AddVertex(l, pos, normal, g.s.uv(circle.Fraction(i), section.Fraction(j)))
	})
	ctx.Grid(base, circle.N, section.N, false)
}
