package form3

import (
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/param"
)

// CylinderParms defines a cylinder standing on the XZ plane along +Y.
type CylinderParms struct {
	Radius float32
	Height float32
	// NumSegBase is the number of segments around the axis.
	NumSegBase int
	// NumSegHeight is the number of rings along the axis.
	NumSegHeight int
	// Capped closes both ends with flat discs.
	Capped bool
	Surface
}

// DefaultCylinderParms returns a capped unit cylinder with 16 base segments.
func DefaultCylinderParms() CylinderParms {
	return CylinderParms{
		Radius:       1,
		Height:       1,
		NumSegBase:   16,
		NumSegHeight: 1,
		Capped:       true,
		Surface:      DefaultSurface(),
	}
}

// Cylinder is a solid of revolution of constant radius. See CylinderParms.
type Cylinder struct {
	surface
	radius       float32
	height       float32
	numSegBase   int
	numSegHeight int
	capped       bool
}

var _ meshgen.Generator = (*Cylinder)(nil)

// NewCylinder validates p and returns a Cylinder.
func NewCylinder(p CylinderParms) (*Cylinder, error) {
	const shape = "cylinder"
	err := firstErr(
		checkPositive(shape, "radius", p.Radius),
		checkPositive(shape, "height", p.Height),
		checkSegments(shape, "numSegBase", p.NumSegBase),
		checkSegments(shape, "numSegHeight", p.NumSegHeight),
	)
	if err != nil {
		return nil, err
	}
	s, err := newSurface(shape, p.Surface)
	if err != nil {
		return nil, err
	}
	return &Cylinder{
		surface:      s,
		radius:       p.Radius,
		height:       p.Height,
		numSegBase:   p.NumSegBase,
		numSegHeight: p.NumSegHeight,
		capped:       p.Capped,
	}, nil
}

// Parms returns the current configuration.
func (g *Cylinder) Parms() CylinderParms {
	return CylinderParms{
		Radius: g.radius, Height: g.height,
		NumSegBase: g.numSegBase, NumSegHeight: g.numSegHeight,
		Capped: g.capped, Surface: g.s,
	}
}

// SetRadius sets the base radius.
func (g *Cylinder) SetRadius(r float32) error {
	if err := checkPositive(g.shape, "radius", r); err != nil {
		return err
	}
	g.radius = r
	return nil
}

// SetHeight sets the extent along +Y.
func (g *Cylinder) SetHeight(h float32) error {
	if err := checkPositive(g.shape, "height", h); err != nil {
		return err
	}
	g.height = h
	return nil
}

// SetNumSegBase sets the number of segments around the axis.
func (g *Cylinder) SetNumSegBase(n int) error {
	if err := checkSegments(g.shape, "numSegBase", n); err != nil {
		return err
	}
	g.numSegBase = n
	return nil
}

// SetNumSegHeight sets the number of rings along the axis.
func (g *Cylinder) SetNumSegHeight(n int) error {
	if err := checkSegments(g.shape, "numSegHeight", n); err != nil {
		return err
	}
	g.numSegHeight = n
	return nil
}

// SetCapped enables or disables the end caps.
func (g *Cylinder) SetCapped(capped bool) { g.capped = capped }

// Counts implements meshgen.Generator.
func (g *Cylinder) Counts() (numVertex, numIndex int) {
	discs := 0
	if g.capped {
		discs = 2
	}
	return revolutionCounts(g.numSegHeight, g.numSegBase, 1, discs, 0)
}

// AddTo implements meshgen.Generator.
func (g *Cylinder) AddTo(ctx *meshgen.Context) {
	angles := param.Full(g.numSegBase)
	heights := param.Linear(0, g.height, g.numSegHeight)
	addWall(ctx, g.s, heights, angles, func(int) float32 { return g.radius }, false)
	if g.capped {
		addDisc(ctx, g.s, 0, g.radius, angles, false)
		addDisc(ctx, g.s, g.height, g.radius, angles, true)
	}
}
