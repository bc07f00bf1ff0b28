package form3

import (
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/param"
)

// ConeParms defines a cone with its base on the XZ plane and apex on +Y.
type ConeParms struct {
	Radius       float32 // base radius
	Height       float32
	NumSegBase   int
	NumSegHeight int
	// Capped closes the base with a flat disc.
	Capped bool
	Surface
}

// DefaultConeParms returns a capped unit cone with 16 base segments.
func DefaultConeParms() ConeParms {
	return ConeParms{
		Radius:       1,
		Height:       1,
		NumSegBase:   16,
		NumSegHeight: 1,
		Capped:       true,
		Surface:      DefaultSurface(),
	}
}

// Cone tapers linearly to the apex. The last ring has zero radius: it is a
// full ring of coincident vertices, one per segment, each keeping the
// radial normal of its segment so the apex shades like the wall below it.
type Cone struct {
	surface
	radius       float32
	height       float32
	numSegBase   int
	numSegHeight int
	capped       bool
}

var _ meshgen.Generator = (*Cone)(nil)

// NewCone validates p and returns a Cone.
func NewCone(p ConeParms) (*Cone, error) {
	const shape = "cone"
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
	return &Cone{
		surface:      s,
		radius:       p.Radius,
		height:       p.Height,
		numSegBase:   p.NumSegBase,
		numSegHeight: p.NumSegHeight,
		capped:       p.Capped,
	}, nil
}

// Parms returns the current configuration.
func (g *Cone) Parms() ConeParms {
	return ConeParms{
		Radius: g.radius, Height: g.height,
		NumSegBase: g.numSegBase, NumSegHeight: g.numSegHeight,
		Capped: g.capped, Surface: g.s,
	}
}

// SetRadius sets the base radius.
func (g *Cone) SetRadius(r float32) error {
	if err := checkPositive(g.shape, "radius", r); err != nil {
		return err
	}
	g.radius = r
	return nil
}

// SetHeight sets the extent along +Y.
func (g *Cone) SetHeight(h float32) error {
	if err := checkPositive(g.shape, "height", h); err != nil {
		return err
	}
	g.height = h
	return nil
}

// SetNumSegBase sets the number of segments around the axis.
func (g *Cone) SetNumSegBase(n int) error {
	if err := checkSegments(g.shape, "numSegBase", n); err != nil {
		return err
	}
	g.numSegBase = n
	return nil
}

// SetNumSegHeight sets the number of rings along the axis.
func (g *Cone) SetNumSegHeight(n int) error {
	if err := checkSegments(g.shape, "numSegHeight", n); err != nil {
		return err
	}
	g.numSegHeight = n
	return nil
}

// SetCapped enables or disables the base cap.
func (g *Cone) SetCapped(capped bool) { g.capped = capped }

// Counts implements meshgen.Generator.
func (g *Cone) Counts() (numVertex, numIndex int) {
	discs := 0
	if g.capped {
		discs = 1
	}
	return revolutionCounts(g.numSegHeight, g.numSegBase, 1, discs, 0)
}

// AddTo implements meshgen.Generator.
func (g *Cone) AddTo(ctx *meshgen.Context) {
	angles := param.Full(g.numSegBase)
	heights := param.Linear(0, g.height, g.numSegHeight)
	addWall(ctx, g.s, heights, angles, func(ring int) float32 {
		return g.radius * (1 - heights.Fraction(ring))
	}, false)
	if g.capped {
		addDisc(ctx, g.s, 0, g.radius, angles, false)
	}
}
