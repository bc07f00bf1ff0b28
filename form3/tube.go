package form3

import (
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/param"
)

// TubeParms defines a hollow cylinder standing on the XZ plane along +Y.
type TubeParms struct {
	InnerRadius  float32
	OuterRadius  float32
	Height       float32
	NumSegBase   int
	NumSegHeight int
	// Capped closes both ends with flat annuli.
	Capped bool
	Surface
}

// DefaultTubeParms returns a capped tube of outer radius 1 and inner
// radius 0.5 with 16 base segments.
func DefaultTubeParms() TubeParms {
	return TubeParms{
		InnerRadius:  0.5,
		OuterRadius:  1,
		Height:       1,
		NumSegBase:   16,
		NumSegHeight: 1,
		Capped:       true,
		Surface:      DefaultSurface(),
	}
}

// Tube has an outer wall, an inner wall facing the axis and, if capped,
// an annulus at each end. The walls do not share vertices with the caps.
type Tube struct {
	surface
	inner, outer float32
	height       float32
	numSegBase   int
	numSegHeight int
	capped       bool
}

var _ meshgen.Generator = (*Tube)(nil)

// NewTube validates p and returns a Tube.
func NewTube(p TubeParms) (*Tube, error) {
	const shape = "tube"
	err := firstErr(
		checkPositive(shape, "inner radius", p.InnerRadius),
		checkPositive(shape, "outer radius", p.OuterRadius),
		checkRadii(shape, p.InnerRadius, p.OuterRadius),
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
	return &Tube{
		surface:      s,
		inner:        p.InnerRadius,
		outer:        p.OuterRadius,
		height:       p.Height,
		numSegBase:   p.NumSegBase,
		numSegHeight: p.NumSegHeight,
		capped:       p.Capped,
	}, nil
}

func checkRadii(shape string, inner, outer float32) error {
	if !(outer > inner) {
		return &ParamError{Shape: shape, Param: "outer radius", Value: outer, Reason: "must exceed inner radius"}
	}
	return nil
}

// Parms returns the current configuration.
func (g *Tube) Parms() TubeParms {
	return TubeParms{
		InnerRadius: g.inner, OuterRadius: g.outer, Height: g.height,
		NumSegBase: g.numSegBase, NumSegHeight: g.numSegHeight,
		Capped: g.capped, Surface: g.s,
	}
}

// SetInnerRadius sets the inner radius. It must stay below the outer radius.
func (g *Tube) SetInnerRadius(r float32) error {
	if err := firstErr(checkPositive(g.shape, "inner radius", r), checkRadii(g.shape, r, g.outer)); err != nil {
		return err
	}
	g.inner = r
	return nil
}

// SetOuterRadius sets the outer radius. It must stay above the inner radius.
func (g *Tube) SetOuterRadius(r float32) error {
	if err := firstErr(checkPositive(g.shape, "outer radius", r), checkRadii(g.shape, g.inner, r)); err != nil {
		return err
	}
	g.outer = r
	return nil
}

// SetHeight sets the extent along +Y.
func (g *Tube) SetHeight(h float32) error {
	if err := checkPositive(g.shape, "height", h); err != nil {
		return err
	}
	g.height = h
	return nil
}

// SetNumSegBase sets the number of segments around the axis.
func (g *Tube) SetNumSegBase(n int) error {
	if err := checkSegments(g.shape, "numSegBase", n); err != nil {
		return err
	}
	g.numSegBase = n
	return nil
}

// SetNumSegHeight sets the number of rings along the axis.
func (g *Tube) SetNumSegHeight(n int) error {
	if err := checkSegments(g.shape, "numSegHeight", n); err != nil {
		return err
	}
	g.numSegHeight = n
	return nil
}

// SetCapped enables or disables the end caps.
func (g *Tube) SetCapped(capped bool) { g.capped = capped }

// Counts implements meshgen.Generator.
func (g *Tube) Counts() (numVertex, numIndex int) {
	annuli := 0
	if g.capped {
		annuli = 2
	}
	return revolutionCounts(g.numSegHeight, g.numSegBase, 2, 0, annuli)
}

// AddTo implements meshgen.Generator.
func (g *Tube) AddTo(ctx *meshgen.Context) {
	angles := param.Full(g.numSegBase)
	heights := param.Linear(0, g.height, g.numSegHeight)
	addWall(ctx, g.s, heights, angles, func(int) float32 { return g.outer }, false)
	addWall(ctx, g.s, heights, angles, func(int) float32 { return g.inner }, true)
	if g.capped {
		addAnnulus(ctx, g.s, 0, g.inner, g.outer, angles, false)
		addAnnulus(ctx, g.s, g.height, g.inner, g.outer, angles, true)
	}
}
