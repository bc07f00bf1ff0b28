package form3

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
)

// PatchParms defines a flat patch spanned by two basis steps.
type PatchParms struct {
	Origin ms3.Vec
	// Delta1 and Delta2 are the steps between adjacent grid vertices.
	Delta1, Delta2 ms3.Vec
	// Normal is the side the front faces point to. It need not be unit length.
	Normal           ms3.Vec
	NumSeg1, NumSeg2 int
	Surface
}

// DefaultPatchParms returns a unit square in the XZ plane facing +Y.
func DefaultPatchParms() PatchParms {
	return PatchParms{
		Delta1:  d3.XAxis,
		Delta2:  d3.ZAxis,
		Normal:  d3.YAxis,
		NumSeg1: 1,
		NumSeg2: 1,
		Surface: DefaultSurface(),
	}
}

// Patch is a (NumSeg1+1) by (NumSeg2+1) vertex grid at
// Origin + i*Delta1 + j*Delta2. Triangle winding is chosen so front faces
// point along Normal regardless of the handedness of the basis.
type Patch struct {
	surface
	origin, delta1, delta2 ms3.Vec
	normal                 ms3.Vec
	numSeg1, numSeg2       int
}

var _ meshgen.Generator = (*Patch)(nil)

// NewPatch validates p and returns a Patch.
func NewPatch(p PatchParms) (*Patch, error) {
	const shape = "patch"
	err := firstErr(
		checkVec(shape, "origin", p.Origin),
		checkVec(shape, "delta1", p.Delta1),
		checkVec(shape, "delta2", p.Delta2),
		checkDirection(shape, "normal", p.Normal),
		checkSegments(shape, "numSeg1", p.NumSeg1),
		checkSegments(shape, "numSeg2", p.NumSeg2),
	)
	if err != nil {
		return nil, err
	}
	s, err := newSurface(shape, p.Surface)
	if err != nil {
		return nil, err
	}
	return &Patch{
		surface: s,
		origin:  p.Origin,
		delta1:  p.Delta1,
		delta2:  p.Delta2,
		normal:  ms3.Unit(p.Normal),
		numSeg1: p.NumSeg1,
		numSeg2: p.NumSeg2,
	}, nil
}

// Parms returns the current configuration.
func (g *Patch) Parms() PatchParms {
	return PatchParms{
		Origin: g.origin, Delta1: g.delta1, Delta2: g.delta2, Normal: g.normal,
		NumSeg1: g.numSeg1, NumSeg2: g.numSeg2, Surface: g.s,
	}
}

// SetNumSeg1 sets the number of cells along Delta1.
func (g *Patch) SetNumSeg1(n int) error {
	if err := checkSegments(g.shape, "numSeg1", n); err != nil {
		return err
	}
	g.numSeg1 = n
	return nil
}

// SetNumSeg2 sets the number of cells along Delta2.
func (g *Patch) SetNumSeg2(n int) error {
	if err := checkSegments(g.shape, "numSeg2", n); err != nil {
		return err
	}
	g.numSeg2 = n
	return nil
}

// SetNormal sets the facing direction.
func (g *Patch) SetNormal(n ms3.Vec) error {
	if err := checkDirection(g.shape, "normal", n); err != nil {
		return err
	}
	g.normal = ms3.Unit(n)
	return nil
}

// Counts implements meshgen.Generator.
func (g *Patch) Counts() (numVertex, numIndex int) {
	return patchCounts(g.numSeg1, g.numSeg2)
}

// AddTo implements meshgen.Generator.
func (g *Patch) AddTo(ctx *meshgen.Context) {
	addPatch(ctx, g.s, g.origin, g.delta1, g.delta2, g.normal, g.numSeg1, g.numSeg2)
}

func patchCounts(n1, n2 int) (numVertex, numIndex int) {
	return (n1 + 1) * (n2 + 1), n1 * n2 * 6
}

// addPatch emits the patch grid. Rows follow delta1 and columns delta2,
// so the grid faces delta1 x delta2 unless that opposes normal.
func addPatch(ctx *meshgen.Context, s Surface, origin, delta1, delta2, normal ms3.Vec, n1, n2 int) {
	l := s.layout()
	base := uint32(ctx.Offset())
	for i := 0; i <= n1; i++ {
		row := ms3.Add(origin, ms3.Scale(float32(i), delta1))
		for j := 0; j <= n2; j++ {
			pos := ms3.Add(row, ms3.Scale(float32(j), delta2))
			ctx.AddVertex(l, pos, normal, s.uv(float32(i)/float32(n1), float32(j)/float32(n2)))
		}
	}
	flip := !(d3.TripleProduct(delta1, delta2, normal) > 0)
	ctx.Grid(base, n1, n2, flip)
}
