package form3

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
)

// BoxParms defines an axis aligned box centered at the origin.
type BoxParms struct {
	Size                      ms3.Vec
	NumSegX, NumSegY, NumSegZ int
	Surface
}

// DefaultBoxParms returns a unit cube with one cell per face.
func DefaultBoxParms() BoxParms {
	return BoxParms{Size: d3.Elem(1), NumSegX: 1, NumSegY: 1, NumSegZ: 1, Surface: DefaultSurface()}
}

// Box is built from six patches that do not share vertices, so each face
// keeps its own flat normal.
type Box struct {
	surface
	size    ms3.Vec
	numSegX int
	numSegY int
	numSegZ int
}

var _ meshgen.Generator = (*Box)(nil)

// NewBox validates p and returns a Box.
func NewBox(p BoxParms) (*Box, error) {
	const shape = "box"
	err := firstErr(
		checkSize(shape, "size", p.Size),
		checkSegments(shape, "numSegX", p.NumSegX),
		checkSegments(shape, "numSegY", p.NumSegY),
		checkSegments(shape, "numSegZ", p.NumSegZ),
	)
	if err != nil {
		return nil, err
	}
	s, err := newSurface(shape, p.Surface)
	if err != nil {
		return nil, err
	}
	return &Box{surface: s, size: p.Size, numSegX: p.NumSegX, numSegY: p.NumSegY, numSegZ: p.NumSegZ}, nil
}

// Parms returns the current configuration.
func (g *Box) Parms() BoxParms {
	return BoxParms{Size: g.size, NumSegX: g.numSegX, NumSegY: g.numSegY, NumSegZ: g.numSegZ, Surface: g.s}
}

// SetSize sets the full extents of the box.
func (g *Box) SetSize(size ms3.Vec) error {
	if err := checkSize(g.shape, "size", size); err != nil {
		return err
	}
	g.size = size
	return nil
}

// SetNumSeg sets the number of cells along each axis.
func (g *Box) SetNumSeg(x, y, z int) error {
	err := firstErr(
		checkSegments(g.shape, "numSegX", x),
		checkSegments(g.shape, "numSegY", y),
		checkSegments(g.shape, "numSegZ", z),
	)
	if err != nil {
		return err
	}
	g.numSegX, g.numSegY, g.numSegZ = x, y, z
	return nil
}

// Counts implements meshgen.Generator.
func (g *Box) Counts() (numVertex, numIndex int) {
	nx, ny, nz := g.numSegX, g.numSegY, g.numSegZ
	numVertex = 2 * ((nx+1)*(ny+1) + (nx+1)*(nz+1) + (ny+1)*(nz+1))
	numIndex = 12 * (nx*ny + nx*nz + ny*nz)
	return numVertex, numIndex
}

// AddTo implements meshgen.Generator.
func (g *Box) AddTo(ctx *meshgen.Context) {
	half := ms3.Scale(0.5, g.size)
	lo := ms3.Scale(-1, half)
	nx, ny, nz := g.numSegX, g.numSegY, g.numSegZ
	dx := ms3.Vec{X: g.size.X / float32(nx)}
	dy := ms3.Vec{Y: g.size.Y / float32(ny)}
	dz := ms3.Vec{Z: g.size.Z / float32(nz)}
	faces := []struct {
		normal, origin ms3.Vec
		d1, d2         ms3.Vec
		n1, n2         int
	}{
		{normal: ms3.Scale(-1, d3.ZAxis), origin: lo, d1: dx, d2: dy, n1: nx, n2: ny},
		{normal: d3.ZAxis, origin: ms3.Vec{X: lo.X, Y: lo.Y, Z: half.Z}, d1: dx, d2: dy, n1: nx, n2: ny},
		{normal: ms3.Scale(-1, d3.YAxis), origin: lo, d1: dx, d2: dz, n1: nx, n2: nz},
		{normal: d3.YAxis, origin: ms3.Vec{X: lo.X, Y: half.Y, Z: lo.Z}, d1: dx, d2: dz, n1: nx, n2: nz},
		{normal: ms3.Scale(-1, d3.XAxis), origin: lo, d1: dy, d2: dz, n1: ny, n2: nz},
		{normal: d3.XAxis, origin: ms3.Vec{X: half.X, Y: lo.Y, Z: lo.Z}, d1: dy, d2: dz, n1: ny, n2: nz},
	}
	for _, f := range faces {
		addPatch(ctx, g.s, f.origin, f.d1, f.d2, f.normal, f.n1, f.n2)
	}
}
