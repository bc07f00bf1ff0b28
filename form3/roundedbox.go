package form3

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
	"github.com/soypat/meshgen/param"
)

// RoundedBoxParms defines a box whose edges and corners are rounded off.
type RoundedBoxParms struct {
	// Size is the extent of the flat part of the box. The rounded box
	// reaches ChamferSize further out on every side.
	Size          ms3.Vec
	ChamferSize   float32
	ChamferNumSeg int
	// NumSegX, NumSegY and NumSegZ subdivide the faces and edges along
	// each axis.
	NumSegX, NumSegY, NumSegZ int
	Surface
}

// DefaultRoundedBoxParms returns a unit box rounded by 0.1.
func DefaultRoundedBoxParms() RoundedBoxParms {
	return RoundedBoxParms{
		Size:          d3.Elem(1),
		ChamferSize:   0.1,
		ChamferNumSeg: 4,
		NumSegX:       1,
		NumSegY:       1,
		NumSegZ:       1,
		Surface:       DefaultSurface(),
	}
}

// RoundedBox is built from six face planes pushed out by the chamfer, eight
// sphere octants at the corners of the flat box and twelve quarter
// cylinders along its edges. The parts do not share vertices: seams hold
// coincident vertices, each with the normal of its own part.
type RoundedBox struct {
	surface
	size          ms3.Vec
	chamfer       float32
	chamferNumSeg int
	numSegX       int
	numSegY       int
	numSegZ       int
}

var (
	_ meshgen.Generator = (*RoundedBox)(nil)
	_ meshgen.Bounder   = (*RoundedBox)(nil)
)

// NewRoundedBox validates p and returns a RoundedBox. A zero chamfer is
// allowed and collapses the corners and edges to zero area.
func NewRoundedBox(p RoundedBoxParms) (*RoundedBox, error) {
	const shape = "rounded box"
	err := firstErr(
		checkSize(shape, "size", p.Size),
		checkNonNegative(shape, "chamfer size", p.ChamferSize),
		checkSegments(shape, "chamferNumSeg", p.ChamferNumSeg),
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
	return &RoundedBox{
		surface:       s,
		size:          p.Size,
		chamfer:       p.ChamferSize,
		chamferNumSeg: p.ChamferNumSeg,
		numSegX:       p.NumSegX,
		numSegY:       p.NumSegY,
		numSegZ:       p.NumSegZ,
	}, nil
}

// Parms returns the current configuration.
func (g *RoundedBox) Parms() RoundedBoxParms {
	return RoundedBoxParms{
		Size: g.size, ChamferSize: g.chamfer, ChamferNumSeg: g.chamferNumSeg,
		NumSegX: g.numSegX, NumSegY: g.numSegY, NumSegZ: g.numSegZ, Surface: g.s,
	}
}

// SetSize sets the full extents of the flat part of the box.
func (g *RoundedBox) SetSize(size ms3.Vec) error {
	if err := checkSize(g.shape, "size", size); err != nil {
		return err
	}
	g.size = size
	return nil
}

// SetChamferSize sets the rounding radius. Zero is allowed.
func (g *RoundedBox) SetChamferSize(c float32) error {
	if err := checkNonNegative(g.shape, "chamfer size", c); err != nil {
		return err
	}
	g.chamfer = c
	return nil
}

// SetChamferNumSeg sets the number of segments across each rounded edge.
func (g *RoundedBox) SetChamferNumSeg(n int) error {
	if err := checkSegments(g.shape, "chamferNumSeg", n); err != nil {
		return err
	}
	g.chamferNumSeg = n
	return nil
}

// SetNumSeg sets the number of cells along each axis.
func (g *RoundedBox) SetNumSeg(x, y, z int) error {
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

// Bounds implements meshgen.Bounder. The box spans the flat part only and
// the radius is the length of Size. The chamfer is not accounted for.
func (g *RoundedBox) Bounds() meshgen.Bounds {
	return meshgen.Bounds{
		Box:    d3.CenteredBox(ms3.Scale(0.5, g.size)),
		Radius: ms3.Norm(g.size),
	}
}

// Counts implements meshgen.Generator.
func (g *RoundedBox) Counts() (numVertex, numIndex int) {
	nx, ny, nz, cn := g.numSegX, g.numSegY, g.numSegZ, g.chamferNumSeg
	faceV, faceI := 0, 0
	for _, f := range [3][2]int{{ny, nx}, {nz, nx}, {nz, ny}} {
		v, i := patchCounts(f[0], f[1])
		faceV += 2 * v
		faceI += 2 * i
	}
	cornerV, cornerI := 8*(cn+1)*(cn+1), 8*cn*cn*6
	edgeV := 4 * ((nx + 1) + (ny + 1) + (nz + 1)) * (cn + 1)
	edgeI := 4 * (nx + ny + nz) * cn * 6
	return faceV + cornerV + edgeV, faceI + cornerI + edgeI
}

// AddTo implements meshgen.Generator.
func (g *RoundedBox) AddTo(ctx *meshgen.Context) {
	g.addFaces(ctx)
	for _, x := range [2]bool{true, false} {
		for _, y := range [2]bool{true, false} {
			for _, z := range [2]bool{true, false} {
				g.addCorner(ctx, x, y, z)
			}
		}
	}
	g.addEdges(ctx)
}

func (g *RoundedBox) addFaces(ctx *meshgen.Context) {
	sz, c := g.size, g.chamfer
	nx, ny, nz := g.numSegX, g.numSegY, g.numSegZ
	// Plane sizes follow the local axes Plane derives from each normal.
	faces := []struct {
		axis         ms3.Vec
		dist         float32
		sizeX, sizeY float32
		segX, segY   int
	}{
		{axis: d3.ZAxis, dist: 0.5*sz.Z + c, sizeX: sz.Y, sizeY: sz.X, segX: ny, segY: nx},
		{axis: d3.YAxis, dist: 0.5*sz.Y + c, sizeX: sz.Z, sizeY: sz.X, segX: nz, segY: nx},
		{axis: d3.XAxis, dist: 0.5*sz.X + c, sizeX: sz.Z, sizeY: sz.Y, segX: nz, segY: ny},
	}
	for _, f := range faces {
		for _, sign := range [2]float32{-1, 1} {
			normal := ms3.Scale(sign, f.axis)
			addPlane(ctx, g.s, normal, ms3.Scale(f.dist, normal), f.sizeX, f.sizeY, f.segX, f.segY)
		}
	}
}

// addCorner emits the sphere octant at the corner of the flat box on the
// given side of each axis.
func (g *RoundedBox) addCorner(ctx *meshgen.Context, xPos, yPos, zPos bool) {
	cn := g.chamferNumSeg
	half := ms3.Scale(0.5, g.size)
	corner := ms3.Vec{X: d3.Sign(!xPos) * half.X, Y: d3.Sign(!yPos) * half.Y, Z: d3.Sign(!zPos) * half.Z}
	// Polar angle is measured from +Y, azimuth from +Z toward +X.
	var ringStart, segStart float32
	if !yPos {
		ringStart = math32.Pi / 2
	}
	switch {
	case xPos && zPos:
		segStart = 0
	case xPos && !zPos:
		segStart = math32.Pi / 2
	case !xPos && !zPos:
		segStart = math32.Pi
	default:
		segStart = 3 * math32.Pi / 2
	}
	base := uint32(ctx.Offset())
	addSpherePatch(ctx, g.s, corner, g.chamfer, param.Quarter(ringStart, cn), param.Quarter(segStart, cn))
	ctx.Grid(base, cn, cn, false)
}

// addEdges emits the four quarter cylinders running along each axis.
func (g *RoundedBox) addEdges(ctx *meshgen.Context) {
	half := ms3.Scale(0.5, g.size)
	edges := []struct {
		axis, p, q   ms3.Vec
		length       float32
		halfP, halfQ float32
		numSegAlong  int
	}{
		{axis: d3.XAxis, p: d3.YAxis, q: d3.ZAxis, length: g.size.X, halfP: half.Y, halfQ: half.Z, numSegAlong: g.numSegX},
		{axis: d3.YAxis, p: d3.ZAxis, q: d3.XAxis, length: g.size.Y, halfP: half.Z, halfQ: half.X, numSegAlong: g.numSegY},
		{axis: d3.ZAxis, p: d3.XAxis, q: d3.YAxis, length: g.size.Z, halfP: half.X, halfQ: half.Y, numSegAlong: g.numSegZ},
	}
	for _, e := range edges {
		for _, sp := range [2]float32{1, -1} {
			for _, sq := range [2]float32{1, -1} {
				p := ms3.Scale(sp, e.p)
				q := ms3.Scale(sq, e.q)
				center := ms3.Add(ms3.Scale(e.halfP, p), ms3.Scale(e.halfQ, q))
				g.addEdge(ctx, e.axis, p, q, center, e.length, e.numSegAlong)
			}
		}
	}
}

// addEdge emits a quarter cylinder of radius chamfer around the line
// through center along axis, sweeping from direction p to direction q.
func (g *RoundedBox) addEdge(ctx *meshgen.Context, axis, p, q, center ms3.Vec, length float32, numSeg int) {
	l := g.s.layout()
	base := uint32(ctx.Offset())
	along := param.Linear(-0.5*length, 0.5*length, numSeg)
	around := param.Quarter(0, g.chamferNumSeg)
	grid := param.NewGrid(along.N, around.N)
	grid.ForEach(func(i, j int) {
		sin, cos := around.Sincos(j)
		dir := ms3.Add(ms3.Scale(cos, p), ms3.Scale(sin, q))
		pos := ms3.Add(ms3.Add(center, ms3.Scale(along.At(i), axis)), ms3.Scale(g.chamfer, dir))
		ctx.AddVertex(l, pos, dir, g.s.uv(around.Fraction(j), along.Fraction(i)))
	})
	// Rows step along axis and columns toward q, so the unflipped grid
	// faces axis x q. Flip when that points away from p, the outside.
	flip := d3.TripleProduct(axis, q, p) < 0
	ctx.Grid(base, along.N, around.N, flip)
}
