package form3

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
)

// PlaneParms defines a rectangle centered at Position facing Normal.
type PlaneParms struct {
	Normal   ms3.Vec
	Position ms3.Vec
	// SizeX and SizeY are measured along the plane's local axes, see Plane.
	SizeX, SizeY     float32
	NumSegX, NumSegY int
	Surface
}

// DefaultPlaneParms returns a unit square at the origin facing +Y.
func DefaultPlaneParms() PlaneParms {
	return PlaneParms{
		Normal:  d3.YAxis,
		SizeX:   1,
		SizeY:   1,
		NumSegX: 1,
		NumSegY: 1,
		Surface: DefaultSurface(),
	}
}

// Plane is a rectangular patch. Its local X axis is perpendicular to the
// normal and to the world X axis (world Y if the normal is along X). Its
// local Y axis is normal x localX.
type Plane struct {
	surface
	normal, position ms3.Vec
	sizeX, sizeY     float32
	numSegX, numSegY int
}

var _ meshgen.Generator = (*Plane)(nil)

// NewPlane validates p and returns a Plane.
func NewPlane(p PlaneParms) (*Plane, error) {
	const shape = "plane"
	err := firstErr(
		checkDirection(shape, "normal", p.Normal),
		checkVec(shape, "position", p.Position),
		checkPositive(shape, "sizeX", p.SizeX),
		checkPositive(shape, "sizeY", p.SizeY),
		checkSegments(shape, "numSegX", p.NumSegX),
		checkSegments(shape, "numSegY", p.NumSegY),
	)
	if err != nil {
		return nil, err
	}
	s, err := newSurface(shape, p.Surface)
	if err != nil {
		return nil, err
	}
	return &Plane{
		surface:  s,
		normal:   ms3.Unit(p.Normal),
		position: p.Position,
		sizeX:    p.SizeX,
		sizeY:    p.SizeY,
		numSegX:  p.NumSegX,
		numSegY:  p.NumSegY,
	}, nil
}

// Parms returns the current configuration.
func (g *Plane) Parms() PlaneParms {
	return PlaneParms{
		Normal: g.normal, Position: g.position, SizeX: g.sizeX, SizeY: g.sizeY,
		NumSegX: g.numSegX, NumSegY: g.numSegY, Surface: g.s,
	}
}

// SetNormal sets the facing direction.
func (g *Plane) SetNormal(n ms3.Vec) error {
	if err := checkDirection(g.shape, "normal", n); err != nil {
		return err
	}
	g.normal = ms3.Unit(n)
	return nil
}

// SetPosition sets the center of the plane.
func (g *Plane) SetPosition(p ms3.Vec) error {
	if err := checkVec(g.shape, "position", p); err != nil {
		return err
	}
	g.position = p
	return nil
}

// SetSizeX sets the extent along the local X axis.
func (g *Plane) SetSizeX(size float32) error {
	if err := checkPositive(g.shape, "sizeX", size); err != nil {
		return err
	}
	g.sizeX = size
	return nil
}

// SetSizeY sets the extent along the local Y axis.
func (g *Plane) SetSizeY(size float32) error {
	if err := checkPositive(g.shape, "sizeY", size); err != nil {
		return err
	}
	g.sizeY = size
	return nil
}

// SetNumSegX sets the number of cells along the local X axis.
func (g *Plane) SetNumSegX(n int) error {
	if err := checkSegments(g.shape, "numSegX", n); err != nil {
		return err
	}
	g.numSegX = n
	return nil
}

// SetNumSegY sets the number of cells along the local Y axis.
func (g *Plane) SetNumSegY(n int) error {
	if err := checkSegments(g.shape, "numSegY", n); err != nil {
		return err
	}
	g.numSegY = n
	return nil
}

// Counts implements meshgen.Generator.
func (g *Plane) Counts() (numVertex, numIndex int) {
	return patchCounts(g.numSegX, g.numSegY)
}

// AddTo implements meshgen.Generator.
func (g *Plane) AddTo(ctx *meshgen.Context) {
	addPlane(ctx, g.s, g.normal, g.position, g.sizeX, g.sizeY, g.numSegX, g.numSegY)
}

func addPlane(ctx *meshgen.Context, s Surface, normal, position ms3.Vec, sizeX, sizeY float32, nx, ny int) {
	vX := d3.Perpendicular(normal)
	vY := ms3.Cross(normal, vX)
	origin := ms3.Sub(position, ms3.Add(ms3.Scale(0.5*sizeX, vX), ms3.Scale(0.5*sizeY, vY)))
	delta1 := ms3.Scale(sizeX/float32(nx), vX)
	delta2 := ms3.Scale(sizeY/float32(ny), vY)
	addPatch(ctx, s, origin, delta1, delta2, normal, nx, ny)
}
