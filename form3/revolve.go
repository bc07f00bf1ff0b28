package form3

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
	"github.com/soypat/meshgen/internal/d3"
	"github.com/soypat/meshgen/param"
)

// Solids of revolution around the Y axis. The angle sweeps from +X toward
// +Z and rings climb from y=0 to y=height. Walls are emitted as one grid row
// per ring; a wall facing away from the axis uses the unflipped grid
// winding, one facing the axis uses the flipped winding.

// revolutionCounts returns the counts of a wall plus the given number of
// disc caps and annulus caps.
func revolutionCounts(numSegHeight, numSegBase, walls, discs, annuli int) (numVertex, numIndex int) {
	grid := param.NewGrid(numSegHeight, numSegBase)
	numVertex = walls*grid.Len() + discs*(numSegBase+2) + annuli*2*(numSegBase+1)
	numIndex = walls*grid.Cells()*6 + discs*numSegBase*3 + annuli*numSegBase*6
	return numVertex, numIndex
}

// addWall emits a wall whose radius at ring i is radius(i). Normals are
// radial, pointing toward the axis if inward is set.
func addWall(ctx *meshgen.Context, s Surface, heights param.Span, angles param.Sweep, radius func(ring int) float32, inward bool) {
	l := s.layout()
	base := uint32(ctx.Offset())
	sign := d3.Sign(inward)
	grid := param.NewGrid(heights.N, angles.N)
	grid.ForEach(func(ring, seg int) {
		sin, cos := angles.Sincos(seg)
		r := radius(ring)
		pos := ms3.Vec{X: r * cos, Y: heights.At(ring), Z: r * sin}
		normal := ms3.Vec{X: sign * cos, Z: sign * sin}
		ctx.AddVertex(l, pos, normal, s.uv(angles.Fraction(seg), heights.Fraction(ring)))
	})
	ctx.Grid(base, heights.N, angles.N, inward)
}

// addDisc emits a triangle fan cap at height y facing -Y, or +Y if top is set.
func addDisc(ctx *meshgen.Context, s Surface, y, radius float32, angles param.Sweep, top bool) {
	l := s.layout()
	normal := ms3.Vec{Y: d3.Sign(!top)}
	// The texture v coordinate runs from the rim toward the center on the
	// bottom cap and the other way around on the top cap.
	vCenter, vRim := float32(1), float32(0)
	if top {
		vCenter, vRim = 0, 1
	}
	center := ctx.AddVertex(l, ms3.Vec{Y: y}, normal, s.uv(0, vCenter))
	first := uint32(ctx.Offset())
	for j := 0; j <= angles.N; j++ {
		sin, cos := angles.Sincos(j)
		pos := ms3.Vec{X: radius * cos, Y: y, Z: radius * sin}
		ctx.AddVertex(l, pos, normal, s.uv(angles.Fraction(j), vRim))
	}
	ctx.Fan(center, first, angles.N, top)
}

// addAnnulus emits a flat ring cap between inner and outer radii at
// height y as a quad strip of interleaved inner and outer vertices.
func addAnnulus(ctx *meshgen.Context, s Surface, y, inner, outer float32, angles param.Sweep, top bool) {
	l := s.layout()
	normal := ms3.Vec{Y: d3.Sign(!top)}
	vInner, vOuter := float32(1), float32(0)
	if top {
		vInner, vOuter = 0, 1
	}
	for j := 0; j <= angles.N; j++ {
		sin, cos := angles.Sincos(j)
		u := angles.Fraction(j)
		vi := ctx.AddVertex(l, ms3.Vec{X: inner * cos, Y: y, Z: inner * sin}, normal, s.uv(u, vInner))
		ctx.AddVertex(l, ms3.Vec{X: outer * cos, Y: y, Z: outer * sin}, normal, s.uv(u, vOuter))
		if j == 0 {
			continue
		}
		// Previous inner and outer vertices.
		pi, po := vi-2, vi-1
		if top {
			ctx.AddTriangle(po, pi, vi+1)
			ctx.AddTriangle(pi, vi, vi+1)
		} else {
			ctx.AddTriangle(pi, po, vi+1)
			ctx.AddTriangle(vi, pi, vi+1)
		}
	}
}
