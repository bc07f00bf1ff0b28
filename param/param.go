// Package param maps ring and segment indices of a tessellation grid onto
// angles, heights and texture coordinates.
//
// Every sampling in this package is inclusive at both ends: a range split
// into N steps has N+1 samples, so the first and last sample of a full
// revolution coincide in space but carry distinct texture coordinates.
package param

import (
	"github.com/chewxy/math32"
)

// Sweep samples an angular range of N equal steps starting at Start.
type Sweep struct {
	Start float32
	Step  float32
	N     int
}

// Full returns a sweep over a whole revolution in n steps.
func Full(n int) Sweep { return Arc(0, 2*math32.Pi, n) }

// Half returns a sweep over half a revolution in n steps.
func Half(n int) Sweep { return Arc(0, math32.Pi, n) }

// Quarter returns a sweep over a quarter revolution beginning at start.
func Quarter(start float32, n int) Sweep { return Arc(start, math32.Pi/2, n) }

// Arc returns a sweep over span radians beginning at start.
func Arc(start, span float32, n int) Sweep {
	mustSteps(n)
	return Sweep{Start: start, Step: span / float32(n), N: n}
}

// Angle returns the angle of sample i.
func (s Sweep) Angle(i int) float32 { return s.Start + float32(i)*s.Step }

// Sincos returns the sine and cosine of the angle of sample i.
func (s Sweep) Sincos(i int) (sin, cos float32) {
	return math32.Sincos(s.Angle(i))
}

// Fraction returns i/N, the texture coordinate of sample i before tiling.
func (s Sweep) Fraction(i int) float32 { return fraction(i, s.N) }

// Span samples a linear range of N equal steps starting at Start.
type Span struct {
	Start float32
	Step  float32
	N     int
}

// Linear returns a span from start to end in n steps.
func Linear(start, end float32, n int) Span {
	mustSteps(n)
	return Span{Start: start, Step: (end - start) / float32(n), N: n}
}

// At returns the value of sample i.
func (s Span) At(i int) float32 { return s.Start + float32(i)*s.Step }

// Fraction returns i/N.
func (s Span) Fraction(i int) float32 { return fraction(i, s.N) }

// Grid is the ring by segment domain of a tessellated surface. Vertices
// are laid out row major, one row per ring.
type Grid struct {
	Rings int
	Segs  int
}

// NewGrid returns a grid of rings by segs cells.
func NewGrid(rings, segs int) Grid {
	mustSteps(rings)
	mustSteps(segs)
	return Grid{Rings: rings, Segs: segs}
}

// Len returns the number of vertices of the grid.
func (g Grid) Len() int { return (g.Rings + 1) * (g.Segs + 1) }

// Cells returns the number of quads of the grid.
func (g Grid) Cells() int { return g.Rings * g.Segs }

// Index returns the position of (ring, seg) in vertex order.
func (g Grid) Index(ring, seg int) int { return ring*(g.Segs+1) + seg }

// ForEach calls fn for every (ring, seg) pair in vertex order,
// both ranges inclusive.
func (g Grid) ForEach(fn func(ring, seg int)) {
	for ring := 0; ring <= g.Rings; ring++ {
		for seg := 0; seg <= g.Segs; seg++ {
			fn(ring, seg)
		}
	}
}

func fraction(i, n int) float32 { return float32(i) / float32(n) }

func mustSteps(n int) {
	if n < 1 {
		panic("bug: parametrization needs at least one step")
	}
}
