// Package matter corrects generated part dimensions for the shrinkage of
// 3D printing materials.
package matter

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
)

// Material is a printing material whose parts shrink as they cool.
type Material interface {
	// InternalDimScale returns the nominal size to model for a hole or
	// slot that should measure real once printed.
	InternalDimScale(real float32) float32
	// Scale enlarges the vertex positions of b to compensate for shrinkage.
	Scale(b *meshgen.Buffer)
}

var _ Material = ViscousMaterial{}

type ViscousMaterial struct {
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float32
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float32
}

// Scale scales every position and the bounds of b about the origin.
func (m ViscousMaterial) Scale(b *meshgen.Buffer) {
	scale := 1 / (1 - m.shrink)
	for i := range b.Positions {
		b.Positions[i] = ms3.Scale(scale, b.Positions[i])
	}
	if !b.Bounds.IsEmpty() {
		b.Bounds.Box = ms3.Box{Min: ms3.Scale(scale, b.Bounds.Box.Min), Max: ms3.Scale(scale, b.Bounds.Box.Max)}
		b.Bounds.Radius *= scale
	}
}

func (m ViscousMaterial) InternalDimScale(real float32) float32 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}
