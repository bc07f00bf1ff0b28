// Package must3 provides mesh generators that panic on invalid parameters
// instead of returning an error. Shapes start from the package form3
// defaults with the given dimensions applied.
package must3

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen/form3"
)

// Must panics if err is not nil and returns g otherwise.
//
//	cyl := must3.Must(form3.NewCylinder(parms))
func Must[T any](g T, err error) T {
	if err != nil {
		panic(err)
	}
	return g
}

// Box returns a box of the given full extents.
func Box(size ms3.Vec) *form3.Box {
	p := form3.DefaultBoxParms()
	p.Size = size
	return Must(form3.NewBox(p))
}

// RoundedBox returns a box of the given flat extents with its edges and
// corners rounded by round.
func RoundedBox(size ms3.Vec, round float32) *form3.RoundedBox {
	p := form3.DefaultRoundedBoxParms()
	p.Size = size
	p.ChamferSize = round
	return Must(form3.NewRoundedBox(p))
}

// Sphere returns a sphere.
func Sphere(radius float32) *form3.Sphere {
	p := form3.DefaultSphereParms()
	p.Radius = radius
	return Must(form3.NewSphere(p))
}

// Cylinder returns a capped cylinder.
func Cylinder(height, radius float32) *form3.Cylinder {
	p := form3.DefaultCylinderParms()
	p.Height = height
	p.Radius = radius
	return Must(form3.NewCylinder(p))
}

// Cone returns a capped cone.
func Cone(height, radius float32) *form3.Cone {
	p := form3.DefaultConeParms()
	p.Height = height
	p.Radius = radius
	return Must(form3.NewCone(p))
}

// Tube returns a capped tube.
func Tube(height, innerRadius, outerRadius float32) *form3.Tube {
	p := form3.DefaultTubeParms()
	p.Height = height
	p.InnerRadius = innerRadius
	p.OuterRadius = outerRadius
	return Must(form3.NewTube(p))
}

// Torus returns a torus.
func Torus(radius, sectionRadius float32) *form3.Torus {
	p := form3.DefaultTorusParms()
	p.Radius = radius
	p.SectionRadius = sectionRadius
	return Must(form3.NewTorus(p))
}

// Plane returns a plane centered at position facing normal.
func Plane(normal, position ms3.Vec, sizeX, sizeY float32) *form3.Plane {
	p := form3.DefaultPlaneParms()
	p.Normal = normal
	p.Position = position
	p.SizeX = sizeX
	p.SizeY = sizeY
	return Must(form3.NewPlane(p))
}
