package must3

import (
	"errors"
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen/form3"
)

func TestPanicsOnInvalid(t *testing.T) {
	for name, fn := range map[string]func(){
		"sphere":   func() { Sphere(0) },
		"cylinder": func() { Cylinder(1, -1) },
		"cone":     func() { Cone(0, 1) },
		"tube":     func() { Tube(1, 1, 0.5) },
		"torus":    func() { Torus(1, 0) },
		"box":      func() { Box(ms3.Vec{X: 1, Y: 0, Z: 1}) },
		"rounded":  func() { RoundedBox(ms3.Vec{X: 1, Y: 1, Z: 1}, -0.1) },
		"plane":    func() { Plane(ms3.Vec{}, ms3.Vec{}, 1, 1) },
	} {
		func() {
			defer func() {
				a := recover()
				err, ok := a.(error)
				if !ok || !errors.Is(err, form3.ErrInvalidParameter) {
					t.Errorf("%s: got panic %v, want invalid parameter error", name, a)
				}
			}()
			fn()
		}()
	}
}

func TestValid(t *testing.T) {
	c := Cylinder(2, 0.5)
	if p := c.Parms(); p.Height != 2 || p.Radius != 0.5 || !p.Capped {
		t.Errorf("unexpected parameters %+v", p)
	}
	rb := RoundedBox(ms3.Vec{X: 1, Y: 2, Z: 3}, 0)
	if p := rb.Parms(); p.ChamferSize != 0 {
		t.Errorf("got chamfer %v, want 0", p.ChamferSize)
	}
}
