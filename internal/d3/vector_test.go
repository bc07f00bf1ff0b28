package d3

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

func TestPerpendicular(t *testing.T) {
	for _, v := range []ms3.Vec{XAxis, YAxis, ZAxis, {X: -3}, {X: 1, Y: 2, Z: 3}, {X: 1, Y: 1e-9}} {
		p := Perpendicular(v)
		if d := ms3.Dot(p, v); math32.Abs(d) > 1e-5 {
			t.Errorf("Perpendicular(%v) = %v, dot %v", v, p, d)
		}
		if n := ms3.Norm(p); math32.Abs(n-1) > 1e-5 {
			t.Errorf("Perpendicular(%v) has norm %v", v, n)
		}
	}
}

func TestRotateY(t *testing.T) {
	got := RotateY(XAxis, math32.Pi/2)
	if want := (ms3.Vec{Z: -1}); !EqualWithin(got, want, 1e-6) {
		t.Errorf("got %v, want %v", got, want)
	}
	got = RotateY(ms3.Vec{X: 1, Y: 2}, math32.Pi)
	if want := (ms3.Vec{X: -1, Y: 2}); !EqualWithin(got, want, 1e-6) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSafeUnit(t *testing.T) {
	if got := SafeUnit(ms3.Vec{}, YAxis); got != YAxis {
		t.Errorf("got %v, want fallback", got)
	}
	if got := SafeUnit(ms3.Vec{Z: 4}, YAxis); got != ZAxis {
		t.Errorf("got %v, want %v", got, ZAxis)
	}
}

func TestBoxUnion(t *testing.T) {
	a := IncludePoint(EmptyBox(), ms3.Vec{X: 1, Y: 2, Z: 3})
	if IsEmpty(a) || a.Min != a.Max {
		t.Fatalf("single point box %v", a)
	}
	b := IncludePoint(EmptyBox(), ms3.Vec{X: -1})
	u := Union(Union(a, EmptyBox()), b)
	want := ms3.Box{Min: ms3.Vec{X: -1}, Max: ms3.Vec{X: 1, Y: 2, Z: 3}}
	if !BoxEqualWithin(u, want, 0) {
		t.Errorf("got %v, want %v", u, want)
	}
	if TripleProduct(XAxis, YAxis, ZAxis) != 1 {
		t.Error("right handed basis expected")
	}
}
