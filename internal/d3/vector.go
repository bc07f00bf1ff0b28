package d3

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// float32 R3 helpers shared by the generators. ms3 covers the
// arithmetic; what lives here is the handful of operations it lacks.

// Unit axis vectors.
var (
	XAxis = ms3.Vec{X: 1}
	YAxis = ms3.Vec{Y: 1}
	ZAxis = ms3.Vec{Z: 1}
)

func Elem(sides float32) ms3.Vec {
	return ms3.Vec{X: sides, Y: sides, Z: sides}
}

func EqualWithin(a, b ms3.Vec, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol &&
		math32.Abs(a.Z-b.Z) <= tol
}

// LTEZero returns true if any vector components are <= 0.
func LTEZero(a ms3.Vec) bool {
	return (a.X <= 0) || (a.Y <= 0) || (a.Z <= 0)
}

// IsFinite reports whether no component is NaN or infinite.
func IsFinite(a ms3.Vec) bool {
	return finite(a.X) && finite(a.Y) && finite(a.Z)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// SafeUnit returns v normalized. If v is (close to) the zero vector
// fallback is returned instead so callers never see NaN normals.
func SafeUnit(v, fallback ms3.Vec) ms3.Vec {
	n := ms3.Norm(v)
	if n < 1e-8 {
		return fallback
	}
	return ms3.Scale(1/n, v)
}

// Perpendicular returns a unit vector perpendicular to v. It crosses v with
// the X axis, or with the Y axis when v is nearly parallel to X.
func Perpendicular(v ms3.Vec) ms3.Vec {
	const squareZeroTol = 1e-6 * 1e-6
	perp := ms3.Cross(v, XAxis)
	if ms3.Dot(perp, perp) < squareZeroTol {
		perp = ms3.Cross(v, YAxis)
	}
	return ms3.Unit(perp)
}

// RotateY rotates v by angle radians about the Y axis, right handed.
func RotateY(v ms3.Vec, angle float32) ms3.Vec {
	s, c := math32.Sincos(angle)
	return ms3.Vec{
		X: c*v.X + s*v.Z,
		Y: v.Y,
		Z: -s*v.X + c*v.Z,
	}
}

// Sign returns -1 if negative is set and 1 otherwise.
func Sign(negative bool) float32 {
	if negative {
		return -1
	}
	return 1
}

// TripleProduct returns (a x b) . c.
func TripleProduct(a, b, c ms3.Vec) float32 {
	return ms3.Dot(ms3.Cross(a, b), c)
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b ms3.Vec) ms3.Vec {
	return ms3.Vec{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b ms3.Vec) ms3.Vec {
	return ms3.Vec{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y), Z: math32.Max(a.Z, b.Z)}
}
