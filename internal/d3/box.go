package d3

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// EmptyBox returns an inverted box that any call to IncludePoint
// will collapse onto the included point.
func EmptyBox() ms3.Box {
	return ms3.Box{
		Min: Elem(math32.MaxFloat32),
		Max: Elem(-math32.MaxFloat32),
	}
}

// IsEmpty reports whether the box contains no point at all.
func IsEmpty(a ms3.Box) bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

// IncludePoint enlarges a 3d box to include a point.
func IncludePoint(a ms3.Box, v ms3.Vec) ms3.Box {
	return ms3.Box{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Union returns a box enclosing two 3d boxes. Empty boxes are ignored.
func Union(a, b ms3.Box) ms3.Box {
	if IsEmpty(a) {
		return b
	} else if IsEmpty(b) {
		return a
	}
	return ms3.Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// CenteredBox creates a box centered at the origin with the given half extents.
func CenteredBox(half ms3.Vec) ms3.Box {
	return ms3.Box{Min: ms3.Scale(-1, half), Max: half}
}

// BoxEqualWithin tests the equality of 3d boxes.
func BoxEqualWithin(a, b ms3.Box, tol float32) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}
