package meshgen

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/meshgen/internal/d3"
)

// Bounds is the bounding information written to a sink once a build is
// complete: an axis aligned box and the radius of a bounding sphere
// centered at the origin.
type Bounds struct {
	Box    ms3.Box
	Radius float32
}

// EmptyBounds returns bounds that contain nothing.
func EmptyBounds() Bounds {
	return Bounds{Box: d3.EmptyBox()}
}

// IsEmpty reports whether b has not included any point.
func (b Bounds) IsEmpty() bool { return d3.IsEmpty(b.Box) }

// Include returns b enlarged to contain p.
func (b Bounds) Include(p ms3.Vec) Bounds {
	return Bounds{
		Box:    d3.IncludePoint(b.Box, p),
		Radius: math32.Max(b.Radius, ms3.Norm(p)),
	}
}

// Union returns bounds enclosing both a and b.
func (b Bounds) Union(a Bounds) Bounds {
	return Bounds{
		Box:    d3.Union(b.Box, a.Box),
		Radius: math32.Max(b.Radius, a.Radius),
	}
}
