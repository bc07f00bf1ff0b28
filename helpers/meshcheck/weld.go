package meshcheck

import (
	"math"

	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld groups vertex positions closer than tol to each other. It returns
// for every position the id of its group and the number of groups. Group
// ids are assigned in order of first appearance.
func Weld(positions []ms3.Vec, tol float32) (remap []int, groups int) {
	remap = make([]int, len(positions))
	if len(positions) == 0 {
		return remap, 0
	}
	pts := make(weldPoints, len(positions))
	for i, p := range positions {
		pts[i] = weldPoint{V: r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}, idx: i}
	}
	tree := kdtree.New(pts, false)
	for i := range remap {
		remap[i] = -1
	}
	tol2 := float64(tol) * float64(tol)
	for i, p := range positions {
		if remap[i] >= 0 {
			continue
		}
		id := groups
		groups++
		remap[i] = id
		q := &weldPoint{V: r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}, idx: -1}
		keep := kdtree.NewDistKeeper(tol2)
		tree.NearestSet(keep, q)
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue // Max distance sentinel.
			}
			j := c.Comparable.(*weldPoint).idx
			if remap[j] < 0 {
				remap[j] = id
			}
		}
	}
	return remap, groups
}

// weldPoint is a vertex position stored in the kd-tree.
type weldPoint struct {
	V   r3.Vec
	idx int
}

func (p *weldPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(*weldPoint)
	switch d {
	case 0:
		return p.V.X - q.V.X
	case 1:
		return p.V.Y - q.V.Y
	case 2:
		return p.V.Z - q.V.Z
	}
	panic("illegal dimension")
}

func (p *weldPoint) Dims() int { return 3 }

// Distance returns the squared euclidean distance.
func (p *weldPoint) Distance(c kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(p.V, c.(*weldPoint).V))
}

type weldPoints []weldPoint

func (w weldPoints) Index(i int) kdtree.Comparable { return &w[i] }
func (w weldPoints) Len() int                      { return len(w) }

func (w weldPoints) Pivot(d kdtree.Dim) int {
	p := weldPlane{dim: d, points: w}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (w weldPoints) Slice(start, end int) kdtree.Interface { return w[start:end] }

// weldPlane sorts points along one dimension for kd-tree partitioning.
type weldPlane struct {
	dim    kdtree.Dim
	points weldPoints
}

func (p weldPlane) Less(i, j int) bool {
	return p.points[i].Compare(&p.points[j], p.dim) < 0
}
func (p weldPlane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }
func (p weldPlane) Len() int      { return len(p.points) }
func (p weldPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

// suggestTol returns a weld tolerance relative to the extent of positions.
func suggestTol(positions []ms3.Vec) float32 {
	var maxAbs float64
	for _, p := range positions {
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(float64(p.X)), math.Max(math.Abs(float64(p.Y)), math.Abs(float64(p.Z)))))
	}
	if maxAbs == 0 {
		return 1e-6
	}
	return float32(maxAbs * 1e-5)
}
