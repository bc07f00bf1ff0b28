package meshgen

import (
	"sync"
)

// Build writes g into a fresh sink and reports the bounds passed to
// the sink's SetBounds method.
func Build(sink Sink, g Generator) Bounds {
	return BuildAll(sink, g)
}

// BuildAll appends every generator to sink in order, as a single mesh.
// Vertex indices of later generators are offset by the vertices of
// earlier ones. SetBounds is called once with the union of the
// generators' bounds.
func BuildAll(sink Sink, gens ...Generator) Bounds {
	ctx := NewContext(sink, 0)
	bounds := EmptyBounds()
	for _, g := range gens {
		bounds = bounds.Union(appendGenerator(ctx, g))
	}
	sink.SetBounds(bounds.Box, bounds.Radius)
	return bounds
}

// appendGenerator appends g through ctx and returns the bounds g reports.
func appendGenerator(ctx *Context, g Generator) Bounds {
	ctx.takeBounds()
	g.AddTo(ctx)
	accumulated := ctx.takeBounds()
	if b, ok := g.(Bounder); ok {
		return b.Bounds()
	}
	return accumulated
}

// BuildConcurrent generates each generator into its own Buffer on a
// separate goroutine and concatenates the results into sink in argument
// order. The result is identical to BuildAll with the same arguments.
func BuildConcurrent(sink Sink, gens ...Generator) Bounds {
	parts := make([]*Buffer, len(gens))
	var wg sync.WaitGroup
	wg.Add(len(gens))
	for i := range gens {
		go func(i int) {
			defer wg.Done()
			nv, ni := gens[i].Counts()
			parts[i] = NewBuffer(nv, ni)
			Build(parts[i], gens[i])
		}(i)
	}
	wg.Wait()
	return Concat(sink, parts...)
}

// Concat appends the contents of parts to dst as a single mesh, shifting
// the indices of each part past the vertices of the parts before it.
// SetBounds is called on dst once with the union of the parts' bounds.
func Concat(dst Sink, parts ...*Buffer) Bounds {
	bounds := EmptyBounds()
	var offset uint32
	for _, p := range parts {
		p.appendTo(dst, offset)
		offset += uint32(p.VertexCount())
		bounds = bounds.Union(p.Bounds)
	}
	dst.SetBounds(bounds.Box, bounds.Radius)
	return bounds
}

// Counts returns the summed vertex and index counts of gens.
func Counts(gens ...Generator) (numVertex, numIndex int) {
	for _, g := range gens {
		nv, ni := g.Counts()
		numVertex += nv
		numIndex += ni
	}
	return numVertex, numIndex
}
