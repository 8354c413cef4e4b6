package filter

import (
	"github.com/makeclean/csgtool/bsp"
	"github.com/makeclean/csgtool/geom"
)

// AsPredicate adapts a *geom.Polygon predicate to the generic
// bsp.Polygon-typed Predicate the Filter harness expects, for use with
// concrete geom.Polygon sequences. Polygons that are not *geom.Polygon
// are rejected rather than silently passed.
func AsPredicate(fn func(*geom.Polygon) bool) Predicate {
	return func(p bsp.Polygon) bool {
		gp, ok := p.(*geom.Polygon)
		return ok && fn(gp)
	}
}

// EdgeSingularity reports true if no two adjacent vertices of p are
// equal — i.e. p has no degenerate (zero-length) edges.
//
// Adjacency wraps: the edge from the last vertex back to the first is
// checked too.
func EdgeSingularity(p *geom.Polygon) bool {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if p.Vertices[i] == p.Vertices[j] {
			return false
		}
	}
	return true
}
