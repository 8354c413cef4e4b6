package filter

import "github.com/makeclean/csgtool/geom"

// VertexIndex is the abstract spatial-index contract the edge-bisector
// mapper consumes. meshindex.Index is the shipped implementation.
type VertexIndex interface {
	SearchSegment(a, b geom.Vector3) []geom.Vector3
}

// Mapper consumes (destination-sequence, index, polygon) and appends
// whatever it produces to dst, returning the extended sequence — the
// extension point operations like edge-bisector insertion plug into.
type Mapper func(dst []*geom.Polygon, idx VertexIndex, p *geom.Polygon) []*geom.Polygon

// MapWithIndex invokes mapper once per polygon in src, threading the
// accumulating destination sequence through.
func MapWithIndex(dst []*geom.Polygon, src []*geom.Polygon, idx VertexIndex, mapper Mapper) []*geom.Polygon {
	out := dst
	for _, p := range src {
		out = mapper(out, idx, p)
	}
	return out
}
