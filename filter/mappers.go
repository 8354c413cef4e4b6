package filter

import (
	"golang.org/x/exp/slices"

	"github.com/makeclean/csgtool/geom"
)

// InsertEdgeBisectors is the edge-bisector insert mapper: for each edge
// (v_i, v_{i+1}) of p, query idx for vertices lying on that segment; if
// any are found, insert them between v_i and v_{i+1}, sorted by
// distance from v_i, followed by v_{i+1} itself. When no intermediate
// vertices are found on an edge, only v_i is carried forward before
// moving to the next edge, and v_{i+1} is picked up in the following
// iteration.
func InsertEdgeBisectors(dst []*geom.Polygon, idx VertexIndex, p *geom.Polygon) []*geom.Polygon {
	n := len(p.Vertices)
	newVerts := make([]geom.Vector3, 0, n)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.Vertices[i], p.Vertices[j]
		newVerts = append(newVerts, vi)

		between := idx.SearchSegment(vi, vj)
		if len(between) == 0 {
			continue
		}
		between = append([]geom.Vector3(nil), between...)
		slices.SortFunc(between, func(a, b geom.Vector3) bool {
			return vi.Distance(a) < vi.Distance(b)
		})
		newVerts = append(newVerts, between...)
	}

	out := &geom.Polygon{Vertices: newVerts, Face: p.Face, Shared: p.Shared}
	return append(dst, out)
}
