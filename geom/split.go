package geom

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/makeclean/csgtool/bsp"
	"github.com/makeclean/csgtool/bspconfig"
)

// per-vertex classification used internally while splitting; distinct
// from bsp.Classification, which classifies a whole polygon.
const (
	vCoplanar = 0
	vFront    = 1
	vBack     = 2
	vSpanning = 3
)

// DefaultSplitter is the shipped implementation of bsp.Splitter: plane
// classification and robust convex-polygon splitting against a
// configurable thickness epsilon.
type DefaultSplitter struct {
	Epsilon float64
}

// NewDefaultSplitter builds a DefaultSplitter using cfg's epsilon
// (bspconfig.Default() when cfg is nil), keeping the classification and
// splitting epsilon tied to the same constant.
func NewDefaultSplitter(cfg *bspconfig.Config) *DefaultSplitter {
	return &DefaultSplitter{Epsilon: bspconfig.Or(cfg).Epsilon}
}

func (s *DefaultSplitter) classifyVertex(divider *Polygon, v Vector3) int {
	d := divider.Face.Normal.Dot(v) - divider.Face.W
	switch {
	case d < -s.Epsilon:
		return vBack
	case d > s.Epsilon:
		return vFront
	default:
		return vCoplanar
	}
}

// Classify reports how p relates to divider's supporting plane: all
// distances within ±ε is COPLANAR, all > +ε is FRONT, all < −ε is BACK,
// otherwise SPANNING.
func (s *DefaultSplitter) Classify(divider, p bsp.Polygon) bsp.Classification {
	d := divider.(*Polygon)
	poly := p.(*Polygon)

	combined := 0
	for _, v := range poly.Vertices {
		combined |= s.classifyVertex(d, v)
	}
	switch combined {
	case vCoplanar:
		return bsp.Coplanar
	case vFront:
		return bsp.Front
	case vBack:
		return bsp.Back
	default:
		return bsp.Spanning
	}
}

// CoplanarFacesFront reports whether p's plane normal points the same
// direction as divider's,
// normal(p)) > 0; a zero dot product, which cannot occur for
// well-formed coplanar normals, is treated as false).
func (s *DefaultSplitter) CoplanarFacesFront(divider, p bsp.Polygon) bool {
	d := divider.(*Polygon)
	poly := p.(*Polygon)
	return d.Face.Normal.Dot(poly.Face.Normal) > 0
}

// Split divides a SPANNING polygon against divider's plane into a
// strictly-front fragment and a strictly-back fragment, walking each
// edge of p and interpolating a new vertex at every plane crossing —
// the classic convex-polygon/plane split. Both fragments keep p's
// Shared metadata; p itself is consumed.
func (s *DefaultSplitter) Split(divider, p bsp.Polygon) (bsp.Polygon, bsp.Polygon, error) {
	d := divider.(*Polygon)
	poly := p.(*Polygon)

	n := len(poly.Vertices)
	types := make([]int, n)
	for i, v := range poly.Vertices {
		types[i] = s.classifyVertex(d, v)
	}

	frontVerts := make([]Vector3, 0, n+1)
	backVerts := make([]Vector3, 0, n+1)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ti, tj := types[i], types[j]
		vi, vj := poly.Vertices[i], poly.Vertices[j]

		if ti != vBack {
			frontVerts = append(frontVerts, vi)
		}
		if ti != vFront {
			backVerts = append(backVerts, vi)
		}
		if (ti | tj) == vSpanning {
			denom := d.Face.Normal.Dot(vj.Sub(vi))
			t := (d.Face.W - d.Face.Normal.Dot(vi)) / denom
			mid := vi.Lerp(vj, t)
			frontVerts = append(frontVerts, mid)
			backVerts = append(backVerts, mid)
		}
	}

	if len(frontVerts) < 3 || len(backVerts) < 3 {
		return nil, nil, fmt.Errorf("geom: split produced a degenerate fragment (front=%d back=%d)", len(frontVerts), len(backVerts))
	}

	front := &Polygon{id: uuid.New(), Vertices: frontVerts, Face: poly.Face, Shared: poly.Shared}
	back := &Polygon{id: uuid.New(), Vertices: backVerts, Face: poly.Face, Shared: poly.Shared}
	return front, back, nil
}

// Triangle returns a new triangle polygon built from p's own vertices
// at ring indices i, j, k — the fan-triangulation primitive used when
// emitting with triangulation enabled.
func (s *DefaultSplitter) Triangle(p bsp.Polygon, i, j, k int) bsp.Polygon {
	poly := p.(*Polygon)
	return NewPolygon([]Vector3{poly.Vertices[i], poly.Vertices[j], poly.Vertices[k]}, poly.Shared)
}
