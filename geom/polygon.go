package geom

import (
	"github.com/google/uuid"

	"github.com/makeclean/csgtool/bsp"
)

// Polygon is an ordered ring of three or more coplanar 3D vertices with
// a supporting plane and optional shared metadata. It implements
// bsp.Polygon.
type Polygon struct {
	// id correlates this polygon across structured log lines and debug
	// dumps; never consulted for equality, ordering, or any geometric
	// operation.
	id uuid.UUID

	Vertices []Vector3
	Face     Plane
	Shared   map[string]interface{}
}

// NewPolygon builds a Polygon from an ordered, convex, counter-clockwise
// vertex ring, deriving its supporting plane from the first three
// vertices.
func NewPolygon(vertices []Vector3, shared map[string]interface{}) *Polygon {
	p := &Polygon{
		id:       uuid.New(),
		Vertices: append([]Vector3(nil), vertices...),
		Shared:   shared,
	}
	if len(vertices) >= 3 {
		p.Face = NewPlaneFromPoints(vertices[0], vertices[1], vertices[2])
	}
	return p
}

// ID returns the polygon's provenance identifier, for log/debug
// correlation only.
func (p *Polygon) ID() uuid.UUID { return p.id }

// Clone returns a deep, independently owned copy.
func (p *Polygon) Clone() bsp.Polygon {
	return &Polygon{
		id:       uuid.New(),
		Vertices: append([]Vector3(nil), p.Vertices...),
		Face:     p.Face,
		Shared:   p.Shared,
	}
}

// Invert reverses vertex order and negates the plane's normal/offset in
// place, returning the same logical entity.
func (p *Polygon) Invert() bsp.Polygon {
	for i, j := 0, len(p.Vertices)-1; i < j; i, j = i+1, j-1 {
		p.Vertices[i], p.Vertices[j] = p.Vertices[j], p.Vertices[i]
	}
	p.Face = p.Face.Flip()
	return p
}

// VertexCount reports the ring's vertex count.
func (p *Polygon) VertexCount() int { return len(p.Vertices) }

// Plane returns the polygon's supporting plane.
func (p *Polygon) Plane() Plane { return p.Face }

// Normal returns the polygon's unit normal.
func (p *Polygon) Normal() Vector3 { return p.Face.Normal }
