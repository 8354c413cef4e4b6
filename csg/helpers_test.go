package csg_test

import (
	"github.com/makeclean/csgtool/bsp"
	"github.com/makeclean/csgtool/geom"
)

func defaultSplitter() *geom.DefaultSplitter {
	return geom.NewDefaultSplitter(nil)
}

// unitCube returns the 6 quad faces of the axis-aligned [0,1]^3 cube,
// each wound counter-clockwise as seen from outside.
func unitCube() []bsp.Polygon {
	v := func(x, y, z float64) geom.Vector3 { return geom.Vector3{X: x, Y: y, Z: z} }
	faces := [][4]geom.Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)},
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)},
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0)},
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)},
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)},
	}
	out := make([]bsp.Polygon, 0, len(faces))
	for _, f := range faces {
		out = append(out, geom.NewPolygon(f[:], nil))
	}
	return out
}

func cubeSpan(lo, hi float64) []bsp.Polygon {
	out := make([]bsp.Polygon, 0, 6)
	for _, p := range unitCube() {
		gp := p.(*geom.Polygon)
		verts := make([]geom.Vector3, len(gp.Vertices))
		for i, v := range gp.Vertices {
			verts[i] = geom.Vector3{
				X: lo + v.X*(hi-lo),
				Y: lo + v.Y*(hi-lo),
				Z: lo + v.Z*(hi-lo),
			}
		}
		out = append(out, geom.NewPolygon(verts, nil))
	}
	return out
}

func cubeAt(dx, dy, dz float64) []bsp.Polygon {
	out := make([]bsp.Polygon, 0, 6)
	for _, p := range unitCube() {
		gp := p.(*geom.Polygon)
		verts := make([]geom.Vector3, len(gp.Vertices))
		for i, v := range gp.Vertices {
			verts[i] = geom.Vector3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
		}
		out = append(out, geom.NewPolygon(verts, nil))
	}
	return out
}

func totalArea(polys []bsp.Polygon) float64 {
	var sum float64
	for _, p := range polys {
		sum += p.(*geom.Polygon).Area()
	}
	return sum
}

func centroid(p bsp.Polygon) geom.Vector3 {
	gp := p.(*geom.Polygon)
	var c geom.Vector3
	for _, v := range gp.Vertices {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(gp.Vertices)))
}

// insideOpen reports whether x lies strictly inside (lo, hi).
func insideOpen(x, lo, hi float64) bool {
	return x > lo && x < hi
}
