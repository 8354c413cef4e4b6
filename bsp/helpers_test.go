package bsp_test

import (
	"github.com/makeclean/csgtool/bsp"
	"github.com/makeclean/csgtool/geom"
)

func defaultSplitter() *geom.DefaultSplitter {
	return geom.NewDefaultSplitter(nil)
}

// unitSquareAt builds an axis-aligned unit square in the z=z plane,
// counter-clockwise when viewed from +z.
func unitSquareAt(z float64) *geom.Polygon {
	return geom.NewPolygon([]geom.Vector3{
		{X: 0, Y: 0, Z: z},
		{X: 1, Y: 0, Z: z},
		{X: 1, Y: 1, Z: z},
		{X: 0, Y: 1, Z: z},
	}, nil)
}

// unitCube returns the 6 quad faces of the axis-aligned [0,1]^3 cube,
// each wound counter-clockwise as seen from outside the cube.
func unitCube() []bsp.Polygon {
	v := func(x, y, z float64) geom.Vector3 { return geom.Vector3{X: x, Y: y, Z: z} }
	faces := [][4]geom.Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)}, // z=0, normal -z
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)}, // z=1, normal +z
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)}, // y=0, normal -y
		{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0)}, // y=1, normal +y
		{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)}, // x=0, normal -x
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)}, // x=1, normal +x
	}
	out := make([]bsp.Polygon, 0, len(faces))
	for _, f := range faces {
		out = append(out, geom.NewPolygon(f[:], nil))
	}
	return out
}

// cubeSpan returns the 6 quad faces of the axis-aligned cube spanning
// [lo, hi]^3, each wound counter-clockwise as seen from outside.
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
	translated := make([]bsp.Polygon, 0, 6)
	for _, p := range unitCube() {
		gp := p.(*geom.Polygon)
		verts := make([]geom.Vector3, len(gp.Vertices))
		for i, v := range gp.Vertices {
			verts[i] = geom.Vector3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
		}
		translated = append(translated, geom.NewPolygon(verts, nil))
	}
	return translated
}

func polygonArea(p bsp.Polygon) float64 {
	return p.(*geom.Polygon).Area()
}

// squareAtXForClip builds a divider polygon lying in the plane x=x,
// with its normal pointing toward -x (the x < x side is its front).
func squareAtXForClip(x float64) *geom.Polygon {
	return geom.NewPolygon([]geom.Vector3{
		{X: x, Y: 0, Z: 0},
		{X: x, Y: 0, Z: 1},
		{X: x, Y: 1, Z: 1},
		{X: x, Y: 1, Z: 0},
	}, nil)
}

func unitSquareAtZ0() *geom.Polygon {
	return geom.NewPolygon([]geom.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}, nil)
}

func totalArea(polys []bsp.Polygon) float64 {
	var sum float64
	for _, p := range polys {
		sum += polygonArea(p)
	}
	return sum
}
