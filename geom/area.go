package geom

// Area returns the surface area of a planar convex polygon via fan
// triangulation from its first vertex — used by test suites to check
// that Boolean operations and triangulation conserve surface area. It
// is not part of the bsp.Polygon/Splitter contracts; callers outside
// tests have no need of it.
func (p *Polygon) Area() float64 {
	if len(p.Vertices) < 3 {
		return 0
	}
	var total float64
	v0 := p.Vertices[0]
	for i := 1; i < len(p.Vertices)-1; i++ {
		e1 := p.Vertices[i].Sub(v0)
		e2 := p.Vertices[i+1].Sub(v0)
		total += e1.Cross(e2).Length() / 2
	}
	return total
}
