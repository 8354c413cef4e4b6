package filter

import "github.com/makeclean/csgtool/bsp"

// Predicate reports whether a polygon should be kept by Filter.
type Predicate func(p bsp.Polygon) bool

// Filter returns dst with a deep clone of every polygon in src for which
// test reports true appended to it. dst may be nil.
func Filter(dst []bsp.Polygon, src []bsp.Polygon, test Predicate) []bsp.Polygon {
	out := dst
	for _, p := range src {
		if test(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
