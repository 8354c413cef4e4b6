package bsp

// sinks bundles the four output buckets subdivide appends into. The
// builder points coplanarFront and coplanarBack at one shared coplanar
// bucket, kept apart from front/back, since every coplanar polygon joins
// the node itself whichever way it faces; the clipper
// aliases coplanarFront to front and coplanarBack to back, because
// coplanar polygons are treated as belonging to the corresponding open
// half during clipping.
// Aliasing is expressed here simply by passing the same *[]Polygon
// pointer for two roles — Go slices make this safe without extra
// indirection.
type sinks struct {
	coplanarFront *[]Polygon
	coplanarBack  *[]Polygon
	front         *[]Polygon
	back          *[]Polygon
}

// subdivide routes p (or its split fragments) against divider's plane
// into the four sinks. It is the sole place SPANNING polygons are
// split; the splitter is the sole producer of replacement ownership
// for that case.
func subdivide(splitter Splitter, divider, p Polygon, s *sinks) error {
	switch splitter.Classify(divider, p) {
	case Front:
		*s.front = append(*s.front, p)
	case Back:
		*s.back = append(*s.back, p)
	case Coplanar:
		if splitter.CoplanarFacesFront(divider, p) {
			*s.coplanarFront = append(*s.coplanarFront, p)
		} else {
			*s.coplanarBack = append(*s.coplanarBack, p)
		}
	case Spanning:
		front, back, err := splitter.Split(divider, p)
		if err != nil {
			return wrapf(ErrSplitFailed, "subdivide: split polygon against divider: %v", err)
		}
		*s.front = append(*s.front, front)
		*s.back = append(*s.back, back)
	default:
		return wrapf(ErrSplitFailed, "subdivide: unknown classification")
	}
	return nil
}
