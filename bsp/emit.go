package bsp

// Emit walks the tree in back-first, self, front-last order and copies
// every polygon into dst. This traversal order is a stable emission
// order only — not used for anything resembling a live
// painter's-algorithm render in this package.
//
// If makeTriangles is set, any polygon with more than three vertices is
// fan-triangulated as (v0, v[i-1], v[i]) for i in [2, vertexCount);
// polygons with exactly three vertices pass through cloned; polygons
// with fewer than three are a hard error (ErrDegeneratePolygon).
//
// dst may be provided (append mode) or nil (freshly allocated). On
// failure, a freshly allocated destination is discarded (Emit returns
// nil); a caller-provided dst is left as-is with whatever was copied
// before the failure still visible.
func Emit(splitter Splitter, node *Node, makeTriangles bool, dst []Polygon, opts ...Option) ([]Polygon, error) {
	o := resolveOptions(opts)
	ownedFresh := dst == nil

	out, err := emitInto(splitter, node, makeTriangles, dst, o)
	if err != nil {
		if ownedFresh {
			return nil, err
		}
		return out, err
	}
	return out, nil
}

// emitInto is the recursive core; it never decides ownership, only
// accumulates into whatever dst it was handed.
func emitInto(splitter Splitter, node *Node, makeTriangles bool, dst []Polygon, o *Options) ([]Polygon, error) {
	if node == nil {
		return dst, nil
	}
	if makeTriangles && splitter == nil {
		return dst, ErrNilSplitter
	}

	out := dst
	var err error
	if node.Back != nil {
		out, err = emitInto(splitter, node.Back, makeTriangles, out, o)
		if err != nil {
			return out, wrapf(err, "bsp: emit: back subtree")
		}
	}

	out, err = copyNodePolygons(splitter, node, makeTriangles, out)
	if err != nil {
		return out, err
	}

	if node.Front != nil {
		out, err = emitInto(splitter, node.Front, makeTriangles, out, o)
		if err != nil {
			return out, wrapf(err, "bsp: emit: front subtree")
		}
	}

	o.Log.WithField("node", node.id).Debug("bsp: emitted node")

	return out, nil
}

// copyNodePolygons copies (and optionally triangulates) one node's own
// Polygons slice into dst.
func copyNodePolygons(splitter Splitter, node *Node, makeTriangles bool, dst []Polygon) ([]Polygon, error) {
	for _, p := range node.Polygons {
		vc := p.VertexCount()
		switch {
		case !makeTriangles || vc == 3:
			dst = append(dst, p.Clone())
		case vc > 3:
			for i := 2; i < vc; i++ {
				dst = append(dst, splitter.Triangle(p, 0, i-1, i))
			}
		default:
			return dst, wrapf(ErrDegeneratePolygon, "bsp: emit: polygon has %d vertices", vc)
		}
	}
	return dst, nil
}
