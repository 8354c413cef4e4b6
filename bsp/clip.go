package bsp

// ClipPolygons restricts polys to the side of tree that the tree
// interprets as "kept" — by convention, the FRONT side of every divider
//. The input polys is never consumed; every
// polygon in the result is a fresh clone.
//
// At each node N of tree:
//   - if polys is empty, return empty.
//   - if N has no divider (empty tree), return a deep clone of polys.
//   - otherwise partition polys through subdivide against N.Divider,
//     with coplanarFront aliased to the front bucket and coplanarBack
//     aliased to the back bucket.
//   - recurse the front bucket into N.Front if present, else keep it
//     (deep-cloned).
//   - recurse the back bucket into N.Back if present, else DISCARD it —
//     polygons behind a divider with no back subtree fall into solid
//     space and are removed.
//   - concatenate front-result with (optional) back-result.
func ClipPolygons(splitter Splitter, tree *Node, polys []Polygon, opts ...Option) ([]Polygon, error) {
	if splitter == nil {
		return nil, ErrNilSplitter
	}
	if len(polys) == 0 {
		return []Polygon{}, nil
	}
	if tree == nil || tree.Divider == nil {
		return cloneAll(polys), nil
	}

	o := resolveOptions(opts)

	n := len(polys)
	front := make([]Polygon, 0, n)
	back := make([]Polygon, 0, n)
	s := &sinks{
		coplanarFront: &front,
		coplanarBack:  &back,
		front:         &front,
		back:          &back,
	}
	for i, p := range polys {
		if err := subdivide(splitter, tree.Divider, p, s); err != nil {
			return nil, wrapf(err, "bsp: clip: subdivide polygon %d", i)
		}
	}

	var resultFront []Polygon
	var err error
	if tree.Front != nil {
		resultFront, err = ClipPolygons(splitter, tree.Front, front, WithConfig(o.Config), WithLogger(o.Log))
		if err != nil {
			return nil, wrapf(err, "bsp: clip: front subtree")
		}
	} else {
		resultFront = cloneAll(front)
	}

	result := make([]Polygon, 0, len(resultFront))
	result = append(result, resultFront...)

	if tree.Back != nil {
		resultBack, err := ClipPolygons(splitter, tree.Back, back, WithConfig(o.Config), WithLogger(o.Log))
		if err != nil {
			return nil, wrapf(err, "bsp: clip: back subtree")
		}
		result = append(result, resultBack...)
	}
	// else: back bucket falls into solid space behind a no-back divider
	// and is discarded — this inside/outside asymmetry is what makes
	// ClipPolygons a one-sided filter rather than a partition.

	o.Log.WithField("node", tree.id).Debug("bsp: clipped polygons")

	return result, nil
}

func cloneAll(polys []Polygon) []Polygon {
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Clone()
	}
	return out
}

// Clip destructively replaces us with the tree built from
// clip(them, polygons-of(us)):
//
//	old := Emit(us, triangulate=false)
//	new := ClipPolygons(them, old)
//	newTree := Build(new, copy=true)
//
// us's old Polygons, Divider, and children are then discarded and
// newTree's fields are moved into us, preserving us's identity — callers
// holding a *Node for us see the updated tree.
//
// This is all-or-nothing: on any internal failure us is left untouched.
//
// The flatten-then-rebuild shape (rather than a recursive node-for-node
// clip) trades the cost of re-partitioning the whole subtree for a
// simpler, more robust implementation.
func Clip(splitter Splitter, us, them *Node, opts ...Option) (*Node, error) {
	if us == nil || them == nil {
		return nil, ErrNilNode
	}
	if splitter == nil {
		return nil, ErrNilSplitter
	}
	o := resolveOptions(opts)

	old, err := Emit(splitter, us, false, nil, WithConfig(o.Config), WithLogger(o.Log))
	if err != nil {
		return us, wrapf(err, "bsp: clip: emit old polygons")
	}

	newPolys, err := ClipPolygons(splitter, them, old, WithConfig(o.Config), WithLogger(o.Log))
	if err != nil {
		return us, wrapf(err, "bsp: clip: clip polygons against remote tree")
	}

	var newTree *Node
	if len(newPolys) == 0 {
		newTree = NewNode()
	} else {
		newTree, err = Build(splitter, nil, newPolys, true, WithConfig(o.Config), WithLogger(o.Log))
		if err != nil {
			return us, wrapf(err, "bsp: clip: rebuild tree")
		}
	}

	DestroyTree(us.Front)
	DestroyTree(us.Back)
	us.Destroy()

	us.Divider = newTree.Divider
	us.Polygons = newTree.Polygons
	us.Front = newTree.Front
	us.Back = newTree.Back

	o.Log.WithFields(map[string]interface{}{"us": us.id, "them": them.id}).Debug("bsp: destructive clip complete")

	return us, nil
}
