package bsp

// Build partitions polys into a BSP tree.
//
// node is the target to build into; if nil, a fresh node is allocated.
// If node already has a Divider (the rebuild-in-place case used by
// Clip), processing starts at polys[0]; otherwise polys[0] is taken as
// the divider and processing starts at polys[1].
//
// copy controls whether polys are cloned into the tree (true) or moved
// in by reference (false) — the caller decides which.
//
// Tree shape is a deterministic function of input order: the divider is
// always the first polygon encountered at each node, with no balancing
// heuristic.
//
// On failure the partially built node is left for the caller to
// discard via DestroyTree.
func Build(splitter Splitter, node *Node, polys []Polygon, copy bool, opts ...Option) (*Node, error) {
	if splitter == nil {
		return nil, ErrNilSplitter
	}
	o := resolveOptions(opts)

	n := len(polys)
	if n == 0 && (node == nil || node.Divider == nil) {
		return nil, ErrEmptyBag
	}

	arr := make([]Polygon, n)
	for i, p := range polys {
		if copy {
			arr[i] = p.Clone()
		} else {
			arr[i] = p
		}
	}

	return buildArray(splitter, node, arr, o)
}

// buildArray is the recursive core. It operates on a pre-sized array
// rather than a linked list to avoid list-node churn across the
// recursion.
func buildArray(splitter Splitter, node *Node, polys []Polygon, o *Options) (*Node, error) {
	if node == nil {
		node = NewNode()
	}

	start := 0
	if node.Divider == nil {
		node.Divider = polys[0].Clone()
		node.Polygons = append(node.Polygons, polys[0])
		start = 1
		o.Log.WithField("node", node.id).Debug("bsp: picked divider")
	}

	n := len(polys)
	coplanar := make([]Polygon, 0, n)
	front := make([]Polygon, 0, n)
	back := make([]Polygon, 0, n)
	s := &sinks{
		coplanarFront: &coplanar,
		coplanarBack:  &coplanar,
		front:         &front,
		back:          &back,
	}

	for i := start; i < n; i++ {
		if err := subdivide(splitter, node.Divider, polys[i], s); err != nil {
			return node, wrapf(err, "bsp: build: subdivide polygon %d", i)
		}
	}

	node.Polygons = append(node.Polygons, coplanar...)

	if len(front) > 0 {
		if node.Front == nil {
			node.Front = NewNode()
		}
		var err error
		node.Front, err = buildArray(splitter, node.Front, front, o)
		if err != nil {
			return node, wrapf(err, "bsp: build: front subtree")
		}
	}

	if len(back) > 0 {
		if node.Back == nil {
			node.Back = NewNode()
		}
		var err error
		node.Back, err = buildArray(splitter, node.Back, back, o)
		if err != nil {
			return node, wrapf(err, "bsp: build: back subtree")
		}
	}

	o.Log.WithFields(map[string]interface{}{
		"node":     node.id,
		"coplanar": len(coplanar),
		"front":    len(front),
		"back":     len(back),
	}).Debug("bsp: built node")

	return node, nil
}
