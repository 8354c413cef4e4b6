package bsp

import "github.com/google/uuid"

// Node is a BSP tree cell. A node with Divider nil is a leaf with empty
// Polygons, Front, Back — only the root of a freshly allocated empty
// tree may be in that state.
//
// Ownership is strict: each Polygon and each child Node has exactly one
// owner. Go's garbage collector reclaims memory, but Destroy/DestroyTree
// are kept as explicit bookkeeping calls so tests can assert that
// destroying a node does not disturb polygons already emitted from it.
type Node struct {
	// id correlates this node across structured log lines; never
	// consulted for equality or ordering.
	id uuid.UUID

	// Divider is the polygon whose plane defines this node's splitting
	// plane, or nil if the node is empty (invariant 1).
	Divider Polygon

	// Polygons lie coplanar with Divider, in insertion order: Divider's
	// own clone first (invariant 2), then every coplanar polygon in the
	// order encountered during build (invariant 3).
	Polygons []Polygon

	// Front is the child node for the open half-space the divider's
	// normal points toward (invariant 4), or nil.
	Front *Node

	// Back is the child node for the opposite half-space (invariant 5),
	// or nil.
	Back *Node
}

// NewNode allocates an empty leaf node.
func NewNode() *Node {
	return &Node{id: uuid.New()}
}

// ID returns the node's provenance identifier, for log correlation only.
func (n *Node) ID() uuid.UUID { return n.id }

// Destroy releases n's own polygons and divider, but not its children.
// Kept for ownership-discipline tests; safe to call on a nil receiver.
func (n *Node) Destroy() {
	if n == nil {
		return
	}
	n.Polygons = nil
	n.Divider = nil
}

// DestroyTree releases n and its entire subtree, post-order. Safe to
// call on a nil receiver.
func DestroyTree(n *Node) {
	if n == nil {
		return
	}
	DestroyTree(n.Front)
	DestroyTree(n.Back)
	n.Destroy()
	n.Front = nil
	n.Back = nil
}

// CloneTree returns a deep, independently owned copy of the tree rooted
// at n, cloning every polygon via Polygon.Clone. Used by the csg outer
// layer so Boolean operations can leave their inputs untouched.
func CloneTree(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := NewNode()
	if n.Divider != nil {
		out.Divider = n.Divider.Clone()
	}
	out.Polygons = make([]Polygon, len(n.Polygons))
	for i, p := range n.Polygons {
		out.Polygons[i] = p.Clone()
	}
	out.Front = CloneTree(n.Front)
	out.Back = CloneTree(n.Back)
	return out
}
