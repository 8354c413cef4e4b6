package csg

import (
	"github.com/makeclean/csgtool/bsp"
)

// Solid is an immutable-from-the-outside handle on a BSP tree,
// representing a closed polygonal volume.
type Solid struct {
	tree *bsp.Node
}

// New builds a Solid from an unordered polygon soup via bsp.Build.
// polys is cloned; the caller's slice and its polygons are left
// untouched.
func New(splitter bsp.Splitter, polys []bsp.Polygon, opts ...bsp.Option) (*Solid, error) {
	tree, err := bsp.Build(splitter, nil, polys, true, opts...)
	if err != nil {
		return nil, err
	}
	return &Solid{tree: tree}, nil
}

// FromNode wraps an existing tree without cloning it. The returned
// Solid takes ownership: callers should not mutate node afterward
// through any other handle.
func FromNode(node *bsp.Node) *Solid {
	return &Solid{tree: node}
}

// Polygons flattens the solid to a polygon sequence via bsp.Emit.
func (s *Solid) Polygons(splitter bsp.Splitter, makeTriangles bool, opts ...bsp.Option) ([]bsp.Polygon, error) {
	if s == nil || s.tree == nil {
		return nil, nil
	}
	return bsp.Emit(splitter, s.tree, makeTriangles, nil, opts...)
}

// Tree returns the solid's underlying BSP tree. Mutating it directly
// bypasses the non-destructive guarantees the Union/Intersection/
// Difference functions provide; most callers want Polygons instead.
func (s *Solid) Tree() *bsp.Node {
	if s == nil {
		return nil
	}
	return s.tree
}

func cloneSolid(s *Solid) *bsp.Node {
	if s == nil {
		return bsp.NewNode()
	}
	return bsp.CloneTree(s.tree)
}
