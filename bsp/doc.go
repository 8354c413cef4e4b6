// Package bsp is the CORE of a constructive solid geometry engine: a
// Binary Space Partitioning tree of convex polygons.
//
// It provides four primitives — Build, Emit, Invert, ClipPolygons — plus
// the destructive Clip that replaces a tree with the result of clipping
// against another. Everything else (Boolean union/intersection/
// difference) is built on top of these in package csg.
//
// bsp treats its polygon representation as an external collaborator: it
// only knows the Polygon and Splitter interfaces declared in
// contracts.go. Package geom is the shipped implementation; bsp itself
// never imports it.
//
//	tree, err := bsp.Build(splitter, nil, polys, true)
//	flat, err := bsp.Emit(splitter, tree, true, nil)
//	bsp.Invert(tree)
//	kept, err := bsp.ClipPolygons(splitter, tree, otherPolys)
package bsp
