// Package csgtool is a constructive solid geometry engine built on a
// Binary Space Partitioning tree of convex polygons.
//
// It brings together:
//
//   - geom       — vectors, planes, and polygons; the concrete splitter
//   - bsp        — the BSP core: Build, Emit, Invert, ClipPolygons, Clip
//   - csg        — Union, Intersection, Difference, SymmetricDifference
//   - meshindex  — a grid-hashed spatial index for mesh post-processing
//   - filter     — a small filter/map pipeline over polygon sequences
//   - bspconfig  — epsilon and build-default configuration, loadable
//     from YAML
//
// The BSP core treats its polygon representation as an external
// collaborator (bsp.Polygon, bsp.Splitter) rather than a concrete type,
// so geom's Polygon/DefaultSplitter pair can in principle be swapped for
// an alternative kernel without touching bsp itself.
//
//	tree, err := bsp.Build(splitter, nil, faces, true)
//	solid := csg.FromNode(tree)
//	union, err := csg.Union(splitter, a, b)
package csgtool
