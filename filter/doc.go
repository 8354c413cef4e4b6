// Package filter is a small, higher-order filter/map harness over
// polygon sequences that shares the BSP core's polygon-sequence
// contract (bsp.Polygon).
//
// Filter applies a predicate; MapWithIndex applies a per-polygon mapper
// that additionally receives a VertexIndex, as the extension point for
// operations like edge-bisector insertion. The two built-in behaviors —
// EdgeSingularity (a predicate) and InsertEdgeBisectors (a mapper) —
// need concrete vertex access the abstract bsp.Polygon contract
// deliberately withholds, so they operate on *geom.Polygon specifically.
// Filter is generic over bsp.Polygon; MapWithIndex and its Mapper type
// operate on *geom.Polygon sequences.
package filter
