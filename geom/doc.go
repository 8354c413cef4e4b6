// Package geom is the polygon/plane primitive library the bsp package
// treats as an external collaborator: vector math, plane equations,
// convex-polygon splitting. bsp never imports geom's
// concrete types in its algorithmic files — only the interfaces declared
// in bsp/contracts.go — but geom is the shipped implementation that
// makes the core runnable and testable end to end.
//
// Polygon.ID exists purely for log/debug correlation (via
// github.com/google/uuid); it is never consulted by Clone, Invert,
// classification, or equality.
package geom
