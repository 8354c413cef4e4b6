// Package meshindex is the spatial vertex index the filter package's
// edge-bisector mapper treats as an external collaborator: given a
// segment [a,b], report which indexed vertices lie on it.
//
// Index is grid-hashed: vertices are bucketed into fixed-size cells, and
// SearchSegment only walks the cells the segment's bounding box touches.
// Repeated queries for the same segment (common — adjacent polygons in a
// mesh share edges, and the edge-bisector mapper is invoked once per
// edge of every polygon) are memoized in an LRU cache
// (github.com/hashicorp/golang-lru), sized at construction time.
package meshindex
