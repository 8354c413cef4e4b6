package bsp

import "errors"

// Sentinel errors for bsp core operations.
// Callers branch on these with errors.Is; they are never stringly wrapped
// at the definition site.
var (
	// ErrAllocationFailed marks a working-buffer, node, or sequence
	// allocation failure. No function in this package returns it (a
	// failed Go allocation panics instead); kept as a distinct sentinel
	// so callers can still test for it.
	ErrAllocationFailed = errors.New("bsp: allocation failed")

	// ErrSplitFailed marks a Splitter.Split failure on a SPANNING
	// polygon.
	ErrSplitFailed = errors.New("bsp: splitter failed to split polygon")

	// ErrDegeneratePolygon marks emit encountering a polygon with fewer
	// than three vertices while triangulating.
	ErrDegeneratePolygon = errors.New("bsp: polygon has fewer than three vertices")

	// ErrEmptyBag marks Build being invoked with zero polygons and no
	// existing divider to rebuild around.
	ErrEmptyBag = errors.New("bsp: build requires at least one polygon")

	// ErrNilNode marks an operation that requires a non-nil *Node
	// receiving nil.
	ErrNilNode = errors.New("bsp: nil node")

	// ErrNilSplitter marks an operation invoked without a Splitter.
	ErrNilSplitter = errors.New("bsp: nil splitter")
)

// A failure deep in a recursive build or clip is surfaced as plain
// error wrapping rather than a distinct sentinel: every recursive call
// site wraps its child's error with fmt.Errorf("bsp: ...: %w", err), so
// errors.Is still resolves to the original ErrSplitFailed/
// ErrAllocationFailed/ErrDegeneratePolygon at any recursion depth.
