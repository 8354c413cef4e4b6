package meshindex

import (
	"fmt"
	"math"
	"sort"

	lru "github.com/hashicorp/golang-lru"

	"github.com/makeclean/csgtool/geom"
)

// DefaultCellSize buckets vertices into 1-unit grid cells — a reasonable
// default for the unit-scale geometry exercised by this repository's
// test suites; callers working at a different scale should
// pick a cellSize proportional to their typical edge length.
const DefaultCellSize = 1.0

// DefaultCacheSize bounds the number of distinct (a,b) segment queries
// memoized before the LRU cache starts evicting.
const DefaultCacheSize = 1024

type cellKey struct{ x, y, z int64 }

// Index is a grid-hashed spatial index of vertices, implementing the
// VertexIndex contract consumed by package filter.
type Index struct {
	cellSize float64
	epsilon  float64
	cells    map[cellKey][]geom.Vector3
	cache    *lru.Cache
}

// New builds an empty Index. epsilon is the on-segment tolerance used by
// SearchSegment; cellSize buckets vertices for lookup.
func New(cellSize, epsilon float64, cacheSize int) *Index {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		// lru.New only fails for size <= 0, already guarded above.
		panic(fmt.Sprintf("meshindex: unreachable lru.New failure: %v", err))
	}
	return &Index{
		cellSize: cellSize,
		epsilon:  epsilon,
		cells:    make(map[cellKey][]geom.Vector3),
		cache:    cache,
	}
}

func (idx *Index) key(v geom.Vector3) cellKey {
	return cellKey{
		x: int64(math.Floor(v.X / idx.cellSize)),
		y: int64(math.Floor(v.Y / idx.cellSize)),
		z: int64(math.Floor(v.Z / idx.cellSize)),
	}
}

// Insert adds v to the index.
func (idx *Index) Insert(v geom.Vector3) {
	k := idx.key(v)
	idx.cells[k] = append(idx.cells[k], v)
	idx.cache.Purge()
}

// InsertAll adds every vertex in vs to the index.
func (idx *Index) InsertAll(vs []geom.Vector3) {
	for _, v := range vs {
		idx.Insert(v)
	}
}

// SearchSegment reports which indexed vertices lie strictly between a
// and b (exclusive of the endpoints themselves), sorted by distance from
// a — the order the edge-bisector mapper (package filter) needs to
// insert them in.
func (idx *Index) SearchSegment(a, b geom.Vector3) []geom.Vector3 {
	cacheKey := segmentCacheKey(a, b)
	if cached, ok := idx.cache.Get(cacheKey); ok {
		return append([]geom.Vector3(nil), cached.([]geom.Vector3)...)
	}

	result := idx.searchSegmentUncached(a, b)
	idx.cache.Add(cacheKey, result)
	return append([]geom.Vector3(nil), result...)
}

func (idx *Index) searchSegmentUncached(a, b geom.Vector3) []geom.Vector3 {
	dir := b.Sub(a)
	length := dir.Length()
	if length == 0 {
		return nil
	}

	var found []geom.Vector3
	seen := map[cellKey]bool{}
	for _, k := range idx.segmentCells(a, b) {
		if seen[k] {
			continue
		}
		seen[k] = true
		for _, v := range idx.cells[k] {
			if onSegment(a, dir, length, v, idx.epsilon) {
				found = append(found, v)
			}
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return a.Distance(found[i]) < a.Distance(found[j])
	})
	return found
}

// segmentCells enumerates every grid cell the segment's bounding box
// overlaps. A bounding-box walk is sufficient here: cells hold few
// vertices in the geometry this package is exercised against, and the
// exactness of onSegment's filter matters far more than avoiding a few
// extra empty-cell lookups.
func (idx *Index) segmentCells(a, b geom.Vector3) []cellKey {
	lo := idx.key(geom.Vector3{
		X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z),
	})
	hi := idx.key(geom.Vector3{
		X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z),
	})

	var keys []cellKey
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				keys = append(keys, cellKey{x, y, z})
			}
		}
	}
	return keys
}

func onSegment(a, dir geom.Vector3, length float64, v geom.Vector3, eps float64) bool {
	t := dir.Dot(v.Sub(a)) / (length * length)
	if t <= eps/length || t >= 1-eps/length {
		return false
	}
	proj := a.Add(dir.Scale(t))
	return proj.Distance(v) <= eps
}

func segmentCacheKey(a, b geom.Vector3) string {
	return fmt.Sprintf("%.9f,%.9f,%.9f->%.9f,%.9f,%.9f", a.X, a.Y, a.Z, b.X, b.Y, b.Z)
}
