package meshindex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makeclean/csgtool/geom"
)

func TestIndex_SearchSegment_FindsMidpoint(t *testing.T) {
	idx := New(1.0, 1e-6, 0)
	idx.Insert(geom.Vector3{X: 5, Y: 0, Z: 0})

	found := idx.SearchSegment(geom.Vector3{X: 0, Y: 0, Z: 0}, geom.Vector3{X: 10, Y: 0, Z: 0})
	require.Len(t, found, 1)
	assert.Equal(t, geom.Vector3{X: 5, Y: 0, Z: 0}, found[0])
}

func TestIndex_SearchSegment_ExcludesEndpoints(t *testing.T) {
	idx := New(1.0, 1e-6, 0)
	a := geom.Vector3{X: 0, Y: 0, Z: 0}
	b := geom.Vector3{X: 10, Y: 0, Z: 0}
	idx.Insert(a)
	idx.Insert(b)

	found := idx.SearchSegment(a, b)
	assert.Empty(t, found)
}

func TestIndex_SearchSegment_ExcludesOffSegment(t *testing.T) {
	idx := New(1.0, 1e-6, 0)
	idx.Insert(geom.Vector3{X: 5, Y: 1, Z: 0})

	found := idx.SearchSegment(geom.Vector3{X: 0, Y: 0, Z: 0}, geom.Vector3{X: 10, Y: 0, Z: 0})
	assert.Empty(t, found)
}

func TestIndex_SearchSegment_SortedByDistanceFromA(t *testing.T) {
	idx := New(1.0, 1e-6, 0)
	idx.InsertAll([]geom.Vector3{
		{X: 8, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 5, Y: 0, Z: 0},
	})

	found := idx.SearchSegment(geom.Vector3{X: 0, Y: 0, Z: 0}, geom.Vector3{X: 10, Y: 0, Z: 0})
	require.Len(t, found, 3)

	want := []geom.Vector3{
		{X: 2, Y: 0, Z: 0},
		{X: 5, Y: 0, Z: 0},
		{X: 8, Y: 0, Z: 0},
	}
	if diff := cmp.Diff(want, found); diff != "" {
		t.Errorf("SearchSegment result order mismatch (-want +got):\n%s", diff)
	}
}

func TestIndex_SearchSegment_CacheHitReturnsIndependentSlice(t *testing.T) {
	idx := New(1.0, 1e-6, 0)
	idx.Insert(geom.Vector3{X: 5, Y: 0, Z: 0})
	a := geom.Vector3{X: 0, Y: 0, Z: 0}
	b := geom.Vector3{X: 10, Y: 0, Z: 0}

	first := idx.SearchSegment(a, b)
	first[0] = geom.Vector3{X: 999, Y: 999, Z: 999}

	second := idx.SearchSegment(a, b)
	require.Len(t, second, 1)
	assert.Equal(t, geom.Vector3{X: 5, Y: 0, Z: 0}, second[0])
}

func TestIndex_Insert_InvalidatesCache(t *testing.T) {
	idx := New(1.0, 1e-6, 0)
	a := geom.Vector3{X: 0, Y: 0, Z: 0}
	b := geom.Vector3{X: 10, Y: 0, Z: 0}

	assert.Empty(t, idx.SearchSegment(a, b))
	idx.Insert(geom.Vector3{X: 5, Y: 0, Z: 0})
	assert.Len(t, idx.SearchSegment(a, b), 1)
}
