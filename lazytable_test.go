package mueddi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazyTableSeededWithZeroState(t *testing.T) {
	lt := newLazyTable(2)
	zero := newReducedUnion()
	zero.addUnchecked(newRelPos(0, 0))
	_, ok := lt.transitions[zero.key()]
	require.True(t, ok, "LazyTable(n) must be seeded with {(0,0)} -> empty")
}

func TestLazyTableMonotoneSameInputsSameObject(t *testing.T) {
	// spec.md §8 invariant 6: repeated queries against the same (union,
	// char-vector) pair return the same union object (by value).
	lt := newLazyTable(2)
	outer := newReducedUnion()
	outer.addUnchecked(newRelPos(0, 0))
	cv := MakeCharVec([]rune("ab"), 'a')

	first := lt.delta(outer, 0, 5, cv)
	second := lt.delta(outer, 0, 5, cv)
	require.True(t, first == second, "expected the identical cached object, got distinct allocations")
}

func TestCacheSharesTablesAcrossQueries(t *testing.T) {
	cache := NewCache()
	t1 := cache.tableFor(2)
	t2 := cache.tableFor(2)
	require.True(t, t1 == t2, "Cache must hand back the same LazyTable for the same n")

	t3 := cache.tableFor(3)
	require.False(t, t1 == t3)
}
