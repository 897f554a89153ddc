package mueddi

// transitionMap is the inner level of a lazyTable: characteristic vector
// to resulting union, for transitions out of one particular outer union.
type transitionMap map[CharVec]*reducedUnion

// lazyTable is a LazyTable(n) (spec.md §3): it owns the per-n map from a
// union to its per-character-vector transitions, seeded with the
// singleton union {(0,0)} -> empty. It is independent of any particular
// query, so it is shared across all queries of a given tolerance n via
// Cache.
type lazyTable struct {
	n           int
	transitions map[unionKey]transitionMap
}

func newLazyTable(n int) *lazyTable {
	lt := &lazyTable{n: n, transitions: make(map[unionKey]transitionMap)}
	zero := newReducedUnion()
	zero.addUnchecked(newRelPos(0, 0))
	lt.transitions[zero.key()] = transitionMap{}
	return lt
}

// relStateWindowLen computes rl = min(2n+1, w-i), the width of the active
// sub-window of the query the facade builds a full characteristic vector
// over.
func (lt *lazyTable) relStateWindowLen(i, w int) int {
	if w < i {
		panic("mueddi: relStateWindowLen called with base past query length")
	}
	rl := 2*lt.n + 1
	if w-i < rl {
		rl = w - i
	}
	return rl
}

// delta computes the full transition delta(U, chi) (spec.md §4.5): for
// each position in the outer union, slice chi down to that position's
// sub-window, run the elementary transition, and accumulate the results.
// Both levels of the map are memoised, so repeated (union, char-vector)
// pairs - across any query sharing this n - return the identical union
// object without recomputing.
func (lt *lazyTable) delta(outer *reducedUnion, i, w int, cv CharVec) *reducedUnion {
	key := outer.key()
	inner, ok := lt.transitions[key]
	if !ok {
		inner = transitionMap{}
		lt.transitions[key] = inner
	}

	if image, ok := inner[cv]; ok {
		return image
	}

	image := newReducedUnion()
	for _, p := range outer.positions {
		image.update(elemDelta(lt.n, i, w, p, cv))
	}
	inner[cv] = image
	return image
}

// Cache owns one lazyTable per tolerance n, shared across every query and
// every Facade built against it. It grows monotonically and is not safe
// for simultaneous use from multiple goroutines - callers must serialise
// access or use one Cache per goroutine.
type Cache struct {
	tables map[int]*lazyTable
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[int]*lazyTable)}
}

func (c *Cache) tableFor(n int) *lazyTable {
	t, ok := c.tables[n]
	if !ok {
		t = newLazyTable(n)
		c.tables[n] = t
	}
	return t
}
