package mueddi

import "sort"

const modAdler = 65521

// reducedUnion is a subsumption-reduced, strictly-sorted set of RelPos: the
// state of the universal Levenshtein automaton. Two unions are the same
// automaton state iff their position sequences are equal, which is why
// lookups in lazyTable key on the full sequence rather than a hash alone.
//
// Like the teacher's Trie node, this is a plain pointer-receiver struct;
// there is no reference counting to fight, just a slice and a cached hash
// that gets invalidated on mutation.
type reducedUnion struct {
	positions  []RelPos
	cachedHash uint32 // 0 means "not yet computed", recomputed lazily
}

func newReducedUnion() *reducedUnion {
	return &reducedUnion{}
}

// lowerBound returns the first index whose position is not less than p.
func (u *reducedUnion) lowerBound(p RelPos) int {
	return sort.Search(len(u.positions), func(i int) bool {
		return !u.positions[i].less(p)
	})
}

// add inserts p unless some existing position already subsumes it, and
// removes any existing positions that p itself subsumes.
func (u *reducedUnion) add(p RelPos) {
	for _, q := range u.positions {
		if q == p || q.subsumes(p) {
			return
		}
	}

	u.cachedHash = 0
	kept := u.positions[:0]
	for _, q := range u.positions {
		if !p.subsumes(q) {
			kept = append(kept, q)
		}
	}
	u.positions = kept

	ni := u.lowerBound(p)
	u.positions = append(u.positions, RelPos{})
	copy(u.positions[ni+1:], u.positions[ni:])
	u.positions[ni] = p
}

// addUnchecked inserts p, trusting the caller (the elementary-transition
// construction) that p is neither a duplicate nor subsumed by anything
// already present. It may only be called before this union has ever been
// hashed; calling it afterwards indicates a broken invariant.
func (u *reducedUnion) addUnchecked(p RelPos) {
	if u.cachedHash != 0 {
		panic("mueddi: addUnchecked called on an already-hashed union")
	}
	ni := u.lowerBound(p)
	if ni < len(u.positions) && u.positions[ni] == p {
		panic("mueddi: addUnchecked given a duplicate position")
	}
	u.positions = append(u.positions, RelPos{})
	copy(u.positions[ni+1:], u.positions[ni:])
	u.positions[ni] = p
}

// update adds every position of other into u.
func (u *reducedUnion) update(other *reducedUnion) {
	for _, p := range other.positions {
		u.add(p)
	}
}

// subtract produces a new union with every offset shifted by -di. Used
// only with di = raiseLevel() to rebase a transition's image back to
// canonical (minimum-offset-zero) form.
func (u *reducedUnion) subtract(di int16) *reducedUnion {
	out := &reducedUnion{positions: make([]RelPos, len(u.positions))}
	for i, p := range u.positions {
		out.positions[i] = p.subtract(di)
	}
	return out
}

// raiseLevel is the minimum offset across positions, 0 if the union is
// empty.
func (u *reducedUnion) raiseLevel() int16 {
	if len(u.positions) == 0 {
		return 0
	}
	min := u.positions[0].offset
	for _, p := range u.positions[1:] {
		if p.offset < min {
			min = p.offset
		}
	}
	return min
}

func (u *reducedUnion) isEmpty() bool {
	return len(u.positions) == 0
}

// equal is value equality on the position sequence.
func (u *reducedUnion) equal(other *reducedUnion) bool {
	if len(u.positions) != len(other.positions) {
		return false
	}
	for i, p := range u.positions {
		if p != other.positions[i] {
			return false
		}
	}
	return true
}

// hash returns the cached Adler-32-flavored hash of the position
// sequence, computing and caching it on first use.
func (u *reducedUnion) hash() uint32 {
	if u.cachedHash == 0 {
		u.cachedHash = hashPositions(u.positions)
	}
	return u.cachedHash
}

func hashPositions(positions []RelPos) uint32 {
	var a, b uint32 = 1, 0
	for _, p := range positions {
		a = (a + p.hash32()) % modAdler
		b = (b + a) % modAdler
	}
	return (b << 16) | a
}

// unionKey is an exact, order-sensitive encoding of a union's position
// sequence, used as the outer key of lazyTable.transitions. It stands in
// for Rust's derived Hash+Eq on ReducedUnion: unlike hash() alone it can
// never collide, since every RelPos maps to a fixed 4 bytes.
type unionKey string

func (u *reducedUnion) key() unionKey {
	buf := make([]byte, 0, len(u.positions)*4)
	for _, p := range u.positions {
		buf = append(buf,
			byte(p.offset>>8), byte(p.offset),
			byte(p.edit>>8), byte(p.edit))
	}
	return unionKey(buf)
}
