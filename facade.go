package mueddi

// LevenState is one state of the (query, n)-specific universal
// Levenshtein automaton: base is the absolute index on the query that the
// union's offsets are relative to, and union is always in canonical form
// (its minimum offset is 0).
type LevenState struct {
	base  int
	union *reducedUnion
}

// initialLevenState is the start state shared by every query: base 0,
// union {(0,0)}.
func initialLevenState() LevenState {
	u := newReducedUnion()
	u.addUnchecked(newRelPos(0, 0))
	return LevenState{base: 0, union: u}
}

// Facade is a per-query view combining the query, its code-point length,
// and the per-n lazy transition table it shares with every other query
// of the same tolerance via a Cache. It is cheap to copy: all of its
// fields are either immutable or shared by reference.
type Facade struct {
	word []rune
	w    int
	n    int
	table *lazyTable
}

// NewFacade builds a Facade for query against tolerance n, pulling (or
// lazily creating) n's LazyTable from cache. n must be between 0 and
// MaxTolerance inclusive (n=0 is legal at the engine layer and means
// "exact match only" - the harness CLI is stricter and rejects it, see
// cmd/crosstest); query must be no longer than MaxQueryLen code points.
func NewFacade(cache *Cache, query string, n int) (*Facade, error) {
	if n < 0 || n > MaxTolerance {
		return nil, ErrToleranceOutOfRange
	}
	runes := []rune(query)
	if len(runes) > MaxQueryLen {
		return nil, ErrQueryTooLong
	}
	return &Facade{
		word:  runes,
		w:     len(runes),
		n:     n,
		table: cache.tableFor(n),
	}, nil
}

// IsFinal reports whether state is accepting: some position in its union
// has a suffix of the query that fits within the residual edit budget,
// i.e. w + p.edit <= n + state.base + p.offset.
func (f *Facade) IsFinal(state LevenState) bool {
	for _, p := range state.union.positions {
		if p.edit < 0 || p.offset < 0 {
			panic("mueddi: IsFinal observed a non-canonical position")
		}
		if f.w+int(p.edit) <= f.n+state.base+int(p.offset) {
			return true
		}
	}
	return false
}

// Delta computes the Levenshtein-automaton transition on symbol c,
// rebasing the result back to canonical form. It returns (zero, false)
// when no transition exists (the accumulated union would be empty).
func (f *Facade) Delta(state LevenState, c rune) (LevenState, bool) {
	if state.union.raiseLevel() != 0 {
		panic("mueddi: Delta called on a non-canonical union")
	}

	i := state.base
	rl := f.table.relStateWindowLen(i, f.w)
	window := f.word[i : i+rl]
	cv := MakeCharVec(window, c)

	image := f.table.delta(state.union, i, f.w, cv)
	if image.isEmpty() {
		return LevenState{}, false
	}

	di := image.raiseLevel()
	result := image
	if di != 0 {
		result = image.subtract(di)
	}
	return LevenState{base: i + int(di), union: result}, true
}
