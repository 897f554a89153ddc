package mueddi

// queueItem is one frame of the product traversal: a candidate string
// spelled out along the Dawg path so far, the Dawg node it reached, and
// the Levenshtein-automaton state reached in lock-step.
type queueItem struct {
	candidate string
	dawgIdx   int32
	leven     LevenState
}

// ResultIterator is a breadth-first intersection of a Dawg and a
// query-specific Levenshtein automaton (spec.md §4.8): a lazy pull
// generator that keeps its BFS frontier in an explicit queue. Each call
// to Next runs a bounded amount of work - queue expansion until the next
// accept or exhaustion - and returns one match.
//
// Breadth-first order yields matches in non-decreasing Dawg depth (word
// length); within a depth, order follows the Dawg's ordered edges.
type ResultIterator struct {
	dawg    *Dawg
	facade  *Facade
	queue   []queueItem
	current string
	valid   bool
}

// NewResultIterator returns a lazy sequence of dawg's words within edit
// distance n of query, memoising transitions in cache. n must be between
// 0 and MaxTolerance and query no longer than MaxQueryLen code points.
func NewResultIterator(query string, n int, dawg *Dawg, cache *Cache) (*ResultIterator, error) {
	facade, err := NewFacade(cache, query, n)
	if err != nil {
		return nil, err
	}
	it := &ResultIterator{
		dawg:  dawg,
		facade: facade,
		queue: []queueItem{{candidate: "", dawgIdx: dawg.Root(), leven: initialLevenState()}},
	}
	it.advance()
	return it, nil
}

// advance pops queue frames, marking the iterator valid (and its current
// candidate set) the moment it finds an accepting frame, and expanding
// every frame it pops along the way.
func (it *ResultIterator) advance() {
	it.valid = false
	for !it.valid {
		if len(it.queue) == 0 {
			return
		}
		item := it.queue[0]
		it.queue = it.queue[1:]

		if it.dawg.IsFinal(item.dawgIdx) && it.facade.IsFinal(item.leven) {
			it.current = item.candidate
			it.valid = true
		}

		for _, e := range it.dawg.Edges(item.dawgIdx) {
			next, ok := it.facade.Delta(item.leven, e.label)
			if !ok {
				continue
			}
			it.queue = append(it.queue, queueItem{
				candidate: item.candidate + string(e.label),
				dawgIdx:   e.target,
				leven:     next,
			})
		}
	}
}

// Next returns the next matching word and true, or ("", false) once the
// iterator is exhausted.
func (it *ResultIterator) Next() (string, bool) {
	if !it.valid {
		return "", false
	}
	current := it.current
	it.advance()
	return current, true
}

// Collect drains the iterator into a slice, in the same non-decreasing
// length order Next would yield.
func (it *ResultIterator) Collect() []string {
	var results []string
	for {
		w, ok := it.Next()
		if !ok {
			return results
		}
		results = append(results, w)
	}
}
