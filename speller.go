package mueddi

import "strconv"

// Speller is the everyday entry point: it bundles a Dawg, the Cache its
// queries share, and a bounded result cache so that asking the same
// (query, n) question twice doesn't re-walk the product automaton.
// Building the pieces by hand (BuildDawg, NewCache, NewResultIterator) is
// only worth it when several Spellers need to share one Cache, or when a
// caller wants the lazy Next()-at-a-time interface instead of a slice.
type Speller struct {
	dawg    *Dawg
	cache   *Cache
	results *resultCache
}

// NewSpeller builds a Dawg over words and wraps it with a fresh Cache and
// a default-sized result cache.
func NewSpeller(words []string) *Speller {
	return NewSpellerWithCacheSize(words, defaultResultCacheSize)
}

// NewSpellerWithCacheSize is NewSpeller with an explicit bound on how
// many (query, n) result sets are retained.
func NewSpellerWithCacheSize(words []string, cacheSize int) *Speller {
	return &Speller{
		dawg:    BuildDawg(words),
		cache:   NewCache(),
		results: newResultCache(cacheSize),
	}
}

// Correct returns every dictionary word within edit distance n of query,
// in the ResultIterator's non-decreasing-length order. Repeated calls
// with the same (query, n) are served from the result cache without
// re-walking the automaton.
func (s *Speller) Correct(query string, n int) ([]string, error) {
	key := strconv.Itoa(n) + ":" + query
	return s.results.lookup(key, func() ([]string, error) {
		it, err := NewResultIterator(query, n, s.dawg, s.cache)
		if err != nil {
			return nil, err
		}
		return it.Collect(), nil
	})
}

// Dawg exposes the Speller's underlying automaton, e.g. to check
// Accepts directly without going through an edit-distance search.
func (s *Speller) Dawg() *Dawg {
	return s.dawg
}
