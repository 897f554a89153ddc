package mueddi

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// defaultResultCacheSize bounds how many fully-materialized (query, n)
// result sets a Speller retains. Unlike the Cache's per-n transition
// tables (which must grow without bound to stay correct as a shared
// memoisation surface), a result set is cheap to recompute and safe to
// evict: it's an ordinary LRU, not part of the automaton's state.
const defaultResultCacheSize = 256

// resultCache is a mutex-guarded LRU cache from a string key to a fully
// materialized result slice, in the same shape as GoSkrafl's crossCache:
// a Lookup that returns the cached value if present, otherwise calls a
// fetch function and caches its result before returning it.
type resultCache struct {
	mu  sync.Mutex
	lru *simplelru.LRU
}

func newResultCache(size int) *resultCache {
	lru, _ := simplelru.NewLRU(size, nil)
	return &resultCache{lru: lru}
}

func (rc *resultCache) lookup(key string, fetch func() ([]string, error)) ([]string, error) {
	rc.mu.Lock()
	if v, ok := rc.lru.Get(key); ok {
		rc.mu.Unlock()
		return v.([]string), nil
	}
	rc.mu.Unlock()

	words, err := fetch()
	if err != nil {
		return nil, err
	}

	rc.mu.Lock()
	rc.lru.Add(key, words)
	rc.mu.Unlock()
	return words, nil
}
