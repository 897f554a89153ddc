// Package mueddi answers one question fast: given a dictionary D and a
// query string q with an edit-distance tolerance n, enumerate every w in D
// with Levenshtein(q, w) <= n.
//
// The package is a Go rendering of two cooperating automata, walked in
// lock-step:
//
//  1. A minimal acyclic deterministic automaton (a DAWG, see dawg.go and
//     builder.go) built incrementally over a sorted word list so that
//     common prefixes and suffixes are shared.
//  2. A lazily-materialized universal Levenshtein automaton (relpos.go,
//     charvec.go, reducedunion.go, lazytable.go, facade.go) parameterized
//     by q and n. Its states are reduced unions of positions on q, and its
//     transitions are driven by characteristic bit-vectors abstracting each
//     alphabet symbol's occurrences in a sliding window of q. The
//     construction follows Schulz & Mihov, "Fast String Correction with
//     Levenshtein-Automata".
//
// ResultIterator (iterator.go) performs a breadth-first intersection of the
// two automata, yielding exactly the words of D within edit distance n of q,
// in non-decreasing length order.
//
// Don't build the pieces by hand unless you need to share a Cache across
// many queries or many dictionaries; Speller (speller.go) wraps BuildDawg,
// NewCache and ResultIterator behind a single Correct(query, n) call and
// adds a bounded LRU over repeated (query, n) pairs.
//
// A Cache grows monotonically and is not safe for simultaneous use from
// multiple goroutines; a Dawg is immutable after BuildDawg returns and is
// safe to share read-only across any number of goroutines and Caches.
package mueddi

// MaxQueryLen is the largest number of code points NewFacade / NewResultIterator
// will accept in a query string. It is fixed by the 32-bit characteristic
// vector: MakeCharVec can represent at most 31 window positions.
const MaxQueryLen = 31

// MaxTolerance is the largest edit-distance bound the engine supports.
const MaxTolerance = 15
