package mueddi

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vbar/mueddi/internal/refdist"
)

// generateEdits is aaw-levtrie's generateEdits (levtrie_test.go), retargeted
// at mueddi's rune-based API: start from a random seed string, repeatedly
// pick a sample already generated and apply one delete/insert/substitute
// edit to it, until n distinct strings have been produced.
func generateEdits(k, n int) []string {
	alphabet := []rune{'A', 'a', 'b', 'c', 'd', 'e', 'f', 'Z', '1'}
	seed := make([]rune, 0, k)
	for len(seed) < k {
		seed = append(seed, alphabet[rand.Intn(len(alphabet))])
	}
	seedStr := string(seed)
	seen := map[string]bool{seedStr: true}
	results := []string{seedStr}

	for len(results) < n {
		sample := results[rand.Intn(len(results))]
		runes := []rune(sample)
		if len(runes) == 0 {
			continue
		}
		switch rand.Intn(3) {
		case 0: // delete
			i := rand.Intn(len(runes))
			runes = append(runes[:i], runes[i+1:]...)
		case 1: // insert
			i, j := rand.Intn(len(runes)+1), rand.Intn(len(alphabet))
			runes = append(runes[:i:i], append([]rune{alphabet[j]}, runes[i:]...)...)
		case 2: // substitute
			i, j := rand.Intn(len(runes)), rand.Intn(len(alphabet))
			runes[i] = alphabet[j]
		}
		edited := string(runes)
		if !seen[edited] {
			seen[edited] = true
			results = append(results, edited)
		}
	}
	return results
}

// filterByEditDistance is aaw-levtrie's filterByEditDistance, reference-
// checked with internal/refdist's dynamic-programming distance instead of
// the teacher's unmemoised recursion.
func filterByEditDistance(haystack []string, needle string, d int) []string {
	var out []string
	for _, w := range haystack {
		if refdist.WithinTolerance(needle, w, d) {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// TestCorrectFuzz is spec.md §8 invariant 1: ResultIterator/Speller.Correct
// must return exactly the dictionary words within edit distance n of the
// query, no more and no fewer. It's a direct descendant of aaw-levtrie's
// TestSuggestFuzz, generalized from a single trie distance metric to the
// two-automaton product walk.
func TestCorrectFuzz(t *testing.T) {
	rand.Seed(0)
	haystack := generateEdits(5, 400)
	speller := NewSpeller(haystack)

	for dist := 0; dist < 4; dist++ {
		needle := haystack[rand.Intn(len(haystack))]
		got, err := speller.Correct(needle, dist)
		require.NoError(t, err)
		sort.Strings(got)

		want := filterByEditDistance(haystack, needle, dist)
		require.Equal(t, want, got, "tolerance=%d needle=%q", dist, needle)
	}
}

func TestCorrectFuzzAgainstArbitraryQueries(t *testing.T) {
	rand.Seed(1)
	haystack := generateEdits(6, 300)
	speller := NewSpeller(haystack)

	for i := 0; i < 20; i++ {
		needle := generateEdits(6, 1)[0]
		dist := rand.Intn(3)
		got, err := speller.Correct(needle, dist)
		require.NoError(t, err)
		sort.Strings(got)

		want := filterByEditDistance(haystack, needle, dist)
		require.Equal(t, want, got, "tolerance=%d needle=%q", dist, needle)
	}
}
