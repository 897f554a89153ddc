// Package ingest tokenizes a newline-delimited text file into the sorted,
// de-duplicated word set the crosstest harness treats as its dictionary.
// It mirrors mueddir's ingest module line for line: the same split-class
// regex, the same "empty tokens don't count as words" rule.
package ingest

import (
	"bufio"
	"io"
	"regexp"
	"sort"
)

// splitClass matches any single rune that separates words: whitespace and
// common punctuation. It is not a word boundary in the regex sense, it is
// the literal character class mueddir's ingest module splits on.
var splitClass = regexp.MustCompile(`[\r\n\t .?!,;:"'()\[\]{}&*#$@_]`)

// MakeTestDict reads r line by line, splits each line on splitClass, and
// returns the sorted set of non-empty tokens.
func MakeTestDict(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, word := range splitClass.Split(scanner.Text(), -1) {
			if word == "" {
				continue
			}
			seen[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}
