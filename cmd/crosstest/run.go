package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/projectdiscovery/gologger"

	"github.com/vbar/mueddi"
	"github.com/vbar/mueddi/internal/ingest"
	"github.com/vbar/mueddi/internal/refdist"
	"github.com/vbar/mueddi/internal/resultlog"
)

// wordSet is the small mutable dictionary mueddir's harness keeps around
// as a BTreeSet<String>: a set that can be iterated in sorted order and
// cheaply add/remove single words between rebuilds.
type wordSet struct {
	present map[string]bool
}

func newWordSet(words []string) *wordSet {
	s := &wordSet{present: make(map[string]bool, len(words))}
	for _, w := range words {
		s.present[w] = true
	}
	return s
}

func (s *wordSet) remove(w string) { delete(s.present, w) }
func (s *wordSet) insert(w string) { s.present[w] = true }

func (s *wordSet) sorted() []string {
	out := make([]string, 0, len(s.present))
	for w := range s.present {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// testIndependent checks mueddi's search against refdist's reference
// distance for a single word, and records the row to log.
func testIndependent(seen string, n int, dictionary []string, dawg *mueddi.Dawg, cache *mueddi.Cache, log *resultlog.Writer) error {
	external := map[string]bool{}
	for _, correct := range dictionary {
		if refdist.WithinTolerance(seen, correct, n) {
			external[correct] = true
		}
	}

	it, err := mueddi.NewResultIterator(seen, n, dawg, cache)
	if err != nil {
		return err
	}
	found := it.Collect()

	internal := map[string]bool{}
	for _, w := range found {
		internal[w] = true
	}

	if err := log.WriteRow(seen, found); err != nil {
		return err
	}

	if len(external) != len(internal) {
		return fmt.Errorf("results for %s differ", seen)
	}
	for w := range external {
		if !internal[w] {
			return fmt.Errorf("results for %s differ", seen)
		}
	}
	return nil
}

func testRepeat(seen string, n int, dawg *mueddi.Dawg, cache *mueddi.Cache, log *resultlog.Reader) error {
	it, err := mueddi.NewResultIterator(seen, n, dawg, cache)
	if err != nil {
		return err
	}
	return log.CheckRow(seen, it.Collect())
}

// rebuildExcluding rebuilds the working Dawg the same way mueddir does
// between rows when single-dict mode is off: tword is removed from the
// working set, the previous iteration's word is restored, and the Dawg is
// rebuilt from what remains so seen's own entry never trivially matches
// itself.
func rebuildExcluding(dd *wordSet, tword, lastWord string, first bool) (*mueddi.Dawg, string, bool) {
	dd.remove(tword)
	if !first {
		dd.insert(lastWord)
	}
	return mueddi.BuildDawg(dd.sorted()), tword, false
}

func run(opts *cliOptions) error {
	inputPath, err := filepath.Abs(opts.inputFile)
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	dictionary, err := ingest.MakeTestDict(f)
	if err != nil {
		return err
	}

	dd := newWordSet(dictionary)
	dawg := mueddi.BuildDawg(dictionary)
	cache := mueddi.NewCache()

	header := resultlog.Header{Input: inputPath, Tolerance: opts.tolerance, Single: opts.singleDict}

	if _, err := os.Stat(opts.resultFile); errors.Is(err, os.ErrNotExist) {
		out, err := os.Create(opts.resultFile)
		if err != nil {
			return err
		}
		defer out.Close()

		writer := resultlog.NewWriter(out)
		if err := writer.WriteHeader(header); err != nil {
			return err
		}

		var lastWord string
		first := true
		for _, tword := range dictionary {
			gologger.Verbose().Msgf("%s...", tword)

			if !opts.singleDict {
				dawg, lastWord, first = rebuildExcluding(dd, tword, lastWord, first)
			}

			if err := testIndependent(tword, opts.tolerance, dd.sorted(), dawg, cache, writer); err != nil {
				return err
			}
		}
		return writer.Flush()
	} else if err != nil {
		return err
	}

	in, err := os.Open(opts.resultFile)
	if err != nil {
		return err
	}
	defer in.Close()

	reader, err := resultlog.NewReader(in, header)
	if err != nil {
		return err
	}

	var lastWord string
	first := true
	for _, tword := range dictionary {
		gologger.Verbose().Msgf("%s...", tword)

		if !opts.singleDict {
			dawg, lastWord, first = rebuildExcluding(dd, tword, lastWord, first)
		}

		if err := testRepeat(tword, opts.tolerance, dawg, cache, reader); err != nil {
			return err
		}
	}
	return nil
}
