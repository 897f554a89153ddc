// Package resultlog reads and writes the crosstest harness's tab-separated
// result log: a three-column header (input path, tolerance, single-dict
// flag) followed by one flexible-width row per tested word (the word,
// then each dictionary match it produced). It is grounded directly on
// mueddir's crosstest harness, which builds the same log with a
// tab-delimited, flexible-column csv.Writer/Reader pair; encoding/csv with
// Comma set to '\t' and FieldsPerRecord disabled gives the same shape,
// since nothing in the example pack carries a dedicated TSV library.
package resultlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrHeaderShape is returned when a replay log's first row doesn't
	// have exactly three columns.
	ErrHeaderShape = errors.New("resultlog: three-column header expected")
	// ErrHeaderMismatch is returned when a replay log's header doesn't
	// match the current run's input path, tolerance, or single-dict mode.
	ErrHeaderMismatch = errors.New("resultlog: header does not match current run")
	// ErrRowMismatch is returned when a replayed row's word or matches
	// differ from what the current run produced.
	ErrRowMismatch = errors.New("resultlog: result row mismatch")
)

// Header is the three leading fields of a result log.
type Header struct {
	Input     string
	Tolerance int
	Single    bool
}

func singleFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Writer appends one header and then one row per tested word to a
// tab-delimited, flexible-width CSV stream.
type Writer struct {
	w *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &Writer{w: cw}
}

func (w *Writer) WriteHeader(h Header) error {
	return w.w.Write([]string{h.Input, strconv.Itoa(h.Tolerance), singleFlag(h.Single)})
}

// WriteRow records the matches found for word.
func (w *Writer) WriteRow(word string, matches []string) error {
	row := make([]string, 0, len(matches)+1)
	row = append(row, word)
	row = append(row, matches...)
	return w.w.Write(row)
}

func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}

// Reader replays a previously recorded log, checking it against the
// current run one row at a time.
type Reader struct {
	r      *csv.Reader
	Header Header
}

// NewReader reads and validates the log's header against want, returning
// ErrHeaderShape or ErrHeaderMismatch if it doesn't agree with the current
// run's parameters.
func NewReader(r io.Reader, want Header) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err != nil {
		return nil, err
	}
	if len(first) != 3 {
		return nil, ErrHeaderShape
	}
	if first[0] != want.Input || first[1] != strconv.Itoa(want.Tolerance) || first[2] != singleFlag(want.Single) {
		return nil, ErrHeaderMismatch
	}

	return &Reader{r: cr, Header: want}, nil
}

// CheckRow reads the next recorded row and compares it against word and
// matches, returning ErrRowMismatch on any disagreement (including row
// exhaustion).
func (r *Reader) CheckRow(word string, matches []string) error {
	record, err := r.r.Read()
	if err == io.EOF {
		return fmt.Errorf("%w: missing row for %q", ErrRowMismatch, word)
	}
	if err != nil {
		return err
	}
	if len(record) == 0 || record[0] != word {
		return fmt.Errorf("%w: row start mismatch for %q", ErrRowMismatch, word)
	}
	if len(record)-1 != len(matches) {
		return fmt.Errorf("%w: match count differs for %q", ErrRowMismatch, word)
	}
	for i, m := range matches {
		if record[i+1] != m {
			return fmt.Errorf("%w: match %q differs for %q", ErrRowMismatch, m, word)
		}
	}
	return nil
}
