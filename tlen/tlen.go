// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tlen provides reading of sequence length tables and the
// cumulative offset arithmetic used to lay out dotplot axes.
//
// A length table is TAB-delimited with one row per sequence, either
//
//	set	name	length
//
// or the two column form written by input preparation tools,
//
//	set	length
//
// in which case sequence names are implicit and are synthesized from the
// 1-based row ordinal within the set. Row order within a set fixes the
// order in which offsets accumulate; the reader never sorts.
package tlen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// SeqLen records the length of a single sequence belonging to a set.
type SeqLen struct {
	Set    string
	Name   string
	Length int
}

// ParseError describes a malformed line in a length table.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("tlen: line %d: %v", e.Line, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Reader reads sequence length rows from the underlying io.Reader.
type Reader struct {
	r     *bufio.Reader
	line  int
	count map[string]int
}

// NewReader returns a new length table reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r), count: make(map[string]int)}
}

// Read returns the next length row of the stream. It returns io.EOF when
// no rows remain.
func (r *Reader) Read() (SeqLen, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return SeqLen{}, err
		}
	}
	r.line++
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return SeqLen{}, &ParseError{Line: r.line, Err: errors.New("empty line")}
	}
	f := strings.Split(line, "\t")
	var sl SeqLen
	switch len(f) {
	case 2:
		sl = SeqLen{Set: f[0], Name: strconv.Itoa(r.count[f[0]] + 1)}
	case 3:
		sl = SeqLen{Set: f[0], Name: f[1]}
	default:
		return SeqLen{}, &ParseError{Line: r.line, Err: fmt.Errorf("expected 2 or 3 fields, got %d", len(f))}
	}
	l, err := strconv.Atoi(f[len(f)-1])
	if err != nil || l < 0 {
		return SeqLen{}, &ParseError{Line: r.line, Err: fmt.Errorf("bad length %q", f[len(f)-1])}
	}
	sl.Length = l
	r.count[sl.Set]++
	return sl, nil
}

// Writer writes sequence length rows in the three column layout.
type Writer struct {
	w io.Writer
}

// NewWriter returns a new length table writer that writes to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Write writes a single length row.
func (w *Writer) Write(sl SeqLen) error {
	_, err := fmt.Fprintf(w.w, "%s\t%s\t%d\n", sl.Set, sl.Name, sl.Length)
	return err
}

// Table is an ordered collection of sequence lengths grouped by set.
// Sets and the sequences within them are kept in first-seen order.
type Table struct {
	sets []string
	seqs map[string][]SeqLen
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{seqs: make(map[string][]SeqLen)}
}

// ReadTable reads r to exhaustion and returns the resulting Table.
func ReadTable(r io.Reader) (*Table, error) {
	tr := NewReader(r)
	t := NewTable()
	for {
		sl, err := tr.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.Add(sl)
	}
}

// Add appends a sequence length to the table.
func (t *Table) Add(sl SeqLen) {
	if _, ok := t.seqs[sl.Set]; !ok {
		t.sets = append(t.sets, sl.Set)
	}
	t.seqs[sl.Set] = append(t.seqs[sl.Set], sl)
}

// Sets returns the set names in first-seen order. The returned slice is
// owned by the table and must not be altered.
func (t *Table) Sets() []string { return t.sets }

// Sequences returns the length rows of the named set in file order, or
// nil if the set is not present.
func (t *Table) Sequences(set string) []SeqLen { return t.seqs[set] }

// Total returns the summed length of all sequences of the named set and
// whether the set is present in the table.
func (t *Table) Total(set string) (float64, bool) {
	if _, ok := t.seqs[set]; !ok {
		return 0, false
	}
	return floats.Sum(t.lengths(set)), true
}

// Offsets returns the cumulative start offset of each sequence of the
// named set in file order. The first offset is always zero.
func (t *Table) Offsets(set string) []float64 {
	seqs, ok := t.seqs[set]
	if !ok {
		return nil
	}
	cum := floats.CumSum(make([]float64, len(seqs)), t.lengths(set))
	off := make([]float64, len(seqs))
	copy(off[1:], cum)
	return off
}

// Offset returns the start offset of the named sequence within its set
// and whether the sequence is present.
func (t *Table) Offset(set, name string) (float64, bool) {
	off := t.Offsets(set)
	for i, sl := range t.seqs[set] {
		if sl.Name == name {
			return off[i], true
		}
	}
	return 0, false
}

// Breaks returns the interior sequence boundary positions of the named
// set, the offsets of all sequences except the first. Sets holding fewer
// than two sequences have no interior boundaries.
func (t *Table) Breaks(set string) []float64 {
	off := t.Offsets(set)
	if len(off) < 2 {
		return nil
	}
	return off[1:]
}

func (t *Table) lengths(set string) []float64 {
	seqs := t.seqs[set]
	ls := make([]float64, len(seqs))
	for i, sl := range seqs {
		ls[i] = float64(sl.Length)
	}
	return ls
}
