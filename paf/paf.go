// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paf provides types to read minimap2 Pairwise mApping Format
// alignment files.
package paf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/seq"
)

// Record is a single PAF alignment row. Coordinates are those of the
// input file: 0-based, with query positions always given on the strand
// indicated by the Strand field.
type Record struct {
	QName  string
	QLen   int
	QStart int
	QEnd   int
	Strand seq.Strand
	TName  string
	TLen   int
	TStart int
	TEnd   int

	// Matches is the number of residue matches and BlockLen the total
	// alignment block length, mandatory columns 10 and 11.
	Matches  int
	BlockLen int

	// MapQ is the mapping quality, 0-255.
	MapQ int

	// Tags holds the optional SAM-style typed fields following the
	// twelve mandatory columns.
	Tags []Tag
}

// Tag returns the first optional field with the given two letter code
// and whether such a field was present.
func (r *Record) Tag(code string) (Tag, bool) {
	for _, t := range r.Tags {
		if t.Code == code {
			return t, true
		}
	}
	return Tag{}, false
}

// Tag is an optional typed field, for example "dv:f:0.0123".
type Tag struct {
	Code  string
	Type  byte
	Value string
}

// Float returns the tag's value interpreted as a float64.
func (t Tag) Float() (float64, error) { return strconv.ParseFloat(t.Value, 64) }

// ParseError describes a malformed line in a PAF stream.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("paf: line %d: %v", e.Line, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Reader reads PAF records from the underlying io.Reader.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader returns a new PAF format reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read returns the next record of the stream. It returns io.EOF when no
// records remain. The twelve mandatory columns are strict; trailing
// columns that do not parse as typed tags are ignored.
func (r *Reader) Read() (*Record, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return nil, err
		}
	}
	r.line++
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, &ParseError{Line: r.line, Err: errors.New("empty line")}
	}
	rec, err := parse(line)
	if err != nil {
		return nil, &ParseError{Line: r.line, Err: err}
	}
	return rec, nil
}

// ReadAll reads r to exhaustion and returns the records it held.
func ReadAll(r io.Reader) ([]*Record, error) {
	pr := NewReader(r)
	var recs []*Record
	for {
		rec, err := pr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

func parse(line string) (*Record, error) {
	f := strings.Split(line, "\t")
	if len(f) < 12 {
		return nil, fmt.Errorf("expected 12 fields, got %d", len(f))
	}
	rec := Record{QName: f[0], TName: f[5]}
	for _, c := range [...]struct {
		dst  *int
		col  int
		name string
	}{
		{&rec.QLen, 1, "query length"},
		{&rec.QStart, 2, "query start"},
		{&rec.QEnd, 3, "query end"},
		{&rec.TLen, 6, "target length"},
		{&rec.TStart, 7, "target start"},
		{&rec.TEnd, 8, "target end"},
		{&rec.Matches, 9, "matches"},
		{&rec.BlockLen, 10, "block length"},
		{&rec.MapQ, 11, "mapping quality"},
	} {
		v, err := strconv.Atoi(f[c.col])
		if err != nil {
			return nil, fmt.Errorf("bad %s %q", c.name, f[c.col])
		}
		*c.dst = v
	}
	switch f[4] {
	case "+":
		rec.Strand = seq.Plus
	case "-":
		rec.Strand = seq.Minus
	default:
		return nil, fmt.Errorf("bad strand %q", f[4])
	}
	for _, t := range f[12:] {
		p := strings.SplitN(t, ":", 3)
		if len(p) != 3 || len(p[0]) != 2 || len(p[1]) != 1 {
			continue
		}
		rec.Tags = append(rec.Tags, Tag{Code: p[0], Type: p[1][0], Value: p[2]})
	}
	return &rec, nil
}
