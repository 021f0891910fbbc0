// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"errors"
	"fmt"
	"math"

	"github.com/biogo/biogo/seq"

	"github.com/biogo/minidot/paf"
)

// Errors returned by FromPAF for records without a usable identity.
var (
	ErrNoDivergence  = errors.New("dotplot: no divergence estimate")
	ErrBadDivergence = errors.New("dotplot: bad divergence estimate")
)

// Alignment is a single pairwise alignment prepared for drawing: set
// names taken from the PAF name columns, coordinates along the
// concatenated set in base pairs, and a strand-signed fractional
// identity.
type Alignment struct {
	QSet, TSet   string
	QStart, QEnd float64
	TStart, TEnd float64
	Identity     float64
}

// FromPAF converts a PAF record to a drawable Alignment.
//
// Identity is (1 - divergence) * strand, in [-1, 1] and negative for
// reverse strand alignments. The divergence is read from the record's
// dv tag, or from the gap-compressed de tag when dv is absent; a record
// carrying neither fails with ErrNoDivergence, and a tag value that is
// not a number in [0, 1] fails with ErrBadDivergence. Reverse strand
// records have their target coordinates swapped, so a record arriving
// with TStart > TEnd leaves with TStart <= TEnd.
func FromPAF(r *paf.Record) (Alignment, error) {
	t, ok := r.Tag("dv")
	if !ok {
		t, ok = r.Tag("de")
	}
	if !ok {
		return Alignment{}, ErrNoDivergence
	}
	d, err := t.Float()
	if err != nil || math.IsNaN(d) || d < 0 || d > 1 {
		return Alignment{}, fmt.Errorf("%w: %q", ErrBadDivergence, t.Value)
	}
	a := Alignment{
		QSet:     r.QName,
		TSet:     r.TName,
		QStart:   float64(r.QStart),
		QEnd:     float64(r.QEnd),
		TStart:   float64(r.TStart),
		TEnd:     float64(r.TEnd),
		Identity: (1 - d) * float64(r.Strand),
	}
	if r.Strand == seq.Minus {
		a.TStart, a.TEnd = a.TEnd, a.TStart
	}
	return a, nil
}

// Normalize converts records to drawable alignments, dropping records
// without a usable divergence estimate. It returns the alignments and
// the number of records dropped.
func Normalize(recs []*paf.Record) (alns []Alignment, skipped int) {
	for _, r := range recs {
		a, err := FromPAF(r)
		if err != nil {
			skipped++
			continue
		}
		alns = append(alns, a)
	}
	return alns, skipped
}

// MinIdentity returns the alignments whose absolute identity is at
// least min. The input is not modified.
func MinIdentity(alns []Alignment, min float64) []Alignment {
	var keep []Alignment
	for _, a := range alns {
		if math.Abs(a.Identity) >= min {
			keep = append(keep, a)
		}
	}
	return keep
}

// MinLength returns the alignments whose query span is at least min
// base pairs. The input is not modified.
func MinLength(alns []Alignment, min float64) []Alignment {
	var keep []Alignment
	for _, a := range alns {
		if math.Abs(a.QEnd-a.QStart) >= min {
			keep = append(keep, a)
		}
	}
	return keep
}

// WithoutSelf returns the alignments whose query and target sets
// differ. The input is not modified.
func WithoutSelf(alns []Alignment) []Alignment {
	var keep []Alignment
	for _, a := range alns {
		if a.QSet != a.TSet {
			keep = append(keep, a)
		}
	}
	return keep
}

// FirstQueryOnly returns the alignments sharing the query set of the
// first alignment in alns, reducing a many-genome comparison to the
// panels of a single query set. The input is not modified.
func FirstQueryOnly(alns []Alignment) []Alignment {
	if len(alns) == 0 {
		return nil
	}
	first := alns[0].QSet
	var keep []Alignment
	for _, a := range alns {
		if a.QSet == first {
			keep = append(keep, a)
		}
	}
	return keep
}
