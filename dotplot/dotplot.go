// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dotplot draws macrosynteny dotplots from pairwise genome
// alignments. Plots are faceted by query and target sequence set, with
// alignment segments colored by strand-signed fractional identity on a
// diverging scale whose domain is fixed to [-1, 1].
package dotplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/minidot/tlen"
)

// Theme selects the plot color scheme.
type Theme int

const (
	Dark Theme = iota
	Light
)

// ParseTheme returns the Theme named by s, either "dark" or "light".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return 0, fmt.Errorf("dotplot: unknown theme %q", s)
}

// Config specifies how a dotplot is rendered.
type Config struct {
	// Theme selects the panel background and the identity
	// gradient colors.
	Theme Theme

	// Title is drawn centered above the panel grid when
	// non-empty.
	Title string

	// Strip removes the identity legend, the facet strip
	// labels and all axis decoration, leaving bare panels.
	Strip bool

	// Boundaries draws sequence boundary lines inside each
	// panel at the cumulative offsets of the length table.
	Boundaries bool

	// Width is the width and height of the square canvas.
	// Zero means 20 cm.
	Width vg.Length

	// LineWidth is the stroke width of alignment segments.
	// Zero means 2 pt.
	LineWidth vg.Length
}

// UnknownSetError is returned by New when an alignment names a sequence
// set that the length table does not define.
type UnknownSetError struct {
	Set string
}

func (e *UnknownSetError) Error() string {
	return fmt.Sprintf("dotplot: set %q not in length table", e.Set)
}

// facet is one panel of the grid: the alignments of one query set
// against one target set, and the pair's axis extents and sequence
// boundaries.
type facet struct {
	qset, tset string
	xmax, ymax float64
	xbrk, ybrk []float64
	alns       []Alignment
}

// Plot is an immutable dotplot specification: a grid of facets over the
// observed set pairings, sharing a single identity color map.
type Plot struct {
	cfg    Config
	cm     palette.ColorMap
	qsets  []string  // column order
	tsets  []string  // row order
	panels [][]facet // target sets by query sets
}

// New assembles filtered alignments into a dotplot specification.
// Facet columns are the query sets observed in alns and facet rows the
// observed target sets, both in length table order. Every observed set
// must be present in the table with a nonzero total length, and alns
// must not be empty.
func New(alns []Alignment, table *tlen.Table, cfg Config) (*Plot, error) {
	if len(alns) == 0 {
		return nil, errors.New("dotplot: no alignments")
	}
	if cfg.Width == 0 {
		cfg.Width = 20 * vg.Centimeter
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = vg.Points(2)
	}

	qseen := make(map[string]bool)
	tseen := make(map[string]bool)
	for _, a := range alns {
		qseen[a.QSet] = true
		tseen[a.TSet] = true
	}
	var qsets, tsets []string
	for _, set := range table.Sets() {
		if qseen[set] {
			qsets = append(qsets, set)
			delete(qseen, set)
		}
		if tseen[set] {
			tsets = append(tsets, set)
			delete(tseen, set)
		}
	}
	for set := range qseen {
		return nil, &UnknownSetError{Set: set}
	}
	for set := range tseen {
		return nil, &UnknownSetError{Set: set}
	}

	p := &Plot{cfg: cfg, cm: IdentityMap(cfg.Theme), qsets: qsets, tsets: tsets}
	p.panels = make([][]facet, len(tsets))
	for i, tset := range tsets {
		ymax, _ := table.Total(tset)
		if ymax == 0 {
			return nil, fmt.Errorf("dotplot: set %q has zero total length", tset)
		}
		p.panels[i] = make([]facet, len(qsets))
		for j, qset := range qsets {
			xmax, _ := table.Total(qset)
			if xmax == 0 {
				return nil, fmt.Errorf("dotplot: set %q has zero total length", qset)
			}
			p.panels[i][j] = facet{
				qset: qset, tset: tset,
				xmax: xmax, ymax: ymax,
				xbrk: table.Breaks(qset),
				ybrk: table.Breaks(tset),
			}
		}
	}
	for _, a := range alns {
		i := index(p.tsets, a.TSet)
		j := index(p.qsets, a.QSet)
		p.panels[i][j].alns = append(p.panels[i][j].alns, a)
	}
	return p, nil
}

func index(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}
