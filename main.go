// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// minidot draws macrosynteny dotplots from minimap2 PAF alignments.
// Each query sequence set is plotted against each target set in a
// faceted grid, with alignments drawn as segments colored by
// strand-signed identity.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/biogo/minidot/dotplot"
	"github.com/biogo/minidot/paf"
	"github.com/biogo/minidot/tlen"
)

var (
	in       = flag.String("i", "", "Input PAF file. Required.")
	lens     = flag.String("l", "", "Sequence length table. Required.")
	out      = flag.String("o", "minidot.pdf", "Output file; the format follows the extension.")
	title    = flag.String("title", "", "Plot title.")
	theme    = flag.String("theme", "dark", "Color theme: dark or light.")
	width    = flag.Float64("width", 20, "Canvas width and height in cm.")
	thick    = flag.Float64("thick", 2, "Alignment line thickness in points.")
	identity = flag.Float64("identity", 0, "Minimum absolute identity of alignments to draw.")
	alen     = flag.Float64("alen", 0, "Minimum query alignment length in base pairs.")
	strip    = flag.Bool("strip", false, "Draw bare panels without legend, labels or axes.")

	noSelf bool
)

func main() {
	const noSelfUsage = "Drop alignments within a set and keep only the first query set."
	flag.BoolVar(&noSelf, "S", false, noSelfUsage)
	flag.BoolVar(&noSelf, "no-self", false, noSelfUsage+" (same as -S)")
	flag.Parse()

	if *in == "" || *lens == "" {
		flag.Usage()
		os.Exit(1)
	}
	th, err := dotplot.ParseTheme(*theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad theme %q: must be dark or light\n", *theme)
		flag.Usage()
		os.Exit(1)
	}
	if *width <= 0 {
		fmt.Fprintf(os.Stderr, "bad width %v: must be positive\n", *width)
		flag.Usage()
		os.Exit(1)
	}

	pf, err := os.Open(*in)
	if err != nil {
		log.Fatalf("failed to open alignments: %v", err)
	}
	recs, err := paf.ReadAll(pf)
	pf.Close()
	if err != nil {
		log.Fatalf("failed to read alignments from %q: %v", *in, err)
	}

	lf, err := os.Open(*lens)
	if err != nil {
		log.Fatalf("failed to open length table: %v", err)
	}
	table, err := tlen.ReadTable(lf)
	lf.Close()
	if err != nil {
		log.Fatalf("failed to read length table from %q: %v", *lens, err)
	}

	alns, skipped := dotplot.Normalize(recs)
	if skipped != 0 {
		log.Printf("skipped %d of %d alignments without a usable divergence estimate", skipped, len(recs))
	}
	alns = dotplot.MinIdentity(alns, *identity)
	alns = dotplot.MinLength(alns, *alen)
	if noSelf {
		alns = dotplot.WithoutSelf(alns)
		alns = dotplot.FirstQueryOnly(alns)
	}
	if len(alns) == 0 {
		log.Fatal("no alignments to draw after filtering")
	}

	p, err := dotplot.New(alns, table, dotplot.Config{
		Theme:     th,
		Title:     *title,
		Strip:     *strip,
		Width:     vg.Length(*width) * vg.Centimeter,
		LineWidth: vg.Points(*thick),
	})
	if err != nil {
		log.Fatalf("failed to build plot: %v", err)
	}
	err = p.Save(*out)
	if err != nil {
		log.Fatalf("failed to write %q: %v", *out, err)
	}
}
