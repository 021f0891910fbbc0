// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"errors"
	"strings"

	"gonum.org/v1/plot/vg"
	check "gopkg.in/check.v1"

	"github.com/biogo/minidot/tlen"
)

func (s *S) TestParseTheme(c *check.C) {
	th, err := ParseTheme("dark")
	c.Check(err, check.Equals, nil)
	c.Check(th, check.Equals, Dark)
	th, err = ParseTheme("light")
	c.Check(err, check.Equals, nil)
	c.Check(th, check.Equals, Light)
	_, err = ParseTheme("sepia")
	c.Check(err, check.ErrorMatches, `dotplot: unknown theme "sepia"`)
}

func (s *S) TestNew(c *check.C) {
	table, err := tlen.ReadTable(strings.NewReader(
		"alpha\tchr1\t1000\nalpha\tchr2\t500\nbeta\tchr1\t800\ngamma\tchr1\t600\n"))
	c.Assert(err, check.Equals, nil)

	alns := []Alignment{
		aln("beta", "alpha", 0, 100, 0.9),
		aln("alpha", "alpha", 0, 100, 0.8),
		aln("beta", "gamma", 0, 100, -0.7),
	}
	p, err := New(alns, table, Config{})
	c.Assert(err, check.Equals, nil)

	// Columns and rows follow length table order, not input order.
	c.Check(p.qsets, check.DeepEquals, []string{"alpha", "beta"})
	c.Check(p.tsets, check.DeepEquals, []string{"alpha", "gamma"})
	c.Assert(p.panels, check.HasLen, 2)
	c.Assert(p.panels[0], check.HasLen, 2)

	c.Check(p.panels[0][0].alns, check.HasLen, 1)
	c.Check(p.panels[0][1].alns, check.HasLen, 1)
	c.Check(p.panels[1][0].alns, check.HasLen, 0)
	c.Check(p.panels[1][1].alns, check.HasLen, 1)
	c.Check(p.panels[0][1].alns[0].Identity, check.Equals, 0.9)

	c.Check(p.panels[0][0].xmax, check.Equals, 1500.0)
	c.Check(p.panels[0][0].ymax, check.Equals, 1500.0)
	c.Check(p.panels[0][1].xmax, check.Equals, 800.0)
	c.Check(p.panels[1][1].ymax, check.Equals, 600.0)
	c.Check(p.panels[0][0].xbrk, check.DeepEquals, []float64{1000})
	c.Check(p.panels[1][1].ybrk, check.IsNil)

	c.Check(p.cfg.Width, check.Equals, 20*vg.Centimeter)
	c.Check(p.cfg.LineWidth, check.Equals, vg.Points(2))
}

func (s *S) TestNewErrors(c *check.C) {
	table, err := tlen.ReadTable(strings.NewReader("alpha\tchr1\t1000\nempty\tchr1\t0\n"))
	c.Assert(err, check.Equals, nil)

	_, err = New(nil, table, Config{})
	c.Check(err, check.ErrorMatches, "dotplot: no alignments")

	_, err = New([]Alignment{aln("alpha", "missing", 0, 10, 1)}, table, Config{})
	var use *UnknownSetError
	c.Assert(errors.As(err, &use), check.Equals, true)
	c.Check(use.Set, check.Equals, "missing")

	_, err = New([]Alignment{aln("alpha", "empty", 0, 10, 1)}, table, Config{})
	c.Check(err, check.ErrorMatches, `dotplot: set "empty" has zero total length`)
}
