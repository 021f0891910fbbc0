// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	check "gopkg.in/check.v1"

	"github.com/biogo/minidot/tlen"
)

func testPlotData(c *check.C) ([]Alignment, *tlen.Table) {
	table, err := tlen.ReadTable(strings.NewReader(
		"alpha\tchr1\t1000\nalpha\tchr2\t500\nbeta\tchr1\t800\n"))
	c.Assert(err, check.Equals, nil)
	alns := []Alignment{
		aln("alpha", "beta", 100, 900, 0.95),
		aln("beta", "alpha", 0, 700, -0.85),
		aln("alpha", "alpha", 0, 1400, 1),
	}
	return alns, table
}

func (s *S) TestSave(c *check.C) {
	alns, table := testPlotData(c)
	dir := c.MkDir()
	for i, cfg := range []Config{
		{},
		{Theme: Light, Title: "two genomes", Boundaries: true},
		{Strip: true, Width: 10 * vg.Centimeter},
	} {
		p, err := New(alns, table, cfg)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		for _, ext := range []string{"png", "pdf", "svg"} {
			path := filepath.Join(dir, fmt.Sprintf("plot%d.%s", i, ext))
			c.Assert(p.Save(path), check.Equals, nil, check.Commentf("Test %d %s", i, ext))
			fi, err := os.Stat(path)
			c.Assert(err, check.Equals, nil, check.Commentf("Test %d %s", i, ext))
			c.Check(fi.Size() > 0, check.Equals, true, check.Commentf("Test %d %s", i, ext))
		}
	}
}

func (s *S) TestRenderDeterministic(c *check.C) {
	alns, table := testPlotData(c)
	p, err := New(alns, table, Config{})
	c.Assert(err, check.Equals, nil)

	var first, second bytes.Buffer
	w, err := p.Render("png")
	c.Assert(err, check.Equals, nil)
	_, err = w.WriteTo(&first)
	c.Assert(err, check.Equals, nil)
	w, err = p.Render("png")
	c.Assert(err, check.Equals, nil)
	_, err = w.WriteTo(&second)
	c.Assert(err, check.Equals, nil)

	c.Check(first.Len() > 0, check.Equals, true)
	c.Check(bytes.Equal(first.Bytes(), second.Bytes()), check.Equals, true)
}

func (s *S) TestSaveErrors(c *check.C) {
	alns, table := testPlotData(c)
	p, err := New(alns, table, Config{})
	c.Assert(err, check.Equals, nil)

	dir := c.MkDir()
	err = p.Save(filepath.Join(dir, "out"))
	c.Check(err, check.ErrorMatches, "dotplot: no format extension in .*")
	err = p.Save(filepath.Join(dir, "out.xyz"))
	c.Check(err, check.NotNil)
	_, err = p.Render("xyz")
	c.Check(err, check.NotNil)
}
