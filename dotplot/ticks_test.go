// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"strings"

	check "gopkg.in/check.v1"
)

func (s *S) TestBPLabel(c *check.C) {
	for i, t := range []struct {
		v    float64
		want string
	}{
		{0, "0 bp"},
		{850, "850 bp"},
		{999, "999 bp"},
		{1000, "1 k bp"},
		{3500, "3.5 k bp"},
		{1.2e6, "1.2 M bp"},
		{1.23e6, "1.2 M bp"},
		{2.5e9, "2.5 G bp"},
		{-30000, "-30 k bp"},
	} {
		c.Check(bpLabel(t.v), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestBPTicks(c *check.C) {
	tks := bpTicks{}.Ticks(-15000, 1.515e6)
	c.Assert(len(tks) > 0, check.Equals, true)
	var labeled int
	for _, t := range tks {
		if t.Label == "" {
			continue
		}
		labeled++
		c.Check(strings.HasSuffix(t.Label, " bp"), check.Equals, true, check.Commentf("label %q", t.Label))
	}
	c.Check(labeled > 0, check.Equals, true)
}
