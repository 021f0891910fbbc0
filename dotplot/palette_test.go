// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"image/color"
	"math"

	check "gopkg.in/check.v1"
)

func (s *S) TestIdentityMapDomain(c *check.C) {
	for i, th := range []Theme{Dark, Light} {
		m := IdentityMap(th)
		c.Check(m.Min(), check.Equals, -1.0, check.Commentf("Test %d", i))
		c.Check(m.Max(), check.Equals, 1.0, check.Commentf("Test %d", i))
	}
}

func (s *S) TestGradientAt(c *check.C) {
	light := IdentityMap(Light)
	for i, t := range []struct {
		v    float64
		want color.NRGBA
	}{
		{-1, color.NRGBA{R: 0xff, A: 0xff}},
		{-2, color.NRGBA{R: 0xff, A: 0xff}},
		{0, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}},
		{1, color.NRGBA{B: 0xff, A: 0xff}},
		{2, color.NRGBA{B: 0xff, A: 0xff}},
	} {
		clr, err := light.At(t.v)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(clr, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}

	dark := IdentityMap(Dark)
	for i, t := range []struct {
		v    float64
		want color.NRGBA
	}{
		{-1, color.NRGBA{R: 0x5e, G: 0x4f, B: 0xa2, A: 0xff}},
		{0, color.NRGBA{R: 0xff, G: 0xff, B: 0xbf, A: 0xff}},
		{1, color.NRGBA{R: 0x9e, G: 0x01, B: 0x42, A: 0xff}},
	} {
		clr, err := dark.At(t.v)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(clr, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}

	_, err := dark.At(math.NaN())
	c.Check(err, check.ErrorMatches, "dotplot: NaN value")
}

func (s *S) TestGradientAlpha(c *check.C) {
	g := NewGradient(-1, 1, lightStops...)
	c.Check(g.Alpha(), check.Equals, 1.0)
	g.SetAlpha(0.5)
	c.Check(g.Alpha(), check.Equals, 0.5)
	clr, err := g.At(1)
	c.Assert(err, check.Equals, nil)
	c.Check(clr.(color.NRGBA).A, check.Equals, uint8(0x80))
	c.Check(func() { g.SetAlpha(1.5) }, check.PanicMatches, "dotplot: alpha out of range")
}

func (s *S) TestGradientPalette(c *check.C) {
	m := IdentityMap(Light)
	cs := m.Palette(3).Colors()
	c.Assert(cs, check.HasLen, 3)
	c.Check(cs[0], check.DeepEquals, color.NRGBA{R: 0xff, A: 0xff})
	c.Check(cs[1], check.DeepEquals, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	c.Check(cs[2], check.DeepEquals, color.NRGBA{B: 0xff, A: 0xff})

	one := m.Palette(1).Colors()
	c.Assert(one, check.HasLen, 1)
	c.Check(one[0], check.DeepEquals, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})

	c.Check(func() { m.Palette(0) }, check.PanicMatches, "dotplot: palette size must be positive")
}
