// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Gradient is a color map interpolating linearly between fixed stops
// spread evenly over a fixed value domain. Values outside the domain
// clamp to the end colors.
type Gradient struct {
	stops    []color.NRGBA
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*Gradient)(nil)

// NewGradient returns a gradient over the given stops spanning
// [min, max]. At least two stops are required and min must be below
// max.
func NewGradient(min, max float64, stops ...color.NRGBA) *Gradient {
	if len(stops) < 2 {
		panic("dotplot: gradient needs at least two stops")
	}
	if min >= max {
		panic("dotplot: gradient min must be below max")
	}
	return &Gradient{stops: stops, min: min, max: max, alpha: 1}
}

// spectral is the ColorBrewer 11-class Spectral scheme, reversed so the
// high end of the domain takes the warm colors.
var spectral = []color.NRGBA{
	{R: 0x5e, G: 0x4f, B: 0xa2, A: 0xff},
	{R: 0x32, G: 0x88, B: 0xbd, A: 0xff},
	{R: 0x66, G: 0xc2, B: 0xa5, A: 0xff},
	{R: 0xab, G: 0xdd, B: 0xa4, A: 0xff},
	{R: 0xe6, G: 0xf5, B: 0x98, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xbf, A: 0xff},
	{R: 0xfe, G: 0xe0, B: 0x8b, A: 0xff},
	{R: 0xfd, G: 0xae, B: 0x61, A: 0xff},
	{R: 0xf4, G: 0x6d, B: 0x43, A: 0xff},
	{R: 0xd5, G: 0x3e, B: 0x4f, A: 0xff},
	{R: 0x9e, G: 0x01, B: 0x42, A: 0xff},
}

// lightStops is the light theme scheme, red through grey to blue.
var lightStops = []color.NRGBA{
	{R: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, A: 0xff},
	{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	{G: 0x80, A: 0xff},
	{B: 0xff, A: 0xff},
}

// IdentityMap returns the identity color map of the given theme. The
// domain is fixed to [-1, 1] and is never rescaled to the data.
func IdentityMap(th Theme) palette.ColorMap {
	if th == Light {
		return NewGradient(-1, 1, lightStops...)
	}
	return NewGradient(-1, 1, spectral...)
}

// At returns the color of the map at v.
func (g *Gradient) At(v float64) (color.Color, error) {
	if math.IsNaN(v) {
		return nil, errors.New("dotplot: NaN value")
	}
	switch {
	case v < g.min:
		v = g.min
	case v > g.max:
		v = g.max
	}
	pos := (v - g.min) / (g.max - g.min) * float64(len(g.stops)-1)
	i := int(pos)
	if i == len(g.stops)-1 {
		i--
	}
	frac := pos - float64(i)
	c0, c1 := g.stops[i], g.stops[i+1]
	return color.NRGBA{
		R: lerp(c0.R, c1.R, frac),
		G: lerp(c0.G, c1.G, frac),
		B: lerp(c0.B, c1.B, frac),
		A: uint8(math.Round(g.alpha * lerpf(c0.A, c1.A, frac))),
	}, nil
}

func lerp(a, b uint8, t float64) uint8 { return uint8(math.Round(lerpf(a, b, t))) }

func lerpf(a, b uint8, t float64) float64 { return float64(a) + t*(float64(b)-float64(a)) }

// Min returns the lower bound of the domain.
func (g *Gradient) Min() float64 { return g.min }

// SetMin sets the lower bound of the domain.
func (g *Gradient) SetMin(v float64) { g.min = v }

// Max returns the upper bound of the domain.
func (g *Gradient) Max() float64 { return g.max }

// SetMax sets the upper bound of the domain.
func (g *Gradient) SetMax(v float64) { g.max = v }

// Alpha returns the opacity of the map.
func (g *Gradient) Alpha() float64 { return g.alpha }

// SetAlpha sets the opacity of the map, between 0 and 1.
func (g *Gradient) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("dotplot: alpha out of range")
	}
	g.alpha = a
}

// Palette returns a palette of n colors sampled evenly from the map.
func (g *Gradient) Palette(n int) palette.Palette {
	if n < 1 {
		panic("dotplot: palette size must be positive")
	}
	cs := make([]color.Color, n)
	if n == 1 {
		cs[0], _ = g.At((g.min + g.max) / 2)
		return colors(cs)
	}
	for i := range cs {
		cs[i], _ = g.At(g.min + float64(i)/float64(n-1)*(g.max-g.min))
	}
	return colors(cs)
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
