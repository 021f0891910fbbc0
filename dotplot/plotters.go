// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	_ plot.Plotter = panelBG{}
	_ plot.Plotter = segments{}
	_ plot.Plotter = boundaries{}
)

// panelBG fills the panel's whole data area, which New arranges to be
// the extent rectangle with its 1% margin.
type panelBG struct {
	color color.Color
}

func (b panelBG) Plot(c draw.Canvas, plt *plot.Plot) {
	c.FillPolygon(b.color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	})
}

// segments draws alignments as line segments from (QStart, TStart) to
// (QEnd, TEnd), colored by identity.
type segments struct {
	alns  []Alignment
	cm    palette.ColorMap
	width vg.Length
}

func (s segments) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, a := range s.alns {
		clr, err := s.cm.At(a.Identity)
		if err != nil {
			continue
		}
		sty := draw.LineStyle{Color: clr, Width: s.width}
		pts := []vg.Point{
			{X: trX(a.QStart), Y: trY(a.TStart)},
			{X: trX(a.QEnd), Y: trY(a.TEnd)},
		}
		c.StrokeLines(sty, c.ClipLinesXY(pts)...)
	}
}

// boundaries rules sequence boundary lines across the panel.
type boundaries struct {
	xs, ys []float64
	sty    draw.LineStyle
}

func (b boundaries) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, x := range b.xs {
		p := trX(x)
		c.StrokeLine2(b.sty, p, c.Min.Y, p, c.Max.Y)
	}
	for _, y := range b.ys {
		p := trY(y)
		c.StrokeLine2(b.sty, c.Min.X, p, c.Max.X, p)
	}
}
