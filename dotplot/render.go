// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type themeColors struct {
	panel color.Color
	brk   color.Color
}

func (th Theme) colors() themeColors {
	if th == Light {
		return themeColors{
			panel: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			brk:   color.NRGBA{R: 0xb4, G: 0xb4, B: 0xb4, A: 0xff},
		}
	}
	return themeColors{
		panel: color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		brk:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x46},
	}
}

// Render draws the plot onto a new square canvas of the given format,
// any format draw.NewFormattedCanvas accepts: eps, jpg, pdf, png, svg,
// tex or tif.
func (p *Plot) Render(format string) (vg.CanvasWriterTo, error) {
	c, err := draw.NewFormattedCanvas(p.cfg.Width, p.cfg.Width, format)
	if err != nil {
		return nil, fmt.Errorf("dotplot: %w", err)
	}
	p.draw(draw.New(c))
	return c, nil
}

// Save renders the plot to the named file, choosing the format from the
// file extension.
func (p *Plot) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return fmt.Errorf("dotplot: no format extension in %q", path)
	}
	c, err := p.Render(ext[1:])
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (p *Plot) draw(dc draw.Canvas) {
	var titleH, legendH vg.Length
	if p.cfg.Title != "" {
		titleH = dc.Size().Y / 12
	}
	if !p.cfg.Strip {
		legendH = dc.Size().Y / 9
	}

	if p.cfg.Title != "" {
		tp := plot.New()
		tp.Title.Text = p.cfg.Title
		tp.Title.TextStyle.Font.Size = vg.Points(16)
		tp.Title.TextStyle.Font.Weight = xfont.WeightBold
		tp.HideAxes()
		tp.Draw(draw.Crop(dc, 0, 0, dc.Size().Y-titleH, 0))
	}

	p.drawGrid(draw.Crop(dc, 0, 0, legendH, -titleH))

	if !p.cfg.Strip {
		inset := dc.Size().X / 4
		p.drawLegend(draw.Crop(dc, inset, -inset, 0, legendH-dc.Size().Y))
	}
}

func (p *Plot) drawGrid(dc draw.Canvas) {
	rows, cols := len(p.tsets), len(p.qsets)
	plots := make([][]*plot.Plot, rows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, cols)
		for j := range plots[i] {
			plots[i][j] = p.panel(i, j)
		}
	}
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}
}

func (p *Plot) panel(i, j int) *plot.Plot {
	f := p.panels[i][j]
	th := p.cfg.Theme.colors()

	pl := plot.New()
	pl.Add(panelBG{color: th.panel})
	if p.cfg.Boundaries {
		pl.Add(boundaries{
			xs:  f.xbrk,
			ys:  f.ybrk,
			sty: draw.LineStyle{Color: th.brk, Width: vg.Points(0.5)},
		})
	}
	pl.Add(segments{alns: f.alns, cm: p.cm, width: p.cfg.LineWidth})

	pl.X.Min, pl.X.Max = -0.01*f.xmax, 1.01*f.xmax
	pl.Y.Min, pl.Y.Max = -0.01*f.ymax, 1.01*f.ymax
	pl.X.Tick.Marker = bpTicks{}
	pl.Y.Tick.Marker = bpTicks{}
	pl.X.Tick.Label.Font.Size = vg.Points(8)
	pl.Y.Tick.Label.Font.Size = vg.Points(8)

	if p.cfg.Strip {
		pl.HideAxes()
		return pl
	}

	if i == 0 {
		pl.Title.Text = f.qset
	}
	if j == 0 {
		pl.Y.Label.Text = f.tset
	}
	// Columns share x ranges and rows share y ranges, so tick labels
	// go on the outer panels only.
	if i != len(p.tsets)-1 {
		pl.X.Tick.Marker = plot.ConstantTicks(nil)
	}
	if j != 0 {
		pl.Y.Tick.Marker = plot.ConstantTicks(nil)
	}
	return pl
}

func (p *Plot) drawLegend(dc draw.Canvas) {
	l := plot.New()
	l.Add(&plotter.ColorBar{ColorMap: p.cm})
	l.HideY()
	l.X.Padding = 0
	l.X.Label.Text = "identity"
	l.Draw(dc)
}
