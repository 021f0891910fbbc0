// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dotplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// bpTicks lays out ticks at the default positions and relabels the
// major ones in base pair units with a magnitude suffix.
type bpTicks struct{}

var _ plot.Ticker = bpTicks{}

func (bpTicks) Ticks(min, max float64) []plot.Tick {
	tks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range tks {
		if t.Label == "" {
			continue
		}
		tks[i].Label = bpLabel(t.Value)
	}
	return tks
}

// bpLabel renders a genome coordinate like "1.2 M bp", "3.5 k bp" or
// "850 bp", keeping at most one decimal.
func bpLabel(v float64) string {
	a := math.Abs(v)
	switch {
	case a >= 1e9:
		return short(v/1e9) + " G bp"
	case a >= 1e6:
		return short(v/1e6) + " M bp"
	case a >= 1e3:
		return short(v/1e3) + " k bp"
	default:
		return short(v) + " bp"
	}
}

func short(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
