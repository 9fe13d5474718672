// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"errors"
	"fmt"

	"github.com/hrviz/promoplot/chart"
)

// FittedValues renders one horizontal bar per label split into the
// promoted fraction pctPromoted[i] and its complement. Each segment
// wider than zero is labeled with its percentage.
//
// Errors, such as labels and pctPromoted having different lengths,
// are returned to the caller.
func FittedValues(labels []string, pctPromoted []float64) (*chart.Figure, error) {
	if len(labels) != len(pctPromoted) {
		return nil, fmt.Errorf("fitted values: %d labels but %d rates", len(labels), len(pctPromoted))
	}
	if len(labels) == 0 {
		return nil, errors.New("fitted values: no groups")
	}
	pctNotPromoted := make([]float64, len(pctPromoted))
	for i, p := range pctPromoted {
		pctNotPromoted[i] = 1 - p
	}

	fig := chart.NewFigure(figWidth, figHeight)
	ax := fig.AddAxes(0, 0, 1, 1)
	ax.BarH(labels, true,
		&chart.Series{Name: "% promoted", Color: "promoted", Values: pctPromoted},
		&chart.Series{Name: "% not promoted", Color: "not promoted", Values: pctNotPromoted})

	ax.Title = "Promotion Rate by Group"
	ax.TitleLoc = chart.TitleLeft
	ax.TitlePad = 30
	names, colors := ax.LegendEntries()
	ax.Legend = &chart.Legend{
		Labels:  names,
		Colors:  colors,
		Loc:     chart.UpperLeft,
		AnchorY: 1.12,
		Cols:    2,
	}
	ax.ValueAxisHidden = true
	ax.SetSpines(false, chart.Left, chart.Right, chart.Top, chart.Bottom)
	ax.Ticks = false

	for _, bars := range ax.Containers() {
		for _, b := range bars {
			if b.Width > 0 {
				ax.Annotate(chart.Annotation{
					Text:   FormatPercent(b.Width),
					X:      b.X + b.Width/2,
					Y:      b.Y + b.Height/2,
					HAlign: chart.AlignCenter,
					VAlign: chart.AlignMiddle,
				})
			}
		}
	}
	return fig, nil
}
