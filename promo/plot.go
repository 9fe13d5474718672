// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"github.com/hrviz/promoplot/chart"
)

// Stacked promotion bars are drawn as two series named after the
// is_promoted values they count.
const (
	seriesPromoted    = "1"
	seriesNotPromoted = "0"
)

// Default figure size in pixels.
const (
	figWidth  = 640
	figHeight = 480
)

// promoSeries returns the promoted and not promoted series, in
// stacking order.
func promoSeries(promoted, notPromoted []float64) []*chart.Series {
	return []*chart.Series{
		{Name: seriesPromoted, Color: "promoted", Values: promoted},
		{Name: seriesNotPromoted, Color: "not promoted", Values: notPromoted},
	}
}

// rateSeries splits rates into promoted and not promoted counts.
func rateSeries(rates *GroupRates) []*chart.Series {
	promoted := make([]float64, len(rates.Rows))
	notPromoted := make([]float64, len(rates.Rows))
	for i, r := range rates.Rows {
		promoted[i], notPromoted[i] = float64(r.Promoted), float64(r.NotPromoted)
	}
	return promoSeries(promoted, notPromoted)
}

// promoLegend returns a legend for ax's series with is_promoted
// series names replaced by "promoted" and "not promoted".
func promoLegend(ax *chart.Axes) *chart.Legend {
	names, colors := ax.LegendEntries()
	labels := make([]string, len(names))
	for i, name := range names {
		if name == seriesPromoted {
			labels[i] = "promoted"
		} else {
			labels[i] = "not promoted"
		}
	}
	return &chart.Legend{Labels: labels, Colors: colors}
}

// annotateRates labels each bar of ax's last series with the share
// of the stack below it. For promotion stacks that is the promotion
// rate of the category.
func annotateRates(ax *chart.Axes) {
	containers := ax.Containers()
	if len(containers) == 0 {
		return
	}
	for _, b := range containers[len(containers)-1] {
		if ax.Orientation == chart.Vertical {
			promos := b.Y
			rate := promos / (promos + b.Height)
			ax.Annotate(chart.Annotation{
				Text:   FormatPercent(rate),
				X:      b.X + b.Width/2,
				Y:      promos,
				HAlign: chart.AlignCenter,
				VAlign: chart.AlignBottom,
			})
		} else {
			promos := b.X
			rate := promos / (promos + b.Width)
			ax.Annotate(chart.Annotation{
				Text:   FormatPercent(rate),
				X:      promos,
				Y:      b.Y,
				VAlign: chart.AlignBottom,
			})
		}
	}
}
