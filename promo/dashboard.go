// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"github.com/aclements/go-gg/table"
	"github.com/hrviz/promoplot/chart"
)

type panel struct {
	group, title      string
	col, row, colSpan int
	// shareWith is the index of the panel whose value axis this
	// panel shares, or -1.
	shareWith int
	legend    bool
}

// dashboardPanels lay out the dashboard on a 4x2 grid.
var dashboardPanels = []panel{
	{ColGender, "Gender", 0, 0, 1, -1, false},
	{ColTenureBands, "Tenure", 1, 0, 1, 0, false},
	{ColAwardsWon, "Awards Won", 2, 0, 1, 0, false},
	{ColHighPerformer, "High Performer", 3, 0, 1, 0, true},
	{ColRegionGroups, "Top Regions", 0, 1, 3, -1, false},
	{ColAgeGroup, "Generations", 3, 1, 1, 4, false},
}

// Dashboard renders promoted and not promoted headcounts for gender,
// tenure, awards, high performers, regions and generations, with
// each bar labeled by its promotion rate. group only appears in the
// figure title.
//
// Dashboard does not return errors. A failure, such as a missing
// column in t, is logged to Logger and Dashboard returns the figure
// as far as it got.
func Dashboard(t *table.Table, group string) (fig *chart.Figure) {
	fig = chart.NewFigure(1500, 600)
	fig.Title = "Promotion Rate by Group: " + group

	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("dashboard: %v", r)
		}
	}()
	if err := drawDashboard(fig, t); err != nil {
		Logger.Printf("dashboard: %v", err)
	}
	return fig
}

func drawDashboard(fig *chart.Figure, t *table.Table) error {
	axes := make([]*chart.Axes, len(dashboardPanels))
	for i, p := range dashboardPanels {
		axes[i] = fig.AddAxes(p.col, p.row, p.colSpan, 1)
		if p.shareWith >= 0 {
			axes[i].ShareValueAxis(axes[p.shareWith])
		}
	}

	for i, p := range dashboardPanels {
		rates, err := AggregateRates(t, p.group)
		if err != nil {
			return err
		}
		ax := axes[i]
		ax.Bar(rates.Labels(), true, rateSeries(rates)...)
		ax.Title = p.title
		if p.legend {
			l := promoLegend(ax)
			l.Loc = chart.UpperRight
			l.AnchorX, l.AnchorY = 1.5, 1.1
			ax.Legend = l
		}
	}

	for _, ax := range fig.Axes() {
		ax.SetSpines(false, chart.Top, chart.Right)
		ax.OffsetSpines(5, chart.Bottom, chart.Left)
		ax.Ticks = false
		ax.Grid = true
		annotateRates(ax)
	}
	return nil
}
