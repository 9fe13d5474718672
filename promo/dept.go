// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"errors"
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/hrviz/promoplot/chart"
)

// A Headcount is the number of records with one category value.
type Headcount struct {
	Label string
	Count int
}

// Headcounts counts the records of t in each department, including
// records with no department, which are labeled MissingLabel. The
// result is sorted by increasing count, then by label.
func Headcounts(t *table.Table) ([]Headcount, error) {
	if t == nil {
		return nil, errors.New("headcount: no records")
	}
	depts, err := columnStrings(t, ColDepartment)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []Headcount
	for _, d := range depts {
		if isMissing(d) {
			d = MissingLabel
		}
		i, ok := index[d]
		if !ok {
			i = len(counts)
			index[d] = i
			counts = append(counts, Headcount{Label: d})
		}
		counts[i].Count++
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count < counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts, nil
}

// HeadcountByDept renders the number of records in each department
// as horizontal bars, smallest department at the bottom, each bar
// labeled with its count. Errors are returned to the caller.
func HeadcountByDept(t *table.Table) (*chart.Figure, error) {
	counts, err := Headcounts(t)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, c := range counts {
		labels[i], values[i] = c.Label, float64(c.Count)
	}

	fig := chart.NewFigure(figWidth, figHeight)
	ax := fig.AddAxes(0, 0, 1, 1)
	ax.BarH(labels, false, &chart.Series{Name: ColDepartment, Color: "headcount", Values: values})
	for _, b := range ax.Containers()[0] {
		ax.Annotate(chart.Annotation{
			Text:   FormatCount(int(b.Width)),
			X:      b.Width,
			Y:      b.Y,
			VAlign: chart.AlignBottom,
		})
	}

	ax.Ticks = false
	ax.SetSpines(false, chart.Right, chart.Top, chart.Bottom)
	ax.OffsetSpines(10, chart.Left)
	ax.ValueAxisHidden = true
	ax.Title = "Headcount by Department"
	ax.TitleLoc = chart.TitleLeft
	ax.TitlePad = 10
	return fig, nil
}

// PromosByDept renders promoted and not promoted counts per
// department as stacked horizontal bars, in the given department
// order, each bar labeled with the department's promotion rate.
// Departments in order that are missing from rates are drawn empty
// and labeled "NaN%". Errors are returned to the caller.
func PromosByDept(rates *GroupRates, order []string) (*chart.Figure, error) {
	if rates == nil {
		return nil, errors.New("promotions by department: no promotion rates")
	}
	promoted := make([]float64, len(order))
	notPromoted := make([]float64, len(order))
	for i, dept := range order {
		r, ok := rates.Lookup(dept)
		if !ok {
			promoted[i], notPromoted[i] = math.NaN(), math.NaN()
			continue
		}
		promoted[i], notPromoted[i] = float64(r.Promoted), float64(r.NotPromoted)
	}

	fig := chart.NewFigure(figWidth, figHeight)
	ax := fig.AddAxes(0, 0, 1, 1)
	ax.BarH(order, true, promoSeries(promoted, notPromoted)...)
	annotateRates(ax)

	ax.Ticks = false
	ax.SetSpines(false, chart.Right, chart.Top)
	ax.OffsetSpines(10, chart.Left, chart.Bottom)
	ax.Title = "Promo Rates by Department"
	ax.TitleLoc = chart.TitleLeft
	ax.TitlePad = 10

	l := promoLegend(ax)
	l.Cols = 2
	l.Loc = chart.UpperLeft
	l.AnchorX, l.AnchorY = 0, 1.1
	ax.Legend = l
	return fig, nil
}
