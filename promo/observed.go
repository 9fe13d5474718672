// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/hrviz/promoplot/chart"
)

// Columns of an observed vs. expected table, besides ColDepartment.
const (
	ColObserved = "observed"
	ColExpected = "expected"
)

// ObservedVsExpected renders each numeric column of t as grouped
// horizontal bars per department. t must have a department column;
// the observed and expected columns get fixed colors. Errors, such as
// a missing department column or a non-numeric column, are returned
// to the caller.
func ObservedVsExpected(t *table.Table) (*chart.Figure, error) {
	if t == nil || t.Len() == 0 {
		return nil, errors.New("observed vs. expected: no data")
	}
	depts, err := columnStrings(t, ColDepartment)
	if err != nil {
		return nil, fmt.Errorf("observed vs. expected: %w", err)
	}

	var series []*chart.Series
	for _, col := range t.Columns() {
		if col == ColDepartment {
			continue
		}
		values, err := numericColumn(t, col)
		if err != nil {
			return nil, fmt.Errorf("observed vs. expected: %w", err)
		}
		s := &chart.Series{Name: col, Values: values}
		if col == ColObserved || col == ColExpected {
			s.Color = col
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil, errors.New("observed vs. expected: no numeric columns")
	}

	fig := chart.NewFigure(figWidth, figHeight)
	ax := fig.AddAxes(0, 0, 1, 1)
	ax.BarH(depts, false, series...)
	ax.Title = "Promotions: Observed vs. Expected"
	ax.TitleLoc = chart.TitleLeft
	ax.TitlePad = 20
	ax.SetSpines(false, chart.Right, chart.Top)
	ax.OffsetSpines(10, chart.Left, chart.Bottom)
	ax.Ticks = false

	names, colors := ax.LegendEntries()
	ax.Legend = &chart.Legend{
		Labels:  names,
		Colors:  colors,
		Loc:     chart.UpperLeft,
		AnchorY: 1.1,
		Cols:    2,
	}
	return fig, nil
}

// numericColumn returns column col of t as float64s.
func numericColumn(t *table.Table, col string) (values []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			values, err = nil, fmt.Errorf("column %q is not numeric: %v", col, r)
		}
	}()
	slice.Convert(&values, t.MustColumn(col))
	return values, nil
}
