// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart is a small in-memory model of bar charts that can be
// rendered to SVG.
//
// A Figure holds a grid of Axes. Each Axes draws one bar chart:
// stacked or grouped, vertical or horizontal, with optional
// annotations and a legend. The geometry of every bar is available
// through Axes.Containers before anything is rendered, so callers can
// place annotations relative to the bars they describe.
package chart

import (
	"github.com/aclements/go-gg/gg/layout"
)

// A Figure is a titled grid of Axes.
type Figure struct {
	// Title is drawn centered above all Axes.
	Title string

	// Width and Height are the size of the rendered figure in
	// pixels.
	Width, Height int

	// Theme controls colors and fonts. If nil, DefaultTheme is
	// used.
	Theme *Theme

	grid layout.Grid
	axes []*Axes
}

// NewFigure returns an empty Figure of the given size in pixels.
func NewFigure(width, height int) *Figure {
	return &Figure{Width: width, Height: height}
}

// AddAxes adds a new Axes to f occupying grid cells (col, row) up to
// but not including (col+colSpan, row+rowSpan). Columns and rows
// share the figure's space equally.
func (f *Figure) AddAxes(col, row, colSpan, rowSpan int) *Axes {
	a := newAxes()
	f.grid.Add(a, col, row, colSpan, rowSpan)
	f.axes = append(f.axes, a)
	return a
}

// Axes returns f's Axes in the order they were added.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

func (f *Figure) theme() *Theme {
	if f.Theme == nil {
		return &DefaultTheme
	}
	return f.Theme
}
