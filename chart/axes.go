// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/aclements/go-gg/gg/layout"
)

// Orientation is the direction bars grow in.
type Orientation int

const (
	// Vertical bars grow up from the X axis.
	Vertical Orientation = iota
	// Horizontal bars grow right from the Y axis.
	Horizontal
)

// Side identifies one of the four spines of an Axes.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// A Spine is one of the lines bounding the plot area.
type Spine struct {
	Visible bool
	// Offset moves the spine outward from the plot area, in
	// pixels.
	Offset float64
}

// A Series is one set of bars, one value per category.
type Series struct {
	// Name identifies the series in legends.
	Name string
	// Color is a Theme color key or a literal SVG color. If empty,
	// the Theme's color cycle is used.
	Color string
	// Values holds one value per category. NaN values produce
	// empty bars.
	Values []float64
}

// A Bar is the geometry of one bar in data coordinates. For vertical
// bars X and Width are in category units and Y and Height are values;
// for horizontal bars the roles are swapped. Category i is centered
// on coordinate i.
type Bar struct {
	Series, Index       int
	X, Y, Width, Height float64
}

// HAlign and VAlign align annotation text relative to its position.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignBottom
	AlignMiddle
	AlignTop
)

// An Annotation is a text label drawn at X, Y in data coordinates.
type Annotation struct {
	Text   string
	X, Y   float64
	HAlign HAlign
	VAlign VAlign
}

// LegendLoc says which corner of a legend is placed at its anchor.
type LegendLoc int

const (
	UpperLeft LegendLoc = iota
	UpperRight
)

// A Legend lists series labels next to color swatches.
type Legend struct {
	Labels []string
	Colors []string
	Loc    LegendLoc
	// AnchorX and AnchorY position the Loc corner of the legend in
	// axes fractions: (0,0) is the bottom left of the plot area
	// and (1,1) is the top right. Values outside [0,1] place the
	// legend outside the plot area.
	AnchorX, AnchorY float64
	// Cols is the number of legend columns. 0 means 1.
	Cols  int
	Frame bool
}

// TitleLoc is the horizontal placement of an Axes title.
type TitleLoc int

const (
	TitleCenter TitleLoc = iota
	TitleLeft
)

// Axes is a single bar chart.
type Axes struct {
	layout.Leaf

	Title    string
	TitleLoc TitleLoc
	// TitlePad is the gap in pixels between the title and the top
	// of the plot area.
	TitlePad float64

	Orientation Orientation
	Categories  []string
	Series      []*Series
	// Stacked stacks series on top of each other. Otherwise bars
	// of the same category are placed side by side.
	Stacked bool
	// BarWidth is the width of each category's bars in category
	// units.
	BarWidth float64

	Spines [4]Spine
	// Ticks draws tick marks on both axes.
	Ticks bool
	// Grid draws gridlines at the value axis ticks.
	Grid bool
	// ValueAxisHidden hides the value axis labels and ticks.
	ValueAxisHidden bool

	Annotations []Annotation
	Legend      *Legend

	share *shareGroup
}

type shareGroup struct {
	members []*Axes
}

func newAxes() *Axes {
	a := &Axes{
		TitlePad: 6,
		BarWidth: 0.5,
		Ticks:    true,
	}
	for i := range a.Spines {
		a.Spines[i].Visible = true
	}
	return a
}

// SizeHint implements layout.Element. Axes have no preferred size
// and fill whatever the grid gives them.
func (a *Axes) SizeHint() (w, h float64, flexw, flexh bool) {
	return 0, 0, true, true
}

// Bar sets a to draw vertical bars of series over categories.
func (a *Axes) Bar(categories []string, stacked bool, series ...*Series) {
	a.setBars(Vertical, categories, stacked, series)
}

// BarH sets a to draw horizontal bars of series over categories.
// Category 0 is at the bottom.
func (a *Axes) BarH(categories []string, stacked bool, series ...*Series) {
	a.setBars(Horizontal, categories, stacked, series)
}

func (a *Axes) setBars(o Orientation, categories []string, stacked bool, series []*Series) {
	for _, s := range series {
		if len(s.Values) != len(categories) {
			panic("chart: series " + s.Name + " length does not match categories")
		}
	}
	a.Orientation = o
	a.Categories = categories
	a.Stacked = stacked
	a.Series = series
}

// ShareValueAxis makes a and b use the same value axis range.
func (a *Axes) ShareValueAxis(b *Axes) {
	switch {
	case a.share == nil && b.share == nil:
		g := &shareGroup{members: []*Axes{a, b}}
		a.share, b.share = g, g
	case a.share == nil:
		a.share = b.share
		b.share.members = append(b.share.members, a)
	case b.share == nil:
		b.share = a.share
		a.share.members = append(a.share.members, b)
	case a.share != b.share:
		for _, m := range b.share.members {
			m.share = a.share
			a.share.members = append(a.share.members, m)
		}
	}
}

// Annotate adds an annotation to a.
func (a *Axes) Annotate(an Annotation) {
	a.Annotations = append(a.Annotations, an)
}

// SetSpines sets the visibility of the given spines.
func (a *Axes) SetSpines(visible bool, sides ...Side) {
	for _, s := range sides {
		a.Spines[s].Visible = visible
	}
}

// OffsetSpines moves the given spines outward by off pixels.
func (a *Axes) OffsetSpines(off float64, sides ...Side) {
	for _, s := range sides {
		a.Spines[s].Offset = off
	}
}

// LegendEntries returns the name and color key of each series.
func (a *Axes) LegendEntries() (labels, colors []string) {
	for _, s := range a.Series {
		labels = append(labels, s.Name)
		colors = append(colors, s.Color)
	}
	return
}

// Containers returns the bars of each series, indexed by series and
// then category.
func (a *Axes) Containers() [][]Bar {
	out := make([][]Bar, len(a.Series))
	base := make([]float64, len(a.Categories))
	n := float64(len(a.Series))
	for si, s := range a.Series {
		bars := make([]Bar, len(a.Categories))
		for i, v := range s.Values {
			// Position along the category axis.
			pos, width := float64(i)-a.BarWidth/2, a.BarWidth
			if !a.Stacked && n > 1 {
				width = a.BarWidth / n
				pos += float64(si) * width
			}
			start, extent := 0.0, v
			if a.Stacked {
				start = base[i]
			}
			if math.IsNaN(v) {
				extent = 0
			} else if a.Stacked {
				base[i] += v
			}

			b := Bar{Series: si, Index: i}
			if a.Orientation == Vertical {
				b.X, b.Width, b.Y, b.Height = pos, width, start, extent
			} else {
				b.Y, b.Height, b.X, b.Width = pos, width, start, extent
			}
			bars[i] = b
		}
		out[si] = bars
	}
	return out
}

// valueRange returns the extent of a's bars along the value axis.
func (a *Axes) valueRange() (lo, hi float64) {
	for _, bars := range a.Containers() {
		for _, b := range bars {
			start, extent := b.Y, b.Height
			if a.Orientation == Horizontal {
				start, extent = b.X, b.Width
			}
			lo = math.Min(lo, math.Min(start, start+extent))
			hi = math.Max(hi, math.Max(start, start+extent))
		}
	}
	return
}

// ValueRange returns the value axis range of a, including every Axes
// it shares its value axis with.
func (a *Axes) ValueRange() (lo, hi float64) {
	if a.share == nil {
		lo, hi = a.valueRange()
	} else {
		for _, m := range a.share.members {
			mlo, mhi := m.valueRange()
			lo, hi = math.Min(lo, mlo), math.Max(hi, mhi)
		}
	}
	if lo == hi {
		hi = lo + 1
	}
	return
}
