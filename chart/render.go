// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo/float"
)

const (
	tickLen    = 3.5
	tickGap    = 3.5
	maxTicks   = 6
	valueExtra = 0.05 // fraction of the value range added as margin
	spineWidth = 0.8
)

// WriteSVG renders f as an SVG document to w.
func (f *Figure) WriteSVG(w io.Writer) error {
	th := f.theme()
	ew := &errWriter{w: w}
	width, height := float64(f.Width), float64(f.Height)

	canvas := svg.New(ew)
	family := strings.Replace(th.FontFamily, `"`, "&quot;", -1)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="%s"`, th.FontSize, family))
	canvas.Rect(0, 0, width, height, "fill:"+th.Background)

	top := 0.0
	if f.Title != "" {
		size := th.FontSize * 1.4
		canvas.Text(width/2, 8+size, f.Title, fmt.Sprintf(`text-anchor="middle" font-size="%.6gpx"`, size), "fill:"+th.Text)
		top = size + 16
	}

	f.grid.SetLayout(0, top, width, height-top)
	for _, a := range f.axes {
		a.render(canvas, th, width, height)
	}

	canvas.End()
	return ew.err
}

// errWriter records the first error from w. svgo ignores write
// errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// valueScale returns the scale of a's value axis and its major ticks.
func (a *Axes) valueScale() (scale.Linear, []float64) {
	lo, hi := a.ValueRange()
	span := hi - lo
	vs := scale.Linear{Min: lo, Max: hi + span*valueExtra}
	if lo < 0 {
		vs.Min = lo - span*valueExtra
	}
	major, _ := vs.Ticks(scale.TickOptions{Max: maxTicks})
	return vs, major
}

func (a *Axes) categoryScale() scale.Linear {
	n := len(a.Categories)
	if n == 0 {
		n = 1
	}
	return scale.Linear{Min: -0.5, Max: float64(n) - 0.5}
}

func formatTicks(ticks []float64) []string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = fmt.Sprintf("%.6g", t)
	}
	return labels
}

func (a *Axes) render(canvas *svg.SVG, th *Theme, figW, figH float64) {
	x, y, w, h := a.Layout()
	fs := th.FontSize

	vs, major := a.valueScale()
	cs := a.categoryScale()
	valueLabels := formatTicks(major)
	if a.ValueAxisHidden {
		valueLabels = nil
	}

	// Compute margins around the plot area.
	ml, mr, mt, mb := 10.0, 10.0, 8.0, 8.0
	var leftLabels []string
	bottomLabels := true
	if a.Orientation == Vertical {
		leftLabels = valueLabels
	} else {
		leftLabels = a.Categories
		bottomLabels = !a.ValueAxisHidden
	}
	ml += a.Spines[Left].Offset
	if len(leftLabels) > 0 {
		ml += maxTextWidth(leftLabels, fs) + tickGap
	}
	if bottomLabels {
		mb += a.Spines[Bottom].Offset + fs + tickGap
	}
	if a.Ticks {
		ml += tickLen
		mb += tickLen
	}
	if a.Title != "" {
		mt += fs*1.2 + a.TitlePad
	}
	px0, px1 := x+ml, math.Max(x+ml+1, x+w-mr)
	py0, py1 := y+mt, math.Max(y+mt+1, y+h-mb)

	// toPx maps data coordinates to pixels.
	toPx := func(dx, dy float64) (float64, float64) {
		if a.Orientation == Vertical {
			return px0 + cs.Map(dx)*(px1-px0), py1 - vs.Map(dy)*(py1-py0)
		}
		return px0 + vs.Map(dx)*(px1-px0), py1 - cs.Map(dy)*(py1-py0)
	}

	// Gridlines.
	if a.Grid {
		style := fmt.Sprintf("stroke:%s;stroke-width:%.6g", th.Grid, spineWidth)
		for _, t := range major {
			if a.Orientation == Vertical {
				_, ty := toPx(0, t)
				canvas.Line(px0, ty, px1, ty, style)
			} else {
				tx, _ := toPx(t, 0)
				canvas.Line(tx, py0, tx, py1, style)
			}
		}
	}

	// Bars.
	for si, bars := range a.Containers() {
		fill := "fill:" + th.Color(a.Series[si].Color, si)
		for _, b := range bars {
			x0, y0 := toPx(b.X, b.Y)
			x1, y1 := toPx(b.X+b.Width, b.Y+b.Height)
			rw, rh := math.Abs(x1-x0), math.Abs(y1-y0)
			if rw == 0 || rh == 0 {
				continue
			}
			canvas.Rect(math.Min(x0, x1), math.Min(y0, y1), rw, rh, fill)
		}
	}

	// Spines.
	spineStyle := fmt.Sprintf("stroke:%s;stroke-width:%.6g", th.Spine, spineWidth)
	if s := a.Spines[Left]; s.Visible {
		canvas.Line(px0-s.Offset, py0, px0-s.Offset, py1, spineStyle)
	}
	if s := a.Spines[Right]; s.Visible {
		canvas.Line(px1+s.Offset, py0, px1+s.Offset, py1, spineStyle)
	}
	if s := a.Spines[Top]; s.Visible {
		canvas.Line(px0, py0-s.Offset, px1, py0-s.Offset, spineStyle)
	}
	if s := a.Spines[Bottom]; s.Visible {
		canvas.Line(px0, py1+s.Offset, px1, py1+s.Offset, spineStyle)
	}

	// Axis labels and tick marks.
	textFill := "fill:" + th.Text
	leftX := px0 - a.Spines[Left].Offset
	bottomY := py1 + a.Spines[Bottom].Offset
	tick := 0.0
	if a.Ticks {
		tick = tickLen
	}
	leftLabel := func(py float64, label string) {
		if a.Ticks {
			canvas.Line(leftX-tickLen, py, leftX, py, spineStyle)
		}
		canvas.Text(leftX-tick-tickGap, py, label, `text-anchor="end" dy=".35em"`, textFill)
	}
	bottomLabel := func(px float64, label string) {
		if a.Ticks {
			canvas.Line(px, bottomY, px, bottomY+tickLen, spineStyle)
		}
		canvas.Text(px, bottomY+tick+tickGap, label, `text-anchor="middle" dy=".8em"`, textFill)
	}
	for i, label := range a.Categories {
		cx, cy := toPx(float64(i), float64(i))
		if a.Orientation == Vertical {
			bottomLabel(cx, label)
		} else {
			leftLabel(cy, label)
		}
	}
	for i, label := range valueLabels {
		vx, vy := toPx(major[i], major[i])
		if a.Orientation == Vertical {
			leftLabel(vy, label)
		} else {
			bottomLabel(vx, label)
		}
	}

	// Annotations.
	for _, an := range a.Annotations {
		ax, ay := toPx(an.X, an.Y)
		canvas.Text(ax, ay, an.Text, textAttrs(an.HAlign, an.VAlign), textFill)
	}

	// Title.
	if a.Title != "" {
		attrs := fmt.Sprintf(`text-anchor="middle" font-size="%.6gpx"`, fs*1.2)
		tx := (px0 + px1) / 2
		if a.TitleLoc == TitleLeft {
			attrs = fmt.Sprintf(`text-anchor="start" font-size="%.6gpx"`, fs*1.2)
			tx = px0
		}
		canvas.Text(tx, py0-a.TitlePad, a.Title, attrs, textFill)
	}

	if a.Legend != nil {
		a.renderLegend(canvas, th, px0, py0, px1, py1, figW, figH)
	}
}

func textAttrs(ha HAlign, va VAlign) string {
	anchor := "start"
	switch ha {
	case AlignCenter:
		anchor = "middle"
	case AlignRight:
		anchor = "end"
	}
	dy := "0"
	switch va {
	case AlignBottom:
		dy = "-.2em"
	case AlignMiddle:
		dy = ".35em"
	case AlignTop:
		dy = ".8em"
	}
	return fmt.Sprintf(`text-anchor="%s" dy="%s"`, anchor, dy)
}

func (a *Axes) renderLegend(canvas *svg.SVG, th *Theme, px0, py0, px1, py1, figW, figH float64) {
	l := a.Legend
	fs := th.FontSize
	cols := l.Cols
	if cols < 1 {
		cols = 1
	}
	rows := (len(l.Labels) + cols - 1) / cols
	const pad = 4.0
	swatch := fs
	rowH := fs * 1.4
	entryW := swatch + pad + maxTextWidth(l.Labels, fs) + 2*pad
	lw := float64(cols)*entryW + 2*pad
	lh := float64(rows)*rowH + 2*pad

	lx := px0 + l.AnchorX*(px1-px0)
	ly := py1 - l.AnchorY*(py1-py0)
	if l.Loc == UpperRight {
		lx -= lw
	}
	// Keep the legend on the canvas.
	lx = math.Max(0, math.Min(lx, figW-lw))
	ly = math.Max(0, math.Min(ly, figH-lh))

	if l.Frame {
		canvas.Rect(lx, ly, lw, lh, "fill:"+th.Background+";stroke:"+th.Grid)
	}
	for i, label := range l.Labels {
		r, c := i/cols, i%cols
		ex := lx + pad + float64(c)*entryW
		ey := ly + pad + float64(r)*rowH
		color := ""
		if i < len(l.Colors) {
			color = l.Colors[i]
		}
		canvas.Rect(ex, ey+(rowH-swatch)/2, swatch, swatch, "fill:"+th.Color(color, i))
		canvas.Text(ex+swatch+pad, ey+rowH/2, label, `text-anchor="start" dy=".35em"`, "fill:"+th.Text)
	}
}
