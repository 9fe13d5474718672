// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// textWidth estimates the rendered width of s in pixels at the given
// font size. It scales the advance of the fixed 7x13 face, which is
// close enough to a proportional sans-serif font for layout.
func textWidth(s string, size float64) float64 {
	const faceHeight = 13
	adv := font.MeasureString(basicfont.Face7x13, s)
	return float64(adv) / 64 * size / faceHeight
}

func maxTextWidth(ss []string, size float64) float64 {
	w := 0.0
	for _, s := range ss {
		if sw := textWidth(s, size); sw > w {
			w = sw
		}
	}
	return w
}
