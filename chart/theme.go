// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// A Theme controls the colors and fonts used to render a Figure.
//
// Series colors are looked up by name in Colors first, so a Series
// may use either a theme key such as "promoted" or a literal SVG
// color.
type Theme struct {
	FontSize   float64           `yaml:"font_size"`
	FontFamily string            `yaml:"font_family"`
	Background string            `yaml:"background"`
	Text       string            `yaml:"text"`
	Spine      string            `yaml:"spine"`
	Grid       string            `yaml:"grid"`
	Colors     map[string]string `yaml:"colors"`
	Cycle      []string          `yaml:"cycle"`
}

// DefaultTheme is the theme used by Figures with no Theme set.
var DefaultTheme = Theme{
	FontSize:   10,
	FontFamily: `Roboto,"Helvetica Neue",Helvetica,Arial,sans-serif`,
	Background: "white",
	Text:       "#262626",
	Spine:      "#262626",
	Grid:       "#b0b0b0",
	Colors: map[string]string{
		"promoted":     "lightseagreen",
		"not promoted": "lightgray",
		"headcount":    "#4285F4",
		"observed":     "orange",
		"expected":     "#4285F4",
	},
	// matplotlib's tab10.
	Cycle: []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
}

// LoadTheme reads a YAML theme from r. Fields missing from r keep
// their DefaultTheme values and Colors entries are merged into the
// default colors.
func LoadTheme(r io.Reader) (*Theme, error) {
	var over Theme
	if err := yaml.NewDecoder(r).Decode(&over); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	th := DefaultTheme
	th.Colors = make(map[string]string, len(DefaultTheme.Colors))
	for k, v := range DefaultTheme.Colors {
		th.Colors[k] = v
	}
	if over.FontSize < 0 {
		return nil, fmt.Errorf("parsing theme: negative font_size %v", over.FontSize)
	}
	if over.FontSize > 0 {
		th.FontSize = over.FontSize
	}
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&th.FontFamily, over.FontFamily},
		{&th.Background, over.Background},
		{&th.Text, over.Text},
		{&th.Spine, over.Spine},
		{&th.Grid, over.Grid},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	for k, v := range over.Colors {
		th.Colors[k] = v
	}
	if len(over.Cycle) > 0 {
		th.Cycle = over.Cycle
	}
	return &th, nil
}

// Color resolves the color of the i'th series whose color is name.
func (th *Theme) Color(name string, i int) string {
	if c, ok := th.Colors[name]; ok {
		return c
	}
	if name != "" {
		return name
	}
	if len(th.Cycle) == 0 {
		return "black"
	}
	return th.Cycle[i%len(th.Cycle)]
}
