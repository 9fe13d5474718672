// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"strings"
	"testing"
)

func TestLoadTheme(t *testing.T) {
	th, err := LoadTheme(strings.NewReader(`
font_size: 12
colors:
  promoted: "#00ff00"
  bonus: gold
`))
	if err != nil {
		t.Fatal(err)
	}
	if th.FontSize != 12 {
		t.Errorf("want font size 12, have %v", th.FontSize)
	}
	if c := th.Color("promoted", 0); c != "#00ff00" {
		t.Errorf("promoted: want #00ff00, have %s", c)
	}
	if c := th.Color("bonus", 0); c != "gold" {
		t.Errorf("bonus: want gold, have %s", c)
	}
	// Untouched defaults survive.
	if c := th.Color("not promoted", 0); c != "lightgray" {
		t.Errorf("not promoted: want lightgray, have %s", c)
	}
	if th.Background != DefaultTheme.Background {
		t.Errorf("want default background, have %s", th.Background)
	}
	// Loading must not modify the default theme.
	if c := DefaultTheme.Colors["promoted"]; c != "lightseagreen" {
		t.Errorf("DefaultTheme modified: promoted is %s", c)
	}
}

func TestLoadThemeEmpty(t *testing.T) {
	th, err := LoadTheme(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if th.FontSize != DefaultTheme.FontSize {
		t.Errorf("want default font size, have %v", th.FontSize)
	}
}

func TestLoadThemeBad(t *testing.T) {
	for _, in := range []string{"font_size: [", "font_size: -3"} {
		if _, err := LoadTheme(strings.NewReader(in)); err == nil {
			t.Errorf("%q: want error", in)
		}
	}
}

func TestThemeColor(t *testing.T) {
	th := DefaultTheme
	tests := []struct {
		name string
		i    int
		want string
	}{
		{"observed", 0, "orange"},
		{"#123456", 0, "#123456"},
		{"", 0, "#1f77b4"},
		{"", 11, "#ff7f0e"},
	}
	for _, test := range tests {
		if have := th.Color(test.name, test.i); have != test.want {
			t.Errorf("Color(%q, %d): want %s, have %s", test.name, test.i, test.want, have)
		}
	}
}
