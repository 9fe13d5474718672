// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// FormatPercent formats a rate in [0,1] as a whole percentage, such
// as "30%". NaN formats as "NaN%".
func FormatPercent(rate float64) string {
	if math.IsNaN(rate) {
		return "NaN%"
	}
	return fmt.Sprintf("%.0f%%", rate*100)
}

// FormatCount formats n with thousands separators, such as "1,234".
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}
