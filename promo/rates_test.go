// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
)

// groupRecords returns a record table where each category value
// cats[i] has promoted[i] promoted and notPromoted[i] other records.
func groupRecords(group string, cats []string, promoted, notPromoted []int) *table.Table {
	var ids, flags []int
	var vals []string
	for i, c := range cats {
		for j := 0; j < promoted[i]+notPromoted[i]; j++ {
			ids = append(ids, len(ids)+1)
			vals = append(vals, c)
			if j < promoted[i] {
				flags = append(flags, 1)
			} else {
				flags = append(flags, 0)
			}
		}
	}
	return new(table.Builder).
		Add(ColEmployeeID, ids).
		Add(group, vals).
		Add(ColPromoted, flags).
		Done()
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	t.Cleanup(func() { Logger.SetOutput(os.Stderr) })
	return &buf
}

func TestAggregateRates(t *testing.T) {
	tab := groupRecords("team", []string{"B", "A"}, []int{1, 3}, []int{1, 7})
	rates, err := AggregateRates(tab, "team")
	if err != nil {
		t.Fatal(err)
	}
	want := &GroupRates{
		Group: "team",
		Rows: []GroupRate{
			{Label: "A", NotPromoted: 7, Promoted: 3, Rate: 0.3},
			{Label: "B", NotPromoted: 1, Promoted: 1, Rate: 0.5},
		},
	}
	if diff := cmp.Diff(want, rates); diff != "" {
		t.Errorf("rates mismatch (-want +have):\n%s", diff)
	}
}

func TestAggregateRatesOneSided(t *testing.T) {
	// Categories with no promotions, or only promotions, count
	// the missing side as zero.
	tab := groupRecords("team", []string{"A", "B"}, []int{0, 2}, []int{4, 0})
	rates, err := AggregateRates(tab, "team")
	if err != nil {
		t.Fatal(err)
	}
	if r := rates.Rows[0]; r.Promoted != 0 || r.NotPromoted != 4 || r.Rate != 0 {
		t.Errorf("A: have %+v", r)
	}
	if r := rates.Rows[1]; r.Promoted != 2 || r.NotPromoted != 0 || r.Rate != 1 {
		t.Errorf("B: have %+v", r)
	}
}

func TestAggregateRatesYesNo(t *testing.T) {
	awards := new(table.Builder).
		Add(ColEmployeeID, []int{1, 2, 3, 4}).
		Add(ColAwardsWon, []int{1, 0, 0, 1}).
		Add(ColPromoted, []int{1, 0, 1, 1}).
		Done()
	high := new(table.Builder).
		Add(ColEmployeeID, []int{1, 2, 3}).
		Add(ColHighPerformer, []string{"True", "False", "True"}).
		Add(ColPromoted, []string{"True", "False", "False"}).
		Done()
	highBool := new(table.Builder).
		Add(ColEmployeeID, []int{1, 2, 3}).
		Add(ColHighPerformer, []bool{true, false, true}).
		Add(ColPromoted, []bool{true, false, false}).
		Done()

	for _, test := range []struct {
		tab   *table.Table
		group string
	}{
		{awards, ColAwardsWon},
		{high, ColHighPerformer},
		{highBool, ColHighPerformer},
	} {
		rates, err := AggregateRates(test.tab, test.group)
		if err != nil {
			t.Fatalf("%s: %v", test.group, err)
		}
		if want, have := []string{"no", "yes"}, rates.Labels(); !cmp.Equal(want, have) {
			t.Errorf("%s: want labels %q, have %q", test.group, want, have)
		}
	}
}

func TestAggregateRatesNumericOrder(t *testing.T) {
	tab := new(table.Builder).
		Add(ColEmployeeID, []int{1, 2, 3}).
		Add("tenure", []int{10, 2, 10}).
		Add(ColPromoted, []int{0, 1, 1}).
		Done()
	rates, err := AggregateRates(tab, "tenure")
	if err != nil {
		t.Fatal(err)
	}
	if want, have := []string{"2", "10"}, rates.Labels(); !cmp.Equal(want, have) {
		t.Errorf("want labels %q, have %q", want, have)
	}
}

func TestAggregateRatesSkipsMissing(t *testing.T) {
	tab := groupRecords(ColGender, []string{"F", "", "M"}, []int{1, 5, 1}, []int{1, 5, 1})
	rates, err := AggregateRates(tab, ColGender)
	if err != nil {
		t.Fatal(err)
	}
	if want, have := []string{"F", "M"}, rates.Labels(); !cmp.Equal(want, have) {
		t.Errorf("want labels %q, have %q", want, have)
	}
}

func TestAggregateRatesBoolOrder(t *testing.T) {
	tab := new(table.Builder).
		Add("remote", []bool{true, false, true}).
		Add(ColPromoted, []int{1, 0, 0}).
		Done()
	rates, err := AggregateRates(tab, "remote")
	if err != nil {
		t.Fatal(err)
	}
	want := &GroupRates{
		Group: "remote",
		Rows: []GroupRate{
			{Label: "false", NotPromoted: 1, Promoted: 0, Rate: 0},
			{Label: "true", NotPromoted: 1, Promoted: 1, Rate: 0.5},
		},
	}
	if diff := cmp.Diff(want, rates); diff != "" {
		t.Errorf("rates mismatch (-want +have):\n%s", diff)
	}
}

func TestAggregateRatesMissingFlags(t *testing.T) {
	// A blank flag turns the whole column into strings.
	tab, err := ReadRecords(strings.NewReader(`employee_id,department,is_promoted
1,HR,1
2,HR,
3,HR,0
4,Sales,
5,Tech,NA
6,Tech,1
`))
	if err != nil {
		t.Fatal(err)
	}
	rates, err := AggregateRates(tab, ColDepartment)
	if err != nil {
		t.Fatal(err)
	}
	want := &GroupRates{
		Group: ColDepartment,
		Rows: []GroupRate{
			{Label: "HR", NotPromoted: 1, Promoted: 1, Rate: 0.5},
			{Label: "Tech", NotPromoted: 0, Promoted: 1, Rate: 1},
		},
	}
	if diff := cmp.Diff(want, rates); diff != "" {
		t.Errorf("rates mismatch (-want +have):\n%s", diff)
	}

	floats := new(table.Builder).
		Add("team", []string{"A", "A", "A"}).
		Add(ColPromoted, []float64{1, math.NaN(), 0}).
		Done()
	rates, err = AggregateRates(floats, "team")
	if err != nil {
		t.Fatal(err)
	}
	if r := rates.Rows[0]; r.Promoted != 1 || r.NotPromoted != 1 {
		t.Errorf("NaN flag should be skipped; have %+v", r)
	}
}

func TestAggregateRatesErrors(t *testing.T) {
	good := groupRecords("team", []string{"A"}, []int{1}, []int{1})
	noFlag := new(table.Builder).
		Add(ColEmployeeID, []int{1}).
		Add("team", []string{"A"}).
		Done()
	badFlag := new(table.Builder).
		Add("team", []string{"A"}).
		Add(ColPromoted, []string{"maybe"}).
		Done()

	for _, test := range []struct {
		name  string
		tab   *table.Table
		group string
		want  string
	}{
		{"nil table", nil, "team", "no records"},
		{"missing group", good, "division", `unknown column "division"`},
		{"missing flag", noFlag, "team", `unknown column "is_promoted"`},
		{"bad flag", badFlag, "team", `bad is_promoted value "maybe"`},
	} {
		rates, err := AggregateRates(test.tab, test.group)
		if err == nil {
			t.Errorf("%s: want error, have %+v", test.name, rates)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: want error containing %q, have %v", test.name, test.want, err)
		}
	}
}

func TestRateByGroupLogs(t *testing.T) {
	buf := captureLog(t)
	tab := groupRecords("team", []string{"A"}, []int{1}, []int{1})

	rates := RateByGroup(tab, "division")
	if rates != nil {
		t.Errorf("want nil rates, have %+v", rates)
	}
	if !strings.Contains(buf.String(), `unknown column "division"`) {
		t.Errorf("want logged error, have log %q", buf.String())
	}

	buf.Reset()
	if rates := RateByGroup(tab, "team"); rates == nil || len(rates.Rows) != 1 {
		t.Errorf("want one row, have %+v", rates)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestPromoRate(t *testing.T) {
	if r := PromoRate(3, 7); r != 0.3 {
		t.Errorf("PromoRate(3, 7): want 0.3, have %v", r)
	}
	if r := PromoRate(0, 0); !math.IsNaN(r) {
		t.Errorf("PromoRate(0, 0): want NaN, have %v", r)
	}
}

func TestGroupRatesTable(t *testing.T) {
	rates := &GroupRates{
		Group: "team",
		Rows: []GroupRate{
			{Label: "A", NotPromoted: 7, Promoted: 3, Rate: 0.3},
		},
	}
	tab := rates.Table()
	if want, have := []string{"team", "not promoted", "promoted", "promo rate"}, tab.Columns(); !cmp.Equal(want, have) {
		t.Errorf("want columns %q, have %q", want, have)
	}
	if have := tab.MustColumn("promoted").([]int); have[0] != 3 {
		t.Errorf("want 3 promoted, have %v", have)
	}
	if _, ok := rates.Lookup("B"); ok {
		t.Errorf("Lookup(B) should fail")
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0.3, "30%"},
		{0, "0%"},
		{1, "100%"},
		{2.0 / 3, "67%"},
		{0.004, "0%"},
		{math.NaN(), "NaN%"},
	}
	for _, test := range tests {
		if have := FormatPercent(test.rate); have != test.want {
			t.Errorf("FormatPercent(%v): want %s, have %s", test.rate, test.want, have)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{7, "7"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
	}
	for _, test := range tests {
		if have := FormatCount(test.n); have != test.want {
			t.Errorf("FormatCount(%d): want %s, have %s", test.n, test.want, have)
		}
	}
}

func TestReadRecords(t *testing.T) {
	tab, err := ReadRecords(strings.NewReader(`employee_id,department,is_promoted
1,Sales,0
2,,1
3,HR,0
`))
	if err != nil {
		t.Fatal(err)
	}
	if have, ok := tab.MustColumn(ColPromoted).([]int); !ok || !cmp.Equal([]int{0, 1, 0}, have) {
		t.Errorf("want int promotion flags, have %#v", tab.MustColumn(ColPromoted))
	}
	if have, ok := tab.MustColumn(ColDepartment).([]string); !ok || have[1] != "" {
		t.Errorf("want string departments, have %#v", tab.MustColumn(ColDepartment))
	}

	if _, err := ReadRecords(strings.NewReader("")); err == nil {
		t.Errorf("empty input: want error")
	}
}
