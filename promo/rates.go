// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package promo

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/aclements/go-gg/generic"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// GroupRate is the promotion count and rate of one category value.
type GroupRate struct {
	Label       string
	NotPromoted int
	Promoted    int
	// Rate is Promoted / (Promoted + NotPromoted), or NaN if the
	// category has no records.
	Rate float64
}

// GroupRates is the promotion rate of each value of one category.
type GroupRates struct {
	Group string
	Rows  []GroupRate
}

// PromoRate returns promoted / (promoted + notPromoted). It returns
// NaN if both counts are zero.
func PromoRate(promoted, notPromoted int) float64 {
	total := promoted + notPromoted
	if total == 0 {
		return math.NaN()
	}
	return float64(promoted) / float64(total)
}

// yesNoGroups are categories whose 0/1 values are reported as "no"
// and "yes".
var yesNoGroups = map[string]bool{
	ColAwardsWon:     true,
	ColHighPerformer: true,
}

// AggregateRates counts promoted and non-promoted records for each
// value of column group of t. Rows are ordered by category value.
// Records with a missing category value or is_promoted flag are
// skipped, and so are categories left with no records.
//
// Any failure, including a missing group or is_promoted column, is
// returned as an error.
func AggregateRates(t *table.Table, group string) (rates *GroupRates, err error) {
	defer func() {
		// go-gg reports misuse by panicking.
		if r := recover(); r != nil {
			rates, err = nil, fmt.Errorf("promotion rate by %s: %v", group, r)
		}
	}()

	if t == nil {
		return nil, fmt.Errorf("promotion rate by %s: no records", group)
	}
	for _, col := range []string{group, ColPromoted} {
		if t.Column(col) == nil {
			return nil, fmt.Errorf("promotion rate by %s: unknown column %q", group, col)
		}
	}

	grouped := table.GroupBy(t, group)
	rates = &GroupRates{Group: group}
	for _, gid := range sortGroups(grouped.Tables()) {
		flags, err := promotedFlags(grouped.Table(gid).MustColumn(ColPromoted))
		if err != nil {
			return nil, fmt.Errorf("promotion rate by %s: %w", group, err)
		}
		if len(flags) == 0 {
			continue
		}
		var row GroupRate
		for _, promoted := range flags {
			if promoted {
				row.Promoted++
			} else {
				row.NotPromoted++
			}
		}
		row.Label = fmt.Sprint(gid.Label())
		if yesNoGroups[group] {
			row.Label = yesNo(row.Label)
		}
		row.Rate = PromoRate(row.Promoted, row.NotPromoted)
		rates.Rows = append(rates.Rows, row)
	}
	return rates, nil
}

// RateByGroup is like AggregateRates, but logs any failure to Logger
// and returns nil instead of an error. Callers must be prepared for a
// nil result.
func RateByGroup(t *table.Table, group string) *GroupRates {
	rates, err := AggregateRates(t, group)
	if err != nil {
		Logger.Print(err)
		return nil
	}
	return rates
}

// sortGroups drops groups with a missing label and orders the rest
// by label.
func sortGroups(gids []table.GroupID) []table.GroupID {
	var keep []table.GroupID
	for _, gid := range gids {
		if !isMissing(fmt.Sprint(gid.Label())) {
			keep = append(keep, gid)
		}
	}
	if len(keep) == 0 {
		return nil
	}

	valType := reflect.TypeOf(keep[0].Label())
	if valType.Kind() == reflect.Bool {
		// false before true.
		sort.SliceStable(keep, func(i, j int) bool {
			return !reflect.ValueOf(keep[i].Label()).Bool() && reflect.ValueOf(keep[j].Label()).Bool()
		})
		return keep
	}
	if !generic.CanOrderR(valType.Kind()) {
		return keep
	}
	byVal := make(map[interface{}]table.GroupID, len(keep))
	valSeq := reflect.MakeSlice(reflect.SliceOf(valType), 0, len(keep))
	for _, gid := range keep {
		byVal[gid.Label()] = gid
		valSeq = reflect.Append(valSeq, reflect.ValueOf(gid.Label()))
	}
	slice.Sort(valSeq.Interface())
	out := make([]table.GroupID, len(keep))
	for i := range out {
		out[i] = byVal[valSeq.Index(i).Interface()]
	}
	return out
}

// promotedFlags interprets a promotion flag column. Missing flags
// are dropped.
func promotedFlags(col table.Slice) ([]bool, error) {
	switch c := col.(type) {
	case []bool:
		return c, nil
	case []int:
		out := make([]bool, len(c))
		for i, v := range c {
			out[i] = v != 0
		}
		return out, nil
	case []float64:
		var out []bool
		for _, v := range c {
			if !math.IsNaN(v) {
				out = append(out, v != 0)
			}
		}
		return out, nil
	case []string:
		var out []bool
		for i, v := range c {
			if isMissing(v) {
				continue
			}
			f, ok := parseFlag(v)
			if !ok {
				return nil, fmt.Errorf("bad %s value %q in row %d", ColPromoted, v, i)
			}
			out = append(out, f)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported %s column type %T", ColPromoted, col)
}

func parseFlag(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y":
		return true, true
	case "0", "false", "f", "no", "n":
		return false, true
	}
	return false, false
}

// yesNo relabels a flag value as "yes" or "no". Values that are not
// flags are returned unchanged.
func yesNo(label string) string {
	v, ok := parseFlag(label)
	switch {
	case !ok:
		return label
	case v:
		return "yes"
	}
	return "no"
}

// Labels returns the category labels of g in order.
func (g *GroupRates) Labels() []string {
	labels := make([]string, len(g.Rows))
	for i, r := range g.Rows {
		labels[i] = r.Label
	}
	return labels
}

// Lookup returns the row of g with the given label.
func (g *GroupRates) Lookup(label string) (GroupRate, bool) {
	for _, r := range g.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return GroupRate{}, false
}

// Table returns g as a table with columns for the category, the
// non-promoted and promoted counts, and the promotion rate.
func (g *GroupRates) Table() *table.Table {
	n := len(g.Rows)
	labels := make([]string, n)
	notPromoted, promoted := make([]int, n), make([]int, n)
	rate := make([]float64, n)
	for i, r := range g.Rows {
		labels[i], notPromoted[i], promoted[i], rate[i] = r.Label, r.NotPromoted, r.Promoted, r.Rate
	}
	name := g.Group
	if name == "" {
		name = "group"
	}
	return new(table.Builder).
		Add(name, labels).
		Add("not promoted", notPromoted).
		Add("promoted", promoted).
		Add("promo rate", rate).
		Done()
}
