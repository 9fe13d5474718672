// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package promo computes promotion rates over employee records and
// renders them as bar charts.
//
// Employee records are go-gg tables with one row per employee. The
// aggregation functions and renderers in this package follow one of
// two error policies, documented on each function: either failures
// are logged to Logger and the caller receives a nil or partial
// result, or failures are returned as errors.
package promo

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Column names used in employee record tables.
const (
	ColEmployeeID    = "employee_id"
	ColPromoted      = "is_promoted"
	ColDepartment    = "department"
	ColGender        = "gender"
	ColTenureBands   = "tenure_bands"
	ColAgeGroup      = "age_group"
	ColRegionGroups  = "region_grps"
	ColAwardsWon     = "awards_won"
	ColHighPerformer = "high_performer"
)

// MissingLabel is the label of records with no value for a category.
const MissingLabel = "NaN"

// Logger receives the errors swallowed by RateByGroup and Dashboard.
var Logger = log.New(os.Stderr, "promo: ", 0)

// ReadRecords reads a CSV file with a header row into a table.
// Columns whose values all parse as integers or floats become numeric
// columns; all others are strings.
func ReadRecords(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading records: missing header row")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// isMissing reports whether a category value means "no value".
func isMissing(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "na", "nan", "null", "none":
		return true
	}
	return false
}

// columnStrings returns the values of a table column as strings.
func columnStrings(t *table.Table, col string) ([]string, error) {
	c := t.Column(col)
	if c == nil {
		return nil, fmt.Errorf("unknown column %q", col)
	}
	if ss, ok := c.([]string); ok {
		return ss, nil
	}
	v := reflect.ValueOf(c)
	out := make([]string, v.Len())
	for i := range out {
		out[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return out, nil
}
