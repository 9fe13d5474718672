// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/hrviz/promoplot/promo"
)

func TestDepartmentOrder(t *testing.T) {
	tab := new(table.Builder).
		Add(promo.ColDepartment, []string{"Sales", "HR", "Sales", "", "Tech", "Tech", "Tech"}).
		Done()

	order, err := departmentOrder(tab, `Sales "R&D" 'Human Resources'`)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Sales", "R&D", "Human Resources"}; !cmp.Equal(want, order) {
		t.Errorf("want %q, have %q", want, order)
	}

	order, err = departmentOrder(tab, "")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"HR", "Sales", "Tech"}; !cmp.Equal(want, order) {
		t.Errorf("default order: want %q, have %q", want, order)
	}

	if _, err := departmentOrder(tab, `"unterminated`); err == nil {
		t.Errorf("want error for unterminated quote")
	}
}

func TestFittedInput(t *testing.T) {
	tab, err := promo.ReadRecords(strings.NewReader("label,pct_promoted\nfemale,0.1\nmale,0.25\n"))
	if err != nil {
		t.Fatal(err)
	}
	labels, pct, err := fittedInput(tab)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"female", "male"}; !cmp.Equal(want, labels) {
		t.Errorf("want labels %q, have %q", want, labels)
	}
	if want := []float64{0.1, 0.25}; !cmp.Equal(want, pct) {
		t.Errorf("want rates %v, have %v", want, pct)
	}

	bad, err := promo.ReadRecords(strings.NewReader("label,pct_promoted\nfemale,high\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := fittedInput(bad); err == nil {
		t.Errorf("non-numeric rates: want error")
	}
	missing, err := promo.ReadRecords(strings.NewReader("label\nfemale\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := fittedInput(missing); err == nil {
		t.Errorf("missing column: want error")
	}
}
