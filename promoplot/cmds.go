// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/hrviz/promoplot/promo"
	"github.com/kballard/go-shellquote"
)

var (
	cmdRatesFlags     = newFlagSet("rates", "[input.csv]")
	cmdDashboardFlags = newFlagSet("dashboard", "[input.csv]")
	cmdFittedFlags    = newFlagSet("fitted", "[fitted.csv]")
	cmdHeadcountFlags = newFlagSet("headcount", "[input.csv]")
	cmdPromosFlags    = newFlagSet("promos", "[input.csv]")
	cmdObservedFlags  = newFlagSet("observed", "[observed.csv]")
)

var (
	ratesGroup     string
	dashboardGroup string
	promosOrder    string
)

func init() {
	cmdRatesFlags.StringVar(&ratesGroup, "group", promo.ColDepartment, "aggregate by `column`")
	registerSubcommand("rates", "print promotion rates by group", cmdRates, cmdRatesFlags)

	cmdDashboardFlags.StringVar(&dashboardGroup, "group", "all employees", "`label` for the dashboard title")
	registerSubcommand("dashboard", "plot promotion rates by demographic group", cmdDashboard, cmdDashboardFlags)

	registerSubcommand("fitted", "plot fitted promotion rates (label,pct_promoted input)", cmdFitted, cmdFittedFlags)

	registerSubcommand("headcount", "plot headcount by department", cmdHeadcount, cmdHeadcountFlags)

	cmdPromosFlags.StringVar(&promosOrder, "order", "", "shell-quoted department `list` to plot, bottom first (default: by headcount)")
	registerSubcommand("promos", "plot promotions by department", cmdPromos, cmdPromosFlags)

	registerSubcommand("observed", "plot observed vs. expected promotions (department,observed,expected input)", cmdObserved, cmdObservedFlags)
}

func cmdRates() {
	rates := promo.RateByGroup(readInput(cmdRatesFlags), ratesGroup)
	if rates == nil {
		// RateByGroup already logged why.
		os.Exit(1)
	}
	out, done := openOutput()
	defer done()
	table.Fprint(out, rates.Table())
}

func cmdDashboard() {
	writeFigure(promo.Dashboard(readInput(cmdDashboardFlags), dashboardGroup))
}

func cmdFitted() {
	labels, pct, err := fittedInput(readInput(cmdFittedFlags))
	if err != nil {
		log.Fatal(err)
	}
	fig, err := promo.FittedValues(labels, pct)
	if err != nil {
		log.Fatal(err)
	}
	writeFigure(fig)
}

func cmdHeadcount() {
	fig, err := promo.HeadcountByDept(readInput(cmdHeadcountFlags))
	if err != nil {
		log.Fatal(err)
	}
	writeFigure(fig)
}

func cmdPromos() {
	tab := readInput(cmdPromosFlags)
	order, err := departmentOrder(tab, promosOrder)
	if err != nil {
		log.Fatal(err)
	}
	rates, err := promo.AggregateRates(tab, promo.ColDepartment)
	if err != nil {
		log.Fatal(err)
	}
	fig, err := promo.PromosByDept(rates, order)
	if err != nil {
		log.Fatal(err)
	}
	writeFigure(fig)
}

func cmdObserved() {
	fig, err := promo.ObservedVsExpected(readInput(cmdObservedFlags))
	if err != nil {
		log.Fatal(err)
	}
	writeFigure(fig)
}

// Columns of a fitted values input file.
const (
	colLabel       = "label"
	colPctPromoted = "pct_promoted"
)

// fittedInput extracts the group labels and promoted fractions from
// a fitted values table.
func fittedInput(tab *table.Table) (labels []string, pct []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			labels, pct, err = nil, nil, fmt.Errorf("fitted values: %v", r)
		}
	}()
	for _, col := range []string{colLabel, colPctPromoted} {
		if tab.Column(col) == nil {
			return nil, nil, fmt.Errorf("fitted values: missing %q column", col)
		}
	}
	lv := reflect.ValueOf(tab.MustColumn(colLabel))
	for i := 0; i < lv.Len(); i++ {
		labels = append(labels, fmt.Sprint(lv.Index(i).Interface()))
	}
	slice.Convert(&pct, tab.MustColumn(colPctPromoted))
	return labels, pct, nil
}

// departmentOrder parses a shell-quoted department list. If list is
// empty, departments are ordered by increasing headcount.
func departmentOrder(tab *table.Table, list string) ([]string, error) {
	if list != "" {
		order, err := shellquote.Split(list)
		if err != nil {
			return nil, fmt.Errorf("parsing -order: %w", err)
		}
		return order, nil
	}
	counts, err := promo.Headcounts(tab)
	if err != nil {
		return nil, err
	}
	var order []string
	for _, c := range counts {
		if c.Label != promo.MissingLabel {
			order = append(order, c.Label)
		}
	}
	return order, nil
}
