// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command promoplot plots promotion rates of employee records.
//
// Usage:
//
//	promoplot <subcommand> [flags] [input.csv]
//
// promoplot reads a CSV file of employee records with a header row
// (standard input if no file or "-" is given). Records need an
// is_promoted column holding 0/1 or true/false, and whichever
// category columns the subcommand uses (gender, tenure_bands,
// awards_won, high_performer, region_grps, age_group, department).
//
// Subcommands that plot write an SVG to -o, or to standard output if
// it is not a terminal. The rates subcommand prints a table instead.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/hrviz/promoplot/chart"
	"github.com/hrviz/promoplot/promo"
	"golang.org/x/crypto/ssh/terminal"
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands = make(map[string]*subcommand)

func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, cmd, flags}
}

// Flags shared by all subcommands.
var (
	flagOut        string
	flagTheme      string
	flagCPUProfile string
	flagMemProfile string
)

func addCommonFlags(f *flag.FlagSet) {
	f.StringVar(&flagOut, "o", "", "write output to `file` (default: stdout)")
	f.StringVar(&flagTheme, "theme", "", "read colors and fonts from YAML `file`")
	f.StringVar(&flagCPUProfile, "cpuprofile", "", "write CPU profile to `file`")
	f.StringVar(&flagMemProfile, "memprofile", "", "write heap profile to `file`")
}

func newFlagSet(name, args string) *flag.FlagSet {
	f := flag.NewFlagSet(os.Args[0]+" "+name, flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [flags] %s\n", os.Args[0], name, args)
		f.PrintDefaults()
	}
	addCommonFlags(f)
	return f
}

func main() {
	log.SetPrefix("promoplot: ")
	log.SetFlags(0)
	promo.Logger = log.New(os.Stderr, "promoplot: ", 0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [input.csv]\n\nSubcommands:\n", os.Args[0])
		var names []string
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %-10s %s\n", name, subcommands[name].desc)
		}
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	sub := subcommands[flag.Arg(0)]
	if sub == nil {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	if sub.flags.NArg() > 1 {
		sub.flags.Usage()
		os.Exit(2)
	}

	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	sub.cmd()
}

// readInput reads the CSV table named by the subcommand's argument.
func readInput(f *flag.FlagSet) *table.Table {
	in := os.Stdin
	if path := f.Arg(0); path != "" && path != "-" {
		var err error
		in, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
	}
	tab, err := promo.ReadRecords(in)
	if err != nil {
		log.Fatal(err)
	}
	return tab
}

// openOutput returns the -o file, or stdout.
func openOutput() (*os.File, func()) {
	if flagOut == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(flagOut)
	if err != nil {
		log.Fatal(err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// writeFigure renders fig as SVG to the output.
func writeFigure(fig *chart.Figure) {
	if flagOut == "" && terminal.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write SVG to a terminal; use -o")
	}
	if flagTheme != "" {
		tf, err := os.Open(flagTheme)
		if err != nil {
			log.Fatal(err)
		}
		fig.Theme, err = chart.LoadTheme(tf)
		tf.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	out, done := openOutput()
	defer done()
	if err := fig.WriteSVG(out); err != nil {
		log.Fatal(err)
	}
}
