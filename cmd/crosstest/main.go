// Command crosstest is the cross-test harness from spec.md §6: it builds
// a Dawg from a text dictionary and, for every word in it, compares
// mueddi's edit-distance search against a reference distance computed
// independently. Ported from mueddir's crosstest/bin/main.rs, including
// its -s/--single-dict mode and its record/replay result-log workflow.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"github.com/vbar/mueddi"
	"github.com/vbar/mueddi/internal/harnessconfig"
)

type cliOptions struct {
	tolerance  int
	inputFile  string
	resultFile string
	singleDict bool
}

func parseFlags() *cliOptions {
	opts := &cliOptions{}
	defaults, err := harnessconfig.Path()
	var cfg harnessconfig.Defaults
	if err == nil {
		cfg, _ = harnessconfig.Load(defaults)
	}

	resultDefault := "result.tsv"
	if cfg.Result != "" {
		resultDefault = cfg.Result
	}
	toleranceDefault := 1
	if cfg.Tolerance != 0 {
		toleranceDefault = cfg.Tolerance
	}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("MUlti-word EDit DIstance test")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.inputFile, "input", "i", "", "dictionary input file path"),
	)

	flagSet.CreateGroup("run", "Run",
		flagSet.IntVarP(&opts.tolerance, "tolerance", "t", toleranceDefault, "max allowed number of edits"),
		flagSet.StringVarP(&opts.resultFile, "result", "r", resultDefault, "result log of a previous run"),
		flagSet.BoolVarP(&opts.singleDict, "single-dict", "s", cfg.Single, "include tested word in its own dictionary"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}
	return opts
}

func main() {
	opts := parseFlags()

	if opts.tolerance <= 0 || opts.tolerance > mueddi.MaxTolerance {
		gologger.Fatal().Msgf("crosstest error: max allowed number of edits must be a positive number no greater than %d", mueddi.MaxTolerance)
	}
	if opts.inputFile == "" {
		gologger.Fatal().Msg("crosstest error: input file must be specified with -i")
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "crosstest error: %v\n", err)
		os.Exit(1)
	}
}
