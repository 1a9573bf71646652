// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/fatih/color"
	"github.com/katalvlaran/qsieve/config"
	"github.com/katalvlaran/qsieve/qs"
	"github.com/katalvlaran/qsieve/report"
)

// run parses args (args[0] is the program name), factors the number and
// writes the result to stdout.
func run(args []string, stdout io.Writer) error {
	parser := argparse.NewParser("qs", "Factor a composite integer with the quadratic sieve")

	number := parser.String("n", "number", &argparse.Options{Help: "Composite to factor (at least 4, below 2^63)"})
	base := parser.Int("b", "base", &argparse.Options{Help: "Factor base size [default from config: 5]"})
	interval := parser.Int("i", "interval", &argparse.Options{Help: "Sieve interval length [default from config: 50]"})
	workers := parser.Int("w", "workers", &argparse.Options{Help: "Concurrent sieve workers [default from config: 1]"})
	cfgPath := parser.String("c", "config", &argparse.Options{Help: "Read settings from this file instead of the search paths"})
	tablePrint := parser.Flag("t", "table", &argparse.Options{Help: "Print the smooth relations as a table"})
	chartPath := parser.String("", "chart", &argparse.Options{Help: "Write an HTML chart of the sieve to this file"})
	initConfig := parser.String("", "init-config", &argparse.Options{Help: "Write a default config file to this path and exit"})

	if err := parser.Parse(args); err != nil {
		return errors.New(parser.Usage(err))
	}

	if *initConfig != "" {
		if err := config.WriteDefault(*initConfig); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "config written to %s\n", *initConfig)

		return nil
	}

	if *number == "" {
		return errors.New(parser.Usage("-n|--number is required"))
	}
	n, err := strconv.ParseInt(*number, 10, 64)
	if err != nil {
		return fmt.Errorf("qs: bad number %q: %w", *number, err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	merge(cfg, *base, *interval, *workers, *tablePrint, *chartPath)
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Source != "" {
		color.New(color.FgCyan).Fprintf(stdout, "using config %s\n", cfg.Source)
	}

	res, err := qs.Run(n, cfg.FactorBaseSize, cfg.IntervalSize, qs.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	report.Summary(stdout, res)
	if cfg.Table && len(res.Relations) > 0 {
		report.RelationsTable(stdout, res)
	}
	if cfg.Chart != "" {
		return writeChart(stdout, cfg.Chart, res)
	}

	return nil
}

// merge overlays command-line values on cfg; zero values mean "not given".
func merge(cfg *config.Config, base, interval, workers int, table bool, chart string) {
	if base != 0 {
		cfg.FactorBaseSize = base
	}
	if interval != 0 {
		cfg.IntervalSize = interval
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if table {
		cfg.Table = true
	}
	if chart != "" {
		cfg.Chart = chart
	}
}

func writeChart(stdout io.Writer, path string, res *qs.Result) error {
	if res.Sieve == nil {
		color.New(color.FgYellow).Fprintln(stdout, "perfect square, nothing was sieved; chart skipped")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("qs: chart: %w", err)
	}
	defer f.Close()

	if err = report.SieveChart(f, res.Sieve); err != nil {
		return err
	}
	color.New(color.FgCyan).Fprintf(stdout, "chart written to %s\n", path)

	return nil
}
