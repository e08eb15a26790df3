// Package cli holds flag parsing and console output for the command
// line binaries.
package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// SimulateFlags are the flags for the simulate command.
type SimulateFlags struct {
	Seats     int
	Threshold float64
	Preset    bool
	Save      bool
	ShowSteps bool
	Verbose   bool
}

// ParseSimulateFlags parses command line flags for the simulate command.
// Remaining arguments are party entries in Name=percent form.
func ParseSimulateFlags() (*SimulateFlags, []string) {
	flags := &SimulateFlags{}
	flag.IntVar(&flags.Seats, "seats", 0, "Total seats to allocate (0 = configured default)")
	flag.Float64Var(&flags.Threshold, "threshold", 0, "Electoral threshold fraction (0 = configured default)")
	flag.BoolVar(&flags.Preset, "preset", false, "Use the built-in Norwegian party list")
	flag.BoolVar(&flags.Save, "save", false, "Persist the simulation to the database")
	flag.BoolVar(&flags.ShowSteps, "steps", false, "Print the seat-by-seat allocation trace")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags, flag.Args()
}

// ParsePartyArgs converts "Name=percent" arguments into a percentage map.
func ParsePartyArgs(args []string) (map[string]float64, error) {
	percentages := make(map[string]float64, len(args))

	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid party argument %q (want Name=percent)", arg)
		}

		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage in %q: %w", arg, err)
		}

		percentages[name] = pct
	}

	return percentages, nil
}
