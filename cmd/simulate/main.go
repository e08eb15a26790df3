package main

import (
	"fmt"
	"os"

	"github.com/eshaffer321/election-sim-backend/internal/application/service"
	"github.com/eshaffer321/election-sim-backend/internal/cli"
	"github.com/eshaffer321/election-sim-backend/internal/domain/presets"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/config"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/logging"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/storage"
)

func main() {
	flags, args := cli.ParseSimulateFlags()
	cfg := config.LoadOrEnv()

	if err := run(cfg, flags, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, flags *cli.SimulateFlags, args []string) error {
	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "simulate")

	var percentages map[string]float64
	switch {
	case flags.Preset:
		percentages = presets.Percentages()
	case len(args) > 0:
		parsed, err := cli.ParsePartyArgs(args)
		if err != nil {
			return err
		}
		percentages = parsed
	default:
		return fmt.Errorf("no parties given: pass Name=percent arguments or -preset")
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sim := service.NewSimulationService(cfg, store, logger)

	outcome, err := sim.Run(service.SimulationRequest{
		Percentages: percentages,
		TotalSeats:  flags.Seats,
		Threshold:   flags.Threshold,
		DryRun:      !flags.Save,
	})
	if err != nil {
		return err
	}

	cli.PrintHeader(outcome.TotalSeats, outcome.Threshold)
	cli.PrintResults(outcome)
	if flags.ShowSteps {
		cli.PrintSteps(outcome)
	}

	return nil
}
