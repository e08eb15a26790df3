// Package service orchestrates simulations end to end: input advisory
// checks, percentage conversion, seat allocation, summary building and
// persistence.
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eshaffer321/election-sim-backend/internal/domain/allocator"
	"github.com/eshaffer321/election-sim-backend/internal/domain/summary"
	"github.com/eshaffer321/election-sim-backend/internal/domain/validator"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/config"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/storage"
)

// SimulationRequest holds the inputs for one simulation.
// Exactly one of Votes or Percentages must be set.
type SimulationRequest struct {
	Votes       map[string]int
	Percentages map[string]float64

	// TotalSeats <= 0 falls back to the configured default.
	TotalSeats int

	// Threshold <= 0 falls back to the configured default.
	Threshold float64

	// DryRun skips persistence.
	DryRun bool
}

// SimulationOutcome is the full result of a simulation run.
type SimulationOutcome struct {
	ID         string
	CreatedAt  time.Time
	TotalSeats int
	Threshold  float64

	Votes   map[string]int
	Result  *allocator.Result
	Summary *summary.Summary

	// Warning carries the percentage-sum advisory. It never blocks the
	// run.
	Warning string

	// Saved is false for dry runs.
	Saved bool
}

// SimulationService runs simulations and records them.
type SimulationService struct {
	cfg    *config.Config
	repo   storage.Repository
	logger *slog.Logger
}

// NewSimulationService creates a new simulation service.
func NewSimulationService(cfg *config.Config, repo storage.Repository, logger *slog.Logger) *SimulationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulationService{
		cfg:    cfg,
		repo:   repo,
		logger: logger,
	}
}

// Run executes one simulation. Invalid input (no parties, negative
// votes or seats, both or neither input kind set) returns an error;
// "no party qualifies" does not.
func (s *SimulationService) Run(req SimulationRequest) (*SimulationOutcome, error) {
	if len(req.Votes) > 0 && len(req.Percentages) > 0 {
		return nil, errors.New("provide either votes or percentages, not both")
	}

	totalSeats := req.TotalSeats
	if totalSeats <= 0 {
		totalSeats = s.cfg.Election.TotalSeats
	}

	cfg := allocator.DefaultConfig()
	cfg.Threshold = s.cfg.Election.Threshold
	if req.Threshold > 0 {
		cfg.Threshold = req.Threshold
	}

	outcome := &SimulationOutcome{
		TotalSeats: totalSeats,
		Threshold:  cfg.Threshold,
	}

	source := storage.SourceVotes
	votes := req.Votes
	if len(req.Percentages) > 0 {
		source = storage.SourcePercentages

		// Advisory only: a skewed sum still allocates fine.
		if v := validator.ValidatePercentages(req.Percentages); !v.Valid {
			outcome.Warning = v.Reason
			s.logger.Warn("percentage sum off", "sum", v.Sum)
		}

		converted, err := allocator.VotesFromPercentages(req.Percentages)
		if err != nil {
			return nil, err
		}
		votes = converted
	}

	result, err := allocator.Allocate(votes, totalSeats, cfg)
	if err != nil {
		return nil, err
	}

	outcome.Votes = votes
	outcome.Result = result
	outcome.Summary = summary.Build(votes, result, totalSeats)
	outcome.ID = uuid.NewString()
	outcome.CreatedAt = time.Now().UTC()

	s.logger.Info("simulation complete",
		"id", outcome.ID,
		"parties", len(votes),
		"qualified", len(result.Qualified),
		"total_seats", totalSeats,
		"allocated", result.AllocatedSeats,
	)

	if req.DryRun {
		return outcome, nil
	}

	if err := s.repo.SaveSimulation(toRecord(outcome, source)); err != nil {
		return nil, err
	}
	outcome.Saved = true

	return outcome, nil
}

// Get retrieves a stored simulation. Returns (nil, nil) when missing.
func (s *SimulationService) Get(id string) (*storage.SimulationRecord, error) {
	return s.repo.GetSimulation(id)
}

// List returns recent stored simulations, newest first.
func (s *SimulationService) List(limit int) ([]storage.SimulationRecord, error) {
	return s.repo.ListSimulations(limit)
}

// Delete removes a stored simulation, reporting whether it existed.
func (s *SimulationService) Delete(id string) (bool, error) {
	return s.repo.DeleteSimulation(id)
}

// Stats returns aggregate statistics over stored simulations.
func (s *SimulationService) Stats() (*storage.Stats, error) {
	return s.repo.GetStats()
}

// toRecord converts an outcome into its storage shape
func toRecord(o *SimulationOutcome, source string) *storage.SimulationRecord {
	return &storage.SimulationRecord{
		ID:             o.ID,
		CreatedAt:      o.CreatedAt,
		Source:         source,
		TotalSeats:     o.TotalSeats,
		Threshold:      o.Threshold,
		TotalVotes:     o.Result.TotalVotes,
		PartyCount:     len(o.Votes),
		QualifiedCount: len(o.Result.Qualified),
		AllocatedSeats: o.Result.AllocatedSeats,
		Warning:        o.Warning,
		Votes:          o.Votes,
		Seats:          o.Result.Seats,
		Steps:          o.Result.Steps,
	}
}
