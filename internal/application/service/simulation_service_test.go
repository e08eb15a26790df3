package service

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/config"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/storage"
)

func newTestService(repo storage.Repository) *SimulationService {
	cfg := &config.Config{
		Election: config.ElectionConfig{
			Threshold:  0.04,
			TotalSeats: 10,
		},
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewSimulationService(cfg, repo, logger)
}

func TestRun_FromVotes(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	outcome, err := svc.Run(SimulationRequest{
		Votes:      map[string]int{"A": 60, "B": 25, "C": 15},
		TotalSeats: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, outcome.Result.Seats["A"])
	assert.Equal(t, 3, outcome.Result.Seats["B"])
	assert.Equal(t, 1, outcome.Result.Seats["C"])
	assert.NotEmpty(t, outcome.ID)
	assert.Empty(t, outcome.Warning)
	assert.True(t, outcome.Saved)

	// Record landed in the repository.
	assert.True(t, repo.SaveSimulationCalled)
	require.NotNil(t, repo.LastSavedRecord)
	assert.Equal(t, storage.SourceVotes, repo.LastSavedRecord.Source)
	assert.Equal(t, 10, repo.LastSavedRecord.AllocatedSeats)
	assert.Equal(t, 3, repo.LastSavedRecord.QualifiedCount)
}

func TestRun_FromPercentages(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	outcome, err := svc.Run(SimulationRequest{
		Percentages: map[string]float64{"A": 60, "B": 25, "C": 15},
	})
	require.NoError(t, err)

	// TotalSeats fell back to the configured default of 10.
	assert.Equal(t, 10, outcome.TotalSeats)
	assert.Equal(t, 6, outcome.Result.Seats["A"])
	assert.Equal(t, storage.SourcePercentages, repo.LastSavedRecord.Source)
}

func TestRun_PercentageSumWarning(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	outcome, err := svc.Run(SimulationRequest{
		Percentages: map[string]float64{"A": 40, "B": 30},
	})
	require.NoError(t, err)

	// The run still completes; the advisory rides along and is stored.
	assert.NotEmpty(t, outcome.Warning)
	assert.Equal(t, outcome.Warning, repo.LastSavedRecord.Warning)
	assert.Equal(t, 10, outcome.Result.AllocatedSeats)
}

func TestRun_DryRunSkipsPersistence(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	outcome, err := svc.Run(SimulationRequest{
		Votes:  map[string]int{"A": 100},
		DryRun: true,
	})
	require.NoError(t, err)

	assert.False(t, outcome.Saved)
	assert.False(t, repo.SaveSimulationCalled)
}

func TestRun_NoQualifiersIsNotAnError(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	outcome, err := svc.Run(SimulationRequest{
		Votes:     map[string]int{"A": 1, "B": 1, "C": 1},
		Threshold: 0.5,
	})
	require.NoError(t, err)

	assert.Empty(t, outcome.Result.Steps)
	assert.Equal(t, 0, outcome.Result.AllocatedSeats)
	assert.False(t, outcome.Summary.FullyAllocated)
	assert.True(t, outcome.Saved)
}

func TestRun_RequestOverrides(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	outcome, err := svc.Run(SimulationRequest{
		Votes:      map[string]int{"A": 96, "B": 4},
		TotalSeats: 25,
		Threshold:  0.05,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, outcome.TotalSeats)
	assert.Equal(t, 0.05, outcome.Threshold)

	// B's 4% share misses the raised 5% threshold.
	assert.False(t, outcome.Result.Qualified["B"])
	assert.Equal(t, 25, outcome.Result.Seats["A"])
}

func TestRun_ErrorCases(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	t.Run("no input", func(t *testing.T) {
		_, err := svc.Run(SimulationRequest{})
		assert.Error(t, err)
	})

	t.Run("both inputs", func(t *testing.T) {
		_, err := svc.Run(SimulationRequest{
			Votes:       map[string]int{"A": 1},
			Percentages: map[string]float64{"A": 100},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not both")
	})

	t.Run("negative votes", func(t *testing.T) {
		_, err := svc.Run(SimulationRequest{
			Votes: map[string]int{"A": -1},
		})
		assert.Error(t, err)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		failing := storage.NewMockRepository()
		failing.SaveSimulationErr = assert.AnError
		svc := newTestService(failing)

		_, err := svc.Run(SimulationRequest{
			Votes: map[string]int{"A": 100},
		})
		assert.Error(t, err)
	})
}

func TestGetListDelete_PassThrough(t *testing.T) {
	repo := storage.NewMockRepository()
	svc := newTestService(repo)

	outcome, err := svc.Run(SimulationRequest{Votes: map[string]int{"A": 100}})
	require.NoError(t, err)

	got, err := svc.Get(outcome.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, outcome.ID, got.ID)

	records, err := svc.List(10)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSimulations)

	found, err := svc.Delete(outcome.ID)
	require.NoError(t, err)
	assert.True(t, found)
}
