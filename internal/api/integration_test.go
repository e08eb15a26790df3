package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaffer321/election-sim-backend/internal/api"
	"github.com/eshaffer321/election-sim-backend/internal/api/dto"
	"github.com/eshaffer321/election-sim-backend/internal/application/service"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/config"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/storage"
)

// TestAPI_WithRealStorage runs the full stack against a real SQLite
// database: simulate, list, fetch detail and trace, delete.
func TestAPI_WithRealStorage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "integration.db")
	store, err := storage.NewStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	cfg := &config.Config{
		Election: config.ElectionConfig{Threshold: 0.04, TotalSeats: 10},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sim := service.NewSimulationService(cfg, store, logger)
	server := api.NewServer(api.DefaultConfig(), sim, logger)

	// 1. Run a simulation from percentages.
	body, _ := json.Marshal(dto.AllocateRequest{
		Percentages: map[string]float64{"A": 60, "B": 25, "C": 15},
		TotalSeats:  10,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/simulations", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID     string                 `json:"id"`
		Result dto.AllocationResponse `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 6, created.Result.Seats["A"])

	// 2. The simulation shows up in the list.
	req = httptest.NewRequest(http.MethodGet, "/api/simulations", nil)
	rec = httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list dto.SimulationListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, storage.SourcePercentages, list.Simulations[0].Source)

	// 3. Detail round-trips the stored votes and seats.
	req = httptest.NewRequest(http.MethodGet, "/api/simulations/"+created.ID, nil)
	rec = httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail dto.SimulationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, 60000, detail.Votes["A"])
	assert.Equal(t, 6, detail.Seats["A"])
	assert.Equal(t, 3, detail.QualifiedCount)

	// 4. The trace survived the JSON round-trip in order.
	req = httptest.NewRequest(http.MethodGet, "/api/simulations/"+created.ID+"/steps", nil)
	rec = httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var steps dto.StepListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&steps))
	require.Equal(t, 10, steps.Count)
	for i, step := range steps.Steps {
		assert.Equal(t, i+1, step.Seat)
	}

	// 5. Stats reflect the stored run.
	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec = httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats storage.Stats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 1, stats.TotalSimulations)
	assert.Equal(t, 10, stats.TotalSeatsAllocated)

	// 6. Delete and verify it is gone.
	req = httptest.NewRequest(http.MethodDelete, "/api/simulations/"+created.ID, nil)
	rec = httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/simulations/"+created.ID, nil)
	rec = httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
