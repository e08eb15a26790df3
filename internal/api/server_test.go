package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaffer321/election-sim-backend/internal/api"
	"github.com/eshaffer321/election-sim-backend/internal/api/dto"
	"github.com/eshaffer321/election-sim-backend/internal/application/service"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/config"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/storage"
)

func newTestServer(repo storage.Repository) *api.Server {
	cfg := &config.Config{
		Election: config.ElectionConfig{Threshold: 0.04, TotalSeats: 10},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sim := service.NewSimulationService(cfg, repo, logger)

	return api.NewServer(api.DefaultConfig(), sim, logger)
}

func TestServer_HealthRoute(t *testing.T) {
	server := newTestServer(storage.NewMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_PresetsRoute(t *testing.T) {
	server := newTestServer(storage.NewMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.PresetsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.NotEmpty(t, response.Parties)
	assert.Equal(t, "Arbeiderpartiet", response.Parties[0].Name)
	assert.Equal(t, 10, response.DefaultTotalSeats)
}

func TestServer_StatsRoute(t *testing.T) {
	repo := storage.NewMockRepository()
	server := newTestServer(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats storage.Stats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 0, stats.TotalSimulations)
}

func TestServer_UnknownRoute(t *testing.T) {
	server := newTestServer(storage.NewMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDefaultConfig(t *testing.T) {
	cfg := api.DefaultConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")
}
