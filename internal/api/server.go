// Package api provides the HTTP API for running and browsing election
// simulations.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/election-sim-backend/internal/api/handlers"
	"github.com/eshaffer321/election-sim-backend/internal/api/middleware"
	"github.com/eshaffer321/election-sim-backend/internal/application/service"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	engine     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
	sim        *service.SimulationService
}

// NewServer creates a new API server.
func NewServer(cfg Config, sim *service.SimulationService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		config: cfg,
		engine: engine,
		logger: logger,
		sim:    sim,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(middleware.Logging(s.logger))
	s.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: s.config.AllowedOrigins,
	}))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	healthHandler := handlers.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Check)

	api := s.engine.Group("/api")
	{
		allocateHandler := handlers.NewAllocateHandler(s.sim)
		api.POST("/allocate", allocateHandler.Allocate)

		presetsHandler := handlers.NewPresetsHandler()
		api.GET("/presets", presetsHandler.List)

		simulationsHandler := handlers.NewSimulationsHandler(s.sim)
		api.POST("/simulations", simulationsHandler.Create)
		api.GET("/simulations", simulationsHandler.List)
		api.GET("/simulations/:id", simulationsHandler.Get)
		api.GET("/simulations/:id/steps", simulationsHandler.Steps)
		api.DELETE("/simulations/:id", simulationsHandler.Delete)

		statsHandler := handlers.NewStatsHandler(s.sim)
		api.GET("/stats", statsHandler.Get)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Engine returns the gin engine for testing.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
