package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/election-sim-backend/internal/api/dto"
	"github.com/eshaffer321/election-sim-backend/internal/application/service"
)

// StatsHandler serves aggregate statistics.
type StatsHandler struct {
	sim *service.SimulationService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(sim *service.SimulationService) *StatsHandler {
	return &StatsHandler{sim: sim}
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.sim.Stats()
	if err != nil {
		WriteError(c, http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, stats)
}
