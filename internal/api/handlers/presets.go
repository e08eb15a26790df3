package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/election-sim-backend/internal/api/dto"
	"github.com/eshaffer321/election-sim-backend/internal/domain/presets"
)

// PresetsHandler serves the built-in party lists.
type PresetsHandler struct{}

// NewPresetsHandler creates a new presets handler.
func NewPresetsHandler() *PresetsHandler {
	return &PresetsHandler{}
}

// List handles GET /api/presets.
func (h *PresetsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PresetsResponse{
		Parties:           presets.Norwegian(),
		DefaultTotalSeats: presets.DefaultTotalSeats,
	})
}
