package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/election-sim-backend/internal/api/dto"
	"github.com/eshaffer321/election-sim-backend/internal/application/service"
)

// AllocateHandler handles stateless allocation requests.
type AllocateHandler struct {
	sim *service.SimulationService
}

// NewAllocateHandler creates a new allocate handler.
func NewAllocateHandler(sim *service.SimulationService) *AllocateHandler {
	return &AllocateHandler{sim: sim}
}

// Allocate handles POST /api/allocate - runs an allocation without
// persisting anything.
func (h *AllocateHandler) Allocate(c *gin.Context) {
	var req dto.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	outcome, err := h.sim.Run(service.SimulationRequest{
		Votes:       req.Votes,
		Percentages: req.Percentages,
		TotalSeats:  req.TotalSeats,
		Threshold:   req.Threshold,
		DryRun:      true,
	})
	if err != nil {
		WriteError(c, http.StatusBadRequest, dto.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.AllocationResponse{
		Seats:      outcome.Result.Seats,
		Steps:      dto.ToStepResponses(outcome.Result.Steps),
		Summary:    outcome.Summary,
		TotalSeats: outcome.TotalSeats,
		Threshold:  outcome.Threshold,
		Warning:    outcome.Warning,
	})
}
