package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/election-sim-backend/internal/api/dto"
	"github.com/eshaffer321/election-sim-backend/internal/application/service"
)

// SimulationsHandler handles persisted simulation requests.
type SimulationsHandler struct {
	sim *service.SimulationService
}

// NewSimulationsHandler creates a new simulations handler.
func NewSimulationsHandler(sim *service.SimulationService) *SimulationsHandler {
	return &SimulationsHandler{sim: sim}
}

// Create handles POST /api/simulations - runs and stores a simulation.
func (h *SimulationsHandler) Create(c *gin.Context) {
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
	})
	if err != nil {
		WriteError(c, http.StatusBadRequest, dto.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": outcome.ID,
		"result": dto.AllocationResponse{
			Seats:      outcome.Result.Seats,
			Steps:      dto.ToStepResponses(outcome.Result.Steps),
			Summary:    outcome.Summary,
			TotalSeats: outcome.TotalSeats,
			Threshold:  outcome.Threshold,
			Warning:    outcome.Warning,
		},
	})
}

// List handles GET /api/simulations - returns recent simulations.
func (h *SimulationsHandler) List(c *gin.Context) {
	limit := ParseIntQuery(c, "limit", 20)

	records, err := h.sim.List(limit)
	if err != nil {
		WriteError(c, http.StatusInternalServerError, dto.InternalError())
		return
	}

	response := dto.SimulationListResponse{
		Simulations: make([]dto.SimulationResponse, 0, len(records)),
		Count:       len(records),
	}
	for _, rec := range records {
		response.Simulations = append(response.Simulations, dto.ToSimulationResponse(rec, false))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/simulations/:id - returns one simulation with
// its votes and seats.
func (h *SimulationsHandler) Get(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.sim.Get(id)
	if err != nil {
		WriteError(c, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if rec == nil {
		WriteError(c, http.StatusNotFound, dto.NotFoundError("simulation"))
		return
	}

	c.JSON(http.StatusOK, dto.ToSimulationResponse(*rec, true))
}

// Steps handles GET /api/simulations/:id/steps - returns the stored
// seat-by-seat trace.
func (h *SimulationsHandler) Steps(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.sim.Get(id)
	if err != nil {
		WriteError(c, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if rec == nil {
		WriteError(c, http.StatusNotFound, dto.NotFoundError("simulation"))
		return
	}

	steps := dto.ToStepResponses(rec.Steps)
	c.JSON(http.StatusOK, dto.StepListResponse{
		SimulationID: rec.ID,
		Steps:        steps,
		Count:        len(steps),
	})
}

// Delete handles DELETE /api/simulations/:id.
func (h *SimulationsHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	found, err := h.sim.Delete(id)
	if err != nil {
		WriteError(c, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if !found {
		WriteError(c, http.StatusNotFound, dto.NotFoundError("simulation"))
		return
	}

	c.Status(http.StatusNoContent)
}
