package dto

import (
	"time"

	"github.com/eshaffer321/election-sim-backend/internal/domain/allocator"
	"github.com/eshaffer321/election-sim-backend/internal/domain/presets"
	"github.com/eshaffer321/election-sim-backend/internal/domain/summary"
	"github.com/eshaffer321/election-sim-backend/internal/infrastructure/storage"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a health response with current timestamp.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// StepResponse is one entry of the seat-by-seat allocation trace.
type StepResponse struct {
	Seat     int     `json:"seat"`
	Party    string  `json:"party"`
	Quotient float64 `json:"quotient"`
	NewTotal int     `json:"new_total"`
}

// AllocationResponse is the outcome of a stateless allocation call.
type AllocationResponse struct {
	Seats      map[string]int   `json:"seats"`
	Steps      []StepResponse   `json:"steps"`
	Summary    *summary.Summary `json:"summary"`
	TotalSeats int              `json:"total_seats"`
	Threshold  float64          `json:"threshold"`
	Warning    string           `json:"warning,omitempty"`
}

// SimulationResponse represents a persisted simulation in API responses.
type SimulationResponse struct {
	ID             string         `json:"id"`
	CreatedAt      string         `json:"created_at"`
	Source         string         `json:"source"`
	TotalSeats     int            `json:"total_seats"`
	Threshold      float64        `json:"threshold"`
	TotalVotes     int            `json:"total_votes"`
	PartyCount     int            `json:"party_count"`
	QualifiedCount int            `json:"qualified_count"`
	AllocatedSeats int            `json:"allocated_seats"`
	Warning        string         `json:"warning,omitempty"`
	Votes          map[string]int `json:"votes,omitempty"`
	Seats          map[string]int `json:"seats,omitempty"`
}

// SimulationListResponse is returned when listing simulations.
type SimulationListResponse struct {
	Simulations []SimulationResponse `json:"simulations"`
	Count       int                  `json:"count"`
}

// StepListResponse is returned for a stored simulation's trace.
type StepListResponse struct {
	SimulationID string         `json:"simulation_id"`
	Steps        []StepResponse `json:"steps"`
	Count        int            `json:"count"`
}

// PresetsResponse is the built-in party list.
type PresetsResponse struct {
	Parties           []presets.Party `json:"parties"`
	DefaultTotalSeats int             `json:"default_total_seats"`
}

// ToStepResponses converts allocator steps into their API shape.
func ToStepResponses(steps []allocator.Step) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepResponse{
			Seat:     s.Seat,
			Party:    s.Party,
			Quotient: s.Quotient,
			NewTotal: s.NewTotal,
		})
	}
	return out
}

// ToSimulationResponse converts a storage record to an API response.
// Votes and seats are included only when detail is true.
func ToSimulationResponse(rec storage.SimulationRecord, detail bool) SimulationResponse {
	resp := SimulationResponse{
		ID:             rec.ID,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339),
		Source:         rec.Source,
		TotalSeats:     rec.TotalSeats,
		Threshold:      rec.Threshold,
		TotalVotes:     rec.TotalVotes,
		PartyCount:     rec.PartyCount,
		QualifiedCount: rec.QualifiedCount,
		AllocatedSeats: rec.AllocatedSeats,
		Warning:        rec.Warning,
	}

	if detail {
		resp.Votes = rec.Votes
		resp.Seats = rec.Seats
	}

	return resp
}
