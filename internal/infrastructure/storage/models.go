package storage

import (
	"time"

	"github.com/eshaffer321/election-sim-backend/internal/domain/allocator"
)

// Input sources for a simulation record.
const (
	SourceVotes       = "votes"
	SourcePercentages = "percentages"
)

// SimulationRecord is a persisted simulation: the inputs, the resulting
// seat distribution and the full allocation trace.
type SimulationRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Inputs
	Source     string  `json:"source"` // "votes" or "percentages"
	TotalSeats int     `json:"total_seats"`
	Threshold  float64 `json:"threshold"`

	// Outcome
	TotalVotes     int    `json:"total_votes"`
	PartyCount     int    `json:"party_count"`
	QualifiedCount int    `json:"qualified_count"`
	AllocatedSeats int    `json:"allocated_seats"`
	Warning        string `json:"warning,omitempty"` // percentage-sum advisory, empty if none

	// Nested structures, stored as JSON blob columns
	Votes map[string]int   `json:"votes"`
	Seats map[string]int   `json:"seats"`
	Steps []allocator.Step `json:"steps"`
}

// Stats holds aggregate statistics over stored simulations.
type Stats struct {
	TotalSimulations    int     `json:"total_simulations"`
	TotalSeatsAllocated int     `json:"total_seats_allocated"`
	AvgPartyCount       float64 `json:"avg_party_count"`
	LastCreatedAt       string  `json:"last_created_at,omitempty"`
}
