package dto

// AllocateRequest is the body for POST /api/allocate and
// POST /api/simulations. Exactly one of votes or percentages must be
// set; total_seats and threshold fall back to server defaults when
// omitted.
type AllocateRequest struct {
	Votes       map[string]int     `json:"votes,omitempty"`
	Percentages map[string]float64 `json:"percentages,omitempty"`
	TotalSeats  int                `json:"total_seats,omitempty"`
	Threshold   float64            `json:"threshold,omitempty"`
}
