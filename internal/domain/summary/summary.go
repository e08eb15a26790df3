// Package summary turns a raw seat allocation into presentation-ready
// result rows: per-party vote share vs seat share plus a qualification
// status, sorted the way an election results table is read.
package summary

import (
	"sort"

	"github.com/eshaffer321/election-sim-backend/internal/domain/allocator"
)

// Status describes why a party did or did not win seats.
type Status string

const (
	// StatusQualified means the party cleared the electoral threshold.
	StatusQualified Status = "qualified"

	// StatusBelowThreshold means the party had votes but not enough share.
	StatusBelowThreshold Status = "below_threshold"

	// StatusNoVotes means the party received no votes at all.
	StatusNoVotes Status = "no_votes"
)

// Row is one party's line in the results table.
type Row struct {
	Party   string  `json:"party"`
	Votes   int     `json:"votes"`
	VotePct float64 `json:"vote_pct"`
	Seats   int     `json:"seats"`
	SeatPct float64 `json:"seat_pct"`
	Status  Status  `json:"status"`
}

// Summary is the full results table with its totals.
type Summary struct {
	Rows           []Row `json:"rows"`
	TotalSeats     int   `json:"total_seats"`
	AllocatedSeats int   `json:"allocated_seats"`

	// FullyAllocated is false when no party qualified and the seats
	// went unfilled.
	FullyAllocated bool `json:"fully_allocated"`
}

// Build derives the results table from the votes that went into an
// allocation and its result. Rows are sorted by seats descending, then
// votes descending, then party name, so the winner reads first.
func Build(votes map[string]int, result *allocator.Result, totalSeats int) *Summary {
	rows := make([]Row, 0, len(result.Seats))

	for party, seats := range result.Seats {
		row := Row{
			Party: party,
			Votes: votes[party],
			Seats: seats,
		}

		if result.TotalVotes > 0 {
			row.VotePct = float64(votes[party]) / float64(result.TotalVotes) * 100
		}
		if totalSeats > 0 {
			row.SeatPct = float64(seats) / float64(totalSeats) * 100
		}

		switch {
		case result.Qualified[party]:
			row.Status = StatusQualified
		case votes[party] > 0:
			row.Status = StatusBelowThreshold
		default:
			row.Status = StatusNoVotes
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Seats != rows[j].Seats {
			return rows[i].Seats > rows[j].Seats
		}
		if rows[i].Votes != rows[j].Votes {
			return rows[i].Votes > rows[j].Votes
		}
		return rows[i].Party < rows[j].Party
	})

	return &Summary{
		Rows:           rows,
		TotalSeats:     totalSeats,
		AllocatedSeats: result.AllocatedSeats,
		FullyAllocated: result.AllocatedSeats == totalSeats,
	}
}
