package cli

import (
	"fmt"
	"strings"

	"github.com/eshaffer321/election-sim-backend/internal/application/service"
	"github.com/eshaffer321/election-sim-backend/internal/domain/summary"
)

// PrintHeader prints the application header
func PrintHeader(totalSeats int, threshold float64) {
	fmt.Printf("election-sim: modified Sainte-Laguë | seats=%d threshold=%.1f%%\n",
		totalSeats, threshold*100)
	fmt.Println(strings.Repeat("-", 60))
}

// PrintResults prints the results table for a completed simulation
func PrintResults(outcome *service.SimulationOutcome) {
	fmt.Printf("%-28s %8s %6s %8s  %s\n", "Party", "Vote %", "Seats", "Seat %", "Status")

	for _, row := range outcome.Summary.Rows {
		fmt.Printf("%-28s %7.1f%% %6d %7.1f%%  %s\n",
			row.Party, row.VotePct, row.Seats, row.SeatPct, statusLabel(row.Status))
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Allocated %d of %d seats\n", outcome.Summary.AllocatedSeats, outcome.Summary.TotalSeats)

	if !outcome.Summary.FullyAllocated {
		fmt.Printf("Warning: %d seats unallocated - no party cleared the threshold\n",
			outcome.Summary.TotalSeats-outcome.Summary.AllocatedSeats)
	}
	if outcome.Warning != "" {
		fmt.Printf("Warning: %s\n", outcome.Warning)
	}
	if outcome.Saved {
		fmt.Printf("Saved simulation %s\n", outcome.ID)
	}
}

// PrintSteps prints the seat-by-seat allocation trace
func PrintSteps(outcome *service.SimulationOutcome) {
	if len(outcome.Result.Steps) == 0 {
		fmt.Println("No seats were allocated.")
		return
	}

	fmt.Printf("\n%-5s %-28s %12s %10s\n", "Seat", "Winner", "Quotient", "New Total")
	for _, step := range outcome.Result.Steps {
		fmt.Printf("%-5d %-28s %12.2f %10d\n", step.Seat, step.Party, step.Quotient, step.NewTotal)
	}
}

// statusLabel maps a summary status to its console label
func statusLabel(status summary.Status) string {
	switch status {
	case summary.StatusQualified:
		return "qualified"
	case summary.StatusBelowThreshold:
		return "below threshold"
	default:
		return "no votes"
	}
}
