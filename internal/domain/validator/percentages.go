// Package validator provides input validation for election simulations.
//
// The percentage validator checks that entered vote percentages add up
// to roughly 100%. A mismatch is advisory only: the allocator normalizes
// by total votes, so a skewed sum still produces a valid allocation, it
// just may not mean what the user intended.
package validator

import (
	"fmt"
	"math"
)

// DefaultTolerance is how far the percentage sum may drift from 100
// before the input is flagged.
const DefaultTolerance = 0.1

// PercentageValidation contains the result of validating vote percentages.
type PercentageValidation struct {
	// Valid is true if the percentages sum to ~100
	Valid bool

	// Sum is the actual sum of all percentages
	Sum float64

	// Difference is the gap from 100 (positive = over, negative = under)
	Difference float64

	// Reason explains why validation failed (empty if valid)
	Reason string
}

// ValidatePercentages checks that the party percentages sum to 100
// within DefaultTolerance.
func ValidatePercentages(percentages map[string]float64) *PercentageValidation {
	return ValidatePercentagesWithTolerance(percentages, DefaultTolerance)
}

// ValidatePercentagesWithTolerance checks the percentage sum against an
// explicit tolerance.
func ValidatePercentagesWithTolerance(percentages map[string]float64, tolerance float64) *PercentageValidation {
	var sum float64
	for _, pct := range percentages {
		sum += pct
	}

	diff := sum - 100

	if math.Abs(diff) <= tolerance {
		return &PercentageValidation{
			Valid:      true,
			Sum:        sum,
			Difference: diff,
		}
	}

	var reason string
	if diff < 0 {
		reason = fmt.Sprintf("vote percentages sum to %.1f%% - %.1f%% of the vote is unaccounted for", sum, -diff)
	} else {
		reason = fmt.Sprintf("vote percentages sum to %.1f%% - %.1f%% over 100%%", sum, diff)
	}

	return &PercentageValidation{
		Valid:      false,
		Sum:        sum,
		Difference: diff,
		Reason:     reason,
	}
}
