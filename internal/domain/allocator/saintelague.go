// Package allocator implements parliamentary seat allocation using the
// modified Sainte-Laguë method with an electoral threshold.
//
// Seats are awarded one at a time to the party with the highest quotient:
//
//	quotient = votes / divisor(seats_held)
//	divisor(0) = 1.4
//	divisor(n) = 2n + 1
//
// Parties below the threshold share of total valid votes are excluded
// before any seat is awarded, but still appear in the result with 0 seats.
package allocator

import (
	"errors"
	"sort"
)

// Config holds the allocation parameters.
type Config struct {
	// Threshold is the minimum vote-share fraction a party must reach
	// to be eligible for seats. A share exactly equal to the threshold
	// qualifies.
	Threshold float64

	// FirstSeatDivisor is the divisor applied before a party holds any
	// seats. The modified method uses 1.4 instead of 1, which slightly
	// disadvantages small parties.
	FirstSeatDivisor float64
}

// DefaultConfig returns the parameters used in Norwegian parliamentary
// elections: 4% threshold, first divisor 1.4.
func DefaultConfig() Config {
	return Config{
		Threshold:        0.04,
		FirstSeatDivisor: 1.4,
	}
}

// Step records a single seat award in the allocation trace.
type Step struct {
	// Seat is the 1-based sequence number of the awarded seat.
	Seat int

	// Party is the winner of this seat.
	Party string

	// Quotient is the winning quotient for this round.
	Quotient float64

	// NewTotal is the winner's cumulative seat count after this award.
	NewTotal int
}

// Result contains the outcome of a seat allocation.
type Result struct {
	// Seats maps every input party to its seat count. Parties below the
	// threshold are present with 0.
	Seats map[string]int

	// Steps is the seat-by-seat trace, one entry per awarded seat. Empty
	// when no party qualifies.
	Steps []Step

	// Qualified marks the parties that cleared the threshold.
	Qualified map[string]bool

	// TotalVotes is the sum of all vote counts in the input.
	TotalVotes int

	// AllocatedSeats is the number of seats actually awarded. Equals the
	// requested total unless no party qualifies, in which case it is 0.
	AllocatedSeats int
}

// Allocate distributes totalSeats among the parties in votes using the
// modified Sainte-Laguë method.
//
// When two or more parties tie exactly on the highest quotient, the seat
// goes to the party whose name sorts first lexicographically. This keeps
// the allocation deterministic regardless of map iteration order.
//
// Returns an error if votes is empty, any vote count is negative, or
// totalSeats is negative. "No party qualifies" is not an error: the
// result maps every party to 0 seats with an empty trace.
func Allocate(votes map[string]int, totalSeats int, cfg Config) (*Result, error) {
	if len(votes) == 0 {
		return nil, errors.New("no parties to allocate")
	}
	if totalSeats < 0 {
		return nil, errors.New("total seats cannot be negative")
	}

	var totalVotes int
	for party, count := range votes {
		if count < 0 {
			return nil, errors.New("vote count cannot be negative for party " + party)
		}
		totalVotes += count
	}

	// Sorted party order makes both the threshold pass and the tie-break
	// deterministic.
	parties := make([]string, 0, len(votes))
	for party := range votes {
		parties = append(parties, party)
	}
	sort.Strings(parties)

	// Threshold filter. With zero total votes there is no share to
	// compute, so nobody qualifies.
	qualified := make(map[string]bool, len(votes))
	var anyQualified bool
	for _, party := range parties {
		if totalVotes > 0 && float64(votes[party])/float64(totalVotes) >= cfg.Threshold {
			qualified[party] = true
			anyQualified = true
		}
	}

	result := &Result{
		Seats:      make(map[string]int, len(votes)),
		Qualified:  qualified,
		TotalVotes: totalVotes,
	}
	for _, party := range parties {
		result.Seats[party] = 0
	}

	if !anyQualified {
		return result, nil
	}

	result.Steps = make([]Step, 0, totalSeats)

	for seat := 1; seat <= totalSeats; seat++ {
		var winner string
		var best float64

		for _, party := range parties {
			if !qualified[party] {
				continue
			}
			quotient := float64(votes[party]) / divisor(result.Seats[party], cfg.FirstSeatDivisor)

			// Strict comparison: on an exact tie the earlier
			// (lexicographically smaller) party keeps the seat.
			if winner == "" || quotient > best {
				winner = party
				best = quotient
			}
		}

		result.Seats[winner]++
		result.Steps = append(result.Steps, Step{
			Seat:     seat,
			Party:    winner,
			Quotient: best,
			NewTotal: result.Seats[winner],
		})
	}

	result.AllocatedSeats = totalSeats
	return result, nil
}

// divisor returns the modified Sainte-Laguë divisor for a party that
// currently holds n seats.
func divisor(n int, firstSeat float64) float64 {
	if n == 0 {
		return firstSeat
	}
	return float64(2*n + 1)
}
