package allocator

import "errors"

// PercentageBase is the synthetic electorate size used when converting
// vote percentages to vote counts.
const PercentageBase = 100000

// VotesFromPercentages converts party percentages (0-100) into vote
// counts against a fixed base of PercentageBase votes.
//
// The conversion truncates toward zero, so it is lossy: at small scale
// the truncation can shift a party across the threshold boundary.
// Callers that care about exact threshold behavior should supply real
// vote counts instead.
func VotesFromPercentages(percentages map[string]float64) (map[string]int, error) {
	if len(percentages) == 0 {
		return nil, errors.New("no parties to convert")
	}

	votes := make(map[string]int, len(percentages))
	for party, pct := range percentages {
		if pct < 0 {
			return nil, errors.New("percentage cannot be negative for party " + party)
		}
		votes[party] = int(pct * PercentageBase / 100)
	}

	return votes, nil
}
