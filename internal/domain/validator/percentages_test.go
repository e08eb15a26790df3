package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePercentages_ExactHundred(t *testing.T) {
	result := ValidatePercentages(map[string]float64{
		"A": 60, "B": 25, "C": 15,
	})

	assert.True(t, result.Valid)
	assert.InDelta(t, 100.0, result.Sum, 0.0001)
	assert.Empty(t, result.Reason)
}

func TestValidatePercentages_WithinTolerance(t *testing.T) {
	// 99.95 is inside the 0.1 default tolerance.
	result := ValidatePercentages(map[string]float64{
		"A": 59.95, "B": 25, "C": 15,
	})

	assert.True(t, result.Valid)
}

func TestValidatePercentages_UnderHundred(t *testing.T) {
	result := ValidatePercentages(map[string]float64{
		"A": 40, "B": 30,
	})

	assert.False(t, result.Valid)
	assert.InDelta(t, 70.0, result.Sum, 0.0001)
	assert.InDelta(t, -30.0, result.Difference, 0.0001)
	assert.Contains(t, result.Reason, "unaccounted")
}

func TestValidatePercentages_OverHundred(t *testing.T) {
	result := ValidatePercentages(map[string]float64{
		"A": 60, "B": 55,
	})

	assert.False(t, result.Valid)
	assert.InDelta(t, 15.0, result.Difference, 0.0001)
	assert.Contains(t, result.Reason, "over 100%")
}

func TestValidatePercentagesWithTolerance(t *testing.T) {
	percentages := map[string]float64{"A": 51, "B": 51}

	loose := ValidatePercentagesWithTolerance(percentages, 5.0)
	assert.True(t, loose.Valid)

	strict := ValidatePercentagesWithTolerance(percentages, 1.0)
	assert.False(t, strict.Valid)
}

func TestValidatePercentages_Empty(t *testing.T) {
	// An empty map sums to 0, which is 100 short.
	result := ValidatePercentages(map[string]float64{})

	assert.False(t, result.Valid)
	assert.Equal(t, 0.0, result.Sum)
}
