package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Accuracy(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected float64
	}{
		{
			name:     "no attempts",
			stats:    Stats{},
			expected: 0,
		},
		{
			name:     "three of four",
			stats:    Stats{Correct: 3, Wrong: 1},
			expected: 75,
		},
		{
			name:     "all wrong",
			stats:    Stats{Correct: 0, Wrong: 5},
			expected: 0,
		},
		{
			name:     "all correct",
			stats:    Stats{Correct: 2},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stats.Accuracy(), 0.0001)
		})
	}
}

func TestStats_Record(t *testing.T) {
	s := Stats{Correct: 1, Wrong: 1}

	assert.Equal(t, Stats{Correct: 2, Wrong: 1}, s.Record(true))
	assert.Equal(t, Stats{Correct: 1, Wrong: 2}, s.Record(false))
	assert.Equal(t, Stats{Correct: 1, Wrong: 1}, s, "record must not modify the receiver")
}

func TestRoundAccuracy(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{input: 66.66666, expected: 66.7},
		{input: 33.33333, expected: 33.3},
		{input: 75, expected: 75},
		{input: 0, expected: 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, RoundAccuracy(tt.input), 0.0001)
	}
}
