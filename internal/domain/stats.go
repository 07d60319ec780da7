package domain

import "math"

// Stats holds quiz counters for a single word
type Stats struct {
	Correct int
	Wrong   int
}

// Total returns the number of graded attempts
func (s Stats) Total() int {
	return s.Correct + s.Wrong
}

// Accuracy returns the share of correct answers in percent, 0 without attempts
func (s Stats) Accuracy() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total) * 100
}

// Record returns a copy with one more correct or wrong answer
func (s Stats) Record(correct bool) Stats {
	if correct {
		s.Correct++
	} else {
		s.Wrong++
	}
	return s
}

// StatsRow is one line of the accuracy report
type StatsRow struct {
	Word     string
	Meaning  string
	Category string
	Correct  int
	Wrong    int
	Total    int
	Accuracy float64
}

// Summary holds vocabulary size figures
type Summary struct {
	WordCount  int
	StatsCount int
}

// RoundAccuracy rounds a percentage to one decimal place
func RoundAccuracy(v float64) float64 {
	return math.Round(v*10) / 10
}
