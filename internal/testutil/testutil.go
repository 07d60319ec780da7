package testutil

import (
	"math/rand/v2"

	"vocabook/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a deterministic random source
func NewTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// NewTestEntry creates a vocabulary entry
func NewTestEntry(meaning, category string) domain.Entry {
	return domain.Entry{Meaning: meaning, Category: category}
}

// NewTestWords creates a small vocabulary spread over two categories
func NewTestWords() map[string]domain.Entry {
	return map[string]domain.Entry{
		"apple":  NewTestEntry("사과", "fruit"),
		"banana": NewTestEntry("바나나", "fruit"),
		"grape":  NewTestEntry("포도", "fruit"),
		"run":    NewTestEntry("달리다", "verbs"),
		"eat":    NewTestEntry("먹다", "verbs"),
	}
}
