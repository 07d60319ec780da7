package service

import (
	"fmt"
	"sort"
	"sync"

	"vocabook/internal/domain"
	"vocabook/internal/repository"

	"go.uber.org/zap"
)

// Vocabulary owns the in-memory word and stats maps.
// Every mutation runs under the write lock and is persisted before the lock
// is released, so the documents on disk always match a state that existed
// in memory.
type Vocabulary struct {
	mu     sync.RWMutex
	words  map[string]domain.Entry
	stats  map[string]domain.Stats
	repo   repository.VocabularyRepository
	logger *zap.Logger
}

// NewVocabulary loads both documents through repo
func NewVocabulary(repo repository.VocabularyRepository, logger *zap.Logger) *Vocabulary {
	words, stats := repo.Load()
	if words == nil {
		words = make(map[string]domain.Entry)
	}
	if stats == nil {
		stats = make(map[string]domain.Stats)
	}

	return &Vocabulary{
		words:  words,
		stats:  stats,
		repo:   repo,
		logger: logger,
	}
}

// persist saves both maps. Caller must hold the write lock.
func (v *Vocabulary) persist() error {
	if err := v.repo.Save(v.words, v.stats); err != nil {
		v.logger.Error("Failed to persist vocabulary, in-memory state kept", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
