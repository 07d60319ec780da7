package repository

import (
	"vocabook/internal/domain"
)

// VocabularyRepository persists the word dictionary and the quiz stats.
// Load never fails: unreadable documents come back as empty maps.
type VocabularyRepository interface {
	Load() (map[string]domain.Entry, map[string]domain.Stats)
	Save(words map[string]domain.Entry, stats map[string]domain.Stats) error
}
