package service

import (
	"fmt"
	"sort"
	"strings"

	"vocabook/internal/domain"

	"go.uber.org/zap"
)

// WordService handles word CRUD
type WordService struct {
	vocab  *Vocabulary
	logger *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(vocab *Vocabulary, logger *zap.Logger) *WordService {
	return &WordService{
		vocab:  vocab,
		logger: logger,
	}
}

// List returns all words sorted by key, or only those in category when it is non-empty
func (s *WordService) List(category string) []domain.Word {
	v := s.vocab
	v.mu.RLock()
	defer v.mu.RUnlock()

	words := make([]domain.Word, 0, len(v.words))
	for _, key := range sortedKeys(v.words) {
		entry := v.words[key]
		if category != "" && entry.Category != category {
			continue
		}
		words = append(words, domain.NewWord(key, entry))
	}
	return words
}

// Find returns a single word
func (s *WordService) Find(word string) (domain.Word, error) {
	key := domain.NormalizeKey(word)

	v := s.vocab
	v.mu.RLock()
	defer v.mu.RUnlock()

	entry, ok := v.words[key]
	if !ok {
		return domain.Word{}, fmt.Errorf("'%s': %w", key, domain.ErrNotFound)
	}
	return domain.NewWord(key, entry), nil
}

// Add inserts a new word and returns a confirmation message
func (s *WordService) Add(input WordInput) (string, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return "", err
	}

	v := s.vocab
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.words[input.Word]; exists {
		return "", fmt.Errorf("'%s': %w", input.Word, domain.ErrConflict)
	}

	v.words[input.Word] = domain.Entry{Meaning: input.Meaning, Category: input.Category}
	if err := v.persist(); err != nil {
		return "", err
	}

	s.logger.Info("Word added",
		zap.String("word", input.Word),
		zap.String("category", input.Category),
	)
	return fmt.Sprintf("'%s' has been added!", input.Word), nil
}

// Update edits a word. An empty category keeps the current one.
// When the key changes the word's stats move with it.
func (s *WordService) Update(oldWord string, input WordInput) (string, error) {
	oldKey := domain.NormalizeKey(oldWord)
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return "", err
	}

	v := s.vocab
	v.mu.Lock()
	defer v.mu.Unlock()

	current, ok := v.words[oldKey]
	if !ok {
		return "", fmt.Errorf("'%s': %w", oldKey, domain.ErrNotFound)
	}

	category := input.Category
	if category == "" {
		category = current.Category
	}

	if input.Word != oldKey {
		if _, exists := v.words[input.Word]; exists {
			return "", fmt.Errorf("'%s': %w", input.Word, domain.ErrConflict)
		}

		delete(v.words, oldKey)
		if st, ok := v.stats[oldKey]; ok {
			delete(v.stats, oldKey)
			v.stats[input.Word] = st
		}
	}

	v.words[input.Word] = domain.Entry{Meaning: input.Meaning, Category: category}
	if err := v.persist(); err != nil {
		return "", err
	}

	s.logger.Info("Word updated",
		zap.String("old_word", oldKey),
		zap.String("new_word", input.Word),
	)
	return "Word has been updated!", nil
}

// Remove deletes a word together with its stats
func (s *WordService) Remove(word string) (string, error) {
	key := domain.NormalizeKey(word)
	if key == "" {
		return "", domain.NewValidationError("word", "is required")
	}

	v := s.vocab
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.words[key]; !ok {
		return "", fmt.Errorf("'%s': %w", key, domain.ErrNotFound)
	}

	delete(v.words, key)
	delete(v.stats, key)
	if err := v.persist(); err != nil {
		return "", err
	}

	s.logger.Info("Word removed", zap.String("word", key))
	return fmt.Sprintf("'%s' has been deleted!", key), nil
}

// Categories returns the sorted distinct non-empty categories
func (s *WordService) Categories() []string {
	v := s.vocab
	v.mu.RLock()
	defer v.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, entry := range v.words {
		if c := strings.TrimSpace(entry.Category); c != "" {
			seen[c] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
