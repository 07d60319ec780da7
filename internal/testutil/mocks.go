package testutil

import (
	"vocabook/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) Load() (map[string]domain.Entry, map[string]domain.Stats) {
	args := m.Called()
	var words map[string]domain.Entry
	var stats map[string]domain.Stats
	if args.Get(0) != nil {
		words = args.Get(0).(map[string]domain.Entry)
	}
	if args.Get(1) != nil {
		stats = args.Get(1).(map[string]domain.Stats)
	}
	return words, stats
}

func (m *MockVocabularyRepository) Save(words map[string]domain.Entry, stats map[string]domain.Stats) error {
	args := m.Called(words, stats)
	return args.Error(0)
}

// NewMockRepository returns a mock preloaded with the given maps whose Save succeeds
func NewMockRepository(words map[string]domain.Entry, stats map[string]domain.Stats) *MockVocabularyRepository {
	repo := new(MockVocabularyRepository)
	repo.On("Load").Return(words, stats)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	return repo
}
