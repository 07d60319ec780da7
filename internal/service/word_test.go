package service

import (
	"errors"
	"strings"
	"testing"

	"vocabook/internal/domain"
	"vocabook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordService_Add(t *testing.T) {
	tests := []struct {
		name          string
		input         WordInput
		expectedKey   string
		expectedErr   error
		expectedSaves int
	}{
		{
			name:          "valid word",
			input:         WordInput{Word: "cherry", Meaning: "체리", Category: "fruit"},
			expectedKey:   "cherry",
			expectedSaves: 1,
		},
		{
			name:          "word is normalized",
			input:         WordInput{Word: "  Cherry ", Meaning: " 체리 "},
			expectedKey:   "cherry",
			expectedSaves: 1,
		},
		{
			name:        "duplicate differing only by case",
			input:       WordInput{Word: "APPLE", Meaning: "사과"},
			expectedErr: domain.ErrConflict,
		},
		{
			name:        "empty word",
			input:       WordInput{Word: "   ", Meaning: "체리"},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "empty meaning",
			input:       WordInput{Word: "cherry", Meaning: "  "},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "word too long",
			input:       WordInput{Word: strings.Repeat("a", 101), Meaning: "체리"},
			expectedErr: domain.ErrValidation,
		},
		{
			name:          "word at limit",
			input:         WordInput{Word: strings.Repeat("a", 100), Meaning: "체리"},
			expectedKey:   strings.Repeat("a", 100),
			expectedSaves: 1,
		},
		{
			name:          "meaning limit counts characters not bytes",
			input:         WordInput{Word: "long", Meaning: strings.Repeat("가", 200)},
			expectedKey:   "long",
			expectedSaves: 1,
		},
		{
			name:        "meaning too long",
			input:       WordInput{Word: "long", Meaning: strings.Repeat("가", 201)},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab, repo := newTestVocabulary(testutil.NewTestWords(), nil)
			service := NewWordService(vocab, testutil.NewTestLogger())

			msg, err := service.Add(tt.input)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
				assert.Empty(t, msg)
			} else {
				require.NoError(t, err)
				assert.Contains(t, msg, tt.expectedKey)

				word, err := service.Find(tt.expectedKey)
				require.NoError(t, err)
				assert.Equal(t, tt.expectedKey, word.Word)
				assert.Equal(t, strings.TrimSpace(tt.input.Meaning), word.Meaning)
			}

			repo.AssertNumberOfCalls(t, "Save", tt.expectedSaves)
		})
	}
}

func TestWordService_Add_ValidationFields(t *testing.T) {
	vocab, _ := newTestVocabulary(nil, nil)
	service := NewWordService(vocab, testutil.NewTestLogger())

	_, err := service.Add(WordInput{Word: "", Meaning: strings.Repeat("x", 201)})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []domain.FieldError{
		{Field: "word", Message: "is required"},
		{Field: "meaning", Message: "must be at most 200 characters"},
	}, verr.Errors)
}

func TestWordService_Add_PersistenceFailureKeepsWord(t *testing.T) {
	vocab, _ := newFailingVocabulary(testutil.NewTestWords(), nil)
	service := NewWordService(vocab, testutil.NewTestLogger())

	_, err := service.Add(WordInput{Word: "cherry", Meaning: "체리"})

	assert.True(t, errors.Is(err, domain.ErrPersistence))

	word, findErr := service.Find("cherry")
	assert.NoError(t, findErr)
	assert.Equal(t, "체리", word.Meaning)
}

func TestWordService_Find(t *testing.T) {
	vocab, _ := newTestVocabulary(testutil.NewTestWords(), nil)
	service := NewWordService(vocab, testutil.NewTestLogger())

	word, err := service.Find(" Apple ")
	assert.NoError(t, err)
	assert.Equal(t, domain.Word{Word: "apple", Meaning: "사과", Category: "fruit"}, word)

	_, err = service.Find("cherry")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestWordService_List(t *testing.T) {
	vocab, _ := newTestVocabulary(testutil.NewTestWords(), nil)
	service := NewWordService(vocab, testutil.NewTestLogger())

	all := service.List("")
	require.Len(t, all, 5)
	assert.Equal(t, "apple", all[0].Word)
	assert.Equal(t, "run", all[4].Word)

	verbs := service.List("verbs")
	assert.Equal(t, []domain.Word{
		{Word: "eat", Meaning: "먹다", Category: "verbs"},
		{Word: "run", Meaning: "달리다", Category: "verbs"},
	}, verbs)

	assert.Empty(t, service.List("animals"))
}

func TestWordService_Update(t *testing.T) {
	tests := []struct {
		name             string
		oldWord          string
		input            WordInput
		expectedErr      error
		expectedKey      string
		expectedCategory string
		expectedStats    *domain.Stats
	}{
		{
			name:             "edit meaning in place",
			oldWord:          "apple",
			input:            WordInput{Word: "apple", Meaning: "사과 (과일)", Category: "food"},
			expectedKey:      "apple",
			expectedCategory: "food",
			expectedStats:    &domain.Stats{Correct: 3, Wrong: 1},
		},
		{
			name:             "empty category keeps existing",
			oldWord:          "apple",
			input:            WordInput{Word: "apple", Meaning: "사과"},
			expectedKey:      "apple",
			expectedCategory: "fruit",
			expectedStats:    &domain.Stats{Correct: 3, Wrong: 1},
		},
		{
			name:             "rename migrates stats",
			oldWord:          "apple",
			input:            WordInput{Word: "Green Apple", Meaning: "풋사과"},
			expectedKey:      "green apple",
			expectedCategory: "fruit",
			expectedStats:    &domain.Stats{Correct: 3, Wrong: 1},
		},
		{
			name:             "case-only change is not a conflict",
			oldWord:          "APPLE ",
			input:            WordInput{Word: " Apple", Meaning: "사과"},
			expectedKey:      "apple",
			expectedCategory: "fruit",
			expectedStats:    &domain.Stats{Correct: 3, Wrong: 1},
		},
		{
			name:             "rename word without stats",
			oldWord:          "run",
			input:            WordInput{Word: "sprint", Meaning: "질주하다"},
			expectedKey:      "sprint",
			expectedCategory: "verbs",
		},
		{
			name:        "rename onto existing word",
			oldWord:     "apple",
			input:       WordInput{Word: "banana", Meaning: "사과"},
			expectedErr: domain.ErrConflict,
		},
		{
			name:        "missing word",
			oldWord:     "cherry",
			input:       WordInput{Word: "cherry", Meaning: "체리"},
			expectedErr: domain.ErrNotFound,
		},
		{
			name:        "invalid input",
			oldWord:     "apple",
			input:       WordInput{Word: "apple", Meaning: ""},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := map[string]domain.Stats{"apple": {Correct: 3, Wrong: 1}}
			vocab, repo := newTestVocabulary(testutil.NewTestWords(), stats)
			service := NewWordService(vocab, testutil.NewTestLogger())

			_, err := service.Update(tt.oldWord, tt.input)

			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
				repo.AssertNumberOfCalls(t, "Save", 0)
				return
			}

			require.NoError(t, err)
			repo.AssertNumberOfCalls(t, "Save", 1)

			word, err := service.Find(tt.expectedKey)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCategory, word.Category)

			oldKey := domain.NormalizeKey(tt.oldWord)
			if oldKey != tt.expectedKey {
				_, err := service.Find(oldKey)
				assert.True(t, errors.Is(err, domain.ErrNotFound))
				_, hasOldStats := vocab.stats[oldKey]
				assert.False(t, hasOldStats)
			}

			if tt.expectedStats != nil {
				assert.Equal(t, *tt.expectedStats, vocab.stats[tt.expectedKey])
			} else {
				_, ok := vocab.stats[tt.expectedKey]
				assert.False(t, ok)
			}
		})
	}
}

func TestWordService_Remove(t *testing.T) {
	stats := map[string]domain.Stats{"apple": {Correct: 1, Wrong: 2}}
	vocab, repo := newTestVocabulary(testutil.NewTestWords(), stats)
	service := NewWordService(vocab, testutil.NewTestLogger())

	msg, err := service.Remove(" APPLE ")
	require.NoError(t, err)
	assert.Contains(t, msg, "apple")

	_, err = service.Find("apple")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.NotContains(t, vocab.stats, "apple")

	_, err = service.Remove("apple")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = service.Remove("  ")
	assert.True(t, errors.Is(err, domain.ErrValidation))

	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestWordService_Categories(t *testing.T) {
	words := testutil.NewTestWords()
	words["misc"] = testutil.NewTestEntry("기타", "")
	words["spaced"] = testutil.NewTestEntry("공백", "  verbs ")

	vocab, _ := newTestVocabulary(words, nil)
	service := NewWordService(vocab, testutil.NewTestLogger())

	assert.Equal(t, []string{"fruit", "verbs"}, service.Categories())
}

func TestWordService_CategoriesEmpty(t *testing.T) {
	vocab, _ := newTestVocabulary(nil, nil)
	service := NewWordService(vocab, testutil.NewTestLogger())

	categories := service.Categories()
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}
