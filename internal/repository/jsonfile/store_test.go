package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"vocabook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, string, string) {
	t.Helper()

	dir := t.TempDir()
	vocabPath := filepath.Join(dir, "vocabulary.json")
	statsPath := filepath.Join(dir, "quiz_stats.json")

	return NewStore(vocabPath, statsPath, zap.NewNop()), vocabPath, statsPath
}

func TestStore_LoadMissingFiles(t *testing.T) {
	store, _, _ := newTestStore(t)

	words, stats := store.Load()

	assert.NotNil(t, words)
	assert.NotNil(t, stats)
	assert.Empty(t, words)
	assert.Empty(t, stats)
}

func TestStore_LoadMalformedFiles(t *testing.T) {
	store, vocabPath, statsPath := newTestStore(t)

	require.NoError(t, os.WriteFile(vocabPath, []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(statsPath, []byte(`["a", "b"]`), 0o644))

	words, stats := store.Load()

	assert.Empty(t, words)
	assert.Empty(t, stats)
}

func TestStore_LoadLegacyAndCurrentShapes(t *testing.T) {
	store, vocabPath, statsPath := newTestStore(t)

	vocab := `{
  "apple": "사과",
  "run": {"korean": "달리다", "category": "verbs"},
  "book": {"korean": "책"},
  "broken": 42,
  "empty": null
}`
	statsDoc := `{
  "apple": [3, 1],
  "run": [0, 2],
  "bad": [1],
  "negative": [-1, 0],
  "text": "oops"
}`
	require.NoError(t, os.WriteFile(vocabPath, []byte(vocab), 0o644))
	require.NoError(t, os.WriteFile(statsPath, []byte(statsDoc), 0o644))

	words, stats := store.Load()

	assert.Equal(t, map[string]domain.Entry{
		"apple": {Meaning: "사과", Category: ""},
		"run":   {Meaning: "달리다", Category: "verbs"},
		"book":  {Meaning: "책", Category: ""},
	}, words)
	assert.Equal(t, map[string]domain.Stats{
		"apple": {Correct: 3, Wrong: 1},
		"run":   {Correct: 0, Wrong: 2},
	}, stats)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _, _ := newTestStore(t)

	words := map[string]domain.Entry{
		"apple": {Meaning: "사과", Category: "fruit"},
		"run":   {Meaning: "달리다"},
	}
	stats := map[string]domain.Stats{
		"apple": {Correct: 2, Wrong: 5},
	}

	require.NoError(t, store.Save(words, stats))

	loadedWords, loadedStats := store.Load()
	assert.Equal(t, words, loadedWords)
	assert.Equal(t, stats, loadedStats)
}

func TestStore_SaveWritesReadableDocuments(t *testing.T) {
	store, vocabPath, statsPath := newTestStore(t)

	err := store.Save(
		map[string]domain.Entry{"apple": {Meaning: "사과", Category: "fruit"}},
		map[string]domain.Stats{"apple": {Correct: 1, Wrong: 0}},
	)
	require.NoError(t, err)

	vocabData, err := os.ReadFile(vocabPath)
	require.NoError(t, err)
	assert.Contains(t, string(vocabData), "사과", "non-ASCII text must not be escaped")
	assert.Contains(t, string(vocabData), "\n  \"apple\"", "document must be indented")

	var vocab map[string]map[string]string
	require.NoError(t, json.Unmarshal(vocabData, &vocab))
	assert.Equal(t, map[string]string{"korean": "사과", "category": "fruit"}, vocab["apple"])

	statsData, err := os.ReadFile(statsPath)
	require.NoError(t, err)

	var statsDoc map[string][]int
	require.NoError(t, json.Unmarshal(statsData, &statsDoc))
	assert.Equal(t, []int{1, 0}, statsDoc["apple"])
}

func TestStore_SaveOverwritesPreviousContent(t *testing.T) {
	store, _, _ := newTestStore(t)

	require.NoError(t, store.Save(
		map[string]domain.Entry{"apple": {Meaning: "사과"}, "pear": {Meaning: "배"}},
		map[string]domain.Stats{"pear": {Correct: 1}},
	))
	require.NoError(t, store.Save(
		map[string]domain.Entry{"apple": {Meaning: "사과"}},
		map[string]domain.Stats{},
	))

	words, stats := store.Load()
	assert.Len(t, words, 1)
	assert.Empty(t, stats)
}

func TestStore_SaveFailsForMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(
		filepath.Join(dir, "missing", "vocabulary.json"),
		filepath.Join(dir, "missing", "quiz_stats.json"),
		zap.NewNop(),
	)

	err := store.Save(map[string]domain.Entry{"apple": {Meaning: "사과"}}, nil)

	assert.Error(t, err)
}

func TestDecodeEntry(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      domain.Entry
		expectedError bool
	}{
		{
			name:     "legacy string",
			raw:      `"사과"`,
			expected: domain.Entry{Meaning: "사과"},
		},
		{
			name:     "object with category",
			raw:      `{"korean": "달리다", "category": "verbs"}`,
			expected: domain.Entry{Meaning: "달리다", Category: "verbs"},
		},
		{
			name:     "object without fields",
			raw:      `{}`,
			expected: domain.Entry{},
		},
		{
			name:          "number",
			raw:           `7`,
			expectedError: true,
		},
		{
			name:          "null",
			raw:           `null`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := decodeEntry(json.RawMessage(tt.raw))

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, entry)
			}
		})
	}
}
