package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"vocabook/internal/domain"

	"go.uber.org/zap"
)

// Store implements repository.VocabularyRepository on two JSON documents.
// It does no locking and assumes a single writer.
type Store struct {
	vocabPath string
	statsPath string
	logger    *zap.Logger
}

// NewStore creates a store for the given document paths
func NewStore(vocabPath, statsPath string, logger *zap.Logger) *Store {
	return &Store{
		vocabPath: vocabPath,
		statsPath: statsPath,
		logger:    logger,
	}
}

// entryRecord is the on-disk shape of a word value
type entryRecord struct {
	Korean   string `json:"korean"`
	Category string `json:"category"`
}

// Load reads both documents. A missing or malformed document yields an empty map.
func (s *Store) Load() (map[string]domain.Entry, map[string]domain.Stats) {
	return s.loadWords(), s.loadStats()
}

func (s *Store) loadWords() map[string]domain.Entry {
	words := make(map[string]domain.Entry)

	raw, ok := s.readDocument(s.vocabPath)
	if !ok {
		return words
	}

	for word, value := range raw {
		entry, err := decodeEntry(value)
		if err != nil {
			s.logger.Warn("Skipping malformed word entry",
				zap.String("word", word),
				zap.Error(err),
			)
			continue
		}
		words[word] = entry
	}

	s.logger.Info("Vocabulary loaded", zap.Int("words", len(words)))
	return words
}

func (s *Store) loadStats() map[string]domain.Stats {
	stats := make(map[string]domain.Stats)

	raw, ok := s.readDocument(s.statsPath)
	if !ok {
		return stats
	}

	for word, value := range raw {
		st, err := decodeStats(value)
		if err != nil {
			s.logger.Warn("Skipping malformed stats entry",
				zap.String("word", word),
				zap.Error(err),
			)
			continue
		}
		stats[word] = st
	}

	s.logger.Info("Quiz stats loaded", zap.Int("records", len(stats)))
	return stats
}

// readDocument returns the top-level object of a document, or false
// when the file is missing or unreadable
func (s *Store) readDocument(path string) (map[string]json.RawMessage, bool) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("Document not found, starting empty", zap.String("path", path))
		return nil, false
	}
	if err != nil {
		s.logger.Error("Failed to read document", zap.String("path", path), zap.Error(err))
		return nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Error("Failed to parse document, starting empty",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, false
	}

	return raw, true
}

// decodeEntry accepts both the legacy bare-string meaning and the
// {"korean", "category"} object and always returns the canonical entry
func decodeEntry(raw json.RawMessage) (domain.Entry, error) {
	if isNull(raw) {
		return domain.Entry{}, errors.New("null word record")
	}

	var meaning string
	if err := json.Unmarshal(raw, &meaning); err == nil {
		return domain.Entry{Meaning: meaning}, nil
	}

	var rec entryRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Entry{}, fmt.Errorf("unsupported word record: %w", err)
	}

	return domain.Entry{Meaning: rec.Korean, Category: rec.Category}, nil
}

func decodeStats(raw json.RawMessage) (domain.Stats, error) {
	var pair []int
	if err := json.Unmarshal(raw, &pair); err != nil {
		return domain.Stats{}, fmt.Errorf("unsupported stats record: %w", err)
	}
	if len(pair) != 2 {
		return domain.Stats{}, fmt.Errorf("stats record has %d values, want 2", len(pair))
	}
	if pair[0] < 0 || pair[1] < 0 {
		return domain.Stats{}, errors.New("negative stats counter")
	}

	return domain.Stats{Correct: pair[0], Wrong: pair[1]}, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// Save rewrites both documents in full
func (s *Store) Save(words map[string]domain.Entry, stats map[string]domain.Stats) error {
	wordsDoc := make(map[string]entryRecord, len(words))
	for word, e := range words {
		wordsDoc[word] = entryRecord{Korean: e.Meaning, Category: e.Category}
	}

	statsDoc := make(map[string][2]int, len(stats))
	for word, st := range stats {
		statsDoc[word] = [2]int{st.Correct, st.Wrong}
	}

	if err := writeDocument(s.vocabPath, wordsDoc); err != nil {
		s.logger.Error("Failed to save vocabulary", zap.String("path", s.vocabPath), zap.Error(err))
		return fmt.Errorf("save vocabulary: %w", err)
	}
	if err := writeDocument(s.statsPath, statsDoc); err != nil {
		s.logger.Error("Failed to save quiz stats", zap.String("path", s.statsPath), zap.Error(err))
		return fmt.Errorf("save quiz stats: %w", err)
	}

	s.logger.Debug("Documents saved",
		zap.Int("words", len(words)),
		zap.Int("stats", len(stats)),
	)
	return nil
}

// writeDocument encodes v as indented JSON and replaces path with it
func writeDocument(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
