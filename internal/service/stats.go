package service

import (
	"sort"

	"vocabook/internal/domain"

	"go.uber.org/zap"
)

// StatsService builds accuracy reports and keeps the stats map clean
type StatsService struct {
	vocab  *Vocabulary
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(vocab *Vocabulary, logger *zap.Logger) *StatsService {
	return &StatsService{
		vocab:  vocab,
		logger: logger,
	}
}

// Report returns one row per tracked word that still exists, best accuracy first.
// Rows with equal accuracy stay in word order.
func (s *StatsService) Report() []domain.StatsRow {
	v := s.vocab
	v.mu.RLock()
	defer v.mu.RUnlock()

	rows := make([]domain.StatsRow, 0, len(v.stats))
	for _, key := range sortedKeys(v.stats) {
		entry, ok := v.words[key]
		if !ok {
			continue
		}

		st := v.stats[key]
		rows = append(rows, domain.StatsRow{
			Word:     key,
			Meaning:  entry.Meaning,
			Category: entry.Category,
			Correct:  st.Correct,
			Wrong:    st.Wrong,
			Total:    st.Total(),
			Accuracy: domain.RoundAccuracy(st.Accuracy()),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Accuracy > rows[j].Accuracy
	})
	return rows
}

// Summary returns the number of words and of stats records
func (s *StatsService) Summary() domain.Summary {
	v := s.vocab
	v.mu.RLock()
	defer v.mu.RUnlock()

	return domain.Summary{
		WordCount:  len(v.words),
		StatsCount: len(v.stats),
	}
}

// PruneOrphans removes stats records whose word no longer exists and
// returns how many were removed
func (s *StatsService) PruneOrphans() (int, error) {
	s.logger.Info("Starting cleanup of orphaned stats")

	v := s.vocab
	v.mu.Lock()
	defer v.mu.Unlock()

	removed := 0
	for key := range v.stats {
		if _, ok := v.words[key]; !ok {
			delete(v.stats, key)
			removed++
		}
	}

	if removed == 0 {
		s.logger.Info("Cleanup completed, nothing to remove")
		return 0, nil
	}

	if err := v.persist(); err != nil {
		s.logger.Error("Failed to persist stats cleanup", zap.Error(err))
		return removed, err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int("removed", removed))
	return removed, nil
}
