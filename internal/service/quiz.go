package service

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"vocabook/internal/domain"

	"go.uber.org/zap"
)

// Rand is the random source of the quiz engine. *rand.Rand from
// math/rand/v2 satisfies it; it is not safe for concurrent use, so share
// one only behind a lock or use DefaultRand.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand returns a Rand backed by the concurrency-safe top-level math/rand/v2 functions
func DefaultRand() Rand {
	return globalRand{}
}

// QuizService generates and grades quiz questions
type QuizService struct {
	vocab  *Vocabulary
	rng    Rand
	logger *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(vocab *Vocabulary, rng Rand, logger *zap.Logger) *QuizService {
	return &QuizService{
		vocab:  vocab,
		rng:    rng,
		logger: logger,
	}
}

// Generate picks a word and builds a question for it
func (s *QuizService) Generate(req domain.QuizRequest) (*domain.Question, error) {
	v := s.vocab
	v.mu.RLock()
	defer v.mu.RUnlock()

	if len(v.words) == 0 {
		return nil, domain.ErrEmptyVocabulary
	}

	candidates := candidatesFor(v.words, req.Category)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("'%s': %w", req.Category, domain.ErrNoMatch)
	}

	pool := candidates
	if req.Focus {
		if weak := focusPool(candidates, v.stats); len(weak) > 0 {
			pool = weak
		}
	}
	key := s.pick(pool)

	word := domain.NewWord(key, v.words[key])
	q := &domain.Question{
		Word:          key,
		Direction:     req.Direction,
		Mode:          req.Mode,
		Prompt:        domain.Prompt(req.Direction, word),
		CorrectAnswer: domain.Answer(req.Direction, word),
	}

	if req.Mode == domain.ModeMultiple {
		q.Choices, q.CorrectIndex = s.buildChoices(key, candidates, req.Direction)
	}

	s.logger.Debug("Quiz question generated",
		zap.String("word", key),
		zap.String("direction", string(req.Direction)),
		zap.String("mode", string(req.Mode)),
		zap.Bool("focus", req.Focus),
	)
	return q, nil
}

func (s *QuizService) pick(keys []string) string {
	return keys[s.rng.IntN(len(keys))]
}

// candidatesFor returns the sorted keys of words in category, or all keys
func candidatesFor(words map[string]domain.Entry, category string) []string {
	keys := sortedKeys(words)
	if category == "" {
		return keys
	}

	filtered := keys[:0]
	for _, key := range keys {
		if words[key].Category == category {
			filtered = append(filtered, key)
		}
	}
	return filtered
}

// focusPool returns the weaker half of the candidates that have been attempted:
// lowest accuracy first, ties broken by most wrong answers. It is empty when
// no candidate has an attempt yet.
func focusPool(candidates []string, stats map[string]domain.Stats) []string {
	type scored struct {
		key      string
		accuracy float64
		wrong    int
	}

	var attempted []scored
	for _, key := range candidates {
		st, ok := stats[key]
		if !ok || st.Total() == 0 {
			continue
		}
		attempted = append(attempted, scored{key: key, accuracy: st.Accuracy(), wrong: st.Wrong})
	}
	if len(attempted) == 0 {
		return nil
	}

	sort.SliceStable(attempted, func(i, j int) bool {
		if attempted[i].accuracy != attempted[j].accuracy {
			return attempted[i].accuracy < attempted[j].accuracy
		}
		return attempted[i].wrong > attempted[j].wrong
	})

	n := max(1, len(attempted)/2)
	pool := make([]string, 0, n)
	for _, sc := range attempted[:n] {
		pool = append(pool, sc.key)
	}
	return pool
}

// buildChoices returns the correct answer plus three distractors in random
// order, and the position of the correct answer. With fewer than three other
// candidates the distractors repeat.
func (s *QuizService) buildChoices(key string, candidates []string, d domain.Direction) ([]string, int) {
	words := s.vocab.words
	distractorCount := domain.ChoiceCount - 1

	others := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != key {
			others = append(others, c)
		}
	}

	var distractors []string
	if len(others) >= distractorCount {
		s.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
		distractors = others[:distractorCount]
	} else {
		pool := others
		if len(pool) == 0 {
			pool = candidates
		}
		distractors = append(distractors, others...)
		for len(distractors) < distractorCount {
			distractors = append(distractors, pool[s.rng.IntN(len(pool))])
		}
	}

	choices := make([]string, 0, domain.ChoiceCount)
	choices = append(choices, domain.Answer(d, domain.NewWord(key, words[key])))
	for _, k := range distractors {
		choices = append(choices, domain.Answer(d, domain.NewWord(k, words[k])))
	}

	correct := 0
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	})

	return choices, correct
}

// Grade checks an answer and records the attempt. When only persisting the
// attempt fails, the result is returned together with an ErrPersistence error.
func (s *QuizService) Grade(sub domain.Submission) (*domain.GradeResult, error) {
	key := domain.NormalizeKey(sub.Word)
	if key == "" {
		return nil, domain.NewValidationError("word", "is required")
	}

	v := s.vocab
	v.mu.Lock()
	defer v.mu.Unlock()

	entry, ok := v.words[key]
	if !ok {
		return nil, fmt.Errorf("'%s': %w", key, domain.ErrNotFound)
	}

	answer := domain.Answer(sub.Direction, domain.NewWord(key, entry))

	var correct bool
	switch sub.Mode {
	case domain.ModeMultiple:
		if sub.CorrectIndex == nil {
			return nil, domain.ErrMissingIndex
		}
		index, err := strconv.Atoi(strings.TrimSpace(sub.Answer))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", sub.Answer, domain.ErrInvalidAnswer)
		}
		correct = index == *sub.CorrectIndex
	default:
		given := strings.TrimSpace(sub.Answer)
		if given == "" {
			return nil, domain.ErrEmptyAnswer
		}
		if sub.Direction == domain.NativeToForeign {
			correct = strings.ToLower(given) == strings.ToLower(answer)
		} else {
			correct = given == answer
		}
	}

	st := v.stats[key].Record(correct)
	v.stats[key] = st

	result := &domain.GradeResult{
		Correct:       correct,
		CorrectAnswer: answer,
		Stats:         st,
	}

	s.logger.Debug("Quiz answer graded",
		zap.String("word", key),
		zap.Bool("correct", correct),
		zap.Int("correct_count", st.Correct),
		zap.Int("wrong_count", st.Wrong),
	)

	if err := v.persist(); err != nil {
		return result, err
	}
	return result, nil
}
