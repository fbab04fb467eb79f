package question

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	questionDomain "mattespel/internal/domain/question"
	errs "mattespel/internal/errors"
)

// Bank serves random questions from the static catalog.
type Bank struct {
	rnd *rand.Rand
}

func NewBank(seed int64) *Bank {
	return &Bank{rnd: rand.New(rand.NewSource(seed))}
}

// RandomQuestion picks uniformly from the level pool, filtered by type
// when one is given. An empty filtered set falls back to the whole
// level pool so the caller always gets a usable question; an empty
// level pool is a catalog misconfiguration and surfaces as an error.
func (b *Bank) RandomQuestion(level questionDomain.Level, qType questionDomain.Type) (questionDomain.Question, error) {
	pool := questionDomain.ByLevel(level)
	if len(pool) == 0 {
		return questionDomain.Question{}, fmt.Errorf("%w: no questions for level %q", errs.ErrInvalidInput, level)
	}

	if qType != "" {
		filtered := make([]questionDomain.Question, 0, len(pool))
		for _, q := range pool {
			if q.Type == qType {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}

	return pool[b.rnd.Intn(len(pool))], nil
}

// QuestionByID resolves a catalog id, used when grading a submitted
// answer.
func (b *Bank) QuestionByID(id string) (questionDomain.Question, error) {
	q, ok := questionDomain.ByID(id)
	if !ok {
		return questionDomain.Question{}, fmt.Errorf("%w: unknown question %q", errs.ErrInvalidInput, id)
	}
	return q, nil
}

// Grade compares a free-text answer against the canonical one.
//
// Numeric answers are parsed as floats and compared within the game
// mode's tolerance. Symbolic answers (like "7x") compare
// case-insensitively after trimming, with a numeric fallback so
// equivalent representations such as "7.0" and "7" still match.
func Grade(q questionDomain.Question, raw string, tolerance float64) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	if want, err := strconv.ParseFloat(q.Answer, 64); err == nil {
		got, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return false
		}
		return math.Abs(got-want) < tolerance
	}

	if strings.EqualFold(raw, strings.TrimSpace(q.Answer)) {
		return true
	}

	want, errWant := strconv.ParseFloat(strings.TrimSpace(q.Answer), 64)
	got, errGot := strconv.ParseFloat(raw, 64)
	if errWant != nil || errGot != nil {
		return false
	}
	return math.Abs(got-want) < tolerance
}
