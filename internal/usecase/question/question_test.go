package question

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	questionDomain "mattespel/internal/domain/question"
	errs "mattespel/internal/errors"
)

func mustQuestion(t *testing.T, id string) questionDomain.Question {
	t.Helper()
	q, ok := questionDomain.ByID(id)
	require.True(t, ok, "catalog id %s", id)
	return q
}

func TestGradeNumeric(t *testing.T) {
	quick := mustQuestion(t, "a_08") // answer 43
	geom := mustQuestion(t, "b_06")  // answer 79

	cases := []struct {
		name      string
		q         questionDomain.Question
		raw       string
		tolerance float64
		correct   bool
	}{
		{"exact", quick, "43", 0.01, true},
		{"trimmed", quick, "  43 ", 0.01, true},
		{"decimal form", quick, "43.0", 0.01, true},
		{"within tolerance", quick, "43.005", 0.01, true},
		{"outside tolerance", quick, "43.02", 0.01, false},
		{"wrong", quick, "44", 0.01, false},
		{"wide tolerance accepts", geom, "79.4", 0.5, true},
		{"wide tolerance rejects", geom, "79.6", 0.5, false},
		{"unparsable", quick, "fyrtiotre", 0.01, false},
		{"empty", quick, "", 0.01, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.correct, Grade(c.q, c.raw, c.tolerance))
		})
	}
}

func TestGradeSymbolic(t *testing.T) {
	q := mustQuestion(t, "a_03") // answer 7x

	assert.True(t, Grade(q, "7x", 0.01))
	assert.True(t, Grade(q, "7X", 0.01))
	assert.True(t, Grade(q, " 7x ", 0.01))
	assert.False(t, Grade(q, "7", 0.01))
	assert.False(t, Grade(q, "x7", 0.01))
}

func TestGradeNegative(t *testing.T) {
	q := mustQuestion(t, "c_03") // answer -2

	assert.True(t, Grade(q, "-2", 0.01))
	assert.True(t, Grade(q, "-2.005", 0.01))
	assert.False(t, Grade(q, "2", 0.01))
}

func TestRandomQuestionByLevel(t *testing.T) {
	bank := NewBank(1)

	for i := 0; i < 20; i++ {
		q, err := bank.RandomQuestion(questionDomain.LevelB, "")
		require.NoError(t, err)
		assert.Equal(t, questionDomain.LevelB, q.Level)
	}
}

func TestRandomQuestionTypeFilter(t *testing.T) {
	bank := NewBank(2)

	for i := 0; i < 20; i++ {
		q, err := bank.RandomQuestion(questionDomain.LevelA, questionDomain.TypeGeometry)
		require.NoError(t, err)
		assert.Equal(t, questionDomain.TypeGeometry, q.Type)
	}
}

func TestRandomQuestionFallbackOnEmptyFilter(t *testing.T) {
	bank := NewBank(3)

	// Level A has no calculus questions, the level pool is used instead.
	q, err := bank.RandomQuestion(questionDomain.LevelA, questionDomain.TypeCalculus)
	require.NoError(t, err)
	assert.Equal(t, questionDomain.LevelA, q.Level)
}

func TestRandomQuestionUnknownLevel(t *testing.T) {
	bank := NewBank(4)

	_, err := bank.RandomQuestion(questionDomain.Level("D"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestQuestionByID(t *testing.T) {
	bank := NewBank(5)

	q, err := bank.QuestionByID("u_01")
	require.NoError(t, err)
	assert.Equal(t, questionDomain.TypeCalculus, q.Type)

	_, err = bank.QuestionByID("missing")
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}
