package game

import (
	"fmt"

	"mattespel/internal/domain/question"
	errs "mattespel/internal/errors"
)

// Award maps a round score threshold to an achievement id.
type Award struct {
	AchievementID string
	MinScore      int
}

// Mode describes one game mode: how many questions a round has, the
// reward rates per correct answer, the grading tolerance for numeric
// answers and the achievements the final score can unlock.
type Mode struct {
	ID                string
	QuestionType      question.Type
	TotalQuestions    int
	Timed             bool
	XPPerCorrect      int
	CreditsPerCorrect int
	Tolerance         float64
	// ScoreCap bounds the score a client may report for a round. For
	// question-count modes it equals TotalQuestions; the timed quick
	// math mode has no fixed question count, the cap is one answer per
	// second of the 60 second round.
	ScoreCap int
	Awards   []Award
}

var modes = map[string]Mode{
	"quickmath": {
		ID:                "quickmath",
		QuestionType:      question.TypeQuickMath,
		TotalQuestions:    10,
		Timed:             true,
		XPPerCorrect:      15,
		CreditsPerCorrect: 2,
		Tolerance:         0.01,
		ScoreCap:          60,
		Awards: []Award{
			{AchievementID: "speed_demon", MinScore: 10},
		},
	},
	"algebra": {
		ID:                "algebra",
		QuestionType:      question.TypeAlgebra,
		TotalQuestions:    10,
		XPPerCorrect:      20,
		CreditsPerCorrect: 3,
		Tolerance:         0.01,
		ScoreCap:          10,
		Awards: []Award{
			{AchievementID: "algebra_perfect", MinScore: 10},
			{AchievementID: "algebra_master", MinScore: 8},
		},
	},
	"geometry": {
		ID:                "geometry",
		QuestionType:      question.TypeGeometry,
		TotalQuestions:    10,
		XPPerCorrect:      20,
		CreditsPerCorrect: 3,
		Tolerance:         0.5,
		ScoreCap:          10,
		Awards: []Award{
			{AchievementID: "geometry_perfect", MinScore: 10},
			{AchievementID: "geometry_expert", MinScore: 8},
		},
	},
	"calculus": {
		ID:                "calculus",
		QuestionType:      question.TypeCalculus,
		TotalQuestions:    8,
		XPPerCorrect:      30,
		CreditsPerCorrect: 5,
		Tolerance:         0.1,
		ScoreCap:          8,
		Awards: []Award{
			{AchievementID: "calculus_perfect", MinScore: 8},
			{AchievementID: "calculus_genius", MinScore: 6},
		},
	},
}

func ModeByID(id string) (Mode, error) {
	m, ok := modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("%w: unknown game mode %q", errs.ErrInvalidInput, id)
	}
	return m, nil
}

// ClampScore bounds a client-reported round score to what the mode can
// actually produce.
func (m Mode) ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > m.ScoreCap {
		return m.ScoreCap
	}
	return score
}

// UnlockedBy returns the achievement ids the score qualifies for.
func (m Mode) UnlockedBy(score int) []string {
	var ids []string
	for _, a := range m.Awards {
		if score >= a.MinScore {
			ids = append(ids, a.AchievementID)
		}
	}
	return ids
}
