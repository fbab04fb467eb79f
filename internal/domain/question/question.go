package question

import (
	"fmt"

	errs "mattespel/internal/errors"
)

// Level is a curriculum difficulty tier (Matematik 5000 A-C plus
// university level).
type Level string

const (
	LevelA          Level = "A"
	LevelB          Level = "B"
	LevelC          Level = "C"
	LevelUniversity Level = "University"
)

var Levels = []Level{LevelA, LevelB, LevelC, LevelUniversity}

// Type is the topic bucket a question belongs to.
type Type string

const (
	TypeQuickMath  Type = "quickmath"
	TypeAlgebra    Type = "algebra"
	TypeGeometry   Type = "geometry"
	TypeCalculus   Type = "calculus"
	TypeStatistics Type = "statistics"
)

var Types = []Type{TypeQuickMath, TypeAlgebra, TypeGeometry, TypeCalculus, TypeStatistics}

// Question is an immutable catalog entry. The canonical answer is kept
// server-side and never serialized into API responses.
type Question struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	QuestionEn string `json:"questionEn"`
	Answer     string `json:"-"`
	Type       Type   `json:"type"`
	Level      Level  `json:"level"`
	Hint       string `json:"hint,omitempty"`
	HintEn     string `json:"hintEn,omitempty"`
}

func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown level %q", errs.ErrInvalidInput, s)
}

func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown question type %q", errs.ErrInvalidInput, s)
}
