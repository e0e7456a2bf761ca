// Package quiz drives a single quiz attempt from load to completion.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Question is one multiple-choice question.
type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

var (
	errNoText       = errors.New("question text is empty")
	errFewOptions   = errors.New("question needs at least two options")
	errBadCorrect   = errors.New("correct index out of range")
	errEmptyOptions = errors.New("option text is empty")
)

// Validate checks the structural rules a question must satisfy.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return errNoText
	}
	if len(q.Options) < 2 {
		return errFewOptions
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("option %d: %w", i, errEmptyOptions)
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: %d of %d", errBadCorrect, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Sanitize drops questions that fail Validate.
func Sanitize(qs []Question) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if q.Validate() == nil {
			out = append(out, q)
		}
	}
	return out
}
