// Package quiz drives sequential traversal of the question catalog.
// Progression is strictly forward-only: each question receives exactly one
// answer, there is no going back, and the completed answer set is emitted
// exactly once, after the last question.
package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/futurelink/pathfinder/internal/catalog"
)

var (
	// ErrEmptyAnswer is returned when a free-text answer is empty or
	// whitespace-only. The current question does not advance.
	ErrEmptyAnswer = errors.New("answer must not be empty")

	// ErrFinished is returned when Answer is called after the quiz has
	// already completed. A fresh engine is required for a new attempt.
	ErrFinished = errors.New("quiz already completed")
)

// InvalidOptionError is returned when a choice answer is not one of the
// current question's declared option values.
type InvalidOptionError struct {
	QuestionID string
	Value      string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("question %s has no option %q", e.QuestionID, e.Value)
}

// Engine tracks the current question index and the answers collected so far.
type Engine struct {
	questions []catalog.Question
	index     int
	answers   catalog.Answers
	done      bool
}

// New creates an engine over the given questions, positioned at the first.
func New(questions []catalog.Question) *Engine {
	return &Engine{questions: questions}
}

// Current returns the question awaiting an answer. Calling Current after
// completion returns the last question.
func (e *Engine) Current() catalog.Question {
	idx := e.index
	if idx >= len(e.questions) {
		idx = len(e.questions) - 1
	}
	return e.questions[idx]
}

// Index returns the zero-based index of the current question.
func (e *Engine) Index() int {
	return e.index
}

// Total returns the number of questions in the catalog.
func (e *Engine) Total() int {
	return len(e.questions)
}

// Done reports whether the last question has been answered.
func (e *Engine) Done() bool {
	return e.done
}

// Answer records value for the current question and advances. For choice
// questions the value must be a declared option; free-text values are
// trimmed and must be non-empty. When the last question is answered the
// completed answer set is returned with done=true; the engine accepts no
// further answers after that.
func (e *Engine) Answer(value string) (catalog.Answers, bool, error) {
	if e.done {
		return catalog.Answers{}, false, ErrFinished
	}

	q := e.questions[e.index]

	if q.IsChoice() {
		if !q.HasOption(value) {
			return catalog.Answers{}, false, &InvalidOptionError{QuestionID: q.ID, Value: value}
		}
	} else {
		value = strings.TrimSpace(value)
		if value == "" {
			return catalog.Answers{}, false, ErrEmptyAnswer
		}
	}

	if err := e.answers.Set(q.Key, value); err != nil {
		return catalog.Answers{}, false, err
	}

	if e.index < len(e.questions)-1 {
		e.index++
		return catalog.Answers{}, false, nil
	}

	e.done = true
	return e.answers, true, nil
}
