package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/lexis/internal/words"
)

var (
	// ErrUnavailable means the word lacks the data the question type needs.
	ErrUnavailable = errors.New("quiz: question type unavailable for word")

	// ErrNotEnoughDistractors means the pool cannot supply enough distinct
	// wrong options.
	ErrNotEnoughDistractors = errors.New("quiz: not enough distractors in pool")
)

// Validator checks a generated question before it is handed out.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural" or "choices".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question, w *words.Word) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
