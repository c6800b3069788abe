package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexis/internal/words"
)

const maxPromptLen = 500

// StructuralValidator checks that required fields are present, within
// length limits, and consistent with the answer format.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, w *words.Word) *ValidationError {
	if !q.Type.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown question type %q", q.Type),
		}
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
		}
	}
	if len(q.Prompt) > maxPromptLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("prompt exceeds %d characters", maxPromptLen),
		}
	}
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
		}
	}
	if q.Format != q.Type.Format() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("format %q does not match type %q", q.Format, q.Type),
		}
	}
	if q.Format == FormatFreeText && len(q.Options) > 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "free text format must have no options",
		}
	}
	if w != nil && q.WordID != w.ID {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question word %q does not match %q", q.WordID, w.ID),
		}
	}
	return nil
}

// ChoiceValidator checks multiple choice option sets: exactly Size
// non-empty options, no duplicates after normalization, and the answer
// present exactly once.
type ChoiceValidator struct {
	Size int
}

func (v *ChoiceValidator) Name() string { return "choices" }

func (v *ChoiceValidator) Validate(q *Question, _ *words.Word) *ValidationError {
	if q.Format != FormatMultipleChoice {
		return nil
	}
	if len(q.Options) != v.Size {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("multiple choice must have exactly %d options, got %d", v.Size, len(q.Options)),
		}
	}

	answer := Normalize(q.Answer)
	seen := make(map[string]bool, len(q.Options))
	matches := 0
	for i, o := range q.Options {
		key := Normalize(o)
		if key == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is empty", i+1),
			}
		}
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", o),
			}
		}
		seen[key] = true
		if key == answer {
			matches++
		}
	}
	if matches != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %q found %d times in options", q.Answer, matches),
		}
	}
	return nil
}
