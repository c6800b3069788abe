// Package feynman grades a learner's plain-language explanation of a word.
// The resulting confidence feeds the deep-learn stage of the learning path.
package feynman

import (
	"context"
	"strings"

	"github.com/abhisek/lexis/internal/words"
)

// Submission is what the learner wrote for one word.
type Submission struct {
	Explanation string
	Example     string
}

// Empty reports whether the learner wrote nothing at all.
func (s Submission) Empty() bool {
	return strings.TrimSpace(s.Explanation) == "" && strings.TrimSpace(s.Example) == ""
}

// Source names the grader that produced a Grade.
type Source string

const (
	SourceLLM       Source = "llm"
	SourceHeuristic Source = "heuristic"
)

// Grade is a confidence on the 0..5 Feynman scale plus coaching feedback.
type Grade struct {
	Confidence int
	Feedback   string
	Source     Source
}

// Grader rates a submission against the word it explains.
type Grader interface {
	Grade(ctx context.Context, w *words.Word, sub Submission) (Grade, error)
}
