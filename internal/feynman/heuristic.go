package feynman

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/quiz"
	"github.com/abhisek/lexis/internal/words"
)

// Word counts at which an explanation earns its first and second point.
const (
	briefExplanationWords    = 5
	thoroughExplanationWords = 12
)

// HeuristicGrader scores offline. It awards up to two points for explanation
// length, up to two for covering the definition's key words, and one for an
// example sentence that uses the term.
type HeuristicGrader struct{}

func (HeuristicGrader) Grade(_ context.Context, w *words.Word, sub Submission) (Grade, error) {
	if w == nil {
		panic("feynman: Grade called with nil word")
	}
	if sub.Empty() {
		return Grade{Feedback: emptyFeedback, Source: SourceHeuristic}, nil
	}

	explanation := strings.Fields(quiz.Normalize(sub.Explanation))
	var score int
	var tips []string

	switch n := len(explanation); {
	case n >= thoroughExplanationWords:
		score += 2
	case n >= briefExplanationWords:
		score++
		tips = append(tips, "add a little more detail to your explanation")
	default:
		tips = append(tips, "explain the word in a full sentence or two")
	}

	switch c := coverage(w.Definition, explanation); {
	case c >= 0.5:
		score += 2
	case c >= 0.25:
		score++
		tips = append(tips, "your explanation only touches part of the meaning")
	default:
		tips = append(tips, "your explanation misses the core meaning")
	}

	if usesTerm(sub.Example, w.Term) {
		score++
	} else {
		tips = append(tips, "use "+w.Term+" itself in your example")
	}

	feedback := "Clear and complete."
	if len(tips) > 0 {
		feedback = "Good start: " + strings.Join(tips, "; ") + "."
	}
	return Grade{
		Confidence: words.ClampInt(score, 0, words.MaxFeynmanConfidence),
		Feedback:   feedback,
		Source:     SourceHeuristic,
	}, nil
}

var stopWords = map[string]bool{
	"that": true, "with": true, "this": true, "from": true, "which": true,
	"have": true, "into": true, "being": true, "something": true, "someone": true,
	"very": true, "more": true, "than": true, "about": true, "their": true,
}

// keyWords returns the distinct content words of a definition.
func keyWords(definition string) []string {
	return lo.Uniq(lo.Filter(strings.Fields(quiz.Normalize(definition)), func(t string, _ int) bool {
		return len(t) >= 4 && !stopWords[t]
	}))
}

// coverage is the fraction of the definition's key words that appear in the
// explanation, matched on a shared four-letter prefix so inflections count.
func coverage(definition string, explanation []string) float64 {
	keys := keyWords(definition)
	if len(keys) == 0 {
		return 1
	}
	hit := lo.CountBy(keys, func(k string) bool {
		return lo.SomeBy(explanation, func(e string) bool {
			return len(e) >= 4 && e[:4] == k[:4]
		})
	})
	return float64(hit) / float64(len(keys))
}

func usesTerm(example, term string) bool {
	t := quiz.Normalize(term)
	if t == "" {
		return false
	}
	return lo.SomeBy(strings.Fields(quiz.Normalize(example)), func(tok string) bool {
		return strings.HasPrefix(tok, t)
	})
}

// Fallback grades with Primary and falls back to Secondary when Primary
// fails. The error from Primary is passed to OnError when set.
type Fallback struct {
	Primary   Grader
	Secondary Grader
	OnError   func(error)
}

func (f Fallback) Grade(ctx context.Context, w *words.Word, sub Submission) (Grade, error) {
	g, err := f.Primary.Grade(ctx, w, sub)
	if err == nil {
		return g, nil
	}
	if f.OnError != nil {
		f.OnError(err)
	}
	return f.Secondary.Grade(ctx, w, sub)
}
