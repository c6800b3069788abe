package quiz

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Score values for AnswerResult.
const (
	ScoreCorrect   = 100
	ScoreIncorrect = 0
)

// Fuzzy matching tolerances for free text answers.
const (
	minTypoRunes         = 4
	shortAnswerRunes     = 5
	shortAnswerMaxEdits  = 1
	longAnswerMaxEdits   = 2
	minSubstringCoverage = 0.6
)

// MatchKind records how an answer was accepted or rejected.
type MatchKind string

const (
	MatchExact     MatchKind = "exact"
	MatchTypo      MatchKind = "typo"
	MatchSubstring MatchKind = "substring"
	MatchNone      MatchKind = "none"
)

// AnswerResult is the outcome of checking one answer.
type AnswerResult struct {
	IsCorrect bool
	Score     int
	Feedback  string
	Match     MatchKind
}

// ValidateTextAnswer compares typed input against the correct answer.
// Both are normalized first. Free text questions also accept near misses:
// a small edit distance, or a substring covering most of the answer.
// Multiple choice types only accept an exact normalized match.
func ValidateTextAnswer(userInput, correctAnswer string, t QuestionType) AnswerResult {
	input := Normalize(userInput)
	answer := Normalize(correctAnswer)

	if input == "" {
		return AnswerResult{
			Score:    ScoreIncorrect,
			Feedback: fmt.Sprintf("No answer given. The answer is %q.", correctAnswer),
			Match:    MatchNone,
		}
	}
	if input == answer {
		return AnswerResult{IsCorrect: true, Score: ScoreCorrect, Feedback: "Correct!", Match: MatchExact}
	}

	if t.Format() == FormatFreeText && answer != "" {
		if levenshtein.Distance(input, answer, nil) <= maxEdits(answer) {
			return AnswerResult{
				IsCorrect: true,
				Score:     ScoreCorrect,
				Feedback:  fmt.Sprintf("Correct! Watch the spelling: %q.", correctAnswer),
				Match:     MatchTypo,
			}
		}
		if substringMatch(input, answer) {
			return AnswerResult{
				IsCorrect: true,
				Score:     ScoreCorrect,
				Feedback:  fmt.Sprintf("Close enough! The full answer is %q.", correctAnswer),
				Match:     MatchSubstring,
			}
		}
	}

	return AnswerResult{
		Score:    ScoreIncorrect,
		Feedback: fmt.Sprintf("Not quite. The answer is %q.", correctAnswer),
		Match:    MatchNone,
	}
}

// CheckChoice checks a selection against q. For multiple choice the
// selection may be the option text or its 1-based index. Free text
// questions are checked with ValidateTextAnswer.
func CheckChoice(q *Question, selected string) AnswerResult {
	if q.Format != FormatMultipleChoice {
		return ValidateTextAnswer(selected, q.Answer, q.Type)
	}

	selected = strings.TrimSpace(selected)
	if idx, err := strconv.Atoi(selected); err == nil && idx >= 1 && idx <= len(q.Options) {
		selected = q.Options[idx-1]
	}
	return ValidateTextAnswer(selected, q.Answer, q.Type)
}

// maxEdits is 0 below minTypoRunes: one edit turns most three-letter
// words into other words.
func maxEdits(answer string) int {
	n := utf8.RuneCountInString(answer)
	if n < minTypoRunes {
		return 0
	}
	if n <= shortAnswerRunes {
		return shortAnswerMaxEdits
	}
	return longAnswerMaxEdits
}

// substringMatch accepts a partial answer: input must be shorter than the
// answer and cover most of it. A longer input is a different word.
func substringMatch(input, answer string) bool {
	in, full := utf8.RuneCountInString(input), utf8.RuneCountInString(answer)
	if in >= full || !strings.Contains(answer, input) {
		return false
	}
	return float64(in)/float64(full) >= minSubstringCoverage
}
