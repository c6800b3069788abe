package words

import (
	"strings"
	"time"
)

// Default spaced-repetition state for a freshly seeded word.
const (
	DefaultEaseFactor   = 2.5
	DefaultIntervalDays = 1

	// MasteryRepetitions is the repetition count at which a word is mastered.
	MasteryRepetitions = 5

	// MaxFeynmanConfidence is the top of the self-explanation rating scale.
	MaxFeynmanConfidence = 5
)

// Word holds the vocabulary entry plus all learning state for it.
// Records are owned by the store; engine packages mutate the fields of
// records they are handed and never create or delete them.
type Word struct {
	ID           string
	Term         string
	Definition   string
	PartOfSpeech string
	Example      string
	Synonyms     []string
	Antonyms     []string
	Mnemonic     string
	Root         string
	RootMeaning  string
	Difficulty   int // 1 (easiest) to 5

	// Learning path.
	Stage             Stage
	FeynmanConfidence int
	UserExplanation   string
	UserExample       string
	DeepLearnedAt     time.Time
	Struggling        bool

	// Spaced repetition.
	Repetitions    int
	EaseFactor     float64
	IntervalDays   int
	LastReviewedAt time.Time
	NextReviewAt   time.Time
	TimesReviewed  int
	TimesCorrect   int
}

// New returns an unseen word with default scheduling state.
func New(id, term, definition string) *Word {
	return &Word{
		ID:           id,
		Term:         term,
		Definition:   definition,
		Difficulty:   1,
		Stage:        StageUnseen,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: DefaultIntervalDays,
	}
}

// MasteryStatus derives new/learning/mastered from the review counters.
func (w *Word) MasteryStatus() MasteryStatus {
	switch {
	case w.Repetitions >= MasteryRepetitions:
		return StatusMastered
	case w.Repetitions > 0 || w.TimesReviewed > 0:
		return StatusLearning
	default:
		return StatusNew
	}
}

// Accuracy returns TimesCorrect / TimesReviewed, or 0 when never reviewed.
func (w *Word) Accuracy() float64 {
	if w.TimesReviewed == 0 {
		return 0.0
	}
	return float64(w.TimesCorrect) / float64(w.TimesReviewed)
}

// Scheduled reports whether the word has a next review date.
func (w *Word) Scheduled() bool {
	return !w.NextReviewAt.IsZero()
}

// IsDue returns true if the word is scheduled and at or past its review date.
func (w *Word) IsDue(now time.Time) bool {
	return w.Scheduled() && !now.Before(w.NextReviewAt)
}

// OverdueDays returns how many days past due the word is. Returns 0 if not
// yet due or never scheduled.
func (w *Word) OverdueDays(now time.Time) float64 {
	if !w.IsDue(now) {
		return 0
	}
	return now.Sub(w.NextReviewAt).Hours() / 24.0
}

// ReviewStatus classifies the word for review calendars. A due word becomes
// overdue once it is late by more than half of its interval.
func (w *Word) ReviewStatus(now time.Time) ReviewStatus {
	if !w.Scheduled() {
		return ReviewUnscheduled
	}
	if !w.IsDue(now) {
		return ReviewNotDue
	}
	interval := w.IntervalDays
	if interval < 1 {
		interval = 1
	}
	graceHours := float64(interval) * 0.5 * 24.0
	threshold := w.NextReviewAt.Add(time.Duration(graceHours * float64(time.Hour)))
	if now.After(threshold) {
		return ReviewOverdue
	}
	return ReviewDue
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due or never scheduled.
func (w *Word) DaysUntilReview(now time.Time) int {
	if !w.Scheduled() || w.IsDue(now) {
		return 0
	}
	return int(w.NextReviewAt.Sub(now).Hours()/24.0) + 1
}

// HasSynonyms reports whether at least one non-blank synonym is recorded.
func (w *Word) HasSynonyms() bool {
	return hasNonBlank(w.Synonyms)
}

// HasAntonyms reports whether at least one non-blank antonym is recorded.
func (w *Word) HasAntonyms() bool {
	return hasNonBlank(w.Antonyms)
}

func hasNonBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
