package spacedrep

import (
	"time"

	"github.com/abhisek/lexis/internal/words"
)

// Review is the outcome of processing one recall response.
type Review struct {
	WordID       string
	KnewIt       bool
	Before       words.MasteryStatus
	After        words.MasteryStatus
	EaseFactor   float64
	IntervalDays int
	NextReviewAt time.Time
}

// Transition returns the status change caused by the review, or nil if the
// mastery status did not change.
func (r Review) Transition(term string) *words.StatusTransition {
	if r.Before == r.After {
		return nil
	}
	return &words.StatusTransition{
		WordID: r.WordID,
		Term:   term,
		From:   r.Before,
		To:     r.After,
	}
}

// Mastered reports whether this review pushed the word into mastery.
func (r Review) Mastered() bool {
	return r.After == words.StatusMastered && r.Before != words.StatusMastered
}
