package spacedrep

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/lexis/internal/words"
)

// Scheduler applies the SM-2 variant to word records. It holds only its
// parameters; all learning state lives on the words it is handed.
type Scheduler struct {
	params Params
}

// NewScheduler creates a scheduler with the given parameters. Zero fields
// fall back to DefaultParams.
func NewScheduler(p Params) *Scheduler {
	return &Scheduler{params: p.normalized()}
}

// Params returns the effective scheduling parameters.
func (s *Scheduler) Params() Params {
	return s.params
}

// SelectDue returns up to limit words that are due (NextReviewAt <= now) or
// still new/learning, sorted by most overdue first. Words never scheduled
// count as the most overdue; ties keep pool order.
func (s *Scheduler) SelectDue(pool []*words.Word, now time.Time, limit int) []*words.Word {
	if limit <= 0 {
		return nil
	}

	var due []*words.Word
	for _, w := range pool {
		if w == nil {
			continue
		}
		status := w.MasteryStatus()
		if w.IsDue(now) || status == words.StatusNew || status == words.StatusLearning {
			due = append(due, w)
		}
	}

	SortByOverdue(due, now)

	if len(due) > limit {
		due = due[:limit]
	}
	return due
}

// SortByOverdue orders words most overdue first, in place and stably.
func SortByOverdue(ws []*words.Word, now time.Time) {
	sort.SliceStable(ws, func(i, j int) bool {
		return overdueKey(ws[i], now) > overdueKey(ws[j], now)
	})
}

// overdueKey is the signed lateness in hours; unscheduled words sort first.
func overdueKey(w *words.Word, now time.Time) float64 {
	if !w.Scheduled() {
		return math.Inf(1)
	}
	return now.Sub(w.NextReviewAt).Hours()
}

// ProcessResponse records a yes/no recall outcome on w and reschedules it.
// Out-of-range counters are clamped before use rather than rejected.
func (s *Scheduler) ProcessResponse(w *words.Word, knewIt bool, now time.Time) Review {
	if w == nil {
		panic("spacedrep: ProcessResponse called with nil word")
	}
	p := s.params
	before := w.MasteryStatus()

	s.clamp(w)

	if knewIt {
		base := w.IntervalDays
		if w.Repetitions == 0 {
			base = p.FirstIntervalDays
		}
		w.Repetitions++
		w.EaseFactor = s.boundEase(w.EaseFactor + p.CorrectBonus)
		w.IntervalDays = max(1, int(math.Round(float64(max(1, base))*w.EaseFactor)))
		w.TimesCorrect++
	} else {
		w.Repetitions = 0
		w.EaseFactor = s.boundEase(w.EaseFactor - p.LapsePenalty)
		w.IntervalDays = 1
	}

	w.TimesReviewed++
	w.LastReviewedAt = now
	w.NextReviewAt = now.AddDate(0, 0, w.IntervalDays)

	return Review{
		WordID:       w.ID,
		KnewIt:       knewIt,
		Before:       before,
		After:        w.MasteryStatus(),
		EaseFactor:   w.EaseFactor,
		IntervalDays: w.IntervalDays,
		NextReviewAt: w.NextReviewAt,
	}
}

// clamp repairs counters that drifted outside their valid ranges.
func (s *Scheduler) clamp(w *words.Word) {
	p := s.params
	if w.EaseFactor == 0 {
		w.EaseFactor = p.InitialEaseFactor
	}
	w.EaseFactor = words.Clamp(w.EaseFactor, p.MinEaseFactor, p.MaxEaseFactor)
	if w.IntervalDays < 1 {
		w.IntervalDays = 1
	}
	if w.Repetitions < 0 {
		w.Repetitions = 0
	}
	if w.TimesReviewed < 0 {
		w.TimesReviewed = 0
	}
	if w.TimesCorrect < 0 {
		w.TimesCorrect = 0
	}
	if w.TimesCorrect > w.TimesReviewed {
		w.TimesCorrect = w.TimesReviewed
	}
}

// boundEase rounds ef to two decimals, so repeated bonuses and penalties do
// not accumulate float drift, and clamps it to the configured range.
func (s *Scheduler) boundEase(ef float64) float64 {
	return words.Clamp(math.Round(ef*100)/100, s.params.MinEaseFactor, s.params.MaxEaseFactor)
}
