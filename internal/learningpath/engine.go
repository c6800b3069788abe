// Package learningpath moves words along the preview, quiz and deep-learn
// path and plans what a learner should do next.
package learningpath

import (
	"time"

	"github.com/abhisek/lexis/internal/spacedrep"
	"github.com/abhisek/lexis/internal/words"
)

// Clock returns the current time.
type Clock func() time.Time

// Engine applies learner actions to words and answers aggregate queries
// over a word pool. It keeps no state between calls.
type Engine struct {
	policy Policy
	sched  *spacedrep.Scheduler
	now    Clock
}

// New creates an engine. A nil clock uses time.Now.
func New(policy Policy, params spacedrep.Params, clock Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		policy: policy.normalized(),
		sched:  spacedrep.NewScheduler(params),
		now:    clock,
	}
}

// Policy returns the effective policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Scheduler returns the scheduler the engine delegates recall outcomes to.
func (e *Engine) Scheduler() *spacedrep.Scheduler {
	return e.sched
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// MarkPreviewed moves an unseen word to previewed. It reports whether the
// stage changed.
func (e *Engine) MarkPreviewed(w *words.Word) bool {
	mustWord(w, "MarkPreviewed")
	return advance(w, words.StagePreviewed)
}

// RecordSwipe records a preview-deck swipe: the word counts as previewed
// and the swipe direction is a recall outcome.
func (e *Engine) RecordSwipe(w *words.Word, knewIt bool) spacedrep.Review {
	mustWord(w, "RecordSwipe")
	advance(w, words.StagePreviewed)
	return e.sched.ProcessResponse(w, knewIt, e.now())
}

// RecordQuizAttempt schedules the outcome and, on a pass, promotes a
// previewed word to quiz-passed. A failure never moves the stage back.
func (e *Engine) RecordQuizAttempt(w *words.Word, passed bool) spacedrep.Review {
	mustWord(w, "RecordQuizAttempt")

	// A quiz implies the learner has seen the word.
	advance(w, words.StagePreviewed)

	review := e.sched.ProcessResponse(w, passed, e.now())

	if passed {
		advance(w, words.StageQuizPassed)
		if w.Struggling && w.Accuracy() >= e.policy.StrugglingAccuracy {
			w.Struggling = false
		}
		return review
	}

	if w.TimesReviewed >= e.policy.StrugglingMinReviews && w.Accuracy() < e.policy.StrugglingAccuracy {
		w.Struggling = true
	}
	return review
}

// MarkDeepLearned records a Feynman self-rating and moves the word to
// deep-learned. Confidence is clamped to [0, MaxFeynmanConfidence].
func (e *Engine) MarkDeepLearned(w *words.Word, confidence int) {
	mustWord(w, "MarkDeepLearned")
	advance(w, words.StageDeepLearned)
	w.FeynmanConfidence = words.ClampInt(confidence, 0, words.MaxFeynmanConfidence)
	w.DeepLearnedAt = e.now()
}

// MarkDeepLearnedWithNotes is MarkDeepLearned plus the learner's own
// explanation and example sentence. Empty notes keep what was stored.
func (e *Engine) MarkDeepLearnedWithNotes(w *words.Word, confidence int, explanation, example string) {
	e.MarkDeepLearned(w, confidence)
	if explanation != "" {
		w.UserExplanation = explanation
	}
	if example != "" {
		w.UserExample = example
	}
}

// advance sets w's stage to target if that moves it forward.
func advance(w *words.Word, target words.Stage) bool {
	if w.Stage.Valid() && w.Stage.AtLeast(target) {
		return false
	}
	w.Stage = target
	return true
}

func mustWord(w *words.Word, op string) {
	if w == nil {
		panic("learningpath: " + op + " called with nil word")
	}
}
