package learningpath

import (
	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/words"
)

// DailySession is the day's plan: words to preview, words to quiz, and at
// most one bonus word to deep-learn.
type DailySession struct {
	PreviewWords  []*words.Word
	QuizWords     []*words.Word
	DeepLearnWord *words.Word
}

// Total returns the number of words in the session, bonus included.
func (d DailySession) Total() int {
	n := len(d.PreviewWords) + len(d.QuizWords)
	if d.DeepLearnWord != nil {
		n++
	}
	return n
}

// Empty reports whether the session has nothing to do.
func (d DailySession) Empty() bool {
	return d.Total() == 0
}

// SessionSummary holds the counts of a DailySession.
type SessionSummary struct {
	PreviewCount int
	QuizCount    int
	HasDeepLearn bool
	Total        int
}

// BuildDailySession splits dailyGoal between previews and quizzes.
// Previews take up to half the goal; quizzes get the rest, and quiz slots
// left empty go back to previews. One deep-learn word may be added on top,
// so the session never holds more than dailyGoal+1 words.
func (e *Engine) BuildDailySession(pool []*words.Word, dailyGoal int) DailySession {
	return e.plan(pool, dailyGoal)
}

// DailySessionSummary returns the counts BuildDailySession would produce.
// It counts instead of building the queues; the quiz queue is only ordered
// when every deep-learn candidate is also competing for a quiz slot.
func (e *Engine) DailySessionSummary(pool []*words.Word, dailyGoal int) SessionSummary {
	goal := max(0, dailyGoal)
	ws := live(pool)
	now := e.now()

	unseen := lo.CountBy(ws, func(w *words.Word) bool {
		return stageOf(w) == words.StageUnseen
	})
	ready := lo.CountBy(ws, func(w *words.Word) bool {
		return e.readyForQuiz(w, now)
	})

	quizCount := min(ready, goal-min(unseen, goal/2))
	sum := SessionSummary{
		PreviewCount: min(unseen, goal-quizCount),
		QuizCount:    quizCount,
	}

	var deepReady, deepOther int
	for _, w := range ws {
		if !e.needsDeepLearn(w) {
			continue
		}
		if e.readyForQuiz(w, now) {
			deepReady++
		} else {
			deepOther++
		}
	}
	switch {
	case deepOther > 0:
		sum.HasDeepLearn = true
	case deepReady == 0 || quizCount == ready:
		sum.HasDeepLearn = false
	default:
		quizWords := e.QuizQueue(pool, quizCount)
		sum.HasDeepLearn = lo.ContainsBy(ws, func(w *words.Word) bool {
			return e.needsDeepLearn(w) && !lo.Contains(quizWords, w)
		})
	}

	sum.Total = sum.PreviewCount + sum.QuizCount
	if sum.HasDeepLearn {
		sum.Total++
	}
	return sum
}

func (e *Engine) plan(pool []*words.Word, dailyGoal int) DailySession {
	goal := max(0, dailyGoal)
	unseen := e.previewQueue(pool)

	previewQuota := min(len(unseen), goal/2)
	quizQuota := goal - previewQuota

	quizWords := e.QuizQueue(pool, quizQuota)

	// Unused quiz slots flow back to previews.
	previewQuota = min(len(unseen), previewQuota+quizQuota-len(quizWords))

	var session DailySession
	if previewQuota > 0 {
		session.PreviewWords = unseen[:previewQuota]
	}
	session.QuizWords = quizWords

	for _, w := range e.DeepLearnQueue(pool, len(pool)) {
		if !lo.Contains(quizWords, w) {
			session.DeepLearnWord = w
			break
		}
	}
	return session
}
