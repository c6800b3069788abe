package learningpath

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/words"
)

// Stats aggregates a word pool by learning-path stage.
type Stats struct {
	Unseen      int
	Previewed   int
	QuizPassed  int
	DeepLearned int

	ReadyForQuiz   int
	NeedsDeepLearn int
	Struggling     int
	Mastered       int
	Total          int

	// LearningPercentage is the stage-weighted progress, 0-100.
	LearningPercentage float64
}

// Count returns the number of words at the given stage.
func (s Stats) Count(stage words.Stage) int {
	switch stage {
	case words.StagePreviewed:
		return s.Previewed
	case words.StageQuizPassed:
		return s.QuizPassed
	case words.StageDeepLearned:
		return s.DeepLearned
	default:
		return s.Unseen
	}
}

// Stats computes aggregate counts for the pool. Nil entries are skipped.
func (e *Engine) Stats(pool []*words.Word) Stats {
	now := e.now()
	var st Stats
	var weighted float64

	for _, w := range live(pool) {
		st.Total++
		stage := stageOf(w)
		switch stage {
		case words.StagePreviewed:
			st.Previewed++
		case words.StageQuizPassed:
			st.QuizPassed++
		case words.StageDeepLearned:
			st.DeepLearned++
		default:
			st.Unseen++
		}
		weighted += e.policy.Weight(stage)

		if e.readyForQuiz(w, now) {
			st.ReadyForQuiz++
		}
		if e.needsDeepLearn(w) {
			st.NeedsDeepLearn++
		}
		if w.Struggling {
			st.Struggling++
		}
		if w.MasteryStatus() == words.StatusMastered {
			st.Mastered++
		}
	}

	if st.Total > 0 {
		st.LearningPercentage = math.Round(weighted/float64(st.Total)*1000) / 10
	}
	return st
}

// RecommendationKind names the next activity a learner should do.
type RecommendationKind string

const (
	RecommendPreview     RecommendationKind = "preview"
	RecommendQuiz        RecommendationKind = "quiz"
	RecommendDeepLearn   RecommendationKind = "deep_learn"
	RecommendAllCaughtUp RecommendationKind = "all_caught_up"
)

// Recommendation is the single next step for the learner. Count and Reason
// are empty for RecommendAllCaughtUp.
type Recommendation struct {
	Kind   RecommendationKind
	Count  int
	Reason string
}

// Recommend returns the next activity for the pool.
func (e *Engine) Recommend(pool []*words.Word) Recommendation {
	return RecommendFromStats(e.Stats(pool))
}

// RecommendFromStats applies the fixed priority
// preview > quiz > deep learn > all caught up.
func RecommendFromStats(st Stats) Recommendation {
	switch {
	case st.Unseen > 0:
		return Recommendation{
			Kind:   RecommendPreview,
			Count:  st.Unseen,
			Reason: fmt.Sprintf("%s waiting to be previewed", plural(st.Unseen, "new word")),
		}
	case st.ReadyForQuiz > 0:
		return Recommendation{
			Kind:   RecommendQuiz,
			Count:  st.ReadyForQuiz,
			Reason: fmt.Sprintf("%s ready for a quiz", plural(st.ReadyForQuiz, "word")),
		}
	case st.NeedsDeepLearn > 0:
		return Recommendation{
			Kind:   RecommendDeepLearn,
			Count:  st.NeedsDeepLearn,
			Reason: fmt.Sprintf("%s could use a deeper explanation", plural(st.NeedsDeepLearn, "word")),
		}
	default:
		return Recommendation{Kind: RecommendAllCaughtUp}
	}
}

func (e *Engine) readyForQuiz(w *words.Word, now time.Time) bool {
	stage := stageOf(w)
	if stage == words.StagePreviewed {
		return true
	}
	return stage.AtLeast(words.StageQuizPassed) && w.IsDue(now)
}

func (e *Engine) needsDeepLearn(w *words.Word) bool {
	if stageOf(w) != words.StageQuizPassed {
		return false
	}
	return w.FeynmanConfidence < e.policy.DeepLearnConfidence || w.Struggling
}

// stageOf treats unknown stages as unseen.
func stageOf(w *words.Word) words.Stage {
	if !w.Stage.Valid() {
		return words.StageUnseen
	}
	return w.Stage
}

func live(pool []*words.Word) []*words.Word {
	return lo.Filter(pool, func(w *words.Word, _ int) bool {
		return w != nil
	})
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
