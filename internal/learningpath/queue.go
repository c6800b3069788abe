package learningpath

import (
	"sort"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/spacedrep"
	"github.com/abhisek/lexis/internal/words"
)

// QuizQueue returns up to limit words ready for a quiz: previewed words plus
// quiz-passed or deep-learned words that are due. Struggling words come
// first, then the most overdue; never-scheduled words count as most overdue.
func (e *Engine) QuizQueue(pool []*words.Word, limit int) []*words.Word {
	if limit <= 0 {
		return nil
	}
	now := e.now()
	queue := lo.Filter(live(pool), func(w *words.Word, _ int) bool {
		return e.readyForQuiz(w, now)
	})

	spacedrep.SortByOverdue(queue, now)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Struggling && !queue[j].Struggling
	})

	return capped(queue, limit)
}

// DeepLearnQueue returns up to limit words that need a deep-learn pass,
// lowest Feynman confidence first.
func (e *Engine) DeepLearnQueue(pool []*words.Word, limit int) []*words.Word {
	if limit <= 0 {
		return nil
	}
	queue := lo.Filter(live(pool), func(w *words.Word, _ int) bool {
		return e.needsDeepLearn(w)
	})

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].FeynmanConfidence < queue[j].FeynmanConfidence
	})

	return capped(queue, limit)
}

// previewQueue returns every unseen word, easiest first.
func (e *Engine) previewQueue(pool []*words.Word) []*words.Word {
	queue := lo.Filter(live(pool), func(w *words.Word, _ int) bool {
		return stageOf(w) == words.StageUnseen
	})
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Difficulty < queue[j].Difficulty
	})
	return queue
}

func capped(ws []*words.Word, limit int) []*words.Word {
	if len(ws) > limit {
		return ws[:limit]
	}
	return ws
}
