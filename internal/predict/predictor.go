// Package predict estimates an exam score and readiness from vocabulary
// progress.
package predict

import (
	"math"

	"github.com/samber/lo"

	"github.com/abhisek/lexis/internal/words"
)

// Predictor maps aggregate progress to an estimated score.
type Predictor struct {
	params Params
}

// NewPredictor creates a predictor. Zero fields fall back to DefaultParams.
func NewPredictor(p Params) *Predictor {
	return &Predictor{params: p.normalized()}
}

// Params returns the effective score model.
func (p *Predictor) Params() Params {
	return p.params
}

// CalculateScore estimates the exam score. The result always lies in
// [Floor, Ceiling]. An avgResponseSeconds of zero or less means no timing
// data and earns no speed bonus. totalWords is accepted for symmetry with
// CalculateReadiness and does not affect the score.
func (p *Predictor) CalculateScore(masteredWords, totalWords int, accuracy, avgResponseSeconds float64, deepLearnedCount int) int {
	m := p.params

	wordBonus := math.Min(m.WordBonusCap, float64(max(0, masteredWords))/m.WordsPerPoint)
	accuracyBonus := math.Round((words.Clamp(accuracy, 0, 1) - m.AccuracyPivot) * m.AccuracyScale)

	speedBonus := 0.0
	if avgResponseSeconds > 0 && avgResponseSeconds < m.SpeedCutoffSeconds {
		speedBonus = m.SpeedBonus
	}

	deepBonus := math.Min(m.DeepBonusCap, float64(max(0, deepLearnedCount))/m.DeepWordsPerPoint)

	score := int(math.Round(m.Base + wordBonus + accuracyBonus + speedBonus + deepBonus))
	return words.ClampInt(score, m.Floor, m.Ceiling)
}

// CalculateReadiness blends word coverage with how much of the gap between
// the score floor and targetScore has been closed. The result lies in [0, 1].
func (p *Predictor) CalculateReadiness(masteredWords, totalWords, currentScore, targetScore int) float64 {
	floor := p.params.Floor

	coverage := words.Clamp(float64(max(0, masteredWords))/float64(max(1, totalWords)), 0, 1)
	gap := words.Clamp(float64(currentScore-floor)/float64(max(1, targetScore-floor)), 0, 1)

	return words.Clamp((coverage+gap)/2, 0, 1)
}

// Prediction is a score estimate together with the inputs it came from.
type Prediction struct {
	Score       int
	Readiness   float64
	TargetScore int

	Mastered           int
	DeepLearned        int
	Total              int
	Accuracy           float64
	AvgResponseSeconds float64
}

// FromPool derives mastery, deep-learn and accuracy figures from the pool
// and predicts against targetScore. Accuracy is pooled over all reviews.
func (p *Predictor) FromPool(pool []*words.Word, avgResponseSeconds float64, targetScore int) Prediction {
	live := lo.Filter(pool, func(w *words.Word, _ int) bool { return w != nil })

	mastered := lo.CountBy(live, func(w *words.Word) bool {
		return w.MasteryStatus() == words.StatusMastered
	})
	deep := lo.CountBy(live, func(w *words.Word) bool {
		return w.Stage == words.StageDeepLearned
	})
	reviewed := lo.SumBy(live, func(w *words.Word) int { return w.TimesReviewed })
	correct := lo.SumBy(live, func(w *words.Word) int { return w.TimesCorrect })

	accuracy := 0.0
	if reviewed > 0 {
		accuracy = float64(correct) / float64(reviewed)
	}

	score := p.CalculateScore(mastered, len(live), accuracy, avgResponseSeconds, deep)
	return Prediction{
		Score:              score,
		Readiness:          p.CalculateReadiness(mastered, len(live), score, targetScore),
		TargetScore:        targetScore,
		Mastered:           mastered,
		DeepLearned:        deep,
		Total:              len(live),
		Accuracy:           accuracy,
		AvgResponseSeconds: avgResponseSeconds,
	}
}
