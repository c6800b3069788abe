package learningpath

import "github.com/abhisek/lexis/internal/words"

// Policy holds the thresholds and weights that drive stage aggregation.
type Policy struct {
	// StrugglingAccuracy is the accuracy below which a word that keeps
	// failing quizzes is flagged as struggling.
	StrugglingAccuracy float64

	// StrugglingMinReviews is the minimum number of reviews before
	// accuracy is trusted enough to flag a word.
	StrugglingMinReviews int

	// DeepLearnConfidence is the Feynman confidence at or above which a
	// quiz-passed word no longer needs a deep-learn pass.
	DeepLearnConfidence int

	// Stage weights for LearningPercentage, each in [0, 1].
	UnseenWeight      float64
	PreviewedWeight   float64
	QuizPassedWeight  float64
	DeepLearnedWeight float64
}

// DefaultPolicy returns the standard policy.
func DefaultPolicy() Policy {
	return Policy{
		StrugglingAccuracy:   0.5,
		StrugglingMinReviews: 3,
		DeepLearnConfidence:  3,
		UnseenWeight:         0,
		PreviewedWeight:      0.33,
		QuizPassedWeight:     0.66,
		DeepLearnedWeight:    1.0,
	}
}

// Weight returns the learning-percentage weight for a stage.
// Unknown stages weigh as unseen.
func (p Policy) Weight(s words.Stage) float64 {
	switch s {
	case words.StagePreviewed:
		return p.PreviewedWeight
	case words.StageQuizPassed:
		return p.QuizPassedWeight
	case words.StageDeepLearned:
		return p.DeepLearnedWeight
	default:
		return p.UnseenWeight
	}
}

func (p Policy) normalized() Policy {
	d := DefaultPolicy()
	if p.StrugglingAccuracy <= 0 || p.StrugglingAccuracy > 1 {
		p.StrugglingAccuracy = d.StrugglingAccuracy
	}
	if p.StrugglingMinReviews < 1 {
		p.StrugglingMinReviews = d.StrugglingMinReviews
	}
	if p.DeepLearnConfidence < 1 || p.DeepLearnConfidence > words.MaxFeynmanConfidence {
		p.DeepLearnConfidence = d.DeepLearnConfidence
	}
	if p.UnseenWeight == 0 && p.PreviewedWeight == 0 && p.QuizPassedWeight == 0 && p.DeepLearnedWeight == 0 {
		p.UnseenWeight = d.UnseenWeight
		p.PreviewedWeight = d.PreviewedWeight
		p.QuizPassedWeight = d.QuizPassedWeight
		p.DeepLearnedWeight = d.DeepLearnedWeight
	}
	p.UnseenWeight = words.Clamp(p.UnseenWeight, 0, 1)
	p.PreviewedWeight = words.Clamp(p.PreviewedWeight, 0, 1)
	p.QuizPassedWeight = words.Clamp(p.QuizPassedWeight, 0, 1)
	p.DeepLearnedWeight = words.Clamp(p.DeepLearnedWeight, 0, 1)
	return p
}
