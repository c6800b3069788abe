package predict

// Params holds the score model constants.
type Params struct {
	Base    float64
	Floor   int
	Ceiling int

	// WordsPerPoint mastered words earn one point, up to WordBonusCap.
	WordsPerPoint float64
	WordBonusCap  float64

	// AccuracyPivot is the accuracy that earns no bonus; each unit above
	// or below moves the score by AccuracyScale.
	AccuracyPivot float64
	AccuracyScale float64

	// Answers faster than SpeedCutoffSeconds on average earn SpeedBonus.
	SpeedCutoffSeconds float64
	SpeedBonus         float64

	// DeepWordsPerPoint deep-learned words earn one point, up to DeepBonusCap.
	DeepWordsPerPoint float64
	DeepBonusCap      float64
}

// DefaultParams returns the standard score model.
func DefaultParams() Params {
	return Params{
		Base:               145,
		Floor:              130,
		Ceiling:            170,
		WordsPerPoint:      33,
		WordBonusCap:       15,
		AccuracyPivot:      0.7,
		AccuracyScale:      25,
		SpeedCutoffSeconds: 5.0,
		SpeedBonus:         3,
		DeepWordsPerPoint:  25,
		DeepBonusCap:       2,
	}
}

func (p Params) normalized() Params {
	d := DefaultParams()
	if p.Base == 0 {
		p.Base = d.Base
	}
	if p.Floor == 0 && p.Ceiling == 0 {
		p.Floor, p.Ceiling = d.Floor, d.Ceiling
	}
	if p.Ceiling < p.Floor {
		p.Floor, p.Ceiling = p.Ceiling, p.Floor
	}
	if p.WordsPerPoint <= 0 {
		p.WordsPerPoint = d.WordsPerPoint
	}
	if p.WordBonusCap == 0 {
		p.WordBonusCap = d.WordBonusCap
	}
	if p.AccuracyPivot == 0 {
		p.AccuracyPivot = d.AccuracyPivot
	}
	if p.AccuracyScale == 0 {
		p.AccuracyScale = d.AccuracyScale
	}
	if p.SpeedCutoffSeconds == 0 {
		p.SpeedCutoffSeconds = d.SpeedCutoffSeconds
	}
	if p.SpeedBonus == 0 {
		p.SpeedBonus = d.SpeedBonus
	}
	if p.DeepWordsPerPoint <= 0 {
		p.DeepWordsPerPoint = d.DeepWordsPerPoint
	}
	if p.DeepBonusCap == 0 {
		p.DeepBonusCap = d.DeepBonusCap
	}
	return p
}
