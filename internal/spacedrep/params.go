package spacedrep

import "github.com/abhisek/lexis/internal/words"

// Params holds the tunable constants of the SM-2 variant.
type Params struct {
	// MinEaseFactor is the floor every ease factor is clamped to.
	MinEaseFactor float64
	// MaxEaseFactor caps growth from repeated correct answers.
	MaxEaseFactor float64
	// InitialEaseFactor is used when a word carries no ease yet.
	InitialEaseFactor float64
	// CorrectBonus is added to the ease factor on a correct recall.
	CorrectBonus float64
	// LapsePenalty is subtracted from the ease factor on a failed recall.
	LapsePenalty float64
	// FirstIntervalDays is the interval multiplied by ease on the first
	// correct answer after a reset.
	FirstIntervalDays int
}

// DefaultParams returns the standard scheduling constants.
func DefaultParams() Params {
	return Params{
		MinEaseFactor:     1.3,
		MaxEaseFactor:     3.0,
		InitialEaseFactor: words.DefaultEaseFactor,
		CorrectBonus:      0.1,
		LapsePenalty:      0.2,
		FirstIntervalDays: 1,
	}
}

// normalized fills zero fields with defaults and repairs inverted bounds.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.MinEaseFactor <= 0 {
		p.MinEaseFactor = d.MinEaseFactor
	}
	if p.MaxEaseFactor < p.MinEaseFactor {
		p.MaxEaseFactor = d.MaxEaseFactor
		if p.MaxEaseFactor < p.MinEaseFactor {
			p.MaxEaseFactor = p.MinEaseFactor
		}
	}
	if p.InitialEaseFactor <= 0 {
		p.InitialEaseFactor = d.InitialEaseFactor
	}
	if p.CorrectBonus <= 0 {
		p.CorrectBonus = d.CorrectBonus
	}
	if p.LapsePenalty <= 0 {
		p.LapsePenalty = d.LapsePenalty
	}
	if p.FirstIntervalDays < 1 {
		p.FirstIntervalDays = d.FirstIntervalDays
	}
	return p
}
