// Package config loads lexis settings from a YAML file and LEXIS_*
// environment variables.
package config

import (
	"time"

	"github.com/abhisek/lexis/internal/learningpath"
	"github.com/abhisek/lexis/internal/llm"
	"github.com/abhisek/lexis/internal/predict"
	"github.com/abhisek/lexis/internal/quiz"
	"github.com/abhisek/lexis/internal/spacedrep"
)

// Config is the full application configuration.
type Config struct {
	DB        DBConfig        `mapstructure:"db"`
	Log       LogConfig       `mapstructure:"log"`
	Session   SessionConfig   `mapstructure:"session"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Path      PathConfig      `mapstructure:"path"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Predictor PredictorConfig `mapstructure:"predictor"`
	LLM       LLMConfig       `mapstructure:"llm"`
}

// DBConfig locates the SQLite file. An empty path selects the XDG default.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn warning error fatal"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

type SessionConfig struct {
	DailyGoal   int `mapstructure:"daily_goal" validate:"min=0,max=500"`
	TargetScore int `mapstructure:"target_score" validate:"min=130,max=170"`
}

type SchedulerConfig struct {
	MinEaseFactor     float64 `mapstructure:"min_ease_factor" validate:"gt=0"`
	MaxEaseFactor     float64 `mapstructure:"max_ease_factor" validate:"gtefield=MinEaseFactor"`
	InitialEaseFactor float64 `mapstructure:"initial_ease_factor" validate:"gtefield=MinEaseFactor"`
	CorrectBonus      float64 `mapstructure:"correct_bonus" validate:"gt=0"`
	LapsePenalty      float64 `mapstructure:"lapse_penalty" validate:"gt=0"`
	FirstIntervalDays int     `mapstructure:"first_interval_days" validate:"min=1"`
}

type PathConfig struct {
	StrugglingAccuracy   float64 `mapstructure:"struggling_accuracy" validate:"gt=0,lte=1"`
	StrugglingMinReviews int     `mapstructure:"struggling_min_reviews" validate:"min=1"`
	DeepLearnConfidence  int     `mapstructure:"deep_learn_confidence" validate:"min=1,max=5"`
	UnseenWeight         float64 `mapstructure:"unseen_weight" validate:"gte=0,lte=1"`
	PreviewedWeight      float64 `mapstructure:"previewed_weight" validate:"gte=0,lte=1"`
	QuizPassedWeight     float64 `mapstructure:"quiz_passed_weight" validate:"gte=0,lte=1"`
	DeepLearnedWeight    float64 `mapstructure:"deep_learned_weight" validate:"gte=0,lte=1"`
}

type QuizConfig struct {
	OptionCount int `mapstructure:"option_count" validate:"min=2,max=8"`
}

type PredictorConfig struct {
	Base               float64 `mapstructure:"base"`
	Floor              int     `mapstructure:"floor" validate:"ltfield=Ceiling"`
	Ceiling            int     `mapstructure:"ceiling"`
	WordsPerPoint      float64 `mapstructure:"words_per_point" validate:"gt=0"`
	WordBonusCap       float64 `mapstructure:"word_bonus_cap" validate:"gte=0"`
	AccuracyPivot      float64 `mapstructure:"accuracy_pivot" validate:"gte=0,lte=1"`
	AccuracyScale      float64 `mapstructure:"accuracy_scale" validate:"gte=0"`
	SpeedCutoffSeconds float64 `mapstructure:"speed_cutoff_seconds" validate:"gte=0"`
	SpeedBonus         float64 `mapstructure:"speed_bonus" validate:"gte=0"`
	DeepWordsPerPoint  float64 `mapstructure:"deep_words_per_point" validate:"gt=0"`
	DeepBonusCap       float64 `mapstructure:"deep_bonus_cap" validate:"gte=0"`
}

type LLMConfig struct {
	Provider   string            `mapstructure:"provider" validate:"required,oneof=anthropic openai gemini openrouter mock"`
	Anthropic  LLMProviderConfig `mapstructure:"anthropic"`
	OpenAI     LLMProviderConfig `mapstructure:"openai"`
	Gemini     LLMProviderConfig `mapstructure:"gemini"`
	OpenRouter LLMProviderConfig `mapstructure:"openrouter"`
	Retry      RetryConfig       `mapstructure:"retry"`
	Timeout    time.Duration     `mapstructure:"timeout" validate:"gte=0"`
}

type LLMProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1,max=10"`
	InitialWait time.Duration `mapstructure:"initial_wait" validate:"gte=0"`
	MaxWait     time.Duration `mapstructure:"max_wait" validate:"gtefield=InitialWait"`
	Multiplier  float64       `mapstructure:"multiplier" validate:"gte=1"`
}

func (c *Config) SpacedRepParams() spacedrep.Params {
	s := c.Scheduler
	return spacedrep.Params{
		MinEaseFactor:     s.MinEaseFactor,
		MaxEaseFactor:     s.MaxEaseFactor,
		InitialEaseFactor: s.InitialEaseFactor,
		CorrectBonus:      s.CorrectBonus,
		LapsePenalty:      s.LapsePenalty,
		FirstIntervalDays: s.FirstIntervalDays,
	}
}

func (c *Config) PathPolicy() learningpath.Policy {
	p := c.Path
	return learningpath.Policy{
		StrugglingAccuracy:   p.StrugglingAccuracy,
		StrugglingMinReviews: p.StrugglingMinReviews,
		DeepLearnConfidence:  p.DeepLearnConfidence,
		UnseenWeight:         p.UnseenWeight,
		PreviewedWeight:      p.PreviewedWeight,
		QuizPassedWeight:     p.QuizPassedWeight,
		DeepLearnedWeight:    p.DeepLearnedWeight,
	}
}

func (c *Config) QuizParams() quiz.Config {
	return quiz.Config{OptionCount: c.Quiz.OptionCount}
}

func (c *Config) PredictorParams() predict.Params {
	p := c.Predictor
	return predict.Params{
		Base:               p.Base,
		Floor:              p.Floor,
		Ceiling:            p.Ceiling,
		WordsPerPoint:      p.WordsPerPoint,
		WordBonusCap:       p.WordBonusCap,
		AccuracyPivot:      p.AccuracyPivot,
		AccuracyScale:      p.AccuracyScale,
		SpeedCutoffSeconds: p.SpeedCutoffSeconds,
		SpeedBonus:         p.SpeedBonus,
		DeepWordsPerPoint:  p.DeepWordsPerPoint,
		DeepBonusCap:       p.DeepBonusCap,
	}
}

func (c *Config) LLMParams() llm.Config {
	l := c.LLM
	provider := func(p LLMProviderConfig) llm.ProviderConfig {
		return llm.ProviderConfig{APIKey: p.APIKey, Model: p.Model, BaseURL: p.BaseURL}
	}
	return llm.Config{
		Provider:   l.Provider,
		Anthropic:  provider(l.Anthropic),
		OpenAI:     provider(l.OpenAI),
		Gemini:     provider(l.Gemini),
		OpenRouter: provider(l.OpenRouter),
		Retry: llm.RetryConfig{
			MaxAttempts: l.Retry.MaxAttempts,
			InitialWait: l.Retry.InitialWait,
			MaxWait:     l.Retry.MaxWait,
			Multiplier:  l.Retry.Multiplier,
		},
		Timeout: l.Timeout,
	}
}
