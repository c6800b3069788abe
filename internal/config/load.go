package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/lexis/internal/learningpath"
	"github.com/abhisek/lexis/internal/llm"
	"github.com/abhisek/lexis/internal/predict"
	"github.com/abhisek/lexis/internal/quiz"
	"github.com/abhisek/lexis/internal/spacedrep"
)

// EnvPrefix prefixes every environment override, e.g. LEXIS_DB_PATH.
const EnvPrefix = "LEXIS"

// Load reads configuration from file and environment variables, then
// validates it. When path is empty, lexis.yaml is looked up in
// $XDG_CONFIG_HOME/lexis and the working directory, and a missing file is
// not an error. Environment variables win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lexis")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "lexis"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// setDefaults registers every key so that environment variables bind even
// when no file mentions them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("session.daily_goal", 20)
	v.SetDefault("session.target_score", 160)

	sp := spacedrep.DefaultParams()
	v.SetDefault("scheduler.min_ease_factor", sp.MinEaseFactor)
	v.SetDefault("scheduler.max_ease_factor", sp.MaxEaseFactor)
	v.SetDefault("scheduler.initial_ease_factor", sp.InitialEaseFactor)
	v.SetDefault("scheduler.correct_bonus", sp.CorrectBonus)
	v.SetDefault("scheduler.lapse_penalty", sp.LapsePenalty)
	v.SetDefault("scheduler.first_interval_days", sp.FirstIntervalDays)

	pp := learningpath.DefaultPolicy()
	v.SetDefault("path.struggling_accuracy", pp.StrugglingAccuracy)
	v.SetDefault("path.struggling_min_reviews", pp.StrugglingMinReviews)
	v.SetDefault("path.deep_learn_confidence", pp.DeepLearnConfidence)
	v.SetDefault("path.unseen_weight", pp.UnseenWeight)
	v.SetDefault("path.previewed_weight", pp.PreviewedWeight)
	v.SetDefault("path.quiz_passed_weight", pp.QuizPassedWeight)
	v.SetDefault("path.deep_learned_weight", pp.DeepLearnedWeight)

	v.SetDefault("quiz.option_count", quiz.DefaultOptionCount)

	pr := predict.DefaultParams()
	v.SetDefault("predictor.base", pr.Base)
	v.SetDefault("predictor.floor", pr.Floor)
	v.SetDefault("predictor.ceiling", pr.Ceiling)
	v.SetDefault("predictor.words_per_point", pr.WordsPerPoint)
	v.SetDefault("predictor.word_bonus_cap", pr.WordBonusCap)
	v.SetDefault("predictor.accuracy_pivot", pr.AccuracyPivot)
	v.SetDefault("predictor.accuracy_scale", pr.AccuracyScale)
	v.SetDefault("predictor.speed_cutoff_seconds", pr.SpeedCutoffSeconds)
	v.SetDefault("predictor.speed_bonus", pr.SpeedBonus)
	v.SetDefault("predictor.deep_words_per_point", pr.DeepWordsPerPoint)
	v.SetDefault("predictor.deep_bonus_cap", pr.DeepBonusCap)

	lc := llm.DefaultConfig()
	v.SetDefault("llm.provider", lc.Provider)
	for name, p := range map[string]llm.ProviderConfig{
		"anthropic":  lc.Anthropic,
		"openai":     lc.OpenAI,
		"gemini":     lc.Gemini,
		"openrouter": lc.OpenRouter,
	} {
		v.SetDefault("llm."+name+".api_key", p.APIKey)
		v.SetDefault("llm."+name+".model", p.Model)
		v.SetDefault("llm."+name+".base_url", p.BaseURL)
	}
	v.SetDefault("llm.retry.max_attempts", lc.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", lc.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", lc.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", lc.Retry.Multiplier)
	v.SetDefault("llm.timeout", lc.Timeout)
}
