package feynman

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lexis/internal/llm"
	"github.com/abhisek/lexis/internal/words"
)

// Config holds LLM grading settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// LLMGrader asks a model to rate the submission.
type LLMGrader struct {
	provider llm.Provider
	cfg      Config
}

func NewLLMGrader(provider llm.Provider, cfg Config) *LLMGrader {
	return &LLMGrader{provider: provider, cfg: cfg}
}

type gradeOutput struct {
	Confidence int    `json:"confidence"`
	Feedback   string `json:"feedback"`
}

func (g *LLMGrader) Grade(ctx context.Context, w *words.Word, sub Submission) (Grade, error) {
	if w == nil {
		panic("feynman: Grade called with nil word")
	}
	if sub.Empty() {
		return Grade{Feedback: emptyFeedback, Source: SourceLLM}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeFeynmanGrade)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(w, sub)}},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return Grade{}, fmt.Errorf("grade %q: %w", w.Term, err)
	}

	var out gradeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Grade{}, fmt.Errorf("parse grade for %q: %w", w.Term, err)
	}

	return Grade{
		Confidence: words.ClampInt(out.Confidence, 0, words.MaxFeynmanConfidence),
		Feedback:   out.Feedback,
		Source:     SourceLLM,
	}, nil
}

const emptyFeedback = "Try explaining the word as if to a friend, then use it in a sentence."
