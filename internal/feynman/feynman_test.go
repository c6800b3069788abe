package feynman

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexis/internal/llm"
	"github.com/abhisek/lexis/internal/words"
)

func ephemeral() *words.Word {
	w := words.New("w-eph", "ephemeral", "lasting for a very short time")
	w.PartOfSpeech = "adjective"
	w.Synonyms = []string{"fleeting", "transient"}
	return w
}

func TestHeuristicGrader(t *testing.T) {
	tests := []struct {
		name           string
		sub            Submission
		wantConfidence int
		wantFeedback   string
	}{
		{
			name: "thorough",
			sub: Submission{
				Explanation: "Something ephemeral does not stay around; it is lasting only a short time before it fades away.",
				Example:     "The ephemeral rainbow vanished within minutes.",
			},
			wantConfidence: 5,
			wantFeedback:   "Clear and complete.",
		},
		{
			name: "partial",
			sub: Submission{
				Explanation: "a feeling that goes quickly over time",
				Example:     "Fame is ephemerally sweet.",
			},
			wantConfidence: 3,
		},
		{
			name: "weak",
			sub: Submission{
				Explanation: "it is brief",
				Example:     "The show was short.",
			},
			wantConfidence: 0,
		},
		{
			name:           "empty",
			sub:            Submission{Explanation: "  ", Example: ""},
			wantConfidence: 0,
			wantFeedback:   emptyFeedback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := HeuristicGrader{}.Grade(context.Background(), ephemeral(), tt.sub)
			require.NoError(t, err)
			assert.Equal(t, tt.wantConfidence, g.Confidence)
			assert.Equal(t, SourceHeuristic, g.Source)
			if tt.wantFeedback != "" {
				assert.Equal(t, tt.wantFeedback, g.Feedback)
			}
		})
	}
}

func TestHeuristicGrader_FeedbackNamesGaps(t *testing.T) {
	g, err := HeuristicGrader{}.Grade(context.Background(), ephemeral(), Submission{
		Explanation: "it is brief",
		Example:     "The show was short.",
	})
	require.NoError(t, err)
	assert.Contains(t, g.Feedback, "full sentence")
	assert.Contains(t, g.Feedback, "core meaning")
	assert.Contains(t, g.Feedback, "use ephemeral itself")
}

func TestCoverage(t *testing.T) {
	assert.Equal(t, []string{"lasting", "short", "time"}, keyWords("Lasting for a VERY short time."))
	assert.InDelta(t, 1.0, coverage("", nil), 1e-9)
	assert.InDelta(t, 2.0/3.0, coverage("lasting for a very short time", []string{"lasts", "shortly"}), 1e-9)
}

func TestLLMGrader(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"confidence":4,"feedback":"Nice, but mention how short."}`),
	})
	g := NewLLMGrader(mock, DefaultConfig())

	sub := Submission{Explanation: "it does not last long", Example: "An ephemeral trend."}
	grade, err := g.Grade(context.Background(), ephemeral(), sub)
	require.NoError(t, err)
	assert.Equal(t, Grade{Confidence: 4, Feedback: "Nice, but mention how short.", Source: SourceLLM}, grade)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls()[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "feynman-grade", req.Schema.Name)
	assert.Equal(t, systemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "Word: ephemeral")
	assert.Contains(t, req.Messages[0].Content, "Synonyms: fleeting, transient")
	assert.Contains(t, req.Messages[0].Content, "it does not last long")
}

func TestLLMGrader_ClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"confidence":9,"feedback":"!"}`)})
	grade, err := NewLLMGrader(mock, DefaultConfig()).Grade(context.Background(), ephemeral(), Submission{Explanation: "short-lived"})
	require.NoError(t, err)
	assert.Equal(t, words.MaxFeynmanConfidence, grade.Confidence)
}

func TestLLMGrader_EmptySubmissionSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	grade, err := NewLLMGrader(mock, DefaultConfig()).Grade(context.Background(), ephemeral(), Submission{})
	require.NoError(t, err)
	assert.Equal(t, 0, grade.Confidence)
	assert.Equal(t, 0, mock.CallCount())
}

func TestLLMGrader_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	_, err := NewLLMGrader(mock, DefaultConfig()).Grade(context.Background(), ephemeral(), Submission{Explanation: "x"})
	require.Error(t, err)

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
	assert.Contains(t, err.Error(), `grade "ephemeral"`)
}

func TestLLMGrader_BadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	_, err := NewLLMGrader(mock, DefaultConfig()).Grade(context.Background(), ephemeral(), Submission{Explanation: "x"})
	assert.ErrorContains(t, err, "parse grade")
}

func TestFallback(t *testing.T) {
	var seen error
	f := Fallback{
		Primary:   NewLLMGrader(llm.NewMockProvider(), DefaultConfig()),
		Secondary: HeuristicGrader{},
		OnError:   func(err error) { seen = err },
	}

	grade, err := f.Grade(context.Background(), ephemeral(), Submission{
		Explanation: "it is brief",
		Example:     "An ephemeral glow.",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceHeuristic, grade.Source)
	assert.Equal(t, 1, grade.Confidence)
	assert.Error(t, seen)
}

func TestGraders_PanicOnNilWord(t *testing.T) {
	assert.PanicsWithValue(t, "feynman: Grade called with nil word", func() {
		_, _ = HeuristicGrader{}.Grade(context.Background(), nil, Submission{Explanation: "x"})
	})
	assert.Panics(t, func() {
		_, _ = NewLLMGrader(llm.NewMockProvider(), DefaultConfig()).Grade(context.Background(), nil, Submission{})
	})
}
