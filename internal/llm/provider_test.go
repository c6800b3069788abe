package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	first, err := mock.Generate(context.Background(), Request{System: "coach"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"n":1}` || first.Usage.TotalTokens != 15 {
		t.Errorf("first = %s %+v, want {\"n\":1} with 15 tokens", first.Content, first.Usage)
	}
	if first.StopReason != StopEnd {
		t.Errorf("StopReason = %q, want %q", first.StopReason, StopEnd)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"n":2}` {
		t.Errorf("second = %s, want {\"n\":2}", second.Content)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("empty queue error = %T, want *ErrProviderUnavailable", err)
	}

	calls := mock.Calls()
	if len(calls) != 3 || calls[0].System != "coach" {
		t.Errorf("Calls() = %+v, want 3 calls starting with system \"coach\"", calls)
	}
}

func TestMockProvider_QueueAndError(t *testing.T) {
	mock := NewMockProvider()
	mock.Queue(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %T, want *ErrRateLimit", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Errorf("PurposeFrom(empty) = %q, want unknown", p)
	}
	ctx = WithPurpose(ctx, PurposeFeynmanGrade)
	if p := PurposeFrom(ctx); p != PurposeFeynmanGrade {
		t.Errorf("PurposeFrom = %q, want %q", p, PurposeFeynmanGrade)
	}
}

func TestLoggingProvider(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, "mock", logger)
	ctx := WithPurpose(context.Background(), PurposeFeynmanGrade)

	if _, err := p.Generate(ctx, Request{Schema: gradeSchema()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}

	var ok, failed map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ok); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &failed); err != nil {
		t.Fatal(err)
	}

	if ok["purpose"] != PurposeFeynmanGrade || ok["schema"] != "test-grade" || ok["input_tokens"] != float64(12) {
		t.Errorf("success entry = %v", ok)
	}
	if ok["level"] != "debug" {
		t.Errorf("success level = %v, want debug", ok["level"])
	}
	if failed["level"] != "warning" || failed["error"] == nil {
		t.Errorf("failure entry = %v, want warning with error", failed)
	}
}

func TestLoggingProvider_NilLogger(t *testing.T) {
	p := WithLogging(NewMockProvider(okReply), "mock", nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("LookupCost(gpt-4o-mini) = nil")
	}
	if got := c.Cost(1_000_000, 1_000_000); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Cost = %v, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("LookupCost(unknown) should be nil")
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != ProviderMock {
		t.Errorf("ModelID() = %q, want mock", p.ModelID())
	}

	if _, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-test"
	p, err = NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-001" {
		t.Errorf("ModelID() = %q, want passthrough slug", p.ModelID())
	}
	if _, ok := p.(*timeoutProvider); !ok {
		t.Errorf("provider = %T, want timeout wrapper", p)
	}
}
