package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) (*OpenAIProvider, *[]map[string]any) {
	t.Helper()
	var bodies []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		bodies = append(bodies, body)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p, &bodies
}

func openaiReply(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func openaiFailure(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "error", "message": http.StatusText(status)},
		})
	}
}

func TestOpenAIProvider_StructuredReply(t *testing.T) {
	p, bodies := newTestOpenAIProvider(t, openaiReply(`{"confidence":2,"feedback":"vague"}`, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You grade vocabulary explanations.",
		Messages:  []Message{{Role: RoleUser, Content: "frugal: cheap"}},
		Schema:    gradeSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 || resp.Usage.TotalTokens != 65 {
		t.Errorf("Usage = %+v", resp.Usage)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("StopReason = %q, want %q", resp.StopReason, StopEnd)
	}

	sent := (*bodies)[0]
	msgs, _ := sent["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	format, _ := sent["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v, want json_schema", format)
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	p, _ := newTestOpenAIProvider(t, openaiReply(`{"confid`, "length"))

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "x"}},
		Schema:   gradeSchema(),
	})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("error = %T (%v), want *ErrMaxTokensExceeded", err, err)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{http.StatusUnauthorized, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p, _ := newTestOpenAIProvider(t, openaiFailure(tt.status))
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			if err == nil || !tt.check(err) {
				t.Fatalf("status %d: error = %T (%v)", tt.status, err, err)
			}
		})
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(ProviderConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}

	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// OpenRouter slugs are never rewritten.
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}
