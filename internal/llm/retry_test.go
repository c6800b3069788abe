package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var (
	okReply     = MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	downReply   = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	badReply    = MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`nope`), Err: errors.New("not json")}}
	cutReply    = MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"confi`)}}
	limitedOnce = MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}
)

func TestRetry_Attempts(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first try", []MockResponse{okReply}, 1, false},
		{"transient then ok", []MockResponse{downReply, okReply}, 2, false},
		{"rate limited then ok", []MockResponse{limitedOnce, okReply}, 2, false},
		{"always down", []MockResponse{downReply, downReply, downReply, okReply}, 3, true},
		{"truncated is final", []MockResponse{cutReply, okReply}, 1, true},
		{"invalid retried once", []MockResponse{badReply, okReply}, 2, false},
		{"invalid twice gives up", []MockResponse{badReply, badReply, okReply}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(resp.Content) != `{"ok":true}` {
				t.Errorf("Content = %s, want {\"ok\":true}", resp.Content)
			}
			if got := mock.CallCount(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRetry_KeepsErrorType(t *testing.T) {
	mock := NewMockProvider(cutReply)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %T, want *ErrMaxTokensExceeded", err)
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(downReply, downReply, okReply)
	cfg := fastRetry()
	cfg.InitialWait = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_ZeroAttemptsMeansOne(t *testing.T) {
	mock := NewMockProvider(downReply, okReply)
	_, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_BackoffHonorsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: time.Second, MaxWait: 4 * time.Second, Multiplier: 2}}

	if got := r.backoff(0, &ErrRateLimit{RetryAfter: 7 * time.Second}); got != 7*time.Second {
		t.Errorf("backoff with RetryAfter = %v, want 7s", got)
	}
	for attempt := 0; attempt < 6; attempt++ {
		got := r.backoff(attempt, errors.New("down"))
		if got > 4*time.Second*12/10 {
			t.Errorf("backoff(%d) = %v, exceeds MaxWait plus jitter", attempt, got)
		}
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != ProviderMock {
		t.Errorf("ModelID() = %q, want %q", p.ModelID(), ProviderMock)
	}
}

func TestTimeoutProvider_SetsDeadline(t *testing.T) {
	var sawDeadline bool
	inner := providerFunc(func(ctx context.Context, _ Request) (*Response, error) {
		_, sawDeadline = ctx.Deadline()
		return &Response{}, nil
	})

	p := &timeoutProvider{inner: inner, timeout: time.Minute}
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawDeadline {
		t.Error("inner provider saw no deadline")
	}
}

type providerFunc func(context.Context, Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
