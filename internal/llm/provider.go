// Package llm wraps the hosted model SDKs behind one structured-output
// interface. Callers describe the JSON they expect with a Schema and get the
// validated JSON back.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one request to a model and returns its structured reply.
type Provider interface {
	// Generate runs req. When req.Schema is set the provider asks the model
	// for JSON matching it and validates the reply before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model this provider is configured to call.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Coaching calls send one user message.
	Messages []Message

	// Schema, when set, selects the provider's native structured output.
	// When nil, Content holds the raw text reply.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema a reply must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "feynman-grade". It doubles as
	// the cache key for the compiled schema.
	Name string

	// Description is sent to the model to guide generation.
	Description string

	Definition map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the model's reply.
type Response struct {
	// Content is the validated JSON object, or the raw text when the
	// request had no Schema.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// checkReply rejects truncated structured replies and validates the rest
// against req.Schema.
func checkReply(req Request, content json.RawMessage, stop string) error {
	if req.Schema == nil {
		return nil
	}
	if stop == StopMaxTokens {
		return &ErrMaxTokensExceeded{Content: content}
	}
	return validateResponse(req.Schema, content)
}

// resolveModel maps a friendly alias to a provider model ID. Unknown names
// pass through as literal IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
