package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func gradeSchema() *Schema {
	return &Schema{
		Name: "test-grade",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"confidence": map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
				"feedback":   map[string]any{"type": "string"},
				"verdict":    map[string]any{"type": "string", "enum": []any{"clear", "vague", "wrong"}},
				"gaps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"confidence", "feedback"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields", `{"confidence":4,"feedback":"solid","verdict":"clear","gaps":[]}`, false},
		{"required only", `{"confidence":0,"feedback":""}`, false},
		{"missing required", `{"confidence":3}`, true},
		{"wrong type", `{"confidence":"three","feedback":"ok"}`, true},
		{"above maximum", `{"confidence":6,"feedback":"ok"}`, true},
		{"not in enum", `{"confidence":2,"feedback":"ok","verdict":"meh"}`, true},
		{"bad array item", `{"confidence":2,"feedback":"ok","gaps":[1]}`, true},
		{"malformed", `{confidence:2}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(gradeSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("error = %T, want *ErrInvalidResponse", err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("Content = %s, want %s", inv.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckReply(t *testing.T) {
	schema := gradeSchema()
	good := json.RawMessage(`{"confidence":3,"feedback":"ok"}`)

	if err := checkReply(Request{Schema: schema}, good, StopEnd); err != nil {
		t.Errorf("valid reply: unexpected error %v", err)
	}

	var maxTok *ErrMaxTokensExceeded
	if err := checkReply(Request{Schema: schema}, good, StopMaxTokens); !errors.As(err, &maxTok) {
		t.Errorf("truncated reply: error = %v, want *ErrMaxTokensExceeded", err)
	}

	if err := checkReply(Request{}, json.RawMessage(`half a sent`), StopMaxTokens); err != nil {
		t.Errorf("unstructured truncated reply: unexpected error %v", err)
	}
}
