package llm

import "context"

type contextKey struct{}

// PurposeFeynmanGrade labels requests that grade a learner's explanation.
const PurposeFeynmanGrade = "feynman-grade"

// WithPurpose labels requests made with ctx for the logging decorator.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, contextKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(contextKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
