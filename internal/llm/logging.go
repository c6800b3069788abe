package llm

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider logs one entry per request with latency, token usage and
// estimated cost.
type LoggingProvider struct {
	inner  Provider
	name   string
	logger logrus.FieldLogger
}

// WithLogging wraps p. A nil logger discards output.
func WithLogging(p Provider, name string, logger logrus.FieldLogger) Provider {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &LoggingProvider{inner: p, name: name, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := logrus.Fields{
		"provider":   l.name,
		"model":      l.inner.ModelID(),
		"purpose":    PurposeFrom(ctx),
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if req.Schema != nil {
		fields["schema"] = req.Schema.Name
	}
	if resp != nil {
		fields["model"] = resp.Model
		fields["input_tokens"] = resp.Usage.InputTokens
		fields["output_tokens"] = resp.Usage.OutputTokens
		if c := LookupCost(resp.Model); c != nil {
			fields["cost_usd"] = c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	entry := l.logger.WithFields(fields)
	if err != nil {
		entry.WithError(err).Warn("llm request failed")
	} else {
		entry.Debug("llm request")
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
