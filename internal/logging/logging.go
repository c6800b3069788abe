// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options selects level and output format.
type Options struct {
	Level  string
	Format string // "text" or "json"
	Output io.Writer
}

// New builds a logrus logger. Output defaults to stderr.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()

	level := opts.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(lvl)

	switch opts.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	logger.SetOutput(os.Stderr)
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}
	return logger, nil
}
