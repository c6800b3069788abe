package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantLevel logrus.Level
		wantErr   bool
	}{
		{"defaults", Options{}, logrus.InfoLevel, false},
		{"debug text", Options{Level: "debug", Format: "text"}, logrus.DebugLevel, false},
		{"warn json", Options{Level: "warn", Format: "json"}, logrus.WarnLevel, false},
		{"bad level", Options{Level: "loud"}, 0, true},
		{"bad format", Options{Format: "xml"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%+v) error = %v, wantErr %v", tt.opts, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.WithField("words", 3).Info("deck imported")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "deck imported" || entry["words"] != float64(3) {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q", out)
	}
}
