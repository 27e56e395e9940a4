package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultLogger(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestNewTestLoggerCaptures(t *testing.T) {
	tl := NewTestLogger(t)
	tl.Info().Str("team", "platform").Msg("extracted")

	if !tl.Contains(`"team":"platform"`) {
		t.Errorf("expected field in output, got %q", tl.Output())
	}
	if len(tl.Lines()) != 1 {
		t.Errorf("expected 1 line, got %d", len(tl.Lines()))
	}
}

func TestContextRoundTrip(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)

	got := FromContext(ctx)
	if got != tl.Logger {
		t.Error("FromContext should return the logger stored with WithLogger")
	}

	// nil and empty contexts fall back to the default
	if FromContext(context.TODO()) != Default() {
		t.Error("FromContext without a logger should return Default()")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerFromConfigNil(t *testing.T) {
	logger := NewLoggerFromConfig(nil)
	// Must not panic, and should produce a usable logger.
	logger.Debug().Msg("ok")
}
