package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatal("expected logger")
	}
	if NewLogger(Config{Level: "debug", Format: "json", Service: "test", Version: "dev"}) == nil {
		t.Fatal("expected logger")
	}
}

func TestHelpersNilSafe(t *testing.T) {
	// Must not panic on a nil logger.
	Info(nil, "msg")
	Warn(nil, "msg", "key", "value")
	Error(nil, "msg", nil)
}
