package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestConsoleLogger_WritesMessageAndFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsole(LevelInfo, &buf)

	logger.Debug("hidden")
	logger.Warn("key missing: average.deathsAvgPer10Min", "player", "Muma-11444", "hero", "ana")

	line := buf.String()
	if strings.Contains(line, "hidden") {
		t.Fatalf("expected debug line filtered, got=%q", line)
	}
	if !strings.HasPrefix(line, "WARN key missing: average.deathsAvgPer10Min") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, `"player": "Muma-11444"`) {
		t.Fatalf("expected player field, got=%q", line)
	}
}

func TestJSONLogger_EncodesErrorsAndChildFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSON(LevelDebug, &buf).With("component", "ovrstat")
	logger.ErrorContext(context.Background(), "fetch failed", "error", errors.New("boom"), "status")

	var entry map[string]any
	if err := jsoniter.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "fetch failed" || entry["level"] != "ERROR" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["component"] != "ovrstat" {
		t.Fatalf("expected child field, got=%v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error field, got=%v", entry["error"])
	}
	if _, ok := entry["status"]; !ok {
		t.Fatalf("expected dangling key logged, got=%v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", raw, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	logger.InfoContext(context.Background(), "no panic")
}
