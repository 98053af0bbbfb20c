package logging

import (
	"bytes"
	"strings"
	"testing"
)

func withBufferLogger(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	prev := defaultLogger
	buf := &bytes.Buffer{}
	defaultLogger = &Logger{writer: buf, level: level, enabled: true}
	t.Cleanup(func() { defaultLogger = prev })
	return buf
}

func TestLevelFiltering(t *testing.T) {
	buf := withBufferLogger(t, LevelWarn)

	Debug("debug %d", 1)
	Info("info %d", 2)
	Warn("warn %d", 3)
	Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("low-severity lines leaked through: %q", out)
	}
	if !strings.Contains(out, "WARN: warn 3") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "ERROR: error 4") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestSetEnabled(t *testing.T) {
	buf := withBufferLogger(t, LevelDebug)

	SetEnabled(false)
	Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote: %q", buf.String())
	}
	SetEnabled(true)
	Info("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("re-enabled logger did not write: %q", buf.String())
	}
}

func TestWithError(t *testing.T) {
	buf := withBufferLogger(t, LevelDebug)

	WithError(nil, "load board")
	if buf.Len() != 0 {
		t.Errorf("nil error logged: %q", buf.String())
	}
}

func TestNilDefaultLoggerIsSafe(t *testing.T) {
	prev := defaultLogger
	defaultLogger = nil
	defer func() { defaultLogger = prev }()

	// None of these should panic.
	Debug("x")
	SetEnabled(true)
	SetLevel(LevelError)
	if Path() != "" {
		t.Error("Path should be empty without a logger")
	}
	if err := Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
