package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"NONE", LevelNone},
		{"error", LevelError},
		{"Warning", LevelWarn},
		{"INFO", LevelInfo},
		{" debug ", LevelDebug},
		{"verbose", LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := LevelFromString(tc.in); got != tc.want {
				t.Errorf("LevelFromString(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNamedLoggerFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Enabled: true, Level: LevelWarn, Output: &buf})
	svc := l.Named("services").Named("civil")

	svc.Info("hidden %d", 1)
	svc.Warn("unknown post %s", "TPX")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at WARN level, got %q", out)
	}
	if !strings.Contains(out, "[WARN] [services.civil] unknown post TPX") {
		t.Errorf("expected prefixed warning, got %q", out)
	}
}

func TestDisabledLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Enabled: false, Level: LevelDebug, Output: &buf})
	l.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
	if l.Enabled(LevelError) {
		t.Error("disabled logger reports enabled")
	}
}
