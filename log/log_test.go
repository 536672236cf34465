package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevels(t *testing.T) {
	buf := capture(t)

	SetLevel(LevelInfo)
	Debug("hidden")
	Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[INFO] shown") {
		t.Errorf("info message missing: %q", buf.String())
	}

	buf.Reset()
	SetLevel(LevelError)
	Info("hidden")
	Error("failed", errors.New("boom"))
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info message logged at error level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[ERROR] failed err=boom") {
		t.Errorf("error message missing: %q", buf.String())
	}
}

func TestKVs(t *testing.T) {
	buf := capture(t)
	Info("loaded", "events", 3, 42, "ignored", "path", "my calendar.ics", "odd")
	got := buf.String()
	if !strings.Contains(got, `loaded events=3 path="my calendar.ics"`) {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "ignored") || strings.Contains(got, "odd") {
		t.Errorf("malformed pairs weren't dropped: %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{"debug": LevelDebug, " INFO ": LevelInfo, "Error": LevelError, "": LevelInfo}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("ParseLevel(verbose) succeeded")
	}
}
