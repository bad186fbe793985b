package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
		"off":     LevelNone,
		"bogus":   LevelDebug,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Fatalf("LevelFromString(%q)=%v want %v", in, got, want)
		}
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("[PORT] shown %d", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("filtered messages leaked: %s", out)
	}
	if !strings.Contains(out, "[PORT] shown 3") {
		t.Fatalf("warn message missing: %s", out)
	}
}

func TestSetLevelAndWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelNone)
	l.Errorf("nothing")
	if buf.Len() != 0 {
		t.Fatalf("LevelNone wrote %q", buf.String())
	}
	l.SetLevel(LevelDebug)
	if l.Level() != LevelDebug {
		t.Fatalf("level=%v", l.Level())
	}
	l.With("cable").Debugf("hello")
	if !strings.Contains(buf.String(), `"component":"cable"`) {
		t.Fatalf("component field missing: %s", buf.String())
	}
}
