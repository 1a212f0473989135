package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" error ": LevelError,
		"none":    LevelNone,
		"off":     LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at INFO: %q", out)
	}
	if !strings.Contains(out, "INFO: shown 2") || !strings.Contains(out, "ERROR: shown 3") {
		t.Fatalf("missing lines: %q", out)
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Errorf("nope")
	if buf.Len() != 0 {
		t.Fatalf("LevelNone wrote %q", buf.String())
	}
}

func TestNewFileWritesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gredit.log")
	l := NewFile(path, 1, LevelDebug)
	l.Debugf("vertex %d", 7)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "DEBUG: vertex 7") {
		t.Fatalf("log file content = %q", data)
	}
}
