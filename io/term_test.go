package termio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

func nonTerminal(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWidth_Fallbacks(t *testing.T) {
	f := nonTerminal(t)

	tests := []struct {
		columns string
		want    int
	}{
		{"100", 98},
		{"", DefaultWidth},
		{"abc", DefaultWidth},
		{"2", DefaultWidth},
	}
	for _, tt := range tests {
		t.Run("COLUMNS="+tt.columns, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			if got := Width(f); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsTerminal_File(t *testing.T) {
	if IsTerminal(nonTerminal(t)) {
		t.Error("Expected a regular file not to be a terminal")
	}
	if IsTerminal(nil) {
		t.Error("Expected nil file not to be a terminal")
	}
}

func TestPrintError(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	PrintError(&buf, errors.New("invalid flag received"), "", "Did you mean '--help'?")

	want := "Error: invalid flag received\n  Did you mean '--help'?\n"
	if buf.String() != want {
		t.Errorf("PrintError output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	PrintError(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("Expected no output for nil error, got %q", buf.String())
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Setenv(DebugEnv, "")
	if got := NewLogger(&bytes.Buffer{}, "test").GetLevel(); got != log.WarnLevel {
		t.Errorf("Expected warn level by default, got %v", got)
	}

	t.Setenv(DebugEnv, "1")
	if got := NewLogger(&bytes.Buffer{}, "test").GetLevel(); got != log.DebugLevel {
		t.Errorf("Expected debug level with %s set, got %v", DebugEnv, got)
	}
}
