package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := Out, color.NoColor
	Out, color.NoColor = &buf, true
	t.Cleanup(func() { Out, color.NoColor = prevOut, prevNoColor })
	return &buf
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, ...interface{})
		mark string
	}{
		{"info", Info, "→"},
		{"success", Success, "✔"},
		{"fail", Fail, "✘"},
		{"warn", Warn, "○"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.fn("played %d notes", 4)
			got := buf.String()
			if !strings.Contains(got, tt.mark) || !strings.Contains(got, "played 4 notes") {
				t.Errorf("%s() wrote %q", tt.name, got)
			}
		})
	}
}

func TestPitchesRows(t *testing.T) {
	buf := capture(t)
	pitches := []string{"C3", "D3", "E3", "F3", "G3", "A3", "B3", "C4", "D4", "E4"}
	Pitches(pitches)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Pitches() wrote %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "D4") || !strings.Contains(lines[1], "E4") {
		t.Errorf("second row = %q", lines[1])
	}
}
