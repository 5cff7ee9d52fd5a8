// Package ui prints the hashwave commands' terminal output.
//
// Output goes to ui.Out (os.Stderr by default) so the commands can be
// piped and tests can capture it.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	Bold    = color.New(color.Bold).SprintFunc()
	Dim     = color.New(color.Faint).SprintFunc()
	Green   = color.New(color.FgGreen).SprintFunc()
	Cyan    = color.New(color.FgCyan).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Red     = color.New(color.FgRed).SprintFunc()
	Magenta = color.New(color.FgMagenta).SprintFunc()

	Out io.Writer = os.Stderr
)

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Green("✔"), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Yellow("○"), msg)
}

// Usage prints a usage line.
func Usage(line string) {
	fmt.Fprintf(Out, "%s %s\n", Bold("Usage:"), line)
}

// Pitches prints a pitch sequence, eight notes per row. Octave 3 is
// dimmed and octave 5 highlighted so the contour reads at a glance.
func Pitches(pitches []string) {
	const perRow = 8
	for i := 0; i < len(pitches); i += perRow {
		end := i + perRow
		if end > len(pitches) {
			end = len(pitches)
		}
		row := make([]string, 0, perRow)
		for _, p := range pitches[i:end] {
			row = append(row, colorPitch(p))
		}
		fmt.Fprintf(Out, "    %s  %s\n", Dim(fmt.Sprintf("%3d", i)), strings.Join(row, " "))
	}
}

func colorPitch(p string) string {
	cell := fmt.Sprintf("%-3s", p)
	switch {
	case strings.HasSuffix(p, "3"):
		return Dim(cell)
	case strings.HasSuffix(p, "5"):
		return Magenta(cell)
	}
	return cell
}
