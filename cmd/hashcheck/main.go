package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/neurlang/hashwave/analysis"
	"github.com/neurlang/hashwave/internal/cli"
	"github.com/neurlang/hashwave/internal/ui"
	"github.com/neurlang/hashwave/midifile"
	"github.com/neurlang/hashwave/pitch"
)

func main() {
	args, err := cli.ParseNoteLength(os.Args, 2)
	if err != nil {
		if !errors.Is(err, cli.ErrHelp) {
			ui.Fail("%v", err)
		}
		ui.Usage("hashcheck <file.wav|file.flac|file.mid> <hash> [note_seconds]")
		os.Exit(1)
	}
	if err := args.EnableDebug(); err != nil {
		ui.Warn("debug log: %v", err)
	}

	inputFile, hash := args.Positional[0], args.Positional[1]

	want, err := pitch.FromHash(hash)
	if err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}

	var got []string
	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".mid", ".midi":
		got, err = readMidi(inputFile)
	case ".flac":
		got, err = transcribe(inputFile, analysis.LoadFlac, args)
	default:
		got, err = transcribe(inputFile, analysis.LoadWav, args)
	}
	if err != nil {
		ui.Fail("Error reading %s: %v", inputFile, err)
		os.Exit(1)
	}

	ui.Pitches(got)
	if mismatch := diff(got, want); mismatch != "" {
		ui.Fail("%s does not match %s: %s", inputFile, hash, mismatch)
		os.Exit(1)
	}
	ui.Success("%s matches %s", ui.Bold(inputFile), hash)
}

func readMidi(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return midifile.Read(f)
}

type loader func(string) ([]float64, int, error)

func transcribe(name string, load loader, args *cli.Args) ([]string, error) {
	vec, sr, err := load(name)
	if err != nil {
		return nil, err
	}

	spec := analysis.Spectrogram(vec, sr/20, 2048)
	var sb strings.Builder
	for _, b := range analysis.Fingerprint(spec) {
		fmt.Fprintf(&sb, "%04x", b)
	}
	ui.Info("Fingerprint %s", ui.Dim(sb.String()))

	return analysis.Transcribe(vec, sr, args.NoteLength), nil
}

func diff(got, want []string) string {
	if len(got) != len(want) {
		return fmt.Sprintf("%d notes, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Sprintf("note %d is %s, want %s", i, got[i], want[i])
		}
	}
	return ""
}
