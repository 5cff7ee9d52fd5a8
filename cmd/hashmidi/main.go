package main

import (
	"errors"
	"os"

	"github.com/neurlang/hashwave/internal/cli"
	"github.com/neurlang/hashwave/internal/ui"
	"github.com/neurlang/hashwave/midifile"
	"github.com/neurlang/hashwave/pitch"
)

func main() {
	args, err := cli.Parse(os.Args, 2)
	if err != nil {
		if !errors.Is(err, cli.ErrHelp) {
			ui.Fail("%v", err)
		}
		ui.Usage("hashmidi <hash> <output.mid> [note_seconds] [volume]")
		os.Exit(1)
	}
	if err := args.EnableDebug(); err != nil {
		ui.Warn("debug log: %v", err)
	}

	hash, outputFile := args.Positional[0], args.Positional[1]

	pitches, err := pitch.FromHash(hash)
	if err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}
	err = midifile.Write(f, pitches, args.NoteLength, args.Volume)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		ui.Fail("Error writing %s: %v", outputFile, err)
		os.Remove(outputFile)
		os.Exit(1)
	}

	ui.Pitches(pitches)
	ui.Success("Wrote %s", ui.Bold(outputFile))
}
