package main

import (
	"errors"
	"os"
	"strings"

	"github.com/neurlang/hashwave/internal/cli"
	"github.com/neurlang/hashwave/internal/ui"
	"github.com/neurlang/hashwave/pitch"
	"github.com/neurlang/hashwave/render"
)

func main() {
	args, err := cli.Parse(os.Args, 2)
	if err != nil {
		if !errors.Is(err, cli.ErrHelp) {
			ui.Fail("%v", err)
		}
		ui.Usage("hashwav <hash> <output_file> [note_seconds] [volume]")
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

	o := render.NewOptions()
	o.NoteLength = args.NoteLength
	o.Volume = args.Volume

	if err := write(outputFile, pitches, o); err != nil {
		ui.Fail("Error rendering %s: %v", outputFile, err)
		os.Remove(outputFile)
		os.Exit(1)
	}

	ui.Pitches(pitches)
	ui.Success("Wrote %s", ui.Bold(outputFile))
}

func write(name string, pitches []string, o render.Options) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if strings.HasSuffix(strings.ToLower(name), ".flac") {
		err = render.WriteFlac(f, pitches, o)
	} else {
		err = render.WriteWav(f, pitches, o)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
