package main

import (
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/neurlang/hashwave/internal/cli"
	"github.com/neurlang/hashwave/internal/ui"
	"github.com/neurlang/hashwave/player"
)

func main() {
	args, err := cli.Parse(os.Args, 1)
	if err != nil {
		if !errors.Is(err, cli.ErrHelp) {
			ui.Fail("%v", err)
		}
		ui.Usage("hashplay <hash> [note_seconds] [volume]")
		os.Exit(1)
	}
	if err := args.EnableDebug(); err != nil {
		ui.Warn("debug log: %v", err)
	}

	var hash = args.Positional[0]

	p := player.NewPlayer()
	m, err := p.PlayHashMelody(hash, args.NoteLength, args.Volume)
	if err != nil {
		ui.Fail("Error playing hash melody: %v", err)
		os.Exit(1)
	}

	ui.Info("Playing %s (%d notes, %v)", ui.Bold(hash), len(m.Pitches), m.Duration)
	ui.Pitches(m.Pitches)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	select {
	case <-time.After(m.Duration + p.Envelope.Release):
		ui.Success("Done")
	case <-sig:
		p.Stop()
		ui.Warn("Stopped")
	}
}
