// Package cli parses the arguments shared by the hashwave commands.
//
// Every command takes its required positional arguments first, then an
// optional note length in seconds and an optional volume in [0, 1]:
//
//	hashplay 0xeF9442f0 0.25 0.8
//
// "--debug <path>" anywhere on the line enables the debug log.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/neurlang/hashwave/internal/debug"
	"github.com/neurlang/hashwave/player"
)

var ErrHelp = errors.New("show help")

// Args represents parsed command-line arguments.
type Args struct {
	Positional []string
	NoteLength time.Duration
	Volume     float64
	DebugPath  string
}

// Parse parses osArgs, which includes the program name, expecting
// required positional arguments.
func Parse(osArgs []string, required int) (*Args, error) {
	return parse(osArgs, required, 2)
}

// ParseNoteLength is Parse for commands that take a note length but no
// volume.
func ParseNoteLength(osArgs []string, required int) (*Args, error) {
	return parse(osArgs, required, 1)
}

func parse(osArgs []string, required, optional int) (*Args, error) {
	args := &Args{
		NoteLength: player.DefaultNoteLength,
		Volume:     player.DefaultVolume,
	}

	var rest []string
	for i := 1; i < len(osArgs); i++ {
		switch arg := osArgs[i]; arg {
		case "-h", "--help":
			return nil, ErrHelp
		case "--debug":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--debug requires a path argument")
			}
			args.DebugPath = osArgs[i+1]
			i++
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) < required {
		return nil, fmt.Errorf("want %d arguments, got %d", required, len(rest))
	}
	args.Positional = rest[:required]
	rest = rest[required:]

	if len(rest) > 0 {
		sec, err := strconv.ParseFloat(rest[0], 64)
		if err != nil || sec <= 0 {
			return nil, fmt.Errorf("note length %q: want seconds > 0", rest[0])
		}
		args.NoteLength = time.Duration(sec * float64(time.Second))
	}
	if len(rest) > optional {
		return nil, fmt.Errorf("unexpected argument %q", rest[optional])
	}
	if len(rest) > 1 {
		vol, err := strconv.ParseFloat(rest[1], 64)
		if err != nil || vol < 0 || vol > 1 {
			return nil, fmt.Errorf("volume %q: want a number in [0, 1]", rest[1])
		}
		args.Volume = vol
	}
	return args, nil
}

// EnableDebug turns on the debug log from --debug or HASHWAVE_DEBUG.
func (a *Args) EnableDebug() error {
	if a.DebugPath != "" {
		return debug.EnableFile(a.DebugPath)
	}
	return debug.EnableEnv()
}
