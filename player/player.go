package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"

	"github.com/neurlang/hashwave/internal/debug"
	"github.com/neurlang/hashwave/pitch"
	"github.com/neurlang/hashwave/synth"
)

const (
	DefaultNoteLength = 500 * time.Millisecond
	DefaultVolume     = 0.5
	DefaultSampleRate = beep.SampleRate(44100)
)

// ToneGenerator is a single-voice instrument with its own audio clock.
type ToneGenerator interface {
	TriggerAttackRelease(pitch string, duration, start time.Duration, velocity float64) error
	TriggerRelease()
	Now() time.Duration
}

// Opener builds the tone generator for a player.
type Opener func(sr beep.SampleRate, env synth.Envelope) (ToneGenerator, error)

// SpeakerOpener plays through the default audio device.
func SpeakerOpener(sr beep.SampleRate, env synth.Envelope) (ToneGenerator, error) {
	v, err := synth.OpenSpeaker(sr, env)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Melody is what PlayHashMelody scheduled.
type Melody struct {
	Pitches  []string
	Duration time.Duration
}

// Player schedules melodies on a lazily opened tone generator.
type Player struct {
	SampleRate beep.SampleRate
	Envelope   synth.Envelope
	Open       Opener

	cell initCell
}

// NewPlayer creates a new Player with default values.
func NewPlayer() *Player {
	return &Player{
		SampleRate: DefaultSampleRate,
		Envelope:   synth.DefaultEnvelope(),
		Open:       SpeakerOpener,
	}
}

// Initialize opens the tone generator unless it is already open.
func (p *Player) Initialize() error {
	_, err := p.generator()
	return err
}

// Initialized reports whether the tone generator is open.
func (p *Player) Initialized() bool {
	return p.cell.get() != nil
}

// PlayMelody schedules pitches noteLength apart starting now, each
// sounding for 80% of noteLength, and returns the melody duration.
// A zero noteLength means DefaultNoteLength. Pitch names are checked
// before anything is scheduled, so a bad name plays nothing.
func (p *Player) PlayMelody(pitches []string, noteLength time.Duration, volume float64) (time.Duration, error) {
	for i, name := range pitches {
		if _, err := pitch.Frequency(name); err != nil {
			return 0, fmt.Errorf("note %d (%s): %w", i, name, err)
		}
	}

	gen, err := p.generator()
	if err != nil {
		return 0, err
	}
	if noteLength <= 0 {
		noteLength = DefaultNoteLength
	}

	now := gen.Now()
	hold := noteLength * 4 / 5
	for i, name := range pitches {
		start := now + time.Duration(i)*noteLength
		if err := gen.TriggerAttackRelease(name, hold, start, volume); err != nil {
			return 0, fmt.Errorf("note %d (%s): %w", i, name, err)
		}
	}

	total := time.Duration(len(pitches)) * noteLength
	debug.Log("player", "scheduled %d notes at %v, %v total", len(pitches), now, total)
	return total, nil
}

// PlayHashMelody decodes hash and plays it.
func (p *Player) PlayHashMelody(hash string, noteLength time.Duration, volume float64) (Melody, error) {
	pitches, err := pitch.FromHash(hash)
	if err != nil {
		return Melody{}, err
	}
	d, err := p.PlayMelody(pitches, noteLength, volume)
	if err != nil {
		return Melody{}, err
	}
	return Melody{Pitches: pitches, Duration: d}, nil
}

// Stop releases the note currently sounding. Notes scheduled for later
// still play.
func (p *Player) Stop() {
	if gen := p.cell.get(); gen != nil {
		gen.TriggerRelease()
	}
}

var errNoGenerator = errors.New("opener returned no generator")

func (p *Player) generator() (ToneGenerator, error) {
	return p.cell.do(func() (ToneGenerator, error) {
		open := p.Open
		if open == nil {
			open = SpeakerOpener
		}
		sr := p.SampleRate
		if sr == 0 {
			sr = DefaultSampleRate
		}

		env := p.Envelope
		if env == (synth.Envelope{}) {
			env = synth.DefaultEnvelope()
		}

		gen, err := open(sr, env)
		if err == nil && gen == nil {
			err = errNoGenerator
		}
		if err != nil {
			debug.Log("player", "init: %v", err)
			return nil, &InitError{Err: err}
		}
		debug.Log("player", "initialized square voice at %d Hz", sr)
		return gen, nil
	})
}

// initCell runs a constructor once it succeeds. Concurrent callers wait
// for the running attempt; a failed attempt leaves the cell empty.
type initCell struct {
	mu  sync.Mutex
	gen ToneGenerator
}

func (c *initCell) do(fn func() (ToneGenerator, error)) (ToneGenerator, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != nil {
		return c.gen, nil
	}
	gen, err := fn()
	if err != nil {
		return nil, err
	}
	c.gen = gen
	return gen, nil
}

func (c *initCell) get() ToneGenerator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}
