// Package midifile writes melodies as Standard MIDI Files and reads them back.
//
// A melody becomes a single track at 120 BPM with 960 ticks per quarter
// note. Notes keep the live player's timing: one every noteLength, held
// for 80% of it.
package midifile

import (
	"errors"
	"io"
	"math"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/neurlang/hashwave/pitch"
)

const (
	Tempo           = 120.0
	TicksPerQuarter = 960
	TrackName       = "hashwave"
)

var ErrNoNotes = errors.New("no notes in midi file")

// Write encodes pitches as a one-track SMF. A zero noteLength means
// 500ms. Velocity is volume scaled to 1..127.
func Write(w io.Writer, pitches []string, noteLength time.Duration, volume float64) error {
	if noteLength <= 0 {
		noteLength = 500 * time.Millisecond
	}
	vel := uint8(math.Max(1, math.Min(127, math.Round(volume*127))))

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(TrackName))
	tr.Add(0, smf.MetaTempo(Tempo))

	var last uint32
	for i, name := range pitches {
		key, err := pitch.MIDINote(name)
		if err != nil {
			return err
		}
		on := ticks(time.Duration(i) * noteLength)
		off := ticks(time.Duration(i)*noteLength + noteLength*4/5)

		tr.Add(on-last, midi.NoteOn(0, key, vel))
		tr.Add(off-on, midi.NoteOff(0, key))
		last = off
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := s.Add(tr); err != nil {
		return err
	}
	_, err := s.WriteTo(w)
	return err
}

// Read returns the note names of every note-on in the file, in order.
func Read(r io.Reader) ([]string, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, tr := range s.Tracks {
		for _, ev := range tr {
			var ch, key, vel uint8
			if midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
				out = append(out, pitch.Name(int(key)))
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrNoNotes
	}
	return out, nil
}

func ticks(d time.Duration) uint32 {
	return uint32(math.Round(d.Seconds() * Tempo / 60 * TicksPerQuarter))
}
