package pitch

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/neurlang/hashwave/nibble"
)

// Palette is indexed directly by nibble value.
var Palette = [16]string{
	"C3", "D3", "E3", "F3", "G3", "A3", "B3",
	"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5", "D5",
}

// A4 reference.
const (
	RefNote = 69
	RefFreq = 440.0
)

var ErrUnknownPitch = errors.New("unknown pitch")

// FromNibbles looks every nibble up in the palette.
func FromNibbles(nibbles []uint8) []string {
	out := make([]string, len(nibbles))
	for i, n := range nibbles {
		out[i] = Palette[n&0x0F]
	}
	return out
}

// FromHash decodes hash and maps it to pitches.
func FromHash(hash string) ([]string, error) {
	ns, err := nibble.ProcessHash(hash)
	if err != nil {
		return nil, err
	}
	return FromNibbles(ns), nil
}

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// MIDINote parses a note name into its MIDI key number.
func MIDINote(name string) (uint8, error) {
	n, err := parse(name)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 127 {
		return 0, fmt.Errorf("%w: %q outside MIDI range", ErrUnknownPitch, name)
	}
	return uint8(n), nil
}

// Frequency returns the equal-tempered frequency of a note name in Hz.
func Frequency(name string) (float64, error) {
	n, err := parse(name)
	if err != nil {
		return 0, err
	}
	return KeyFrequency(n), nil
}

// KeyFrequency returns the frequency of MIDI key n.
func KeyFrequency(n int) float64 {
	return RefFreq * math.Pow(2, float64(n-RefNote)/12)
}

// Nearest returns the palette entry closest to freq on a log scale.
func Nearest(freq float64) string {
	if freq <= 0 {
		return Palette[0]
	}
	best, bestDist := Palette[0], math.Inf(1)
	for _, p := range Palette {
		f, _ := Frequency(p)
		d := math.Abs(math.Log2(freq / f))
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func parse(name string) (int, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, name)
	}
	base, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, name)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		base++
		rest = rest[1:]
	case 'b':
		base--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, name)
	}
	return (octave+1)*12 + base, nil
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name returns the note name of MIDI key n, spelled with sharps.
func Name(n int) string {
	octave := n/12 - 1
	if n < 0 && n%12 != 0 {
		octave--
	}
	return sharpNames[((n%12)+12)%12] + strconv.Itoa(octave)
}
