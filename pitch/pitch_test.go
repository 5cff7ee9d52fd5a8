package pitch

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/neurlang/hashwave/nibble"
)

func TestFromHash(t *testing.T) {
	tests := []struct {
		hash string
		want []string
	}{
		{"0x00", []string{"C3", "C3"}},
		{"0xFF", []string{"D5", "D5"}},
		{"0xA1", []string{"F4", "D3"}},
		{"0x7c", []string{"C4", "A4"}},
	}

	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			got, err := FromHash(tt.hash)
			if err != nil {
				t.Fatalf("FromHash(%q) error = %v", tt.hash, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromHash(%q) = %v, want %v", tt.hash, got, tt.want)
			}
		})
	}
}

func TestFromHashInvalid(t *testing.T) {
	for _, hash := range []string{"0x0", "0xqq", ""} {
		if _, err := FromHash(hash); !errors.Is(err, nibble.ErrInvalidFormat) {
			t.Errorf("FromHash(%q) error = %v, want ErrInvalidFormat", hash, err)
		}
	}
}

func TestFromNibblesTotal(t *testing.T) {
	ns := make([]uint8, 16)
	for i := range ns {
		ns[i] = uint8(i)
	}
	got := FromNibbles(ns)
	if !reflect.DeepEqual(got, Palette[:]) {
		t.Errorf("FromNibbles(0..15) = %v, want palette", got)
	}
	if again := FromNibbles(ns); !reflect.DeepEqual(got, again) {
		t.Error("FromNibbles is not deterministic")
	}
}

func TestPaletteAscending(t *testing.T) {
	prev := 0.0
	for i, p := range Palette {
		f, err := Frequency(p)
		if err != nil {
			t.Fatalf("Frequency(%q) error = %v", p, err)
		}
		if f <= prev {
			t.Errorf("palette[%d] = %s (%.2f Hz) not above previous %.2f Hz", i, p, f, prev)
		}
		prev = f
	}
}

func TestMIDINote(t *testing.T) {
	tests := []struct {
		name string
		want uint8
	}{
		{"C3", 48},
		{"A4", 69},
		{"D5", 74},
		{"F#4", 66},
		{"Bb2", 46},
		{"C-1", 0},
	}

	for _, tt := range tests {
		got, err := MIDINote(tt.name)
		if err != nil {
			t.Errorf("MIDINote(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MIDINote(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFrequency(t *testing.T) {
	f, err := Frequency("A4")
	if err != nil || f != 440 {
		t.Errorf("Frequency(A4) = %v, %v", f, err)
	}
	f, _ = Frequency("C4")
	if math.Abs(f-261.6256) > 0.001 {
		t.Errorf("Frequency(C4) = %.4f, want 261.6256", f)
	}
}

func TestUnknownPitch(t *testing.T) {
	for _, name := range []string{"", "H3", "C", "Cx", "C#", "G99"} {
		if _, err := MIDINote(name); !errors.Is(err, ErrUnknownPitch) {
			t.Errorf("MIDINote(%q) error = %v, want ErrUnknownPitch", name, err)
		}
	}
}

func TestNearest(t *testing.T) {
	for _, p := range Palette {
		f, _ := Frequency(p)
		if got := Nearest(f * 1.01); got != p {
			t.Errorf("Nearest(%.1f) = %s, want %s", f*1.01, got, p)
		}
	}
	if got := Nearest(20); got != "C3" {
		t.Errorf("Nearest(20) = %s, want C3", got)
	}
	if got := Nearest(5000); got != "D5" {
		t.Errorf("Nearest(5000) = %s, want D5", got)
	}
}

func TestName(t *testing.T) {
	for _, p := range Palette {
		n, err := MIDINote(p)
		if err != nil {
			t.Fatal(err)
		}
		if got := Name(int(n)); got != p {
			t.Errorf("Name(%d) = %s, want %s", n, got, p)
		}
	}
	if got := Name(66); got != "F#4" {
		t.Errorf("Name(66) = %s, want F#4", got)
	}
	if got := Name(0); got != "C-1" {
		t.Errorf("Name(0) = %s, want C-1", got)
	}
}
