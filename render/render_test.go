package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neurlang/hashwave/pitch"
)

func TestMelodyLength(t *testing.T) {
	o := NewOptions()
	o.SampleRate = 8000
	o.NoteLength = 250 * time.Millisecond

	_, n, err := Melody([]string{"C3", "E3", "G3", "C4"}, o)
	if err != nil {
		t.Fatal(err)
	}
	want := o.SampleRate.N(time.Second + o.Envelope.Release)
	if n != want {
		t.Errorf("Melody() length = %d, want %d", n, want)
	}

	vec, err := Samples([]string{"C3", "E3", "G3", "C4"}, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(vec) != want {
		t.Errorf("Samples() len = %d, want %d", len(vec), want)
	}
}

func TestSamplesGap(t *testing.T) {
	o := NewOptions()
	o.SampleRate = 8000
	o.NoteLength = 500 * time.Millisecond
	o.Envelope.Release = 0

	vec, err := Samples([]string{"A4", "A4"}, o)
	if err != nil {
		t.Fatal(err)
	}
	// the last 20% of each slot is silent with no release
	gap := vec[o.SampleRate.N(420*time.Millisecond):o.SampleRate.N(490*time.Millisecond)]
	for i, x := range gap {
		if x != 0 {
			t.Fatalf("gap sample %d = %v, want silence", i, x)
		}
	}
	if vec[o.SampleRate.N(600*time.Millisecond)] == 0 {
		t.Error("second note is silent")
	}
}

func TestMelodyUnknownPitch(t *testing.T) {
	_, _, err := Melody([]string{"C3", "nope"}, NewOptions())
	if !errors.Is(err, pitch.ErrUnknownPitch) {
		t.Errorf("Melody() error = %v, want ErrUnknownPitch", err)
	}
	var buf bytes.Buffer
	if err := WriteFlac(&buf, []string{"Q1"}, NewOptions()); !errors.Is(err, pitch.ErrUnknownPitch) {
		t.Errorf("WriteFlac() error = %v, want ErrUnknownPitch", err)
	}
	if buf.Len() != 0 {
		t.Error("WriteFlac wrote output for an invalid melody")
	}
}

func TestFlacHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFlac(&buf, []string{"C4"}, NewOptions()); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("fLaC")) {
		t.Errorf("output starts with %q, want fLaC", buf.Bytes()[:4])
	}
}

func TestFlacFileStaysOpen(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "melody.flac"))
	if err != nil {
		t.Fatal(err)
	}
	o := NewOptions()
	o.SampleRate = 8000
	if err := WriteFlac(f, []string{"C4", "E4"}, o); err != nil {
		f.Close()
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close() after WriteFlac error = %v, want nil", err)
	}

	b, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("fLaC")) {
		t.Errorf("file starts with %q, want fLaC", b[:4])
	}
}

func TestZeroOptions(t *testing.T) {
	o := Options{NoteLength: 500 * time.Millisecond, Volume: 1}
	vec, err := Samples([]string{"A4"}, o)
	if err != nil {
		t.Fatal(err)
	}
	env := NewOptions().Envelope
	if want := NewOptions().SampleRate.N(o.NoteLength + env.Release); len(vec) != want {
		t.Errorf("Samples() len = %d, want %d", len(vec), want)
	}
	// middle of the sustain stage
	seg := vec[NewOptions().SampleRate.N(200*time.Millisecond):NewOptions().SampleRate.N(300*time.Millisecond)]
	loud := 0.0
	for _, x := range seg {
		loud = math.Max(loud, math.Abs(x))
	}
	if loud == 0 {
		t.Error("zero Options rendered silence")
	}
}

func TestQuantize16(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{1, math.MaxInt16},
		{-1, -math.MaxInt16},
		{2, math.MaxInt16},
		{-3, -math.MaxInt16},
		{0.5, 16384},
	}
	for _, tt := range tests {
		if got := quantize16(tt.in); got != tt.want {
			t.Errorf("quantize16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
