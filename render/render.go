package render

import (
	"io"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/neurlang/hashwave/player"
	"github.com/neurlang/hashwave/synth"
)

// samples per FLAC frame
const flacBlock = 4096

// Options represents the configuration for rendering a melody.
type Options struct {
	SampleRate beep.SampleRate
	Envelope   synth.Envelope
	NoteLength time.Duration
	Volume     float64
}

// NewOptions creates Options matching live playback defaults.
func NewOptions() Options {
	return Options{
		SampleRate: player.DefaultSampleRate,
		Envelope:   synth.DefaultEnvelope(),
		NoteLength: player.DefaultNoteLength,
		Volume:     player.DefaultVolume,
	}
}

func (o Options) orDefaults() Options {
	if o.SampleRate == 0 {
		o.SampleRate = player.DefaultSampleRate
	}
	if o.Envelope == (synth.Envelope{}) {
		o.Envelope = synth.DefaultEnvelope()
	}
	return o
}

// Melody schedules pitches on a fresh voice and returns a streamer of n
// samples: the melody plus the last note's release.
func Melody(pitches []string, o Options) (s beep.Streamer, n int, err error) {
	o = o.orDefaults()
	voice := synth.NewVoice(o.SampleRate, o.Envelope)

	p := player.NewPlayer()
	p.SampleRate = o.SampleRate
	p.Envelope = o.Envelope
	p.Open = func(beep.SampleRate, synth.Envelope) (player.ToneGenerator, error) {
		return voice, nil
	}

	d, err := p.PlayMelody(pitches, o.NoteLength, o.Volume)
	if err != nil {
		return nil, 0, err
	}
	n = o.SampleRate.N(d + o.Envelope.Release)
	return beep.Take(n, voice), n, nil
}

// Samples renders a melody into a mono sample vector.
func Samples(pitches []string, o Options) ([]float64, error) {
	s, n, err := Melody(pitches, o)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, n)
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			break
		}
	}
	return out, nil
}

// WriteWav renders a melody as mono 16-bit WAV.
func WriteWav(w io.WriteSeeker, pitches []string, o Options) error {
	o = o.orDefaults()
	s, _, err := Melody(pitches, o)
	if err != nil {
		return err
	}
	format := beep.Format{
		SampleRate:  o.SampleRate,
		NumChannels: 1,
		Precision:   2,
	}
	return wav.Encode(w, s, format)
}

// WriteFlac renders a melody as mono 16-bit FLAC with verbatim subframes.
func WriteFlac(w io.Writer, pitches []string, o Options) error {
	o = o.orDefaults()
	vec, err := Samples(pitches, o)
	if err != nil {
		return err
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  flacBlock,
		BlockSizeMax:  flacBlock,
		SampleRate:    uint32(o.SampleRate),
		NChannels:     1,
		BitsPerSample: 16,
		NSamples:      uint64(len(vec)),
	}
	enc, err := flac.NewEncoder(keepOpen(w), info)
	if err != nil {
		return err
	}

	for num := 0; num*flacBlock < len(vec); num++ {
		start := num * flacBlock
		end := start + flacBlock
		if end > len(vec) {
			end = len(vec)
		}
		block := make([]int32, end-start)
		for i, x := range vec[start:end] {
			block[i] = quantize16(x)
		}

		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         uint16(len(block)),
				SampleRate:        uint32(o.SampleRate),
				Channels:          frame.ChannelsMono,
				BitsPerSample:     16,
				Num:               uint64(num),
			},
			Subframes: []*frame.Subframe{{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   block,
				NSamples:  len(block),
			}},
		}
		if err := enc.WriteFrame(f); err != nil {
			enc.Close()
			return err
		}
	}
	return enc.Close()
}

// keepOpen hides any Close method of w, since the FLAC encoder closes
// writers it can. A seekable w stays seekable so the encoder can patch
// StreamInfo on Close.
func keepOpen(w io.Writer) io.Writer {
	if ws, ok := w.(io.WriteSeeker); ok {
		return struct{ io.WriteSeeker }{ws}
	}
	return struct{ io.Writer }{w}
}

func quantize16(x float64) int32 {
	x = math.Max(-1, math.Min(1, x))
	return int32(math.Round(x * math.MaxInt16))
}
