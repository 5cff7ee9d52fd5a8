package analysis

import (
	"math"
	"math/cmplx"
	"time"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/neurlang/hashwave/pitch"
)

// below this RMS a slot counts as silence
const silence = 1e-4

// Transcribe splits samples into noteLength slots and names the pitch
// sounding in each. Trailing silent slots are dropped.
func Transcribe(samples []float64, sampleRate int, noteLength time.Duration) []string {
	slot := int(float64(sampleRate) * noteLength.Seconds())
	if slot <= 0 {
		return nil
	}

	var out []string
	for start := 0; start+slot <= len(samples); start += slot {
		// skip the attack and stay clear of the gap before the next note
		seg := samples[start+slot/10 : start+slot*7/10]
		if rms(seg) < silence {
			out = append(out, "")
			continue
		}
		out = append(out, pitch.Nearest(Dominant(seg, sampleRate)))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// Dominant returns the frequency of the strongest spectral peak of seg.
// An empty seg has no peak and yields 0.
func Dominant(seg []float64, sampleRate int) float64 {
	if len(seg) == 0 {
		return 0
	}
	n := 1
	for n < 4*len(seg) {
		n <<= 1
	}
	buf := make([]float64, n)
	copy(buf, seg)
	window.Apply(buf[:len(seg)], window.Hann)

	spectrum := fft.FFTReal(buf)

	best, bestMag := 1, 0.0
	for k := 1; k < n/2; k++ {
		if m := cmplx.Abs(spectrum[k]); m > bestMag {
			best, bestMag = k, m
		}
	}

	// parabolic interpolation around the peak bin
	a := cmplx.Abs(spectrum[best-1])
	c := cmplx.Abs(spectrum[best+1])
	shift := 0.0
	if den := a - 2*bestMag + c; den != 0 {
		shift = 0.5 * (a - c) / den
	}
	return (float64(best) + shift) * float64(sampleRate) / float64(n)
}

func rms(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(xs)))
}
