package analysis

import (
	"math/cmplx"

	"github.com/r9y9/gossp/stft"
	"github.com/x448/float16"
)

// Spectrogram returns STFT magnitudes, one row of frameLen/2 bins per
// frame. Input shorter than a frame is zero padded.
func Spectrogram(samples []float64, frameShift, frameLen int) [][]float64 {
	samples = pad(samples, frameLen)

	s := stft.New(frameShift, frameLen)
	spectrum := s.STFT(samples)

	out := make([][]float64, len(spectrum))
	for i := range spectrum {
		row := make([]float64, frameLen/2)
		for j := range row {
			row[j] = cmplx.Abs(spectrum[i][j])
		}
		out[i] = row
	}
	return out
}

// Fingerprint encodes each frame's peak magnitude, relative to the
// loudest frame, as IEEE 754 half-precision bits.
func Fingerprint(spec [][]float64) []uint16 {
	peaks := make([]float64, len(spec))
	var loudest float64
	for i, row := range spec {
		for _, v := range row {
			if v > peaks[i] {
				peaks[i] = v
			}
		}
		if peaks[i] > loudest {
			loudest = peaks[i]
		}
	}

	out := make([]uint16, len(peaks))
	for i, p := range peaks {
		if loudest > 0 {
			p /= loudest
		}
		out[i] = float16.Fromfloat32(float32(p)).Bits()
	}
	return out
}

// Unfingerprint decodes Fingerprint output back to relative peaks.
func Unfingerprint(bits []uint16) []float32 {
	out := make([]float32, len(bits))
	for i, b := range bits {
		out[i] = float16.Frombits(b).Float32()
	}
	return out
}

func pad(buf []float64, frameLen int) []float64 {
	if len(buf) >= frameLen {
		return buf
	}
	out := make([]float64, frameLen)
	copy(out, buf)
	return out
}
