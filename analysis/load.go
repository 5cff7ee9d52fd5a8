package analysis

import (
	"errors"
	"io"
	"os"

	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
)

var ErrFileNotLoaded = errors.New("file not loaded")

// LoadWav loads a WAV file as a mono sample vector and its sample rate.
func LoadWav(path string) ([]float64, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	var out []float64
	samples := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		for i := 0; i < n; i++ {
			out = append(out, (samples[i][0]+samples[i][1])/2)
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, err
	}
	if len(out) == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return out, int(format.SampleRate), nil
}

// LoadFlac loads a FLAC file as a mono sample vector and its sample rate.
func LoadFlac(path string) ([]float64, int, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))

	var out []float64
	for {
		f, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		for i := 0; i < int(f.BlockSize); i++ {
			var sum float64
			for _, sub := range f.Subframes {
				sum += float64(sub.Samples[i])
			}
			out = append(out, sum/float64(len(f.Subframes))/scale)
		}
	}
	if len(out) == 0 || stream.Info.SampleRate == 0 {
		return nil, 0, ErrFileNotLoaded
	}
	return out, int(stream.Info.SampleRate), nil
}
