package synth

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// OpenSpeaker initializes the default audio device and starts streaming
// a fresh voice into it. The device buffers a tenth of a second.
func OpenSpeaker(sr beep.SampleRate, env Envelope) (*Voice, error) {
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	v := NewVoice(sr, env)
	speaker.Play(v)
	return v, nil
}
