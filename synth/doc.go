// Package synth provides a single-voice square-wave synthesizer.
//
// A Voice is a beep.Streamer. Notes are scheduled against the voice's
// own clock, which advances with every sample streamed:
//
//	v := synth.NewVoice(44100, synth.DefaultEnvelope())
//	v.TriggerAttackRelease("A4", 400*time.Millisecond, v.Now(), 0.5)
//	speaker.Play(v)
//
// The voice is monophonic. A note-on while another note sounds cuts it
// off and restarts the envelope.
package synth
