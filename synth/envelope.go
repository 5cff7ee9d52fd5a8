package synth

import "time"

// Envelope shapes every note: linear attack to full level, linear decay
// to Sustain, hold, then linear release to silence.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64
	Release time.Duration
}

// DefaultEnvelope returns a short plucky envelope suited to square waves.
func DefaultEnvelope() Envelope {
	return Envelope{
		Attack:  10 * time.Millisecond,
		Decay:   100 * time.Millisecond,
		Sustain: 0.5,
		Release: 100 * time.Millisecond,
	}
}

// gate is the level at t seconds after note-on while the key is held.
func (e Envelope) gate(t float64) float64 {
	a := e.Attack.Seconds()
	if t < a {
		return t / a
	}
	t -= a
	d := e.Decay.Seconds()
	if t < d {
		return 1 - (1-e.Sustain)*t/d
	}
	return e.Sustain
}

// release is the level r seconds after key-up from level from. It
// returns false once the note has died away.
func (e Envelope) release(from, r float64) (float64, bool) {
	rel := e.Release.Seconds()
	if r >= rel {
		return 0, false
	}
	return from * (1 - r/rel), true
}
