// Package player schedules pitch sequences on a tone generator.
//
// A Player is created by the caller and owns its generator. The
// generator is built on first use, exactly once, even when several
// goroutines race to play the first melody:
//
//	p := player.NewPlayer()
//	m, err := p.PlayHashMelody("0xeF9442f0", 0, player.DefaultVolume)
//	if err != nil {
//		// errors.Is(err, nibble.ErrInvalidFormat) or errors.Is(err, player.ErrAudioInit)
//	}
//	time.Sleep(m.Duration)
//
// Playback is fire-and-forget: every note is scheduled up front and the
// call returns the nominal melody duration without waiting.
//
// The generator has a single voice. Starting a melody while another is
// still scheduled interleaves their notes; there is no queueing, and
// Stop releases only the note currently sounding.
package player
