package synth

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/faiface/beep"

	"github.com/neurlang/hashwave/pitch"
)

type note struct {
	start    int
	hold     int
	freq     float64
	velocity float64
}

type sounding struct {
	note
	phase    float64
	age      int
	released int // age at key-up, -1 while held
	relLevel float64
}

// Voice is a monophonic square-wave beep.Streamer with a note schedule.
type Voice struct {
	mu    sync.Mutex
	sr    beep.SampleRate
	env   Envelope
	pos   int
	queue []note
	cur   *sounding
}

// NewVoice returns a silent voice at clock zero.
func NewVoice(sr beep.SampleRate, env Envelope) *Voice {
	return &Voice{sr: sr, env: env}
}

// SampleRate of the voice.
func (v *Voice) SampleRate() beep.SampleRate { return v.sr }

// Now is the voice clock: the time of the next sample to be streamed.
func (v *Voice) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sr.D(v.pos)
}

// TriggerAttackRelease schedules name to start at start on the voice
// clock and be released after duration. A start in the past sounds
// immediately. Velocity is clamped to [0, 1].
func (v *Voice) TriggerAttackRelease(name string, duration, start time.Duration, velocity float64) error {
	freq, err := pitch.Frequency(name)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	n := note{
		start:    v.sr.N(start),
		hold:     v.sr.N(duration),
		freq:     freq,
		velocity: math.Max(0, math.Min(1, velocity)),
	}
	if n.start < v.pos {
		n.start = v.pos
	}
	i := sort.Search(len(v.queue), func(i int) bool { return v.queue[i].start > n.start })
	v.queue = append(v.queue, note{})
	copy(v.queue[i+1:], v.queue[i:])
	v.queue[i] = n
	return nil
}

// TriggerRelease releases the sounding note now. Scheduled notes stay
// scheduled.
func (v *Voice) TriggerRelease() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cur != nil && v.cur.released < 0 {
		v.releaseCur()
	}
}

// Pending reports how many notes are scheduled but not yet started.
func (v *Voice) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.queue)
}

// Sounding reports whether a note is audible, including its release.
func (v *Voice) Sounding() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur != nil
}

// Stream never drains; a voice with nothing to play streams silence.
func (v *Voice) Stream(samples [][2]float64) (n int, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range samples {
		for len(v.queue) > 0 && v.queue[0].start <= v.pos {
			v.cur = &sounding{note: v.queue[0], released: -1}
			v.queue = v.queue[1:]
		}
		x := v.next()
		samples[i][0] = x
		samples[i][1] = x
		v.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (v *Voice) Err() error { return nil }

func (v *Voice) next() float64 {
	s := v.cur
	if s == nil {
		return 0
	}
	if s.released < 0 && s.age >= s.hold {
		v.releaseCur()
	}

	var level float64
	if s.released < 0 {
		level = v.env.gate(v.seconds(s.age))
	} else {
		var alive bool
		level, alive = v.env.release(s.relLevel, v.seconds(s.age-s.released))
		if !alive {
			v.cur = nil
			return 0
		}
	}

	x := Square(s.phase) * level * s.velocity
	s.phase += s.freq / float64(v.sr)
	s.phase -= math.Floor(s.phase)
	s.age++
	return x
}

func (v *Voice) releaseCur() {
	s := v.cur
	s.relLevel = v.env.gate(v.seconds(s.age))
	s.released = s.age
}

func (v *Voice) seconds(n int) float64 {
	return float64(n) / float64(v.sr)
}

// Square is a unit square wave over one cycle, phase in [0, 1).
func Square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}
