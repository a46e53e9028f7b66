package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings
const (
	bumpDuration    = 60 * time.Millisecond
	bumpRelease     = 30 * time.Millisecond
	bumpNoise       = 25 * time.Millisecond
	startDuration   = 90 * time.Millisecond
	noteDuration    = 110 * time.Millisecond
	noteAttack      = 5 * time.Millisecond
	noteRelease     = 60 * time.Millisecond
	finalNoteFactor = 2
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, noteAttack, noteRelease, rate)
}

func arpeggio(rate beep.SampleRate, wave WaveType, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		d := noteDuration
		if i == len(freqs)-1 {
			d *= finalNoteFactor
		}
		parts[i] = note(f, d, wave, rate)
	}
	return beep.Seq(parts...)
}

// newStartSound is a short A5 blip played when a round becomes playable
func newStartSound(rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, 880)
	if err != nil {
		return nil
	}
	tone := beep.Take(rate.N(startDuration), sine)
	return NewEnvelope(tone, startDuration, noteAttack, noteRelease, rate)
}

// Bump mix levels, summing to at most 1
const (
	bumpBuzzLevel  = 0.4
	bumpNoiseLevel = 0.3
)

// newBumpSound is a low saw buzz under a short noise thud for a move into a wall
func newBumpSound(rate beep.SampleRate) beep.Streamer {
	buzz := NewEnvelope(NewOscillator(90, bumpDuration, WaveSaw, rate), bumpDuration, 0, bumpRelease, rate)
	thud := NewEnvelope(NewOscillator(90, bumpNoise, WaveNoise, rate), bumpNoise, 0, bumpNoise, rate)
	return beep.Mix(newVolume(buzz, bumpBuzzLevel), newVolume(thud, bumpNoiseLevel))
}

// newCueSound builds the streamer for a cue, nil for unknown cues
func newCueSound(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueRoundStart:
		return newStartSound(rate)
	case CueBump:
		return newBumpSound(rate)
	case CueWin:
		// C6 E6 G6
		return arpeggio(rate, WaveSquare, 1046.50, 1318.51, 1567.98)
	case CueLoss:
		// G4 E4 C4
		return arpeggio(rate, WaveSaw, 392.00, 329.63, 261.63)
	case CueTie:
		return arpeggio(rate, WaveSine, 659.25, 659.25)
	default:
		return nil
	}
}
