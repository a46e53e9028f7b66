package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0], smp[1], -smp[1])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream did not terminate")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)

		assert.Equal(t, rate.N(100*time.Millisecond), n, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0)
		assert.Greater(t, peak, 0.0)
		assert.NoError(t, osc.Err())
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	require.Equal(t, 1000, n)

	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0.5, buf[50][0], 1e-9)
	assert.Equal(t, 1.0, buf[500][0])
	assert.InDelta(t, 0.5, buf[950][0], 1e-9)
}

func TestCueSounds(t *testing.T) {
	for c := CueRoundStart; c < cueCount; c++ {
		s := newCueSound(c, sampleRate)
		require.NotNil(t, s, c.String())

		n, peak := drain(t, s)
		assert.Greater(t, n, 0, c.String())
		assert.Less(t, n, sampleRate.N(time.Second), c.String())
		assert.LessOrEqual(t, peak, 1.0, c.String())
	}

	assert.Nil(t, newCueSound(cueCount, sampleRate))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 50*time.Millisecond, WaveSquare, rate), 0)
	_, peak := drain(t, s)
	assert.Zero(t, peak)
}

func TestNoiseIsSeeded(t *testing.T) {
	rate := beep.SampleRate(1000)
	a := make([][2]float64, 100)
	b := make([][2]float64, 100)
	NewOscillator(90, 100*time.Millisecond, WaveNoise, rate).Stream(a)
	NewOscillator(90, 100*time.Millisecond, WaveNoise, rate).Stream(b)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1])
}

func TestBumpSoundCarriesNoise(t *testing.T) {
	buzzOnly := newVolume(
		NewEnvelope(NewOscillator(90, bumpDuration, WaveSaw, sampleRate), bumpDuration, 0, bumpRelease, sampleRate),
		bumpBuzzLevel,
	)
	want := make([][2]float64, sampleRate.N(bumpDuration))
	got := make([][2]float64, sampleRate.N(bumpDuration))
	buzzOnly.Stream(want)
	n, _ := newBumpSound(sampleRate).Stream(got)

	require.Equal(t, len(got), n)
	assert.NotEqual(t, want[:sampleRate.N(bumpNoise)], got[:sampleRate.N(bumpNoise)])
	// Past the thud only the buzz remains
	assert.InDeltaSlice(t, flatten(want[sampleRate.N(bumpNoise):]), flatten(got[sampleRate.N(bumpNoise):]), 1e-9)
}

func flatten(samples [][2]float64) []float64 {
	out := make([]float64, 0, 2*len(samples))
	for _, s := range samples {
		out = append(out, s[0], s[1])
	}
	return out
}
