package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/maze-race/config"
	"github.com/lixenwraith/maze-race/engine"
)

// TestSoundManagerWithoutDevice verifies every operation is safe before Initialize
func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(config.Default().Audio)

	assert.NotPanics(t, func() {
		sm.Play(CueBump)
		sm.HandleEvent(engine.Event{Type: engine.EventFinish, Winner: engine.WinnerPlayer})
		sm.Cleanup()
	})
	assert.False(t, sm.Available())
	assert.Zero(t, sm.Played(CueBump))
	assert.Zero(t, sm.Played(CueWin))
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	assert.NoError(t, sm.Initialize())
	assert.False(t, sm.Available())
}

func TestSoundManagerMuteToggle(t *testing.T) {
	sm := NewSoundManager(config.Default().Audio)

	assert.False(t, sm.Muted())
	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())
	assert.False(t, sm.ToggleMute())
}

// TestSoundManagerInitialization tolerates hosts without an audio device
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(config.Default().Audio)
	if err := sm.Initialize(); err != nil {
		t.Logf("speaker unavailable: %v", err)
		return
	}
	defer sm.Cleanup()

	assert.NoError(t, sm.Initialize(), "second Initialize is a no-op")
	sm.Play(CueRoundStart)
	assert.Equal(t, 1, sm.Played(CueRoundStart))

	sm.ToggleMute()
	sm.Play(CueRoundStart)
	assert.Equal(t, 1, sm.Played(CueRoundStart), "muted cues are dropped")
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		ev   engine.Event
		want Cue
		ok   bool
	}{
		{engine.Event{Type: engine.EventRoundStart}, CueRoundStart, true},
		{engine.Event{Type: engine.EventBump}, CueBump, true},
		{engine.Event{Type: engine.EventFinish, Winner: engine.WinnerPlayer}, CueWin, true},
		{engine.Event{Type: engine.EventFinish, Winner: engine.WinnerSolver}, CueLoss, true},
		{engine.Event{Type: engine.EventFinish, Winner: engine.WinnerTie}, CueTie, true},
		{engine.Event{Type: engine.EventFinish}, 0, false},
	}
	for _, tt := range tests {
		got, ok := CueFor(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Type.String())
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.ev.Type.String())
		}
	}
}
