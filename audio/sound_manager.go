package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/maze-race/config"
	"github.com/lixenwraith/maze-race/engine"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = 100 * time.Millisecond
)

// SoundManager plays race cues through a shared mixer
// Every method is a no-op until Initialize succeeds so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	cfg         config.Audio
	muted       bool
	initialized bool
	played      [cueCount]int
}

// NewSoundManager creates a sound manager with the given settings
func NewSoundManager(cfg config.Audio) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
		cfg:   cfg,
	}
}

// Initialize opens the speaker; disabled audio is not an error
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(newVolume(sm.ctrl, sm.cfg.MasterVolume))
	sm.initialized = true
	log.Printf("[AUDIO] speaker ready at %d Hz, volume %.2f", sampleRate, sm.cfg.MasterVolume)
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue; muted cues are dropped, not deferred
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := newCueSound(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

// HandleEvent plays the cue for a session event
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	if c, ok := CueFor(ev); ok {
		sm.Play(c)
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.ctrl.Paused = sm.muted
		if sm.muted {
			sm.mixer.Clear()
		}
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Available reports whether sound reaches a device
func (sm *SoundManager) Available() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns how many times a cue was sent to the mixer
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c < 0 || c >= cueCount {
		return 0
	}
	return sm.played[c]
}
