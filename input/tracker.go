package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the gap between terminal auto-repeat events
const DefaultHoldWindow = 150 * time.Millisecond

// Tracker turns terminal key events into held-direction snapshots
// Terminals report presses and auto-repeats but no releases, so a direction
// stays held for the hold window after its most recent event
type Tracker struct {
	hold      time.Duration
	pressedAt [5]time.Time // indexed by Direction
	last      Direction

	// One-shot signals, cleared by Snapshot
	reset, visualize, mute, quit bool
}

// NewTracker creates a tracker, non-positive hold falls back to DefaultHoldWindow
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Tracker{hold: hold}
}

// HandleEvent records a terminal event, returns false for events it ignores
func (t *Tracker) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
		return true
	case tcell.KeyUp:
		t.press(DirUp, key.When())
		return true
	case tcell.KeyLeft:
		t.press(DirLeft, key.When())
		return true
	case tcell.KeyDown:
		t.press(DirDown, key.When())
		return true
	case tcell.KeyRight:
		t.press(DirRight, key.When())
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch key.Rune() {
	case 'w', 'W':
		t.press(DirUp, key.When())
	case 'a', 'A':
		t.press(DirLeft, key.When())
	case 's', 'S':
		t.press(DirDown, key.When())
	case 'd', 'D':
		t.press(DirRight, key.When())
	case 'r', 'R':
		t.reset = true
	case 'v', 'V':
		t.visualize = true
	case 'm', 'M':
		t.mute = true
	case 'q', 'Q':
		t.quit = true
	default:
		return false
	}
	return true
}

func (t *Tracker) press(d Direction, at time.Time) {
	t.pressedAt[d] = at
	t.last = d
}

// Snapshot returns the input state at now and clears one-shot signals
func (t *Tracker) Snapshot(now time.Time) State {
	held := func(d Direction) bool {
		at := t.pressedAt[d]
		return !at.IsZero() && now.Sub(at) <= t.hold
	}

	s := State{
		Up:        held(DirUp),
		Left:      held(DirLeft),
		Down:      held(DirDown),
		Right:     held(DirRight),
		Last:      t.last,
		Reset:     t.reset,
		Visualize: t.visualize,
		Mute:      t.mute,
		Quit:      t.quit,
	}

	t.reset, t.visualize, t.mute = false, false, false
	return s
}

// Release forgets all held directions, used when a new round starts
func (t *Tracker) Release() {
	t.pressedAt = [5]time.Time{}
	t.last = DirNone
}
