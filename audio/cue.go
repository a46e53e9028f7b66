package audio

import (
	"github.com/lixenwraith/maze-race/engine"
)

// Cue identifies a one-shot sound
type Cue int

const (
	CueRoundStart Cue = iota // Maze ready
	CueBump                  // Player hit a wall
	CueWin                   // Player reached the end first
	CueLoss                  // Solver reached the end first
	CueTie                   // Both arrived on the same tick
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueRoundStart:
		return "round_start"
	case CueBump:
		return "bump"
	case CueWin:
		return "win"
	case CueLoss:
		return "loss"
	case CueTie:
		return "tie"
	default:
		return "unknown"
	}
}

// CueFor maps a session event to the cue announcing it
func CueFor(ev engine.Event) (Cue, bool) {
	switch ev.Type {
	case engine.EventRoundStart:
		return CueRoundStart, true
	case engine.EventBump:
		return CueBump, true
	case engine.EventFinish:
		switch ev.Winner {
		case engine.WinnerPlayer:
			return CueWin, true
		case engine.WinnerSolver:
			return CueLoss, true
		case engine.WinnerTie:
			return CueTie, true
		}
	}
	return 0, false
}
