package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/maze-race/maze"
)

// EventType identifies session lifecycle events
type EventType uint8

const (
	EventRoundStart EventType = iota // Maze ready, agents placed
	EventBump                        // Player move rejected
	EventFinish                      // An agent reached the end
)

func (t EventType) String() string {
	switch t {
	case EventRoundStart:
		return "round_start"
	case EventBump:
		return "bump"
	case EventFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Event is emitted synchronously from inside Tick
type Event struct {
	Type     EventType
	Round    uuid.UUID
	Winner   Winner
	Position maze.Point
}

// EventHandler consumes session events; it must not call back into the session
type EventHandler func(Event)
