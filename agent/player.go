package agent

import (
	"time"

	"github.com/lixenwraith/maze-race/input"
	"github.com/lixenwraith/maze-race/maze"
)

// Player is the input-driven agent
type Player struct {
	Agent
	bumped bool
	bumps  int
}

// NewPlayer places a player at start
func NewPlayer(start maze.Point, cfg Config) *Player {
	return &Player{Agent: newAgent(start, cfg)}
}

// Update advances the move timer and, when due, tries one move in the held direction
// Returns whether the player stands on the maze end
func (p *Player) Update(dt time.Duration, in input.State, m *maze.Maze) bool {
	if p.due(dt) {
		p.bumped = false
		if d := in.Direction(); d != input.DirNone {
			dx, dy := d.Delta()
			target := maze.Point{X: p.pos.X + dx, Y: p.pos.Y + dy}
			if m.IsOpen(target) {
				p.moveTo(target)
			} else {
				p.bumped = true
				p.bumps++
			}
		}
	}
	return p.Arrived(m.End)
}

// Moved reports whether the player has made at least one move
func (p *Player) Moved() bool { return p.steps > 0 }

// Bumped reports whether the latest move attempt hit a wall or the grid edge
func (p *Player) Bumped() bool { return p.bumped }

// Bumps returns the number of rejected move attempts
func (p *Player) Bumps() int { return p.bumps }
