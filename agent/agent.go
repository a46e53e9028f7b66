// Package agent implements the two maze runners: a player driven by input
// snapshots and a solver that follows shortest paths toward the exit.
//
// Both move in discrete steps. Elapsed time accumulates in a move timer and a
// step is attempted once the timer reaches the agent's interval, after which
// the timer restarts from zero. Surplus time is dropped rather than turned
// into extra steps.
package agent

import (
	"time"

	"github.com/lixenwraith/maze-race/maze"
)

// DefaultMoveInterval is the player step period, 30 moves per second
const DefaultMoveInterval = time.Second / 30

// Config holds per-agent movement tuning
type Config struct {
	Interval    time.Duration // Time between step attempts
	TrailLength int           // Past positions kept for rendering
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultMoveInterval
	}
	if c.TrailLength <= 0 {
		c.TrailLength = DefaultTrailLength
	}
	return c
}

// Agent holds the state shared by both variants
type Agent struct {
	pos      maze.Point
	trail    *Trail
	timer    time.Duration
	interval time.Duration
	steps    int
}

func newAgent(start maze.Point, cfg Config) Agent {
	cfg = cfg.withDefaults()
	return Agent{
		pos:      start,
		trail:    NewTrail(cfg.TrailLength),
		interval: cfg.Interval,
	}
}

// Position returns the current cell
func (a *Agent) Position() maze.Point { return a.pos }

// Trail returns recent positions, oldest first
func (a *Agent) Trail() []maze.Point { return a.trail.Points() }

// Timer returns time accumulated since the last step attempt
func (a *Agent) Timer() time.Duration { return a.timer }

// Interval returns the step period
func (a *Agent) Interval() time.Duration { return a.interval }

// Steps returns the number of accepted moves
func (a *Agent) Steps() int { return a.steps }

// Arrived reports whether the agent stands on end
func (a *Agent) Arrived(end maze.Point) bool { return a.pos == end }

// due advances the timer and reports whether a step attempt is due, resetting it if so
func (a *Agent) due(dt time.Duration) bool {
	a.timer += dt
	if a.timer < a.interval {
		return false
	}
	a.timer = 0
	return true
}

func (a *Agent) moveTo(p maze.Point) {
	a.trail.Push(a.pos)
	a.pos = p
	a.steps++
}
