package agent

import (
	"time"

	"github.com/lixenwraith/maze-race/maze"
	"github.com/lixenwraith/maze-race/navigation"
)

// DefaultSlowness multiplies the player interval to get the solver interval
const DefaultSlowness = 2.0

// DefaultSearchStepsPerTick bounds visualized search progress per update
const DefaultSearchStepsPerTick = 4

// SolverInterval scales a player interval by the slowness factor
func SolverInterval(player time.Duration, slowness float64) time.Duration {
	if slowness <= 0 {
		slowness = DefaultSlowness
	}
	return time.Duration(float64(player) * slowness)
}

// Solver follows a cached shortest path toward the maze end
type Solver struct {
	Agent

	path     navigation.Path // Remaining cells, current position excluded
	searches int

	// Visualization: searches advance incrementally across updates
	visualize    bool
	stepsPerTick int
	search       *navigation.Search
}

// NewSolver places a solver at start
func NewSolver(start maze.Point, cfg Config) *Solver {
	return &Solver{
		Agent:        newAgent(start, cfg),
		stepsPerTick: DefaultSearchStepsPerTick,
	}
}

// SetVisualize switches between synchronous and incremental path searches
// An in-flight incremental search is finished synchronously when turned off
func (s *Solver) SetVisualize(on bool, stepsPerTick int) {
	s.visualize = on
	if stepsPerTick > 0 {
		s.stepsPerTick = stepsPerTick
	}
	if !on && s.search != nil {
		s.adopt(s.search.Run())
		s.search = nil
	}
}

// Update advances the move timer and, when due, takes the next step along the cached path
// Returns whether the solver stands on the maze end
func (s *Solver) Update(dt time.Duration, m *maze.Maze) bool {
	if s.search != nil {
		for i := 0; i < s.stepsPerTick && s.search.Step(); i++ {
		}
		if s.search.Done() {
			s.adopt(s.search.Path())
			s.search = nil
		}
	}

	if !s.due(dt) || s.search != nil {
		return s.Arrived(m.End)
	}

	if len(s.path) == 0 {
		s.searches++
		if s.visualize {
			s.search = navigation.NewSearch(m, s.pos, m.End)
			return s.Arrived(m.End)
		}
		s.adopt(navigation.FindPath(m, s.pos, m.End))
	}

	if len(s.path) > 0 {
		next := s.path[0]
		s.path = s.path[1:]
		s.moveTo(next)
	}
	return s.Arrived(m.End)
}

// adopt caches p without its leading cell when that cell is the current position
func (s *Solver) adopt(p navigation.Path) {
	if len(p) > 0 && p[0] == s.pos {
		p = p[1:]
	}
	s.path = p
}

// Path returns a copy of the remaining route
func (s *Solver) Path() navigation.Path {
	out := make(navigation.Path, len(s.path))
	copy(out, s.path)
	return out
}

// Searches returns how many path computations were started
func (s *Solver) Searches() int { return s.searches }

// Searching reports whether an incremental search is in progress
func (s *Solver) Searching() bool { return s.search != nil }

// SearchSnapshot returns the in-flight search state, ok false when idle
func (s *Solver) SearchSnapshot() (navigation.Snapshot, bool) {
	if s.search == nil {
		return navigation.Snapshot{}, false
	}
	return s.search.Snapshot(), true
}

// Reached returns the in-flight search distance to p, -1 when unreached or idle
func (s *Solver) Reached(p maze.Point) int {
	if s.search == nil {
		return -1
	}
	return s.search.Distance(p)
}
