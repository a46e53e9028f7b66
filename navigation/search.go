package navigation

import "github.com/lixenwraith/maze-race/maze"

const costUnreachable = 1<<30 - 1

// Grid is the read-only view the search needs, satisfied by *maze.Grid and *maze.Maze
type Grid interface {
	Width() int
	Height() int
	IsOpen(p maze.Point) bool
}

// Phase identifies what the next Step will do
type Phase uint8

const (
	PhaseExpand Phase = iota // Popping and relaxing frontier nodes
	PhaseTrace               // Walking predecessors back from the target
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseExpand:
		return "expand"
	case PhaseTrace:
		return "trace"
	default:
		return "done"
	}
}

// Snapshot is the observable state of a search after one step
type Snapshot struct {
	Phase    Phase
	Current  maze.Point   // Node popped or walked this step
	Settled  int          // Nodes popped with their final distance
	Frontier int          // Heap entries, stale ones included
	Trace    []maze.Point // Predecessor walk so far, target first
	Found    bool
	Steps    int
}

// Search is a uniform-cost search from source to target that can be advanced one step at a time
type Search struct {
	grid           Grid
	width, height  int
	source, target maze.Point

	dist    []int
	prev    []int // -1 when no predecessor
	settled int
	heap    *frontier

	phase   Phase
	current maze.Point
	walk    int
	trace   []maze.Point
	found   bool
	path    Path
	steps   int

	observer Observer
}

// NewSearch prepares a search; source == target completes immediately with an empty path
func NewSearch(g Grid, source, target maze.Point, opts ...Option) *Search {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w, h := g.Width(), g.Height()
	s := &Search{
		grid:     g,
		width:    w,
		height:   h,
		source:   source,
		target:   target,
		current:  source,
		observer: o.observer,
	}

	if source == target || !s.inBounds(source) || !s.inBounds(target) {
		s.phase = PhaseDone
		s.found = source == target
		return s
	}

	size := w * h
	s.dist = make([]int, size)
	s.prev = make([]int, size)
	for i := 0; i < size; i++ {
		s.dist[i] = costUnreachable
		s.prev[i] = -1
	}

	src := s.index(source)
	s.dist[src] = 0
	s.heap = newFrontier(size/4 + 1)
	s.heap.push(src, 0)

	return s
}

// Step advances the search by one expansion or one predecessor hop
// Returns false once the search is complete, including on the completing step
func (s *Search) Step() bool {
	switch s.phase {
	case PhaseExpand:
		s.expand()
	case PhaseTrace:
		s.traceStep()
	default:
		return false
	}

	s.steps++
	if s.observer != nil {
		s.observer(s.Snapshot())
	}
	return s.phase != PhaseDone
}

// Run steps the search to completion and returns the path
func (s *Search) Run() Path {
	for s.Step() {
	}
	return s.Path()
}

// Done reports whether the search finished
func (s *Search) Done() bool { return s.phase == PhaseDone }

// Path returns the source→target path once done, empty if unreachable or source == target
func (s *Search) Path() Path {
	if s.phase != PhaseDone {
		return nil
	}
	return s.path
}

// Snapshot captures the current search state
func (s *Search) Snapshot() Snapshot {
	trace := make([]maze.Point, len(s.trace))
	copy(trace, s.trace)
	return Snapshot{
		Phase:    s.phase,
		Current:  s.current,
		Settled:  s.settled,
		Frontier: s.heap.Len(),
		Trace:    trace,
		Found:    s.found,
		Steps:    s.steps,
	}
}

// Distance returns the best known distance to p, -1 if not reached
func (s *Search) Distance(p maze.Point) int {
	if s.dist == nil || !s.inBounds(p) {
		if p == s.source {
			return 0
		}
		return -1
	}
	d := s.dist[s.index(p)]
	if d >= costUnreachable {
		return -1
	}
	return d
}

// expand pops the nearest non-stale node and relaxes its neighbours
func (s *Search) expand() {
	for s.heap.Len() > 0 {
		entry := s.heap.pop()
		if entry.dist > s.dist[entry.idx] {
			continue // Stale entry
		}

		s.settled++
		s.current = s.point(entry.idx)

		if s.current == s.target {
			s.found = true
			s.phase = PhaseTrace
			s.walk = entry.idx
			s.trace = append(s.trace[:0], s.current)
			return
		}

		for _, d := range maze.Cardinals {
			n := s.current.Add(d)
			if !s.grid.IsOpen(n) {
				continue
			}

			nIdx := s.index(n)
			newDist := entry.dist + 1
			if newDist < s.dist[nIdx] {
				s.dist[nIdx] = newDist
				s.prev[nIdx] = entry.idx
				s.heap.push(nIdx, newDist)
			}
		}
		return
	}

	// Frontier exhausted without reaching the target
	s.phase = PhaseDone
	s.path = nil
}

// traceStep walks one predecessor toward the source
func (s *Search) traceStep() {
	p := s.prev[s.walk]
	if p < 0 || len(s.trace) > s.width*s.height {
		// Broken chain, give up rather than loop
		s.phase = PhaseDone
		s.path = nil
		return
	}

	s.walk = p
	s.current = s.point(p)
	s.trace = append(s.trace, s.current)

	if s.current == s.source {
		path := make(Path, len(s.trace))
		for i, pt := range s.trace {
			path[len(s.trace)-1-i] = pt
		}
		s.path = path
		s.phase = PhaseDone
	}
}

func (s *Search) inBounds(p maze.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.width && p.Y < s.height
}

func (s *Search) index(p maze.Point) int { return p.Y*s.width + p.X }

func (s *Search) point(idx int) maze.Point {
	return maze.Point{X: idx % s.width, Y: idx / s.width}
}
