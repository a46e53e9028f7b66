package navigation

import "github.com/lixenwraith/maze-race/maze"

// Path is an ordered source→target sequence of 4-adjacent open cells
type Path []maze.Point

// Steps returns the number of moves along the path
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Observer receives a snapshot after every search step
type Observer func(Snapshot)

type options struct {
	observer Observer
}

// Option configures a search
type Option func(*options)

// WithObserver registers a per-step observer; it cannot affect the result
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}

// FindPath returns the shortest path from source to target
// Empty when source == target or target is unreachable
func FindPath(g Grid, source, target maze.Point, opts ...Option) Path {
	return NewSearch(g, source, target, opts...).Run()
}
