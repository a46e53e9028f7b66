package agent

import "github.com/lixenwraith/maze-race/maze"

// DefaultTrailLength is the number of past positions an agent remembers
const DefaultTrailLength = 10

// Trail is a fixed-capacity FIFO of past positions, oldest evicted first
type Trail struct {
	buf  []maze.Point
	head int // index of the oldest entry
	size int
}

// NewTrail creates a trail holding at most capacity positions
func NewTrail(capacity int) *Trail {
	if capacity < 0 {
		capacity = 0
	}
	return &Trail{buf: make([]maze.Point, capacity)}
}

// Push appends p, evicting the oldest entry when full
func (t *Trail) Push(p maze.Point) {
	if len(t.buf) == 0 {
		return
	}
	if t.size < len(t.buf) {
		t.buf[(t.head+t.size)%len(t.buf)] = p
		t.size++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

// Len returns the number of stored positions
func (t *Trail) Len() int { return t.size }

// Cap returns the capacity
func (t *Trail) Cap() int { return len(t.buf) }

// Points returns stored positions oldest first
func (t *Trail) Points() []maze.Point {
	out := make([]maze.Point, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	return out
}
