package maze

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Default grid dimensions
const (
	DefaultWidth  = 40
	DefaultHeight = 30
)

// Carve describes one carving step: the midpoint and target were opened
// Grid is the live grid and must not be retained past the callback
type Carve struct {
	From, Mid, To Point
	Grid          *Grid
}

// Observer receives a notification after each carve
type Observer func(Carve)

type Config struct {
	Width, Height int

	Rand    *rand.Rand // Optional (nil = seeded from Seed)
	Seed    int64      // Optional (0 = Random)
	OnCarve Observer   // Optional
}

// edge is a directed lattice edge, To is two cells away from From
type edge struct {
	From, To Point
}

// lattice steps between rooms
var jumps = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// Generator grows a spanning tree over even-coordinate rooms with a randomized backtracker
// Each call to Step carves at most one edge so callers can render intermediate states
type Generator struct {
	grid    *Grid
	rng     *rand.Rand
	start   Point
	stack   []edge
	visited mapset.Set[Point]
	order   []Point // visited rooms in discovery order
	onCarve Observer

	done bool
	end  Point
}

// NewGenerator prepares a generator with the start room already carved
func NewGenerator(cfg Config) *Generator {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := &Generator{
		grid:    NewGrid(cfg.Width, cfg.Height),
		rng:     rng,
		visited: mapset.New[Point](),
		onCarve: cfg.OnCarve,
	}

	// Round down to the even lattice
	x, y := rng.Intn(cfg.Width), rng.Intn(cfg.Height)
	g.start = Point{x - x%2, y - y%2}

	g.grid.SetOpen(g.start)
	g.visit(g.start)
	g.pushEdges(g.start)

	return g
}

// Generate builds a complete maze
func Generate(cfg Config) *Maze {
	g := NewGenerator(cfg)
	for g.Step() {
	}
	return g.Maze()
}

// Step pops frontier edges until one carves or the frontier empties
// Returns false once generation is complete
func (g *Generator) Step() bool {
	if g.done {
		return false
	}

	for len(g.stack) > 0 {
		e := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]

		if g.visited.Has(e.To) {
			continue
		}

		mid := Point{(e.From.X + e.To.X) / 2, (e.From.Y + e.To.Y) / 2}
		g.grid.SetOpen(mid)
		g.grid.SetOpen(e.To)
		g.visit(e.To)
		g.pushEdges(e.To)

		if g.onCarve != nil {
			g.onCarve(Carve{From: e.From, Mid: mid, To: e.To, Grid: g.grid})
		}
		return true
	}

	g.end = g.order[g.rng.Intn(len(g.order))]
	g.done = true
	return false
}

// Done reports whether the frontier is exhausted
func (g *Generator) Done() bool { return g.done }

// Grid returns the grid being carved
func (g *Generator) Grid() *Grid { return g.grid }

// Start returns the start room
func (g *Generator) Start() Point { return g.start }

// Visited returns the number of rooms reached so far
func (g *Generator) Visited() int { return len(g.order) }

// Maze returns the finished maze, nil while generation is in progress
func (g *Generator) Maze() *Maze {
	if !g.done {
		return nil
	}
	return &Maze{Grid: g.grid, Start: g.start, End: g.end}
}

func (g *Generator) visit(p Point) {
	g.visited.Put(p)
	g.order = append(g.order, p)
}

// pushEdges shuffles the four lattice directions and pushes edges to unvisited in-bounds rooms
func (g *Generator) pushEdges(p Point) {
	dirs := jumps
	g.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, d := range dirs {
		n := p.Add(d)
		if g.grid.InBounds(n) && !g.visited.Has(n) {
			g.stack = append(g.stack, edge{From: p, To: n})
		}
	}
}
