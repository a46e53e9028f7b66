package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable floods from p over open cells
func reachable(g *Grid, p Point) map[Point]bool {
	seen := map[Point]bool{p: true}
	queue := []Point{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// adjacencies counts undirected edges between open 4-neighbours
func adjacencies(g *Grid) int {
	edges := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Point{x, y}
			if !g.IsOpen(p) {
				continue
			}
			if g.IsOpen(Point{x + 1, y}) {
				edges++
			}
			if g.IsOpen(Point{x, y + 1}) {
				edges++
			}
		}
	}
	return edges
}

func TestGenerate_SpanningTree(t *testing.T) {
	sizes := []struct{ w, h int }{
		{40, 30}, {41, 31}, {1, 1}, {2, 2}, {3, 1}, {1, 7}, {9, 4},
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 25; seed++ {
			m := Generate(Config{Width: sz.w, Height: sz.h, Seed: seed})
			require.NotNil(t, m)

			rooms := ((sz.w + 1) / 2) * ((sz.h + 1) / 2)
			open := m.Grid.OpenCount()

			assert.Equal(t, 2*rooms-1, open, "size %dx%d seed %d", sz.w, sz.h, seed)
			assert.Equal(t, open-1, adjacencies(m.Grid), "cycle in %dx%d seed %d", sz.w, sz.h, seed)
			assert.Len(t, reachable(m.Grid, m.Start), open, "disconnected %dx%d seed %d", sz.w, sz.h, seed)
		}
	}
}

func TestGenerate_StartAndEnd(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		m := Generate(Config{Width: 40, Height: 30, Seed: seed})

		assert.True(t, m.IsOpen(m.Start))
		assert.True(t, m.IsOpen(m.End))
		assert.Zero(t, m.Start.X%2)
		assert.Zero(t, m.Start.Y%2)
		assert.Zero(t, m.End.X%2, "end must be a lattice room")
		assert.Zero(t, m.End.Y%2, "end must be a lattice room")
	}
}

func TestGenerate_SingleRoomEndEqualsStart(t *testing.T) {
	m := Generate(Config{Width: 1, Height: 1, Seed: 7})

	assert.Equal(t, Point{0, 0}, m.Start)
	assert.Equal(t, m.Start, m.End)
}

func TestGenerate_DefaultsForNonPositiveSize(t *testing.T) {
	m := Generate(Config{Seed: 3})

	assert.Equal(t, DefaultWidth, m.Width())
	assert.Equal(t, DefaultHeight, m.Height())
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(Config{Width: 21, Height: 15, Seed: 42})
	b := Generate(Config{Width: 21, Height: 15, Rand: rand.New(rand.NewSource(42))})

	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.End, b.End)
	assert.Equal(t, a.Grid, b.Grid)
}

func TestGenerator_StepMatchesGenerate(t *testing.T) {
	want := Generate(Config{Width: 17, Height: 11, Seed: 9})

	gen := NewGenerator(Config{Width: 17, Height: 11, Seed: 9})
	assert.Nil(t, gen.Maze(), "maze unavailable until done")

	steps := 0
	for gen.Step() {
		steps++
	}

	require.True(t, gen.Done())
	assert.False(t, gen.Step(), "step after completion is a no-op")
	assert.Equal(t, 9*6-1, steps, "one carve per step")
	assert.Equal(t, 9*6, gen.Visited())

	got := gen.Maze()
	assert.Equal(t, want.Grid, got.Grid)
	assert.Equal(t, want.Start, got.Start)
	assert.Equal(t, want.End, got.End)
}

func TestGenerator_ObserverSeesEveryCarve(t *testing.T) {
	var carves []Carve
	m := Generate(Config{
		Width: 11, Height: 9, Seed: 5,
		OnCarve: func(c Carve) {
			carves = append(carves, Carve{From: c.From, Mid: c.Mid, To: c.To})
			assert.True(t, c.Grid.IsOpen(c.Mid))
			assert.True(t, c.Grid.IsOpen(c.To))
		},
	})

	require.Len(t, carves, 6*5-1)
	for _, c := range carves {
		dx, dy := c.To.X-c.From.X, c.To.Y-c.From.Y
		assert.Equal(t, 2, abs(dx)+abs(dy))
		assert.True(t, dx == 0 || dy == 0)
		assert.Equal(t, Point{c.From.X + dx/2, c.From.Y + dy/2}, c.Mid)
		assert.True(t, m.IsOpen(c.Mid))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
