package maze

// Maze is a carved grid with designated start and end cells, both open
type Maze struct {
	Grid       *Grid
	Start, End Point
}

// Width returns the grid width
func (m *Maze) Width() int { return m.Grid.Width() }

// Height returns the grid height
func (m *Maze) Height() int { return m.Grid.Height() }

// IsOpen reports whether p is a passage of the maze grid
func (m *Maze) IsOpen(p Point) bool { return m.Grid.IsOpen(p) }
