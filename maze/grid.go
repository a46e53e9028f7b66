package maze

// Cell types
const (
	Wall    = true
	Passage = false
)

// Point is a grid coordinate, also used as a map key
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Cardinal offsets in fixed N, S, W, E order
var Cardinals = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is a fixed-size wall/passage occupancy grid stored row-major
type Grid struct {
	width, height int
	cells         []bool
}

// NewGrid creates a grid filled with walls
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([]bool, width*height)
	for i := range cells {
		cells[i] = Wall
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p addresses a cell
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// IsOpen reports whether p is a passage; out of bounds is never open
func (g *Grid) IsOpen(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells[p.Y*g.width+p.X] == Passage
}

// SetOpen carves p, ignoring out-of-bounds coordinates
func (g *Grid) SetOpen(p Point) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = Passage
}

// OpenCount returns the number of passage cells
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Passage {
			n++
		}
	}
	return n
}

// Neighbors returns the open 4-neighbours of p in N, S, W, E order
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Cardinals {
		if n := p.Add(d); g.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}
