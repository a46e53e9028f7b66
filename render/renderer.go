// Package render draws a race session onto a tcell screen.
//
// Each maze cell spans CellWidth terminal columns so the board keeps a
// roughly square aspect. The board is centered with one status row beneath it.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/maze-race/agent"
	"github.com/lixenwraith/maze-race/engine"
	"github.com/lixenwraith/maze-race/maze"
)

// CellWidth is the number of terminal columns per maze cell
const CellWidth = 2

const statusRows = 1

// Banner lines shown when a round is over
const (
	RestartHint = "R to Restart"
	bannerPad   = 2
)

// HUD carries front-end state the session does not own
type HUD struct {
	Muted bool
	Sound bool // Audio device available
}

// Renderer draws sessions onto a screen
type Renderer struct {
	screen  tcell.Screen
	palette Palette
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Origin returns the terminal cell of maze point (0,0) for a w×h board
func (r *Renderer) Origin(w, h int) (int, int) {
	sw, sh := r.screen.Size()
	return max((sw-w*CellWidth)/2, 0), max((sh-statusRows-h)/2, 0)
}

// Draw renders one frame of s and shows it
func (r *Renderer) Draw(s *engine.Session, hud HUD) {
	r.screen.Clear()

	if grid, start, ok := s.Generation(); ok {
		ox, oy := r.Origin(grid.Width(), grid.Height())
		r.drawGrid(grid, ox, oy)
		r.fillCell(ox, oy, start, r.palette.Carve)
		r.drawStatus(r.statusRow(oy, grid.Height()), s, hud)
	} else if m := s.Maze(); m != nil {
		ox, oy := r.Origin(m.Width(), m.Height())
		statusY := r.statusRow(oy, m.Height())
		r.drawGrid(m.Grid, ox, oy)
		r.fillCell(ox, oy, m.End, r.palette.End)
		if s.Visualize() {
			r.drawSearch(ox, oy, m, s.Solver())
		}
		r.drawTrail(ox, oy, s.Player().Trail(), r.palette.Player)
		r.drawTrail(ox, oy, s.Solver().Trail(), r.palette.Solver)
		r.drawAgents(ox, oy, s.Player().Position(), s.Solver().Position())
		r.drawStatus(statusY, s, hud)
		if s.Phase() == engine.PhaseOver {
			r.drawBanner(ox, oy, m.Width(), m.Height(), statusY, s.Winner())
		}
	}

	r.screen.Show()
}

// statusRow is the row under the board, kept on screen
func (r *Renderer) statusRow(oy, h int) int {
	_, sh := r.screen.Size()
	return max(min(oy+h, sh-1), 0)
}

func (r *Renderer) style(bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Background(toTcell(bg))
}

// fillCell paints every column of maze cell p
func (r *Renderer) fillCell(ox, oy int, p maze.Point, c colorful.Color) {
	st := r.style(c)
	for i := 0; i < CellWidth; i++ {
		r.screen.SetContent(ox+p.X*CellWidth+i, oy+p.Y, ' ', nil, st)
	}
}

func (r *Renderer) drawGrid(g *maze.Grid, ox, oy int) {
	wall, floor := r.style(r.palette.Wall), r.style(r.palette.Floor)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			st := wall
			if g.IsOpen(maze.Point{X: x, Y: y}) {
				st = floor
			}
			for i := 0; i < CellWidth; i++ {
				r.screen.SetContent(ox+x*CellWidth+i, oy+y, ' ', nil, st)
			}
		}
	}
}

// drawSearch shades cells reached by an in-flight search, or the cached route when idle
func (r *Renderer) drawSearch(ox, oy int, m *maze.Maze, solver *agent.Solver) {
	snap, searching := solver.SearchSnapshot()
	if !searching {
		for _, p := range solver.Path() {
			if p != m.End {
				r.fillCell(ox, oy, p, r.palette.Route)
			}
		}
		return
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			if p != m.End && solver.Reached(p) >= 0 {
				r.fillCell(ox, oy, p, r.palette.Explored)
			}
		}
	}
	for _, p := range snap.Trace {
		if p != m.End {
			r.fillCell(ox, oy, p, r.palette.Route)
		}
	}
	r.fillCell(ox, oy, snap.Current, r.palette.Carve)
}

func (r *Renderer) drawTrail(ox, oy int, trail []maze.Point, agentColor colorful.Color) {
	for i, p := range trail {
		r.fillCell(ox, oy, p, r.palette.TrailColor(agentColor, i, len(trail)))
	}
}

// drawAgents paints both agents; a shared cell is split between them
func (r *Renderer) drawAgents(ox, oy int, player, solver maze.Point) {
	if player != solver {
		r.fillCell(ox, oy, solver, r.palette.Solver)
		r.fillCell(ox, oy, player, r.palette.Player)
		return
	}
	x, y := ox+player.X*CellWidth, oy+player.Y
	r.screen.SetContent(x, y, ' ', nil, r.style(r.palette.Player))
	for i := 1; i < CellWidth; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, r.style(r.palette.Solver))
	}
}

// WinnerText is the banner headline for a finished round
func WinnerText(w engine.Winner) string {
	switch w {
	case engine.WinnerPlayer:
		return "You win!"
	case engine.WinnerSolver:
		return "Solver wins"
	case engine.WinnerTie:
		return "Tie"
	default:
		return ""
	}
}

// drawBanner centers the result and restart hint over the board, or the screen if the board is narrower
// The banner stays above the status row
func (r *Renderer) drawBanner(ox, oy, w, h, statusY int, winner engine.Winner) {
	lines := []string{WinnerText(winner), RestartHint}

	textWidth := 0
	for _, l := range lines {
		textWidth = max(textWidth, runewidth.StringWidth(l))
	}
	bandWidth := textWidth + 2*bannerPad

	left, width := ox, w*CellWidth
	if width < bandWidth {
		left = 0
		width, _ = r.screen.Size()
	}
	bandLeft := left + max((width-bandWidth)/2, 0)

	st := tcell.StyleDefault.
		Foreground(toTcell(r.palette.Banner)).
		Background(toTcell(r.palette.Text)).
		Bold(true)

	top := oy + max(h/2-len(lines)/2, 0)
	top = max(min(top, statusY-len(lines)), 0)
	for i, l := range lines {
		fillRow(r.screen, bandLeft, bandLeft+bandWidth, top+i, st)
		drawCentered(r.screen, bandLeft, bandWidth, top+i, l, st)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// StatusText formats the status row
func StatusText(s *engine.Session, hud HUD) string {
	var state string
	switch s.Phase() {
	case engine.PhaseGenerating:
		state = "generating"
	case engine.PhaseOver:
		state = WinnerText(s.Winner())
	default:
		state = fmt.Sprintf("player %d  solver %d", s.Player().Steps(), s.Solver().Steps())
	}

	mute := onOff(hud.Muted)
	if !hud.Sound {
		mute = "n/a"
	}
	return fmt.Sprintf("round %d  %s  %.1fs  [r]estart [v]isualize:%s [m]ute:%s [q]uit",
		s.Rounds(), state, s.Elapsed().Seconds(), onOff(s.Visualize()), mute)
}

func (r *Renderer) drawStatus(y int, s *engine.Session, hud HUD) {
	sw, _ := r.screen.Size()
	text := runewidth.Truncate(StatusText(s, hud), sw, "…")
	st := tcell.StyleDefault.Foreground(toTcell(r.palette.Text)).Background(toTcell(r.palette.Wall))
	fillRow(r.screen, 0, sw, y, st)
	drawCentered(r.screen, 0, sw, y, text, st)
}
