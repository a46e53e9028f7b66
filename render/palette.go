package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// TrailShade darkens an agent colour for its trail
const TrailShade = 0.6

// trailFade is how far the oldest trail cell blends toward the floor
const trailFade = 0.5

// Palette holds the board colours
type Palette struct {
	Wall     colorful.Color
	Floor    colorful.Color
	End      colorful.Color
	Player   colorful.Color
	Solver   colorful.Color
	Carve    colorful.Color // Generation cursor
	Explored colorful.Color // Cells reached by a visualized search
	Route    colorful.Color // Solver cached path and search trace
	Text     colorful.Color
	Banner   colorful.Color
}

// DefaultPalette returns the standard colours
func DefaultPalette() Palette {
	return Palette{
		Wall:     rgb(26, 27, 38),
		Floor:    rgb(230, 230, 230),
		End:      rgb(0, 200, 0),
		Player:   rgb(255, 105, 180),
		Solver:   rgb(255, 165, 0),
		Carve:    rgb(100, 150, 255),
		Explored: rgb(190, 215, 255),
		Route:    rgb(255, 210, 140),
		Text:     rgb(255, 255, 255),
		Banner:   rgb(0, 0, 0),
	}
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Shade scales each channel by f
func Shade(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped()
}

// TrailColor returns the colour of trail cell i of n, oldest first
// The newest cell is the shaded agent colour; older cells fade toward the floor
func (p Palette) TrailColor(agent colorful.Color, i, n int) colorful.Color {
	base := Shade(agent, TrailShade)
	if n <= 1 {
		return base
	}
	t := trailFade * float64(n-1-i) / float64(n-1)
	return base.BlendLab(p.Floor, t).Clamped()
}

// toTcell converts to a terminal true colour
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
