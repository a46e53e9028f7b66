package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at x and returns the column after the last rune
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centered within [left, left+width) and returns its start column
func drawCentered(screen tcell.Screen, left, width, y int, s string, style tcell.Style) int {
	x := left + max((width-runewidth.StringWidth(s))/2, 0)
	drawText(screen, x, y, s, style)
	return x
}

// fillRow paints columns [x0, x1) of row y with blanks
func fillRow(screen tcell.Screen, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
