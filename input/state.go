package input

// Direction is one of the four movement directions
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// priority order when several directions are held and the latest one is not
var dirOrder = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the unit grid offset for d
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// State is a polled input snapshot for one tick
type State struct {
	Up, Left, Down, Right bool
	Last                  Direction // Most recently pressed direction

	Reset     bool // New round requested
	Visualize bool // Toggle step-by-step visualization
	Mute      bool // Toggle audio
	Quit      bool
}

// Pressed reports whether d is held
func (s State) Pressed(d Direction) bool {
	switch d {
	case DirUp:
		return s.Up
	case DirLeft:
		return s.Left
	case DirDown:
		return s.Down
	case DirRight:
		return s.Right
	}
	return false
}

// Direction resolves the held directions to a single move, preferring the latest press
func (s State) Direction() Direction {
	if s.Last != DirNone && s.Pressed(s.Last) {
		return s.Last
	}
	for _, d := range dirOrder {
		if s.Pressed(d) {
			return d
		}
	}
	return DirNone
}

// Hold builds a snapshot with exactly the given directions held, last one most recent
func Hold(dirs ...Direction) State {
	var s State
	for _, d := range dirs {
		switch d {
		case DirUp:
			s.Up = true
		case DirLeft:
			s.Left = true
		case DirDown:
			s.Down = true
		case DirRight:
			s.Right = true
		}
		s.Last = d
	}
	return s
}
