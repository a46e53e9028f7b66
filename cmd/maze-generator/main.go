package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-race/maze"
	"github.com/lixenwraith/maze-race/navigation"
)

var (
	widthFlag  = flag.Int("width", 0, "Maze width, 0 prompts (default 40)")
	heightFlag = flag.Int("height", 0, "Maze height, 0 prompts (default 30)")
	seedFlag   = flag.Int64("seed", 0, "RNG seed, 0 for time based")
	solveFlag  = flag.Bool("solve", true, "Mark the shortest start to end route")
)

func main() {
	flag.Parse()

	// Non-interactive when both dimensions are given
	if *widthFlag > 0 && *heightFlag > 0 {
		generate(os.Stdout, maze.Config{Width: *widthFlag, Height: *heightFlag, Seed: *seedFlag}, *solveFlag)
		return
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== MAZE RACE GENERATOR ===")

		w := getInt(reader, fmt.Sprintf("Width (default %d): ", maze.DefaultWidth), maze.DefaultWidth)
		h := getInt(reader, fmt.Sprintf("Height (default %d): ", maze.DefaultHeight), maze.DefaultHeight)

		generate(os.Stdout, maze.Config{Width: w, Height: h, Seed: *seedFlag}, *solveFlag)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func generate(out io.Writer, cfg maze.Config, solve bool) {
	startT := time.Now()
	m := maze.Generate(cfg)
	dur := time.Since(startT)

	fmt.Fprintf(out, "Done in %v\n", dur)
	fmt.Fprintf(out, "Grid Dimensions: %dx%d, %d open cells\n", m.Width(), m.Height(), m.Grid.OpenCount())

	var route navigation.Path
	if solve {
		route = navigation.FindPath(m, m.Start, m.End)
		fmt.Fprintf(out, "Solution Path Length: %d steps\n", route.Steps())
	}

	draw(out, m, route)
}

// draw prints S and E for the endpoints, █ for walls and • for the route
func draw(out io.Writer, m *maze.Maze, route navigation.Path) {
	onRoute := make(map[maze.Point]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}

	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			switch {
			case p == m.Start:
				b.WriteRune('S')
			case p == m.End:
				b.WriteRune('E')
			case !m.IsOpen(p):
				b.WriteRune('█')
			case onRoute[p]:
				b.WriteRune('•')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(out, b.String())
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
