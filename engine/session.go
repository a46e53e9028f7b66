package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/maze-race/agent"
	"github.com/lixenwraith/maze-race/config"
	"github.com/lixenwraith/maze-race/input"
	"github.com/lixenwraith/maze-race/maze"
)

// Phase is the session state machine position
type Phase uint8

const (
	PhaseGenerating Phase = iota // Carving step by step (visualization only)
	PhasePlaying
	PhaseOver // Frozen until reset
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhasePlaying:
		return "playing"
	default:
		return "over"
	}
}

// Winner records who reached the end first
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerSolver
	WinnerTie
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerSolver:
		return "solver"
	case WinnerTie:
		return "tie"
	default:
		return "none"
	}
}

// Session owns the maze and both agents and advances them once per tick
// All mutation happens inside Tick; accessors return the current round's state
type Session struct {
	cfg       config.Game
	rng       *rand.Rand
	visualize bool
	onEvent   EventHandler

	round   uuid.UUID
	rounds  int
	phase   Phase
	winner  Winner
	elapsed time.Duration

	gen    *maze.Generator // Non-nil only while PhaseGenerating
	maze   *maze.Maze
	player *agent.Player
	solver *agent.Solver
}

// Option configures a Session
type Option func(*Session)

// WithEventHandler receives round lifecycle events
func WithEventHandler(fn EventHandler) Option {
	return func(s *Session) { s.onEvent = fn }
}

// WithRand replaces the session RNG
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// NewSession creates a session and starts its first round
func NewSession(cfg config.Game, opts ...Option) *Session {
	s := &Session{
		cfg:       cfg,
		visualize: cfg.Visualize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	s.reset()
	return s
}

// Tick advances the session by dt using the polled input
func (s *Session) Tick(dt time.Duration, in input.State) {
	if in.Visualize {
		s.visualize = !s.visualize
		if s.solver != nil {
			s.solver.SetVisualize(s.visualize, s.cfg.SearchStepsPerTick)
		}
	}

	if in.Reset {
		s.reset()
		return
	}

	switch s.phase {
	case PhaseGenerating:
		steps := max(s.cfg.GenerateStepsPerTick, 1)
		for i := 0; i < steps && s.gen.Step(); i++ {
		}
		if s.gen.Done() {
			s.begin(s.gen.Maze())
		}
	case PhasePlaying:
		s.update(dt, in)
	}
}

// reset discards the round and generates a new maze
func (s *Session) reset() {
	s.round = uuid.New()
	s.rounds++
	s.winner = WinnerNone
	s.elapsed = 0
	s.maze, s.player, s.solver = nil, nil, nil

	gen := maze.NewGenerator(maze.Config{
		Width:  s.cfg.Width,
		Height: s.cfg.Height,
		Rand:   s.rng,
	})

	if s.visualize {
		s.gen = gen
		s.phase = PhaseGenerating
		return
	}

	for gen.Step() {
	}
	s.begin(gen.Maze())
}

// begin places both agents at the start of a finished maze
func (s *Session) begin(m *maze.Maze) {
	s.gen = nil
	s.maze = m
	s.player = agent.NewPlayer(m.Start, agent.Config{
		Interval:    s.cfg.MoveInterval(),
		TrailLength: s.cfg.TrailLength,
	})
	s.solver = agent.NewSolver(m.Start, agent.Config{
		Interval:    s.cfg.SolverInterval(),
		TrailLength: s.cfg.TrailLength,
	})
	s.solver.SetVisualize(s.visualize, s.cfg.SearchStepsPerTick)
	s.phase = PhasePlaying

	log.Printf("[SESSION] round %s: %dx%d start=%v end=%v", s.round, m.Width(), m.Height(), m.Start, m.End)
	s.emit(Event{Type: EventRoundStart, Round: s.round})
}

// update steps the player, then the solver once the player has moved, then checks arrival
func (s *Session) update(dt time.Duration, in input.State) {
	s.elapsed += dt

	bumps := s.player.Bumps()
	s.player.Update(dt, in, s.maze)
	if s.player.Bumps() > bumps {
		s.emit(Event{Type: EventBump, Round: s.round, Position: s.player.Position()})
	}

	if s.player.Moved() {
		s.solver.Update(dt, s.maze)
	}

	playerDone := s.player.Arrived(s.maze.End)
	solverDone := s.solver.Arrived(s.maze.End)

	switch {
	case playerDone && solverDone:
		s.winner = WinnerTie
	case playerDone:
		s.winner = WinnerPlayer
	case solverDone:
		s.winner = WinnerSolver
	default:
		return
	}

	s.phase = PhaseOver
	log.Printf("[SESSION] round %s over: winner=%s elapsed=%v player_steps=%d solver_steps=%d",
		s.round, s.winner, s.elapsed, s.player.Steps(), s.solver.Steps())
	s.emit(Event{Type: EventFinish, Round: s.round, Winner: s.winner, Position: s.maze.End})
}

func (s *Session) emit(ev Event) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

// Phase returns the state machine position
func (s *Session) Phase() Phase { return s.phase }

// Winner returns the round result, WinnerNone until the round is over
func (s *Session) Winner() Winner { return s.winner }

// Round returns the current round ID
func (s *Session) Round() uuid.UUID { return s.round }

// Rounds returns the number of rounds started
func (s *Session) Rounds() int { return s.rounds }

// Elapsed returns play time in the current round
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Visualize reports whether step-by-step mode is on
func (s *Session) Visualize() bool { return s.visualize }

// Maze returns the current maze, nil while generating
func (s *Session) Maze() *maze.Maze { return s.maze }

// Player returns the input-driven agent, nil while generating
func (s *Session) Player() *agent.Player { return s.player }

// Solver returns the automated agent, nil while generating
func (s *Session) Solver() *agent.Solver { return s.solver }

// Generation returns the partially carved grid and start room while generating
func (s *Session) Generation() (*maze.Grid, maze.Point, bool) {
	if s.gen == nil {
		return nil, maze.Point{}, false
	}
	return s.gen.Grid(), s.gen.Start(), true
}
