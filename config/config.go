// Package config resolves game settings from defaults, an optional .env
// file and MAZE_RACE_* environment variables. Command line flags in the
// binaries are applied on top of the loaded values.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/lixenwraith/maze-race/agent"
	"github.com/lixenwraith/maze-race/input"
	"github.com/lixenwraith/maze-race/maze"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "MAZE_RACE_"

// DefaultEnvFile is loaded when present in the working directory
const DefaultEnvFile = ".env"

// Game tunes maze size and agent pacing
type Game struct {
	Width, Height int
	TrailLength   int
	MoveRate      float64 // Player moves per second
	Slowness      float64 // Solver interval multiplier
	Seed          int64   // 0 = time based
	HoldWindow    time.Duration

	Visualize            bool // Step-by-step generation and search
	GenerateStepsPerTick int
	SearchStepsPerTick   int
}

// Audio toggles and scales sound cues
type Audio struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
}

// Config is the full runtime configuration
type Config struct {
	Game  Game
	Audio Audio
	Debug bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Game: Game{
			Width:                maze.DefaultWidth,
			Height:               maze.DefaultHeight,
			TrailLength:          agent.DefaultTrailLength,
			MoveRate:             30,
			Slowness:             agent.DefaultSlowness,
			HoldWindow:           input.DefaultHoldWindow,
			GenerateStepsPerTick: 4,
			SearchStepsPerTick:   agent.DefaultSearchStepsPerTick,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.5,
		},
	}
}

// MoveInterval converts the move rate into the player step period
func (g Game) MoveInterval() time.Duration {
	if g.MoveRate <= 0 {
		return agent.DefaultMoveInterval
	}
	return time.Duration(float64(time.Second) / g.MoveRate)
}

// SolverInterval returns the slowed step period of the automated agent
func (g Game) SolverInterval() time.Duration {
	return agent.SolverInterval(g.MoveInterval(), g.Slowness)
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.Width < 1 || g.Height < 1:
		return errors.Errorf("grid size %dx%d must be positive", g.Width, g.Height)
	case g.TrailLength < 1:
		return errors.Errorf("trail length %d must be positive", g.TrailLength)
	case g.MoveRate <= 0:
		return errors.Errorf("move rate %g must be positive", g.MoveRate)
	case g.Slowness <= 0:
		return errors.Errorf("slowness %g must be positive", g.Slowness)
	case g.GenerateStepsPerTick < 1 || g.SearchStepsPerTick < 1:
		return errors.New("visualization steps per tick must be positive")
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return errors.Errorf("master volume %g outside [0, 1]", c.Audio.MasterVolume)
	}
	return nil
}

// Load reads DefaultEnvFile if it exists, then applies environment overrides
func Load() (Config, error) {
	if _, err := os.Stat(DefaultEnvFile); err == nil {
		if err := godotenv.Load(DefaultEnvFile); err != nil {
			return Config{}, errors.Wrapf(err, "load %s", DefaultEnvFile)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies MAZE_RACE_* overrides from lookup onto the defaults
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	r := envReader{lookup: lookup}

	r.intVar("WIDTH", &cfg.Game.Width)
	r.intVar("HEIGHT", &cfg.Game.Height)
	r.intVar("TRAIL_LENGTH", &cfg.Game.TrailLength)
	r.floatVar("MOVE_RATE", &cfg.Game.MoveRate)
	r.floatVar("SLOWNESS", &cfg.Game.Slowness)
	r.int64Var("SEED", &cfg.Game.Seed)
	r.durationVar("HOLD_WINDOW", &cfg.Game.HoldWindow)
	r.boolVar("VISUALIZE", &cfg.Game.Visualize)
	r.intVar("GENERATE_STEPS", &cfg.Game.GenerateStepsPerTick)
	r.intVar("SEARCH_STEPS", &cfg.Game.SearchStepsPerTick)
	r.boolVar("AUDIO_ENABLED", &cfg.Audio.Enabled)
	r.boolVar("DEBUG", &cfg.Debug)

	// Volume is given as 0-100
	var volume int
	if r.intVar("MASTER_VOLUME", &volume) {
		cfg.Audio.MasterVolume = float64(volume) / 100.0
	}

	if r.err != nil {
		return Config{}, r.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// envReader parses prefixed variables, keeping the first error
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) get(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.lookup(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (r *envReader) fail(key string, err error) bool {
	r.err = errors.Wrapf(err, "environment variable %s%s", EnvPrefix, key)
	return false
}

func (r *envReader) intVar(key string, dst *int) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return r.fail(key, err)
	}
	*dst = n
	return true
}

func (r *envReader) int64Var(key string, dst *int64) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return r.fail(key, err)
	}
	*dst = n
	return true
}

func (r *envReader) floatVar(key string, dst *float64) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return r.fail(key, err)
	}
	*dst = f
	return true
}

func (r *envReader) boolVar(key string, dst *bool) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return r.fail(key, err)
	}
	*dst = b
	return true
}

func (r *envReader) durationVar(key string, dst *time.Duration) bool {
	v, ok := r.get(key)
	if !ok {
		return false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return r.fail(key, err)
	}
	*dst = d
	return true
}
