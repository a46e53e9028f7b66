package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/maze-race/audio"
	"github.com/lixenwraith/maze-race/config"
	"github.com/lixenwraith/maze-race/engine"
	"github.com/lixenwraith/maze-race/input"
	"github.com/lixenwraith/maze-race/render"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	maxFrameDelta = 250 * time.Millisecond
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		cfg, err = parseFlags(os.Args[1:], cfg)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-race: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("[MAIN] exit: %v", err)
		fmt.Fprintf(os.Stderr, "maze-race: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags applies command line overrides on top of cfg
func parseFlags(args []string, cfg config.Config) (config.Config, error) {
	fs := flag.NewFlagSet("maze-race", flag.ContinueOnError)
	fs.IntVar(&cfg.Game.Width, "width", cfg.Game.Width, "Maze width in cells")
	fs.IntVar(&cfg.Game.Height, "height", cfg.Game.Height, "Maze height in cells")
	fs.Int64Var(&cfg.Game.Seed, "seed", cfg.Game.Seed, "RNG seed, 0 for time based")
	fs.Float64Var(&cfg.Game.MoveRate, "rate", cfg.Game.MoveRate, "Player moves per second")
	fs.Float64Var(&cfg.Game.Slowness, "slowness", cfg.Game.Slowness, "Solver interval multiplier")
	fs.IntVar(&cfg.Game.TrailLength, "trail", cfg.Game.TrailLength, "Trail length per agent")
	fs.BoolVar(&cfg.Game.Visualize, "visualize", cfg.Game.Visualize, "Animate maze generation and solver searches")
	fs.DurationVar(&cfg.Game.HoldWindow, "hold", cfg.Game.HoldWindow, "How long a key press counts as held")
	fs.BoolVar(&cfg.Audio.Enabled, "sound", cfg.Audio.Enabled, "Enable sound cues")
	fs.Float64Var(&cfg.Audio.MasterVolume, "volume", cfg.Audio.MasterVolume, "Master volume 0.0 - 1.0")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs/maze-race.log")

	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}
	return cfg, nil
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMAZE-RACE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[AUDIO] disabled: %v", err)
	}
	defer sound.Cleanup()

	tracker := input.NewTracker(cfg.Game.HoldWindow)
	session := engine.NewSession(cfg.Game, engine.WithEventHandler(func(ev engine.Event) {
		if ev.Type == engine.EventRoundStart {
			tracker.Release()
		}
		sound.HandleEvent(ev)
	}))
	renderer := render.NewRenderer(screen, render.DefaultPalette())
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), maxFrameDelta)

	events := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			tracker.HandleEvent(ev)

		case <-ticker.C:
			dt, now := clock.Tick()
			in := tracker.Snapshot(now)
			if in.Quit {
				log.Printf("[MAIN] quit after %d rounds", session.Rounds())
				return nil
			}
			if in.Mute {
				log.Printf("[AUDIO] muted=%v", sound.ToggleMute())
			}

			session.Tick(dt, in)
			renderer.Draw(session, render.HUD{Muted: sound.Muted(), Sound: sound.Available()})
		}
	}
}
