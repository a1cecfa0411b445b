package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/audio"
	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/config"
	"github.com/lixenwraith/gravity-ship/core"
	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/score"
	"github.com/lixenwraith/gravity-ship/service"
	"github.com/lixenwraith/gravity-ship/world"
)

var (
	configFlag      = flag.String("config", config.DefaultPath, "Path to TOML config file")
	debugFlag       = flag.Bool("debug", false, "Write logs to logs/gravity-ship.log")
	muteFlag        = flag.Bool("mute", false, "Start with sound disabled")
	seedFlag        = flag.Int64("seed", 0, "World seed, 0 keeps the config value (0 there means time based)")
	nameFlag        = flag.String("name", "", "Pilot name for score reporting, skips name entry")
	writeConfigFlag = flag.Bool("write-config", false, "Write the effective config to -config and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *seedFlag != 0 {
		cfg.World.Seed = *seedFlag
	}

	if *writeConfigFlag {
		if err := config.Save(*configFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", *configFlag)
		return
	}

	audioService := audio.NewService()
	scoreService := score.NewService()

	hub := service.NewHub()
	for _, s := range []service.Service{audioService, scoreService} {
		if err := hub.Register(s); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if err := hub.InitAll(map[string][]any{
		audioService.Name(): {audio.FromConfig(cfg.Audio), *muteFlag},
		scoreService.Name(): {cfg.Score.Endpoint, cfg.ScoreTimeout()},
	}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	opts := sessionOptions(cfg, score.NewFileStore(cfg.Score.HighScoreFile), scoreService.Reporter())
	opts.PlayerName = *nameFlag

	session, err := engine.NewSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}
	if h := audioService.Handler(); h != nil {
		session.RegisterHandler(h)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()

	screen.SetTitle(parameter.WindowTitle)
	screen.EnableMouse()
	screen.HideCursor()

	newGame(screen, session, audioService.Manager()).run()
	log.Printf("session ended at frame %d, high score %.0f", session.Frame(), session.HighScore)
}

// sessionOptions maps runtime config onto session options
// reporter is only set when non-nil so the interface stays nil and name entry is skipped
func sessionOptions(cfg *config.Config, store engine.HighScoreStore, reporter *score.Reporter) engine.Options {
	opts := engine.DefaultOptions()

	opts.World.Half = cfg.Arena.Half
	opts.World.Batches = []world.Batch{
		{Type: component.PlanetHigh, Count: cfg.World.PlanetsHigh},
		{Type: component.PlanetLow, Count: cfg.World.PlanetsLow},
		{Type: component.PlanetMedium, Count: cfg.World.PlanetsMedium},
	}
	opts.World.PodCount = cfg.World.PodFloor

	opts.FuelRate = cfg.Ship.FuelRate
	opts.Softening = cfg.Ship.Softening
	opts.Seed = cfg.World.Seed
	opts.Store = store
	opts.FSMPath = cfg.FSM.Path

	if reporter != nil {
		opts.Reporter = reporter
	}
	return opts
}
