package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/config"
	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/score"
)

func newTestGame(t *testing.T) *game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.World.Seed = 1
	opts := sessionOptions(cfg, &engine.MemoryStore{}, nil)

	session, err := engine.NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	g := newGame(screen, session, nil)
	g.last = time.Unix(1000, 0)
	return g
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGameStartAndStep(t *testing.T) {
	g := newTestGame(t)
	now := g.last

	if g.session.State() != engine.StateMenu {
		t.Fatalf("expected Menu without reporter, got %s", g.session.State())
	}
	if !g.handleEvent(key('s'), now) || g.session.State() != engine.StatePlaying {
		t.Fatalf("expected Playing, got %s", g.session.State())
	}

	frame := g.session.Frame()
	now = now.Add(parameter.FrameUpdateInterval)
	if !g.step(now) {
		t.Fatal("step ended the loop")
	}
	if g.session.Frame() != frame+1 {
		t.Errorf("expected one frame, got %d", g.session.Frame()-frame)
	}

	// A stall is capped
	before := g.session.Ship.TimeAlive
	g.step(now.Add(2 * time.Second))
	if d := g.session.Ship.TimeAlive - before; d > parameter.MaxFrameDelta.Seconds()+1e-9 {
		t.Errorf("frame delta not capped: %f", d)
	}
}

func TestGameThrustFromKeys(t *testing.T) {
	g := newTestGame(t)
	now := g.last
	g.handleEvent(key('s'), now)

	fuel := g.session.Ship.Fuel
	g.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now)
	g.step(now.Add(parameter.FrameUpdateInterval))

	if g.session.Ship.Fuel >= fuel {
		t.Errorf("held key must burn fuel: %f -> %f", fuel, g.session.Ship.Fuel)
	}
	if g.session.Ship.Vel.X <= 0 {
		t.Errorf("right thrust must push +X, vel=%v", g.session.Ship.Vel)
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t)
	if g.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), g.last) {
		t.Error("Ctrl+C must end the loop")
	}

	g = newTestGame(t)
	if g.handleEvent(key('q'), g.last) {
		t.Error("menu quit must end the loop")
	}
	if !g.session.Quit() {
		t.Error("session must be in Quit")
	}
}

func TestSessionOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Half = 1200
	cfg.World.PlanetsHigh = 1
	cfg.World.PlanetsLow = 2
	cfg.World.PlanetsMedium = 3
	cfg.World.PodFloor = 4
	cfg.FSM.Path = "custom.toml"

	opts := sessionOptions(cfg, &engine.MemoryStore{}, nil)
	if opts.World.Half != 1200 || opts.World.PodCount != 4 || opts.FSMPath != "custom.toml" {
		t.Errorf("unexpected options %+v", opts)
	}
	if len(opts.World.Batches) != 3 || opts.World.Batches[0].Count != 1 || opts.World.Batches[2].Count != 3 {
		t.Errorf("unexpected batches %+v", opts.World.Batches)
	}
	if opts.Reporter != nil {
		t.Error("nil reporter must leave the interface nil")
	}

	r, err := score.NewReporter("http://127.0.0.1:1/add_score", time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close(time.Second)
	if sessionOptions(cfg, &engine.MemoryStore{}, r).Reporter == nil {
		t.Error("reporter not wired")
	}
}
