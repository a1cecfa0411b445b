package engine

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/economy"
	"github.com/lixenwraith/gravity-ship/event"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
	"github.com/lixenwraith/gravity-ship/world"
)

const frame = parameter.FrameUpdateInterval

type reportCall struct {
	name  string
	score float64
}

type recordingReporter struct {
	calls []reportCall
}

func (r *recordingReporter) Report(name string, score float64) {
	r.calls = append(r.calls, reportCall{name, score})
}

type recordingHandler struct {
	types []event.EventType
	seen  []event.GameEvent
}

func (h *recordingHandler) HandleEvent(s *Session, ev event.GameEvent) {
	h.seen = append(h.seen, ev)
}

func (h *recordingHandler) EventTypes() []event.EventType { return h.types }

func (h *recordingHandler) count(et event.EventType) int {
	n := 0
	for _, ev := range h.seen {
		if ev.Type == et {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T, mutate func(*Options)) (*Session, *MemoryStore) {
	t.Helper()
	store := &MemoryStore{}
	opts := DefaultOptions()
	opts.Seed = 1
	opts.Store = store
	if mutate != nil {
		mutate(&opts)
	}
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, store
}

// startRun moves from Menu into Playing and replaces the world with the given planets and no pods
func startRun(t *testing.T, s *Session, planets ...component.Planet) {
	t.Helper()
	if !s.Activate(RegionMenuStart) {
		t.Fatalf("start failed from %s", s.State())
	}
	if s.State() != StatePlaying {
		t.Fatalf("expected Playing, got %s", s.State())
	}
	s.World.Planets = planets
	s.World.Pods = nil
	s.World.Floor = 0
}

func TestNameEntrySkippedWithoutReporter(t *testing.T) {
	s, _ := newTestSession(t, nil)
	if s.State() != StateMenu {
		t.Fatalf("expected Menu without reporter, got %s", s.State())
	}
	if s.ReportingEnabled() {
		t.Error("reporting should be disabled")
	}
}

func TestNameEntryPresetName(t *testing.T) {
	s, _ := newTestSession(t, func(o *Options) {
		o.Reporter = &recordingReporter{}
		o.PlayerName = "  Vega "
	})
	if s.State() != StateMenu || s.PlayerName != "Vega" {
		t.Fatalf("expected preset name to skip entry, got state=%s name=%q", s.State(), s.PlayerName)
	}
}

func TestNameEntry(t *testing.T) {
	s, _ := newTestSession(t, func(o *Options) { o.Reporter = &recordingReporter{} })
	if s.State() != StateEnteringName {
		t.Fatalf("expected EnteringName, got %s", s.State())
	}

	// Whitespace only does not confirm
	s.TypeRune(' ')
	s.TypeRune(' ')
	if s.ConfirmName() {
		t.Fatal("blank name confirmed")
	}
	if s.State() != StateEnteringName {
		t.Fatalf("left name entry on blank name: %s", s.State())
	}
	s.Backspace()
	s.Backspace()
	s.Backspace()
	if s.NameText() != "" {
		t.Fatalf("expected empty buffer, got %q", s.NameText())
	}

	// Non-printable ignored, length capped
	s.TypeRune('\x07')
	for _, r := range "Commander Shepard" {
		s.TypeRune(r)
	}
	if got := s.NameText(); got != "Commander Sh" {
		t.Fatalf("expected 12-char buffer, got %q", got)
	}
	s.Backspace()
	s.TypeRune(' ')

	if !s.ConfirmName() {
		t.Fatal("name not confirmed")
	}
	if s.PlayerName != "Commander S" {
		t.Errorf("expected trimmed name, got %q", s.PlayerName)
	}
	if s.State() != StateMenu {
		t.Errorf("expected Menu, got %s", s.State())
	}

	// Typing outside name entry has no effect
	s.TypeRune('x')
	if s.NameText() != "Commander S " {
		t.Errorf("buffer changed outside name entry: %q", s.NameText())
	}
}

func TestMenuNavigation(t *testing.T) {
	s, _ := newTestSession(t, nil)

	tests := []struct {
		region string
		want   string
	}{
		{RegionMenuInstructions, StateInstructions},
		{RegionMenuShop, StateInstructions}, // not reachable from Instructions
		{RegionBack, StateMenu},
		{RegionMenuShop, StateUpgradeShop},
		{RegionGameOverMenu, StateUpgradeShop},
		{RegionBack, StateMenu},
		{RegionBack, StateMenu},
		{RegionMenuQuit, StateQuit},
	}

	for i, tc := range tests {
		s.Activate(tc.region)
		if s.State() != tc.want {
			t.Fatalf("step %d (%s): expected %s, got %s", i, tc.region, tc.want, s.State())
		}
	}
	if !s.Quit() {
		t.Error("Quit should report true")
	}
	if s.Activate("menu.nowhere") {
		t.Error("unknown region handled")
	}
}

func TestStartResetsRun(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.Upgrades.Coins = 100
	s.Activate(RegionMenuShop)
	s.Activate(RegionShopMaxFuel)
	s.Activate(RegionBack)

	s.Activate(RegionMenuStart)
	if s.State() != StatePlaying {
		t.Fatalf("expected Playing, got %s", s.State())
	}
	if s.Ship.Pos != (vmath.Vec2F{}) || !s.Ship.Alive || s.Ship.CoinsAwarded != 0 {
		t.Errorf("ship not fresh: %+v", s.Ship)
	}
	if s.Ship.Fuel != parameter.MaxFuelBase+parameter.MaxFuelIncrement {
		t.Errorf("expected fuel at upgraded max, got %f", s.Ship.Fuel)
	}
	if len(s.World.Planets) == 0 || component.ActivePods(s.World.Pods) != parameter.FuelPodFloor {
		t.Errorf("world not generated: planets=%d pods=%d", len(s.World.Planets), len(s.World.Pods))
	}
	if s.Upgrades.Coins != 90 {
		t.Errorf("upgrades reset on start: coins=%d", s.Upgrades.Coins)
	}
}

// TestDeathFlow verifies death moves to GameOver and records and reports exactly once
func TestDeathFlow(t *testing.T) {
	rep := &recordingReporter{}
	s, store := newTestSession(t, func(o *Options) {
		o.Reporter = rep
		o.PlayerName = "Ace"
	})
	h := &recordingHandler{types: []event.EventType{event.EventShipDestroyed, event.EventHighScore}}
	s.RegisterHandler(h)

	// Ship placed exactly at contact distance dies on the next update
	planet := component.NewPlanet(vmath.Vec2F{X: component.ShipPlanetContactDistance}, vmath.Vec2F{}, component.PlanetHigh)
	startRun(t, s, planet)
	s.Update(frame, Input{})

	if s.Ship.Alive {
		t.Fatal("ship should be dead")
	}
	if s.State() != StateGameOver {
		t.Fatalf("expected GameOver, got %s", s.State())
	}
	if s.Score <= 0 {
		t.Fatalf("expected positive score, got %f", s.Score)
	}
	if store.Saves != 1 || store.Value != s.Score || s.HighScore != s.Score {
		t.Errorf("high score not recorded: saves=%d stored=%f high=%f score=%f", store.Saves, store.Value, s.HighScore, s.Score)
	}
	if len(rep.calls) != 1 || rep.calls[0].name != "Ace" || rep.calls[0].score != s.Score {
		t.Fatalf("unexpected report calls: %+v", rep.calls)
	}
	if s.ExplosionTimer <= 0 || s.ShakeTimer <= 0 {
		t.Errorf("feedback timers not armed: explosion=%f shake=%f", s.ExplosionTimer, s.ShakeTimer)
	}

	// Further frames never re-trigger
	for i := 0; i < 120; i++ {
		s.Update(frame, Input{})
	}
	if len(rep.calls) != 1 || store.Saves != 1 {
		t.Errorf("death side effects repeated: reports=%d saves=%d", len(rep.calls), store.Saves)
	}
	if h.count(event.EventShipDestroyed) != 1 || h.count(event.EventHighScore) != 1 {
		t.Errorf("unexpected event counts: %+v", h.seen)
	}
	if s.ExplosionTimer != 0 || s.ShakeTimer != 0 || s.ShakeOffset != (vmath.Vec2F{}) {
		t.Errorf("feedback timers did not expire: explosion=%f shake=%f offset=%v", s.ExplosionTimer, s.ShakeTimer, s.ShakeOffset)
	}

	s.Activate(RegionGameOverMenu)
	if s.State() != StateMenu {
		t.Errorf("expected Menu after game over, got %s", s.State())
	}
}

func TestDeathBelowHighScore(t *testing.T) {
	rep := &recordingReporter{}
	s, store := newTestSession(t, func(o *Options) {
		o.Reporter = rep
		o.PlayerName = "Ace"
	})
	store.Value = 1e9
	s.HighScore = 1e9

	startRun(t, s, component.NewPlanet(vmath.Vec2F{X: 20}, vmath.Vec2F{}, component.PlanetLow))
	s.Update(frame, Input{})

	if s.State() != StateGameOver {
		t.Fatalf("expected GameOver, got %s", s.State())
	}
	if store.Saves != 0 || s.HighScore != 1e9 {
		t.Errorf("high score overwritten: saves=%d high=%f", store.Saves, s.HighScore)
	}
	if len(rep.calls) != 1 {
		t.Errorf("expected report regardless of record, got %d", len(rep.calls))
	}
}

func TestSaveFailureDoesNotBlock(t *testing.T) {
	s, store := newTestSession(t, nil)
	store.Err = errors.New("disk full")

	startRun(t, s, component.NewPlanet(vmath.Vec2F{X: 10}, vmath.Vec2F{}, component.PlanetLow))
	s.Ship.Vel = vmath.Vec2F{X: -100}
	s.Update(frame, Input{})

	if s.State() != StateGameOver {
		t.Fatalf("expected GameOver, got %s", s.State())
	}
	if s.HighScore != s.Score {
		t.Errorf("in-memory high score should update despite save failure")
	}
}

func TestShakeOffsetBounded(t *testing.T) {
	s, _ := newTestSession(t, nil)
	startRun(t, s, component.NewPlanet(vmath.Vec2F{X: 5}, vmath.Vec2F{}, component.PlanetLow))
	s.Update(frame, Input{})

	for i := 0; i < 10; i++ {
		s.Update(frame, Input{})
		if math.Abs(s.ShakeOffset.X) > parameter.ShakeAmplitude || math.Abs(s.ShakeOffset.Y) > parameter.ShakeAmplitude {
			t.Fatalf("shake offset out of range: %v", s.ShakeOffset)
		}
	}
}

// TestCoinAccrualDuringPlay credits coin bands as distance grows, never twice
func TestCoinAccrualDuringPlay(t *testing.T) {
	s, _ := newTestSession(t, nil)
	h := &recordingHandler{types: []event.EventType{event.EventCoinsAwarded}}
	s.RegisterHandler(h)
	startRun(t, s)

	s.Ship.Distance = 25000
	s.Update(frame, Input{})
	if s.Upgrades.Coins != 25 || s.Ship.CoinsAwarded != 25 {
		t.Fatalf("expected 25 coins, got coins=%d awarded=%d", s.Upgrades.Coins, s.Ship.CoinsAwarded)
	}

	s.Update(frame, Input{})
	if s.Upgrades.Coins != 25 {
		t.Errorf("coins granted twice: %d", s.Upgrades.Coins)
	}

	s.Ship.Distance = 34000
	s.Update(frame, Input{})
	if s.Upgrades.Coins != 34 {
		t.Errorf("expected 34 coins, got %d", s.Upgrades.Coins)
	}
	if h.count(event.EventCoinsAwarded) != 2 {
		t.Errorf("expected 2 coin events, got %d", h.count(event.EventCoinsAwarded))
	}

	// New run restarts the band but keeps the balance
	s.Activate(RegionMenuQuit) // ignored while playing
	if s.State() != StatePlaying {
		t.Fatalf("quit must not apply while playing")
	}
}

func TestThrustAndFuelDuringPlay(t *testing.T) {
	s, _ := newTestSession(t, nil)
	startRun(t, s)

	in := Input{}
	in.Right = true
	for i := 0; i < 60; i++ {
		s.Update(frame, in)
	}
	if s.Ship.Vel.X <= 0 || s.Ship.Pos.X <= 0 {
		t.Errorf("expected rightward motion, got pos=%v vel=%v", s.Ship.Pos, s.Ship.Vel)
	}
	want := parameter.MaxFuelBase - parameter.FuelConsumptionRate*frame.Seconds()*60
	if math.Abs(s.Ship.Fuel-want) > 1e-9 {
		t.Errorf("expected fuel %f, got %f", want, s.Ship.Fuel)
	}
	if s.Ship.TimeAlive <= 0 || s.Score <= 0 {
		t.Errorf("expected time and score to accrue, got time=%f score=%f", s.Ship.TimeAlive, s.Score)
	}
}

func TestPodPickupAndFloor(t *testing.T) {
	s, _ := newTestSession(t, nil)
	h := &recordingHandler{types: []event.EventType{event.EventPodCollected}}
	s.RegisterHandler(h)
	startRun(t, s)

	s.World.Floor = 5
	s.World.Pods = []component.FuelPod{{Pos: vmath.Vec2F{X: 1}}, {Pos: vmath.Vec2F{Y: 2}}}
	s.Ship.Fuel = 10
	s.Update(frame, Input{})

	if h.count(event.EventPodCollected) != 1 {
		t.Fatalf("expected one pickup event, got %d", h.count(event.EventPodCollected))
	}
	p := h.seen[0].Payload.(*event.PodCollectedPayload)
	if p.Count != 2 {
		t.Errorf("expected 2 pods collected, got %d", p.Count)
	}
	if s.Ship.Fuel != parameter.MaxFuelBase {
		t.Errorf("expected fuel capped at max, got %f", s.Ship.Fuel)
	}
	if active := component.ActivePods(s.World.Pods); active != 5 {
		t.Errorf("expected floor of 5 restored, got %d", active)
	}
}

func TestShopPurchases(t *testing.T) {
	s, _ := newTestSession(t, nil)
	h := &recordingHandler{types: []event.EventType{event.EventPurchase}}
	s.RegisterHandler(h)

	// Shop regions are inert outside the shop
	s.Upgrades.Coins = 15
	if s.Activate(RegionShopThrust) {
		t.Fatal("purchase accepted outside shop")
	}

	s.Activate(RegionMenuShop)
	if !s.Activate(RegionShopThrust) || s.Upgrades.Thrust() != parameter.ThrustBase+parameter.ThrustIncrement {
		t.Fatalf("thrust purchase failed: thrust=%f", s.Upgrades.Thrust())
	}
	if s.Upgrades.Coins != 10 || s.LastPurchase != economy.PurchaseOK {
		t.Errorf("unexpected balance %d or result %s", s.Upgrades.Coins, s.LastPurchase)
	}

	s.Activate(RegionShopThrust)
	if s.LastPurchase != economy.PurchaseInsufficient || s.Upgrades.Coins != 10 {
		t.Errorf("expected insufficient, got %s coins=%d", s.LastPurchase, s.Upgrades.Coins)
	}

	if h.count(event.EventPurchase) != 2 {
		t.Errorf("expected 2 purchase events, got %d", h.count(event.EventPurchase))
	}
	if ok := h.seen[0].Payload.(*event.PurchasePayload).OK; !ok {
		t.Error("first purchase event should be OK")
	}
}

func TestViewSnapshot(t *testing.T) {
	s, _ := newTestSession(t, nil)
	startRun(t, s,
		component.NewPlanet(vmath.Vec2F{X: 100, Y: 50}, vmath.Vec2F{}, component.PlanetMedium),
		component.NewPlanet(vmath.Vec2F{X: 2000}, vmath.Vec2F{}, component.PlanetHigh),
	)
	s.World.Pods = []component.FuelPod{{Pos: vmath.Vec2F{X: -300}}, {Pos: vmath.Vec2F{X: 40}, Collected: true}}
	s.Ship.Pos = vmath.Vec2F{X: 10, Y: 10}

	v := s.View()
	if v.State != StatePlaying || v.Camera != s.Ship.Pos || v.Ship.Rel != (vmath.Vec2F{}) {
		t.Fatalf("unexpected camera: %+v", v)
	}
	if len(v.Planets) != 2 || v.Planets[0].Rel != (vmath.Vec2F{X: 90, Y: 40}) {
		t.Errorf("planet not relative to camera: %+v", v.Planets)
	}
	if !v.Planets[0].Warning || v.Planets[1].Warning {
		t.Errorf("unexpected warning flags: %+v", v.Planets)
	}
	if len(v.Pods) != 1 || v.Pods[0].Rel != (vmath.Vec2F{X: -310, Y: -10}) {
		t.Errorf("expected only uncollected pod, got %+v", v.Pods)
	}
	if len(v.Upgrades) != 3 || v.Upgrades[0].Region != RegionShopMaxFuel || v.Upgrades[2].Price != parameter.ThrustPriceBase {
		t.Errorf("unexpected upgrade rows: %+v", v.Upgrades)
	}
	if v.MaxFuel != parameter.MaxFuelBase || v.NameMax != parameter.NameMaxLength {
		t.Errorf("unexpected HUD values: %+v", v)
	}
}

func TestCustomGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	graph := `
initial = "Menu"

[states.Menu]
on_enter = [{ action = "EmitEvent", event = "EventMenuStart" }]
transitions = [{ trigger = "EventMenuStart", target = "Playing" }]

[states.Playing]
on_enter = [{ action = "ResetWorld" }]
on_update = [{ action = "StepWorld" }]
`
	if err := os.WriteFile(path, []byte(graph), 0644); err != nil {
		t.Fatal(err)
	}

	s, _ := newTestSession(t, func(o *Options) { o.FSMPath = path })
	if s.State() != StatePlaying {
		t.Errorf("expected emitted start to reach Playing, got %s", s.State())
	}

	if _, err := NewSession(Options{World: world.DefaultParams(), FSMPath: filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Error("expected error for missing graph")
	}
}

func TestUpdateBeforeStartIsInert(t *testing.T) {
	s, _ := newTestSession(t, nil)
	s.Update(time.Second, Input{})
	if s.State() != StateMenu || s.Ship.Distance != 0 {
		t.Errorf("menu frame advanced simulation: state=%s distance=%f", s.State(), s.Ship.Distance)
	}
	if s.Frame() != 1 {
		t.Errorf("expected frame 1, got %d", s.Frame())
	}
}
