package engine

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/lixenwraith/gravity-ship/asset"
	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/economy"
	"github.com/lixenwraith/gravity-ship/engine/fsm"
	"github.com/lixenwraith/gravity-ship/event"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/physics"
	"github.com/lixenwraith/gravity-ship/vmath"
	"github.com/lixenwraith/gravity-ship/world"
)

// State names of the session graph
const (
	StateEnteringName = "EnteringName"
	StateMenu         = "Menu"
	StateInstructions = "Instructions"
	StateUpgradeShop  = "UpgradeShop"
	StatePlaying      = "Playing"
	StateGameOver     = "GameOver"
	StateQuit         = "Quit"
)

// maxDispatchRounds bounds event cascades within one frame
const maxDispatchRounds = 8

// HighScoreStore persists the single best score
type HighScoreStore interface {
	// Load returns the stored score, 0 when absent or unreadable
	Load() float64
	// Save overwrites the stored score
	Save(score float64) error
}

// ScoreReporter submits a finished run; Report must return immediately
type ScoreReporter interface {
	Report(name string, score float64)
}

// Options configures a new session
type Options struct {
	World     world.Params
	FuelRate  float64
	Softening float64

	// Seed drives world generation and shake; 0 selects a time-based seed
	Seed int64

	// Store defaults to an in-memory store
	Store HighScoreStore

	// Reporter nil disables reporting and skips name entry
	Reporter ScoreReporter

	// PlayerName preset skips name entry
	PlayerName string

	// FSMPath overrides the embedded session graph
	FSMPath string
}

// DefaultOptions returns options built from compile-time parameters
func DefaultOptions() Options {
	return Options{
		World:     world.DefaultParams(),
		FuelRate:  parameter.FuelConsumptionRate,
		Softening: parameter.GravitySoftening,
	}
}

// Session is the single owned aggregate of a running game
// All mutation happens on the frame loop goroutine through the state machine
type Session struct {
	// Per-run state, replaced by ResetWorld
	Ship  *component.Ship
	World *world.World
	Score float64

	// Meta-progression, survives resets
	Upgrades  *economy.UpgradeState
	HighScore float64

	PlayerName string
	nameBuf    []rune

	// Death feedback timers in seconds
	ExplosionTimer float64
	ShakeTimer     float64
	ShakeOffset    vmath.Vec2F

	// LastPurchase is the outcome of the most recent shop attempt
	LastPurchase    economy.PurchaseResult
	LastPurchaseSet bool

	input Input
	dt    float64
	frame int64

	opts      Options
	rng       *rand.Rand
	generator *world.Generator
	store     HighScoreStore
	reporter  ScoreReporter

	machine *fsm.Machine[*Session]
	queue   *event.EventQueue
	router  *event.Router[*Session]
}

// NewSession builds the session, loads the high score, and enters the initial state
func NewSession(opts Options) (*Session, error) {
	event.InitRegistry()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store := opts.Store
	if store == nil {
		store = &MemoryStore{}
	}

	s := &Session{
		Upgrades:   economy.NewUpgradeState(),
		PlayerName: strings.TrimSpace(opts.PlayerName),
		opts:       opts,
		rng:        rng,
		generator:  &world.Generator{Params: opts.World, RNG: rng},
		store:      store,
		reporter:   opts.Reporter,
		machine:    fsm.NewMachine[*Session](),
		queue:      event.NewEventQueue(parameter.EventChannelSize),
		router:     event.NewRouter[*Session](),
	}
	s.HighScore = store.Load()

	// Placeholder world so views are valid before the first run
	s.Ship = component.NewShip(vmath.Vec2F{}, s.Upgrades.MaxFuel())
	s.World = &world.World{Half: float64(opts.World.Half), Floor: opts.World.PodCount}

	registerFSMComponents(s.machine)
	if err := fsm.LoadConfigAuto(s.machine, opts.FSMPath, asset.DefaultSessionFSMConfig); err != nil {
		return nil, fmt.Errorf("failed to load session graph: %w", err)
	}
	if err := s.machine.Init(s); err != nil {
		return nil, fmt.Errorf("failed to init session graph: %w", err)
	}
	// Settle auto-transitions of the initial state
	s.machine.Update(s, 0)
	s.dispatch()

	return s, nil
}

// RegisterHandler attaches a collaborator to session events
func (s *Session) RegisterHandler(h event.Handler[*Session]) {
	s.router.Register(h)
}

// Update runs one frame: the active state's update actions, auto-transitions, then event dispatch
func (s *Session) Update(dt time.Duration, in Input) {
	s.frame++
	s.input = in
	s.dt = dt.Seconds()
	s.machine.Update(s, dt)
	s.dispatch()
}

// State returns the active state name
func (s *Session) State() string {
	return s.machine.CurrentState()
}

// Quit reports whether the session reached the Quit state
func (s *Session) Quit() bool {
	return s.machine.CurrentState() == StateQuit
}

// Frame returns the number of updates run
func (s *Session) Frame() int64 {
	return s.frame
}

// ReportingEnabled reports whether finished runs are submitted
func (s *Session) ReportingEnabled() bool {
	return s.reporter != nil
}

// Push queues an event for dispatch at the end of the current step
func (s *Session) Push(et event.EventType, payload any) {
	s.queue.Push(event.GameEvent{Type: et, Payload: payload, Frame: s.frame})
}

// dispatch drains the queue into the state machine and the registered handlers
// Events pushed by handlers are drained in the same call, up to maxDispatchRounds
func (s *Session) dispatch() {
	for round := 0; round < maxDispatchRounds; round++ {
		evs := s.queue.Consume()
		if len(evs) == 0 {
			return
		}
		for _, ev := range evs {
			s.machine.HandleEvent(s, ev.Type)
			s.router.Dispatch(s, ev)
		}
	}
	if n := s.queue.Len(); n > 0 {
		log.Printf("session: %d events deferred to next frame", n)
	}
}

// --- Name entry ---

// TypeRune appends a printable character to the name buffer while entering a name
func (s *Session) TypeRune(r rune) {
	if s.State() != StateEnteringName {
		return
	}
	if !unicode.IsPrint(r) || len(s.nameBuf) >= parameter.NameMaxLength {
		return
	}
	s.nameBuf = append(s.nameBuf, r)
}

// Backspace removes the last typed character
func (s *Session) Backspace() {
	if s.State() != StateEnteringName || len(s.nameBuf) == 0 {
		return
	}
	s.nameBuf = s.nameBuf[:len(s.nameBuf)-1]
}

// ConfirmName commits the trimmed buffer and requests leaving name entry
// An empty trimmed name keeps the session in EnteringName
func (s *Session) ConfirmName() bool {
	if s.State() != StateEnteringName {
		return false
	}
	s.PlayerName = strings.TrimSpace(string(s.nameBuf))
	s.Push(event.EventNameConfirm, nil)
	s.dispatch()
	return s.State() != StateEnteringName
}

// NameText returns the name buffer as typed
func (s *Session) NameText() string {
	return string(s.nameBuf)
}

// --- Simulation ---

func (s *Session) shipParams() physics.ShipParams {
	return physics.ShipParams{
		Thrust:    s.Upgrades.Thrust(),
		FuelRate:  s.opts.FuelRate,
		Softening: s.opts.Softening,
		Half:      float64(s.opts.World.Half),
	}
}

// resetWorld starts a fresh run; upgrades and coins are untouched
func (s *Session) resetWorld() {
	s.Ship = component.NewShip(vmath.Vec2F{}, s.Upgrades.MaxFuel())
	s.World = s.generator.Generate()
	s.Score = 0
	s.ExplosionTimer = 0
	s.ShakeTimer = 0
	s.ShakeOffset = vmath.Vec2F{}
}

// stepWorld advances the run by the current frame dt
// Order: ship, planets, pickups, pod floor, collision, score and coins
func (s *Session) stepWorld() {
	dt := s.dt
	if dt <= 0 {
		return
	}

	physics.StepShip(s.Ship, s.World.Planets, dt, s.input.Axes, s.shipParams())
	s.World.Update(dt)

	if n := component.CollectPods(s.Ship, s.World.Pods, s.Upgrades.Recharge(), s.Upgrades.MaxFuel()); n > 0 {
		s.Push(event.EventPodCollected, &event.PodCollectedPayload{Count: n, Fuel: s.Ship.Fuel})
	}
	s.World.ReplenishPods(s.rng)

	s.Score = economy.ScoreFromDistance(s.Ship.Distance)

	if idx, hit := component.CheckPlanetCollision(s.Ship, s.World.Planets); hit {
		s.ExplosionTimer = parameter.ExplosionDuration.Seconds()
		s.ShakeTimer = parameter.ShakeDuration.Seconds()
		s.Push(event.EventShipDestroyed, &event.ShipDestroyedPayload{PlanetIndex: idx, Score: s.Score})
	}

	awarded, credited := s.Upgrades.Accrue(s.Score, s.Ship.CoinsAwarded)
	s.Ship.CoinsAwarded = awarded
	if credited > 0 {
		s.Push(event.EventCoinsAwarded, &event.CoinsAwardedPayload{Credited: credited, Balance: s.Upgrades.Coins})
	}
}

// tickFeedback counts down death timers and draws a new shake offset while shaking
func (s *Session) tickFeedback() {
	dt := s.dt
	if dt <= 0 {
		return
	}
	s.ExplosionTimer = vmath.MaxF(0, s.ExplosionTimer-dt)
	s.ShakeTimer = vmath.MaxF(0, s.ShakeTimer-dt)

	if s.ShakeTimer > 0 {
		amp := parameter.ShakeAmplitude
		s.ShakeOffset = vmath.Vec2F{
			X: float64(s.rng.Intn(2*amp+1) - amp),
			Y: float64(s.rng.Intn(2*amp+1) - amp),
		}
	} else {
		s.ShakeOffset = vmath.Vec2F{}
	}
}

// recordHighScore persists the run score when it beats the stored record
func (s *Session) recordHighScore() {
	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	if err := s.store.Save(s.Score); err != nil {
		log.Printf("session: failed to save high score: %v", err)
	}
	s.Push(event.EventHighScore, &event.HighScorePayload{Score: s.Score})
}

// reportScore hands the run to the reporter without waiting
func (s *Session) reportScore() {
	if s.reporter == nil {
		return
	}
	s.reporter.Report(s.PlayerName, s.Score)
}

// --- Economy ---

// purchase buys one increment of kind; callers ensure the shop is open
func (s *Session) purchase(kind economy.StatKind) economy.PurchaseResult {
	res := s.Upgrades.Purchase(kind)
	if res == economy.PurchaseOK && kind == economy.StatMaxFuel {
		s.Ship.ClampFuel(s.Upgrades.MaxFuel())
	}
	s.LastPurchase = res
	s.LastPurchaseSet = true

	s.Push(event.EventPurchase, &event.PurchasePayload{
		Stat:   kind.String(),
		Result: res.String(),
		OK:     res == economy.PurchaseOK,
	})
	s.dispatch()
	return res
}

// MemoryStore is a HighScoreStore kept in process memory
type MemoryStore struct {
	Value float64
	Saves int
	Err   error
}

func (m *MemoryStore) Load() float64 { return m.Value }

func (m *MemoryStore) Save(score float64) error {
	m.Saves++
	if m.Err != nil {
		return m.Err
	}
	m.Value = score
	return nil
}
