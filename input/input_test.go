package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/render"
)

type nopReporter struct{}

func (nopReporter) Report(string, float64) {}

func newSession(t *testing.T, withReporter bool) *engine.Session {
	t.Helper()
	opts := engine.DefaultOptions()
	opts.Seed = 1
	opts.Store = &engine.MemoryStore{}
	if withReporter {
		opts.Reporter = nopReporter{}
	}
	s, err := engine.NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSystemKeysInEveryState(t *testing.T) {
	tr := NewTracker(nil)
	now := time.Now()

	for _, state := range []string{engine.StateEnteringName, engine.StateMenu, engine.StatePlaying, engine.StateUpgradeShop} {
		if it := tr.Handle(key(tcell.KeyCtrlC), state, now, nil); it.Type != IntentQuit {
			t.Errorf("%s: Ctrl+C gave %v", state, it.Type)
		}
		if it := tr.Handle(key(tcell.KeyCtrlS), state, now, nil); it.Type != IntentToggleMute {
			t.Errorf("%s: Ctrl+S gave %v", state, it.Type)
		}
	}
}

func TestRegionShortcuts(t *testing.T) {
	tr := NewTracker(nil)
	now := time.Now()

	tests := []struct {
		state string
		ev    *tcell.EventKey
		want  string
	}{
		{engine.StateMenu, char('s'), engine.RegionMenuStart},
		{engine.StateMenu, key(tcell.KeyEnter), engine.RegionMenuStart},
		{engine.StateMenu, char('I'), engine.RegionMenuInstructions},
		{engine.StateMenu, char('u'), engine.RegionMenuShop},
		{engine.StateMenu, char('q'), engine.RegionMenuQuit},
		{engine.StateInstructions, key(tcell.KeyEscape), engine.RegionBack},
		{engine.StateInstructions, key(tcell.KeyBackspace2), engine.RegionBack},
		{engine.StateUpgradeShop, char('1'), engine.RegionShopMaxFuel},
		{engine.StateUpgradeShop, char('2'), engine.RegionShopRecharge},
		{engine.StateUpgradeShop, char('3'), engine.RegionShopThrust},
		{engine.StateUpgradeShop, key(tcell.KeyEscape), engine.RegionBack},
		{engine.StateGameOver, key(tcell.KeyEnter), engine.RegionGameOverMenu},
		{engine.StateMenu, char('x'), ""},
		{engine.StateUpgradeShop, char('4'), ""},
	}

	for _, tc := range tests {
		it := tr.Handle(tc.ev, tc.state, now, nil)
		if tc.want == "" {
			if it.Type != IntentNone {
				t.Errorf("%s %v: expected no intent, got %+v", tc.state, tc.ev.Name(), it)
			}
			continue
		}
		if it.Type != IntentActivate || it.Region != tc.want {
			t.Errorf("%s %v: expected %s, got %+v", tc.state, tc.ev.Name(), tc.want, it)
		}
	}
}

func TestNameEntryKeys(t *testing.T) {
	tr := NewTracker(nil)
	now := time.Now()
	state := engine.StateEnteringName

	if it := tr.Handle(char('s'), state, now, nil); it.Type != IntentTextChar || it.Char != 's' {
		t.Errorf("letters must type in name entry, got %+v", it)
	}
	if it := tr.Handle(key(tcell.KeyBackspace2), state, now, nil); it.Type != IntentTextBackspace {
		t.Errorf("expected backspace, got %+v", it)
	}
	if it := tr.Handle(key(tcell.KeyEnter), state, now, nil); it.Type != IntentTextConfirm {
		t.Errorf("expected confirm, got %+v", it)
	}
	if it := tr.Handle(key(tcell.KeyUp), state, now, nil); it.Type != IntentNone {
		t.Errorf("arrows must be ignored in name entry, got %+v", it)
	}
}

func TestHeldAxesWindow(t *testing.T) {
	tr := NewTracker(nil)
	tr.SetHoldWindow(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	tr.Handle(key(tcell.KeyLeft), engine.StatePlaying, t0, nil)
	tr.Handle(char('w'), engine.StatePlaying, t0.Add(50*time.Millisecond), nil)

	axes := tr.Axes(t0.Add(60 * time.Millisecond))
	if !axes.Left || !axes.Up || axes.Right || axes.Down {
		t.Errorf("unexpected axes at 60ms: %+v", axes)
	}

	axes = tr.Axes(t0.Add(120 * time.Millisecond))
	if axes.Left || !axes.Up {
		t.Errorf("left must expire, up must persist at 120ms: %+v", axes)
	}

	// Repeat refreshes the hold
	tr.Handle(key(tcell.KeyLeft), engine.StatePlaying, t0.Add(130*time.Millisecond), nil)
	if !tr.Axes(t0.Add(200 * time.Millisecond)).Left {
		t.Error("repeat must refresh the hold window")
	}

	tr.Release()
	if tr.Axes(t0.Add(200 * time.Millisecond)).Any() {
		t.Error("Release must clear every axis")
	}
}

func TestAxisKeysIgnoredOutsidePlaying(t *testing.T) {
	tr := NewTracker(nil)
	now := time.Now()
	tr.Handle(key(tcell.KeyLeft), engine.StateMenu, now, nil)
	if tr.Axes(now).Any() {
		t.Error("direction keys must not thrust outside Playing")
	}
}

func TestMouseClickEdge(t *testing.T) {
	var layout render.Layout
	layout.Add(engine.RegionMenuStart, 10, 5, 20, 3)

	tr := NewTracker(nil)
	now := time.Now()

	press := tcell.NewEventMouse(15, 6, tcell.Button1, tcell.ModNone)
	if it := tr.Handle(press, engine.StateMenu, now, &layout); it.Type != IntentActivate || it.Region != engine.RegionMenuStart {
		t.Fatalf("expected click on start, got %+v", it)
	}

	// Drag with the button still down is not a new click
	drag := tcell.NewEventMouse(16, 6, tcell.Button1, tcell.ModNone)
	if it := tr.Handle(drag, engine.StateMenu, now, &layout); it.Type != IntentNone {
		t.Errorf("held button must not re-activate, got %+v", it)
	}

	release := tcell.NewEventMouse(16, 6, tcell.ButtonNone, tcell.ModNone)
	tr.Handle(release, engine.StateMenu, now, &layout)

	miss := tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)
	if it := tr.Handle(miss, engine.StateMenu, now, &layout); it.Type != IntentNone {
		t.Errorf("click outside regions must be ignored, got %+v", it)
	}
}

func TestApplyDrivesSession(t *testing.T) {
	s := newSession(t, true)
	tr := NewTracker(nil)
	now := time.Now()

	if s.State() != engine.StateEnteringName {
		t.Fatalf("expected name entry, got %s", s.State())
	}

	for _, ev := range []*tcell.EventKey{char('A'), char('c'), char('x'), key(tcell.KeyBackspace2), char('e'), key(tcell.KeyEnter)} {
		Apply(s, tr.Handle(ev, s.State(), now, nil))
	}
	if s.State() != engine.StateMenu || s.PlayerName != "Ace" {
		t.Fatalf("expected Menu as Ace, got %s as %q", s.State(), s.PlayerName)
	}

	if !Apply(s, tr.Handle(char('u'), s.State(), now, nil)) || s.State() != engine.StateUpgradeShop {
		t.Fatalf("expected shop, got %s", s.State())
	}
	Apply(s, tr.Handle(char('1'), s.State(), now, nil))
	if s.View().LastPurchase != "insufficient" {
		t.Errorf("expected refused purchase with no coins, got %q", s.View().LastPurchase)
	}

	Apply(s, tr.Handle(key(tcell.KeyEscape), s.State(), now, nil))
	Apply(s, tr.Handle(char('s'), s.State(), now, nil))
	if s.State() != engine.StatePlaying {
		t.Fatalf("expected Playing, got %s", s.State())
	}

	if Apply(s, Intent{Type: IntentQuit}) {
		t.Error("quit is not consumed by Apply")
	}
}

func TestRendererLayoutFeedsTracker(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := newSession(t, false)
	r := render.NewRenderer(screen)
	r.Draw(s.View())

	region, ok := r.Layout().Find(engine.RegionMenuShop)
	if !ok {
		t.Fatal("menu missing shop button")
	}

	tr := NewTracker(nil)
	click := tcell.NewEventMouse(region.X+1, region.Y+1, tcell.Button1, tcell.ModNone)
	Apply(s, tr.Handle(click, s.State(), time.Now(), r.Layout()))

	if s.State() != engine.StateUpgradeShop {
		t.Errorf("click on shop button gave %s", s.State())
	}
}
