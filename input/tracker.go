package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/core"
	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/parameter"
)

// HitTester resolves a screen cell to a region name
type HitTester interface {
	HitTest(x, y int) string
}

// Tracker decodes terminal events into intents and keeps held thrust state
// Terminals report no key release: an axis counts as held until window elapses after its last press or repeat
type Tracker struct {
	table    *KeyTable
	window   time.Duration
	lastSeen [axisCount]time.Time
	buttons  tcell.ButtonMask
}

// NewTracker creates a tracker; nil table uses DefaultKeyTable
func NewTracker(table *KeyTable) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Tracker{
		table:  table,
		window: parameter.KeyHoldWindow,
	}
}

// SetHoldWindow overrides the key hold window
func (t *Tracker) SetHoldWindow(d time.Duration) {
	t.window = d
}

// Handle decodes one event in the context of the current session state
func (t *Tracker) Handle(ev tcell.Event, state string, now time.Time, hit HitTester) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev, state, now)
	case *tcell.EventMouse:
		return t.handleMouse(ev, hit)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (t *Tracker) handleKey(ev *tcell.EventKey, state string, now time.Time) Intent {
	if it, ok := t.table.SystemKeys[ev.Key()]; ok {
		return Intent{Type: it}
	}

	if state == engine.StateEnteringName {
		switch ev.Key() {
		case tcell.KeyEnter:
			return Intent{Type: IntentTextConfirm}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Intent{Type: IntentTextBackspace}
		case tcell.KeyRune:
			if unicode.IsPrint(ev.Rune()) {
				return Intent{Type: IntentTextChar, Char: ev.Rune()}
			}
		}
		return Intent{}
	}

	if state == engine.StatePlaying {
		if axis, ok := t.axisFor(ev); ok {
			t.lastSeen[axis] = now
			return Intent{Type: IntentThrust}
		}
		return Intent{}
	}

	if ev.Key() == tcell.KeyRune {
		if region, ok := t.table.RegionRunes[state][ev.Rune()]; ok {
			return Intent{Type: IntentActivate, Region: region}
		}
		return Intent{}
	}
	key := ev.Key()
	if key == tcell.KeyBackspace2 {
		key = tcell.KeyBackspace
	}
	if region, ok := t.table.RegionKeys[state][key]; ok {
		return Intent{Type: IntentActivate, Region: region}
	}
	return Intent{}
}

func (t *Tracker) axisFor(ev *tcell.EventKey) (Axis, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := t.table.AxisRunes[ev.Rune()]
		return a, ok
	}
	a, ok := t.table.AxisKeys[ev.Key()]
	return a, ok
}

// handleMouse activates the region under a primary button press edge
func (t *Tracker) handleMouse(ev *tcell.EventMouse, hit HitTester) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = buttons

	if !pressed || hit == nil {
		return Intent{}
	}
	x, y := ev.Position()
	if region := hit.HitTest(x, y); region != "" {
		return Intent{Type: IntentActivate, Region: region}
	}
	return Intent{}
}

// Axes returns the axes held at now
func (t *Tracker) Axes(now time.Time) core.Axes {
	held := func(a Axis) bool {
		seen := t.lastSeen[a]
		return !seen.IsZero() && now.Sub(seen) < t.window
	}
	return core.Axes{
		Left:  held(AxisLeft),
		Right: held(AxisRight),
		Up:    held(AxisUp),
		Down:  held(AxisDown),
	}
}

// Release drops all held axes
func (t *Tracker) Release() {
	t.lastSeen = [axisCount]time.Time{}
}
