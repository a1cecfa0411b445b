package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/audio"
	"github.com/lixenwraith/gravity-ship/core"
	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/input"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/render"
)

// game binds the session to the terminal: events in, frames out
type game struct {
	screen   tcell.Screen
	session  *engine.Session
	renderer *render.Renderer
	tracker  *input.Tracker
	sound    *audio.SoundManager // nil when audio is unavailable
	last     time.Time
}

func newGame(screen tcell.Screen, session *engine.Session, sound *audio.SoundManager) *game {
	return &game{
		screen:   screen,
		session:  session,
		renderer: render.NewRenderer(screen),
		tracker:  input.NewTracker(nil),
		sound:    sound,
	}
}

// run drives the frame loop until the session quits or the player interrupts
func (g *game) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, parameter.EventChannelSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	g.last = time.Now()
	g.renderer.Draw(g.session.View())

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			if !g.step(now) {
				return
			}
		}
	}
}

// handleEvent applies one terminal event, returns false to exit
func (g *game) handleEvent(ev tcell.Event, now time.Time) bool {
	it := g.tracker.Handle(ev, g.session.State(), now, g.renderer.Layout())

	switch it.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		if g.sound != nil {
			g.sound.ToggleMute()
		}
	case input.IntentResize:
		g.screen.Sync()
	default:
		before := g.session.State()
		input.Apply(g.session, it)
		if g.session.State() != before {
			g.tracker.Release()
			g.renderer.Draw(g.session.View())
		}
	}
	return !g.session.Quit()
}

// step advances one frame with elapsed time capped at MaxFrameDelta, returns false to exit
func (g *game) step(now time.Time) bool {
	dt := now.Sub(g.last)
	g.last = now
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}

	before := g.session.State()
	g.session.Update(dt, engine.Input{Axes: g.tracker.Axes(now)})
	if g.session.State() != before {
		g.tracker.Release()
	}

	if g.session.Quit() {
		return false
	}
	g.renderer.Draw(g.session.View())
	return true
}
