package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/engine"
)

// Renderer draws session snapshots onto a tcell screen
// Every frame rebuilds the clickable layout so mouse hits always match what is visible
type Renderer struct {
	screen tcell.Screen
	layout Layout
	vp     Viewport
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout returns the regions of the last drawn frame
func (r *Renderer) Layout() *Layout {
	return &r.layout
}

// Viewport returns the dimensions of the last drawn frame
func (r *Renderer) Viewport() Viewport {
	return r.vp
}

// Draw renders one frame
func (r *Renderer) Draw(v engine.View) {
	w, h := r.screen.Size()
	r.vp = Viewport{Width: w, Height: h}
	r.layout.Reset()

	r.screen.Fill(' ', bgStyle())

	switch v.State {
	case engine.StateEnteringName:
		r.drawNameEntry(v)
	case engine.StateMenu:
		r.drawMenu(v)
	case engine.StateInstructions:
		r.drawInstructions()
	case engine.StateUpgradeShop:
		r.drawShop(v)
	case engine.StatePlaying:
		r.drawWorld(v)
		r.drawMinimap(v)
		r.drawHUD(v)
	case engine.StateGameOver:
		r.drawWorld(v)
		r.drawMinimap(v)
		r.drawHUD(v)
		r.drawGameOver(v)
	}

	r.screen.Show()
}

func bgStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if !r.vp.InBounds(x, y) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// text draws a single-width string starting at x
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.set(x, y, ch, style)
		x++
	}
}

// centered draws s centered on row y
func (r *Renderer) centered(y int, s string, style tcell.Style) {
	r.text((r.vp.Width-len([]rune(s)))/2, y, s, style)
}

// fill paints a rectangle
func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.set(col, row, ' ', style)
		}
	}
}

// button draws a bordered box with a centered label and registers it as region
func (r *Renderer) button(region string, x, y, w, h int, label string, enabled bool) {
	bg := RgbButtonBg
	fg := RgbText
	if !enabled {
		bg = RgbButtonDisabled
		fg = RgbTextDim
	}
	style := tcell.StyleDefault.Background(bg).Foreground(fg)
	r.fill(x, y, w, h, style)

	if h >= 3 && w >= 2 {
		border := style.Foreground(RgbTextDim)
		for col := x + 1; col < x+w-1; col++ {
			r.set(col, y, '─', border)
			r.set(col, y+h-1, '─', border)
		}
		for row := y + 1; row < y+h-1; row++ {
			r.set(x, row, '│', border)
			r.set(x+w-1, row, '│', border)
		}
		r.set(x, y, '┌', border)
		r.set(x+w-1, y, '┐', border)
		r.set(x, y+h-1, '└', border)
		r.set(x+w-1, y+h-1, '┘', border)
	}

	runes := []rune(label)
	if len(runes) > w-2 && w > 2 {
		runes = runes[:w-2]
	}
	r.text(x+(w-len(runes))/2, y+h/2, string(runes), style)

	r.layout.Add(region, x, y, w, h)
}
