package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// drawWorld renders boundary, planets, pods and ship relative to the camera
func (r *Renderer) drawWorld(v engine.View) {
	r.drawBoundary(v)

	for _, p := range v.Planets {
		r.drawDisc(p.Rel, parameter.PlanetRadius, '●', PlanetColor(p.Type), p.Warning)
	}

	podStyle := bgStyle().Foreground(RgbPod)
	for _, p := range v.Pods {
		x, y := r.vp.Project(p.Rel)
		r.set(x, y, '+', podStyle)
	}

	x, y := r.vp.Project(v.Ship.Rel)
	switch {
	case v.Ship.Alive:
		r.set(x, y, '▲', bgStyle().Foreground(RgbShip).Bold(true))
	case v.Exploding:
		boom := bgStyle().Foreground(RgbExplosion).Bold(true)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				r.set(x+dx, y+dy, '*', boom)
			}
		}
		r.set(x, y, '✸', boom)
	default:
		r.set(x, y, 'x', bgStyle().Foreground(RgbExplosion))
	}
}

// drawDisc fills every cell whose center lies within radius; warned discs get a highlighted background
func (r *Renderer) drawDisc(center vmath.Vec2F, radius float64, ch rune, color tcell.Color, warn bool) {
	style := bgStyle().Foreground(color)
	if warn {
		style = style.Background(RgbWarning)
	}

	cx, cy := r.vp.Project(center)
	rx := int(math.Ceil(radius / parameter.CellWorldWidth))
	ry := int(math.Ceil(radius / parameter.CellWorldHeight))

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			wx := float64(dx) * parameter.CellWorldWidth
			wy := float64(dy) * parameter.CellWorldHeight
			if wx*wx+wy*wy <= radius*radius {
				r.set(cx+dx, cy+dy, ch, style)
			}
		}
	}
	// Always mark the center so small discs stay visible
	r.set(cx, cy, ch, style)
}

// drawBoundary draws the arena edges that fall inside the viewport
func (r *Renderer) drawBoundary(v engine.View) {
	style := bgStyle().Foreground(RgbBoundary)
	half := v.Half

	left, _ := r.vp.Project(vmath.Vec2F{X: -half - v.Camera.X})
	right, _ := r.vp.Project(vmath.Vec2F{X: half - v.Camera.X})
	_, top := r.vp.Project(vmath.Vec2F{Y: -half - v.Camera.Y})
	_, bottom := r.vp.Project(vmath.Vec2F{Y: half - v.Camera.Y})

	for y := max(top, 0); y <= min(bottom, r.vp.Height-1); y++ {
		r.set(left, y, '│', style)
		r.set(right, y, '│', style)
	}
	for x := max(left, 0); x <= min(right, r.vp.Width-1); x++ {
		r.set(x, top, '─', style)
		r.set(x, bottom, '─', style)
	}
	r.set(left, top, '┌', style)
	r.set(right, top, '┐', style)
	r.set(left, bottom, '└', style)
	r.set(right, bottom, '┘', style)
}

// drawMinimap draws planets and pods around the ship at reduced scale
func (r *Renderer) drawMinimap(v engine.View) {
	box := r.vp.Minimap()
	if box.W < 3 || box.H < 3 {
		return
	}
	bg := tcell.StyleDefault.Background(RgbMinimapBg)
	r.fill(box.X, box.Y, box.W, box.H, bg)

	plot := func(rel vmath.Vec2F, ch rune, color tcell.Color) {
		offset := vmath.V2FSub(vmath.V2FAdd(v.Camera, rel), v.Ship.Pos)
		x, y := r.vp.MinimapCell(box, offset)
		if box.Contains(x, y) {
			r.set(x, y, ch, bg.Foreground(color))
		}
	}

	for _, p := range v.Pods {
		plot(p.Rel, '·', RgbPod)
	}
	for _, p := range v.Planets {
		plot(p.Rel, '•', PlanetColor(p.Type))
	}
	r.set(box.X+box.W/2, box.Y+box.H/2, '@', bg.Foreground(RgbShip).Bold(true))
}

// drawHUD draws score line and fuel bar on the top rows
func (r *Renderer) drawHUD(v engine.View) {
	style := bgStyle()
	r.text(1, 0, fmt.Sprintf("Score %.0f   Best %.0f   Coins %d   Time %.1fs", v.Score, v.HighScore, v.Coins, v.TimeAlive), style)

	const barWidth = 20
	ratio := 0.0
	if v.MaxFuel > 0 {
		ratio = vmath.ClampF(v.Fuel/v.MaxFuel, 0, 1)
	}
	filled := int(math.Round(ratio * barWidth))

	r.text(1, 1, "Fuel ", style)
	barStyle := style.Foreground(FuelColor(ratio))
	for i := 0; i < barWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.set(6+i, 1, ch, barStyle)
	}
	r.text(7+barWidth, 1, fmt.Sprintf("%.1f/%.0f", v.Fuel, v.MaxFuel), style)
}
