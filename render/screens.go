package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/economy"
	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/parameter"
)

var statLabels = map[economy.StatKind]string{
	economy.StatMaxFuel:  "Max fuel",
	economy.StatRecharge: "Pod recharge",
	economy.StatThrust:   "Thrust",
}

var purchaseMessages = map[string]string{
	economy.PurchaseOK.String():           "Upgrade installed",
	economy.PurchaseInsufficient.String(): "Not enough coins",
	economy.PurchaseAtCap.String():        "Already at maximum",
}

// menuButtons lists main menu entries in draw order
var menuButtons = []struct {
	region string
	label  string
}{
	{engine.RegionMenuStart, "[S] Start"},
	{engine.RegionMenuInstructions, "[I] Instructions"},
	{engine.RegionMenuShop, "[U] Upgrades"},
	{engine.RegionMenuQuit, "[Q] Quit"},
}

func titleStyle() tcell.Style {
	return bgStyle().Foreground(RgbTitle).Bold(true)
}

func dimStyle() tcell.Style {
	return bgStyle().Foreground(RgbTextDim)
}

func (r *Renderer) drawNameEntry(v engine.View) {
	mid := r.vp.Height / 2
	r.centered(mid-3, "Enter your name:", titleStyle())
	r.centered(mid-1, v.NameText+"_", bgStyle().Foreground(RgbNameInput).Bold(true))
	r.centered(mid+1, fmt.Sprintf("%d/%d", len([]rune(v.NameText)), v.NameMax), dimStyle())
	r.centered(mid+3, "[Enter] confirm   [Backspace] delete", dimStyle())
}

func (r *Renderer) drawMenu(v engine.View) {
	top := r.vp.Height / 3
	r.centered(top-3, "G R A V I T Y   S H I P", titleStyle())
	if v.PlayerName != "" {
		r.centered(top-2, "Pilot: "+v.PlayerName, dimStyle())
	}

	x := (r.vp.Width - parameter.ButtonWidth) / 2
	for i, b := range menuButtons {
		y := top + i*(parameter.ButtonHeight+1)
		r.button(b.region, x, y, parameter.ButtonWidth, parameter.ButtonHeight, b.label, true)
	}

	r.text(1, r.vp.Height-1, fmt.Sprintf("High score: %.0f", v.HighScore), bgStyle())
	r.text(r.vp.Width-14, r.vp.Height-1, fmt.Sprintf("Coins: %d", v.Coins), bgStyle())
}

func (r *Renderer) drawInstructions() {
	r.centered(1, "HOW TO PLAY", titleStyle())

	y := 3
	for _, t := range []component.PlanetType{component.PlanetHigh, component.PlanetMedium, component.PlanetLow} {
		r.set(4, y, '●', bgStyle().Foreground(PlanetColor(t)))
		r.text(6, y, planetDescription(t), bgStyle())
		y += 2
	}

	lines := []string{
		"Arrow keys or WASD fire thrusters; every planet pulls on the ship.",
		"Thrust burns fuel. An empty tank leaves you drifting.",
		"Fly over + pods to refuel. Touching a planet ends the run.",
		"Every 10 units flown scores a point, every 100 points earns a coin.",
		"Spend coins in the upgrade shop between runs.",
	}
	for _, line := range lines {
		r.text(4, y, line, bgStyle())
		y++
	}

	r.backButton()
}

func planetDescription(t component.PlanetType) string {
	c := t.Class()
	switch t {
	case component.PlanetHigh:
		return fmt.Sprintf("Red planet: strongest gravity (%.0f)", c.Strength)
	case component.PlanetMedium:
		return fmt.Sprintf("Green planet: medium gravity (%.0f)", c.Strength)
	default:
		return fmt.Sprintf("Blue planet: weakest gravity (%.0f)", c.Strength)
	}
}

func (r *Renderer) backButton() {
	const w = 14
	r.button(engine.RegionBack, r.vp.Width-w-1, r.vp.Height-parameter.ButtonHeight-1, w, parameter.ButtonHeight, "[Esc] Back", true)
}

func (r *Renderer) drawShop(v engine.View) {
	r.centered(1, "UPGRADES", titleStyle())
	r.centered(3, fmt.Sprintf("Coins: %d", v.Coins), bgStyle().Foreground(RgbPod))

	const w = 48
	x := (r.vp.Width - w) / 2
	for i, row := range v.Upgrades {
		y := 5 + i*(parameter.ButtonHeight+1)
		r.button(row.Region, x, y, w, parameter.ButtonHeight, upgradeLabel(i+1, row), row.Affordable)
	}

	if msg, ok := purchaseMessages[v.LastPurchase]; ok {
		style := bgStyle().Foreground(RgbFuelHigh)
		if v.LastPurchase != economy.PurchaseOK.String() {
			style = bgStyle().Foreground(RgbFuelLow)
		}
		r.centered(5+len(v.Upgrades)*(parameter.ButtonHeight+1), msg, style)
	}

	r.backButton()
}

func upgradeLabel(key int, row engine.UpgradeRow) string {
	name := statLabels[row.Stat]
	if row.AtCap {
		return fmt.Sprintf("[%d] %s: %.0f (MAX)", key, name, row.Value)
	}
	return fmt.Sprintf("[%d] %s: %.0f -> %.0f (cost %d)", key, name, row.Value, row.Next, row.Price)
}

func (r *Renderer) drawGameOver(v engine.View) {
	const w, h = 32, 9
	x := (r.vp.Width - w) / 2
	y := (r.vp.Height - h) / 2
	r.fill(x, y, w, h, tcell.StyleDefault.Background(RgbButtonDisabled))

	panel := tcell.StyleDefault.Background(RgbButtonDisabled).Foreground(RgbText)
	r.text(x+(w-9)/2, y+1, "GAME OVER", panel.Foreground(RgbWarning).Bold(true))
	score := fmt.Sprintf("Score: %.0f", v.Score)
	r.text(x+(w-len(score))/2, y+3, score, panel)
	best := fmt.Sprintf("Best: %.0f", v.HighScore)
	r.text(x+(w-len(best))/2, y+4, best, panel)

	bw := parameter.ButtonWidth
	r.button(engine.RegionGameOverMenu, x+(w-bw)/2, y+h-parameter.ButtonHeight-1, bw, parameter.ButtonHeight, "[Enter] Menu", true)
}
