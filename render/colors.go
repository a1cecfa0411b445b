package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/component"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(5, 6, 20)      // Deep space
	RgbText       = tcell.NewRGBColor(230, 230, 230) // Near white
	RgbTextDim    = tcell.NewRGBColor(120, 120, 130) // Gray
	RgbTitle      = tcell.NewRGBColor(255, 215, 90)  // Warm yellow
	RgbNameInput  = tcell.NewRGBColor(200, 200, 0)   // Entry text

	RgbShip      = tcell.NewRGBColor(255, 255, 255)
	RgbExplosion = tcell.NewRGBColor(255, 140, 0) // Orange
	RgbPod       = tcell.NewRGBColor(100, 255, 100)
	RgbWarning   = tcell.NewRGBColor(255, 60, 0) // Proximity ring
	RgbBoundary  = tcell.NewRGBColor(200, 40, 40)

	RgbPlanetRed   = tcell.NewRGBColor(255, 80, 80)
	RgbPlanetGreen = tcell.NewRGBColor(80, 220, 80)
	RgbPlanetBlue  = tcell.NewRGBColor(100, 150, 255)

	RgbMinimapBg = tcell.NewRGBColor(50, 50, 50)

	RgbButtonBg       = tcell.NewRGBColor(40, 44, 70)
	RgbButtonDisabled = tcell.NewRGBColor(30, 30, 36)

	RgbFuelHigh = tcell.NewRGBColor(0, 200, 0)
	RgbFuelMid  = tcell.NewRGBColor(230, 200, 0)
	RgbFuelLow  = tcell.NewRGBColor(230, 40, 40)
)

// PlanetColor resolves a planet class color tag
func PlanetColor(t component.PlanetType) tcell.Color {
	switch t.Class().ColorTag {
	case "red":
		return RgbPlanetRed
	case "green":
		return RgbPlanetGreen
	default:
		return RgbPlanetBlue
	}
}

// FuelColor returns the bar color for a fill ratio
func FuelColor(ratio float64) tcell.Color {
	switch {
	case ratio > 0.5:
		return RgbFuelHigh
	case ratio > 0.2:
		return RgbFuelMid
	default:
		return RgbFuelLow
	}
}
