package component

import (
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// PlanetType is the gravity class of a planet
type PlanetType uint8

const (
	PlanetLow    PlanetType = iota // Blue, weakest pull
	PlanetMedium                   // Green
	PlanetHigh                     // Red, strongest pull
	planetTypeCount
)

// PlanetClass holds the immutable constants of a gravity class
type PlanetClass struct {
	Name     string
	Mass     float64
	Strength float64
	// ColorTag is the render color key, resolved by the presentation layer
	ColorTag string
}

// planetClasses is the type -> constants lookup, indexed by PlanetType
var planetClasses = [planetTypeCount]PlanetClass{
	PlanetLow:    {Name: "low", Mass: parameter.PlanetMassLow, Strength: parameter.PlanetStrengthLow, ColorTag: "blue"},
	PlanetMedium: {Name: "medium", Mass: parameter.PlanetMassMedium, Strength: parameter.PlanetStrengthMedium, ColorTag: "green"},
	PlanetHigh:   {Name: "high", Mass: parameter.PlanetMassHigh, Strength: parameter.PlanetStrengthHigh, ColorTag: "red"},
}

// Class returns the constants for t, unknown types fall back to PlanetLow
func (t PlanetType) Class() PlanetClass {
	if t >= planetTypeCount {
		return planetClasses[PlanetLow]
	}
	return planetClasses[t]
}

// String returns the class name
func (t PlanetType) String() string {
	return t.Class().Name
}

// PlanetTypes lists every class in ascending gravity order
func PlanetTypes() []PlanetType {
	return []PlanetType{PlanetLow, PlanetMedium, PlanetHigh}
}

// Planet is a drifting gravity source
// Mass and strength are derived from Type and never change during the planet's lifetime
type Planet struct {
	KineticComponent
	Type PlanetType
}

// NewPlanet creates a planet at pos with constant drift velocity vel
func NewPlanet(pos, vel vmath.Vec2F, t PlanetType) Planet {
	p := Planet{Type: t}
	p.Pos = pos
	p.Vel = vel
	return p
}

// Position implements physics.Attractor
func (p Planet) Position() vmath.Vec2F { return p.Pos }

// Mass implements physics.Attractor
func (p Planet) Mass() float64 { return p.Type.Class().Mass }

// Strength implements physics.Attractor
func (p Planet) Strength() float64 { return p.Type.Class().Strength }
