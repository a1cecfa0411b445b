package component

import (
	"github.com/lixenwraith/gravity-ship/vmath"
)

// Ship is the player craft
// Motion is written only by the integrator; Alive only by collision; Fuel by integrator and pods
type Ship struct {
	KineticComponent

	// Fuel is bounded to [0, max fuel upgrade value]
	Fuel float64

	// Alive is monotone within a session: true until the first planet contact
	Alive bool

	// Distance is cumulative path length in world units
	Distance float64

	// PrevPos caches the position at the end of the previous step for distance accounting
	PrevPos vmath.Vec2F

	// CoinsAwarded is the last coin band already paid out for this run
	CoinsAwarded int

	// TimeAlive is seconds survived
	TimeAlive float64
}

// NewShip creates a live ship at pos with a full tank
func NewShip(pos vmath.Vec2F, fuel float64) *Ship {
	s := &Ship{
		Fuel:    fuel,
		Alive:   true,
		PrevPos: pos,
	}
	s.Pos = pos
	return s
}

// AddFuel raises fuel by amount, capped at maxFuel
func (s *Ship) AddFuel(amount, maxFuel float64) {
	s.Fuel = vmath.MinF(maxFuel, s.Fuel+amount)
}

// ClampFuel lowers fuel to maxFuel if above it, never raises it
func (s *Ship) ClampFuel(maxFuel float64) {
	if s.Fuel > maxFuel {
		s.Fuel = maxFuel
	}
}
