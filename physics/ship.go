package physics

import (
	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/core"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// ShipParams are the per-frame tuning inputs of the ship integrator
// Thrust is the current upgraded value; the rest come from configuration
type ShipParams struct {
	Thrust    float64
	FuelRate  float64
	Softening float64
	Half      float64
}

// StepShip advances the ship by dt under planet gravity and held thrust
// Order: gravity (replaces acceleration), thrust and fuel burn, integration, distance, wall clamp
// A dead ship or non-positive dt leaves the ship untouched
func StepShip(s *component.Ship, planets []component.Planet, dt float64, axes core.Axes, p ShipParams) {
	if !s.Alive || dt <= 0 {
		return
	}

	s.Acc = GravityAt(s.Pos, planets, p.Softening)

	if s.Fuel > 0 {
		s.Acc = vmath.V2FAdd(s.Acc, ThrustAccel(axes, p.Thrust))
		if axes.Any() {
			s.Fuel = BurnFuel(s.Fuel, p.FuelRate, dt)
		}
	}

	Integrate(&s.Kinetic, dt)
	s.TimeAlive += dt

	s.Distance += vmath.V2FDist(s.Pos, s.PrevPos)
	s.PrevPos = s.Pos

	ApplyBoundary(&s.Kinetic, p.Half, BoundaryClamp)
}

// StepPlanet drifts a planet by dt and reflects it off the arena walls
func StepPlanet(pl *component.Planet, dt, half float64) {
	if dt <= 0 {
		return
	}
	Drift(&pl.Kinetic, dt)
	ApplyBoundary(&pl.Kinetic, half, BoundaryReflect)
}

// StepPlanets drifts every planet in place
func StepPlanets(planets []component.Planet, dt, half float64) {
	for i := range planets {
		StepPlanet(&planets[i], dt, half)
	}
}
