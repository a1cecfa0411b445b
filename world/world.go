package world

import (
	"math/rand"

	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/physics"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// World holds the planets and pods of one session
type World struct {
	Planets []component.Planet
	Pods    []component.FuelPod

	// Half is the arena half-extent used for drift reflection and pod spawning
	Half float64

	// Floor is the uncollected pod count restored every frame
	Floor int
}

// Update drifts every planet by dt
func (w *World) Update(dt float64) {
	physics.StepPlanets(w.Planets, dt, w.Half)
}

// ReplenishPods appends uniform pods until the uncollected count reaches the floor
// Returns the number of pods spawned
func (w *World) ReplenishPods(rng *rand.Rand) int {
	missing := w.Floor - component.ActivePods(w.Pods)
	if missing <= 0 {
		return 0
	}
	half := int(w.Half)
	for i := 0; i < missing; i++ {
		w.Pods = append(w.Pods, component.FuelPod{Pos: samplePoint(rng, half)})
	}
	return missing
}

// PlanetsNear returns indices of planets whose centers are within radius of pos
func (w *World) PlanetsNear(pos vmath.Vec2F, radius float64) []int {
	var near []int
	rSq := radius * radius
	for i := range w.Planets {
		if vmath.V2FDistSq(w.Planets[i].Pos, pos) < rSq {
			near = append(near, i)
		}
	}
	return near
}

// WarningRadius is the center distance at which a planet is flagged as a proximity hazard
func WarningRadius() float64 {
	return parameter.WarningDistance + parameter.PlanetRadius
}

// CountByType tallies planets per gravity class
func (w *World) CountByType() map[component.PlanetType]int {
	counts := make(map[component.PlanetType]int, 3)
	for i := range w.Planets {
		counts[w.Planets[i].Type]++
	}
	return counts
}
