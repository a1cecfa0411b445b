package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
)

func TestGeneratePlanetConstraints(t *testing.T) {
	g := NewGenerator(DefaultParams(), 42)
	planets := g.Planets()

	if len(planets) == 0 {
		t.Fatal("expected planets to be generated")
	}

	half := float64(parameter.ArenaHalf)
	minSpacing := 2*parameter.PlanetRadius + parameter.PlanetSpacingMargin
	for i := range planets {
		p := planets[i]
		if math.Abs(p.Pos.X) > half || math.Abs(p.Pos.Y) > half {
			t.Errorf("planet %d outside arena: %v", i, p.Pos)
		}
		if p.Pos.X != math.Trunc(p.Pos.X) || p.Pos.Y != math.Trunc(p.Pos.Y) {
			t.Errorf("planet %d has non-integer position %v", i, p.Pos)
		}
		if vmath.V2FMag(p.Pos) < parameter.PlanetSafeDistance {
			t.Errorf("planet %d inside safe radius: %v", i, p.Pos)
		}
		if math.Abs(p.Vel.X) > parameter.PlanetDriftMax || math.Abs(p.Vel.Y) > parameter.PlanetDriftMax {
			t.Errorf("planet %d drift out of range: %v", i, p.Vel)
		}
		for j := i + 1; j < len(planets); j++ {
			if d := vmath.V2FDist(p.Pos, planets[j].Pos); d < minSpacing {
				t.Fatalf("planets %d and %d too close: %f", i, j, d)
			}
		}
	}

	// Default density is far below saturation, every batch fills
	w := &World{Planets: planets}
	counts := w.CountByType()
	if counts[component.PlanetHigh] != parameter.PlanetCountHigh ||
		counts[component.PlanetLow] != parameter.PlanetCountLow ||
		counts[component.PlanetMedium] != parameter.PlanetCountMedium {
		t.Errorf("unexpected counts: %v", counts)
	}
}

// TestGeneratorSaturation verifies an impossible layout terminates and under-produces
func TestGeneratorSaturation(t *testing.T) {
	p := DefaultParams()
	p.Half = 600
	p.Batches = []Batch{{Type: component.PlanetHigh, Count: 500}}

	g := NewGenerator(p, 3)
	planets := g.Planets()

	if len(planets) >= 500 {
		t.Fatalf("expected under-production, got %d planets", len(planets))
	}
	t.Logf("✓ saturated generator placed %d/500 planets", len(planets))
}

// TestGeneratorSafeZoneCoversArena verifies a batch that cannot place anything yields none
func TestGeneratorSafeZoneCoversArena(t *testing.T) {
	p := DefaultParams()
	p.Half = 100
	g := NewGenerator(p, 5)

	if planets := g.Planets(); len(planets) != 0 {
		t.Errorf("expected no planets, got %d", len(planets))
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(DefaultParams(), 99).Generate()
	b := NewGenerator(DefaultParams(), 99).Generate()

	if len(a.Planets) != len(b.Planets) || len(a.Pods) != len(b.Pods) {
		t.Fatalf("same seed produced different sizes")
	}
	for i := range a.Planets {
		if a.Planets[i] != b.Planets[i] {
			t.Fatalf("planet %d differs: %+v vs %+v", i, a.Planets[i], b.Planets[i])
		}
	}
	for i := range a.Pods {
		if a.Pods[i] != b.Pods[i] {
			t.Fatalf("pod %d differs", i)
		}
	}
}

func TestPodsUniform(t *testing.T) {
	g := NewGenerator(DefaultParams(), 11)
	pods := g.Pods(parameter.FuelPodFloor)

	if len(pods) != parameter.FuelPodFloor {
		t.Fatalf("expected %d pods, got %d", parameter.FuelPodFloor, len(pods))
	}
	half := float64(parameter.ArenaHalf)
	for i, pod := range pods {
		if pod.Collected {
			t.Errorf("pod %d starts collected", i)
		}
		if math.Abs(pod.Pos.X) > half || math.Abs(pod.Pos.Y) > half {
			t.Errorf("pod %d outside arena: %v", i, pod.Pos)
		}
	}
	if g.Pods(0) != nil {
		t.Error("expected nil for zero pods")
	}
}

// TestPodFloorMaintenance collects pods repeatedly and checks the floor is restored each time
func TestPodFloorMaintenance(t *testing.T) {
	w := NewGenerator(DefaultParams(), 21).Generate()
	rng := rand.New(rand.NewSource(8))

	for round := 0; round < 10; round++ {
		// Collect a varying number of active pods
		taken := 0
		for i := range w.Pods {
			if !w.Pods[i].Collected && taken <= round {
				w.Pods[i].Collected = true
				taken++
			}
		}

		spawned := w.ReplenishPods(rng)
		if spawned != taken {
			t.Errorf("round %d: expected %d spawned, got %d", round, taken, spawned)
		}
		if active := component.ActivePods(w.Pods); active != w.Floor {
			t.Fatalf("round %d: expected %d active pods, got %d", round, w.Floor, active)
		}
	}

	if n := w.ReplenishPods(rng); n != 0 {
		t.Errorf("expected no spawn at floor, got %d", n)
	}
}

func TestPlanetsNear(t *testing.T) {
	w := &World{
		Planets: []component.Planet{
			component.NewPlanet(vmath.Vec2F{X: 100}, vmath.Vec2F{}, component.PlanetLow),
			component.NewPlanet(vmath.Vec2F{X: 200}, vmath.Vec2F{}, component.PlanetLow),
			component.NewPlanet(vmath.Vec2F{Y: -149}, vmath.Vec2F{}, component.PlanetHigh),
		},
	}

	near := w.PlanetsNear(vmath.Vec2F{}, WarningRadius())
	if len(near) != 2 || near[0] != 0 || near[1] != 2 {
		t.Errorf("expected planets [0 2] near origin, got %v", near)
	}
}

func TestWorldUpdateReflects(t *testing.T) {
	w := &World{
		Planets: []component.Planet{component.NewPlanet(vmath.Vec2F{X: 99}, vmath.Vec2F{X: 10}, component.PlanetLow)},
		Half:    100,
	}
	w.Update(1)
	if w.Planets[0].Pos.X != 100 || w.Planets[0].Vel.X != -10 {
		t.Errorf("expected reflection at wall, got pos=%v vel=%v", w.Planets[0].Pos, w.Planets[0].Vel)
	}
}
