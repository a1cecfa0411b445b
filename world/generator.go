package world

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// Batch is one planet population request: Count planets of a single Type
type Batch struct {
	Type  component.PlanetType
	Count int
}

// Params tunes world generation; zero fields are not defaulted, use DefaultParams
type Params struct {
	// Half is the arena half-extent, samples are integers in [-Half, Half]
	Half int

	// Batches are placed in order; spacing is checked against every planet placed so far
	Batches []Batch

	// SafeDistance keeps planet centers away from the spawn point
	SafeDistance float64

	// MinSpacing is the minimum center distance between any two planets
	MinSpacing float64

	// AttemptsPerTarget bounds sampling per batch at Count*AttemptsPerTarget
	AttemptsPerTarget int

	// DriftMax bounds each planet drift velocity component
	DriftMax float64

	// PodCount is the number of pods placed at reset and the floor kept during play
	PodCount int
}

// DefaultParams returns the standard dense galaxy layout
func DefaultParams() Params {
	return Params{
		Half: parameter.ArenaHalf,
		Batches: []Batch{
			{Type: component.PlanetHigh, Count: parameter.PlanetCountHigh},
			{Type: component.PlanetLow, Count: parameter.PlanetCountLow},
			{Type: component.PlanetMedium, Count: parameter.PlanetCountMedium},
		},
		SafeDistance:      parameter.PlanetSafeDistance,
		MinSpacing:        2*parameter.PlanetRadius + parameter.PlanetSpacingMargin,
		AttemptsPerTarget: parameter.PlanetAttemptsPerTarget,
		DriftMax:          parameter.PlanetDriftMax,
		PodCount:          parameter.FuelPodFloor,
	}
}

// Generator procedurally places planets and pods
// RNG is owned by the caller; a nil RNG is replaced with a time-seeded source on first use
type Generator struct {
	Params Params
	RNG    *rand.Rand
}

// NewGenerator creates a generator; seed 0 selects a time-based seed
func NewGenerator(p Params, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{Params: p, RNG: rand.New(rand.NewSource(seed))}
}

func (g *Generator) rng() *rand.Rand {
	if g.RNG == nil {
		g.RNG = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g.RNG
}

// Generate builds a fresh world: planets from every batch and the initial pod set
func (g *Generator) Generate() *World {
	return &World{
		Planets: g.Planets(),
		Pods:    g.Pods(g.Params.PodCount),
		Half:    float64(g.Params.Half),
		Floor:   g.Params.PodCount,
	}
}

// Planets places every batch with rejection sampling
// Each batch stops at its count or after its attempt limit, so the result may hold fewer planets than requested
func (g *Generator) Planets() []component.Planet {
	total := 0
	for _, b := range g.Params.Batches {
		total += b.Count
	}
	planets := make([]component.Planet, 0, total)

	for _, b := range g.Params.Batches {
		planets = g.placeBatch(planets, b)
	}
	return planets
}

func (g *Generator) placeBatch(planets []component.Planet, b Batch) []component.Planet {
	if b.Count <= 0 {
		return planets
	}

	placed := 0
	attempts := b.Count * g.Params.AttemptsPerTarget
	safeSq := g.Params.SafeDistance * g.Params.SafeDistance
	spacingSq := g.Params.MinSpacing * g.Params.MinSpacing

	for i := 0; i < attempts && placed < b.Count; i++ {
		pos := g.samplePoint()

		if vmath.V2FMagSq(pos) < safeSq {
			continue
		}
		if tooClose(planets, pos, spacingSq) {
			continue
		}

		planets = append(planets, component.NewPlanet(pos, g.sampleDrift(), b.Type))
		placed++
	}
	return planets
}

func tooClose(planets []component.Planet, pos vmath.Vec2F, spacingSq float64) bool {
	for i := range planets {
		if vmath.V2FDistSq(planets[i].Pos, pos) < spacingSq {
			return true
		}
	}
	return false
}

// Pods places n pods uniformly; pods may overlap planets and each other
func (g *Generator) Pods(n int) []component.FuelPod {
	if n <= 0 {
		return nil
	}
	pods := make([]component.FuelPod, n)
	for i := range pods {
		pods[i].Pos = g.samplePoint()
	}
	return pods
}

// samplePoint draws independent integer coordinates in [-Half, Half]
func (g *Generator) samplePoint() vmath.Vec2F {
	return samplePoint(g.rng(), g.Params.Half)
}

func samplePoint(rng *rand.Rand, half int) vmath.Vec2F {
	span := 2*half + 1
	return vmath.Vec2F{
		X: float64(rng.Intn(span) - half),
		Y: float64(rng.Intn(span) - half),
	}
}

func (g *Generator) sampleDrift() vmath.Vec2F {
	r := g.rng()
	m := g.Params.DriftMax
	return vmath.Vec2F{
		X: (r.Float64()*2 - 1) * m,
		Y: (r.Float64()*2 - 1) * m,
	}
}
