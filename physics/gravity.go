package physics

import (
	"github.com/lixenwraith/gravity-ship/vmath"
)

// Attractor is a body pulling the ship with an inverse-square law
type Attractor interface {
	Position() vmath.Vec2F
	Mass() float64
	Strength() float64
}

// GravitationalAccel returns acceleration on a body at pos toward attractor a
// Squared distance is floored at softening to prevent the singularity at the attractor center
func GravitationalAccel(pos vmath.Vec2F, a Attractor, softening float64) vmath.Vec2F {
	delta := vmath.V2FSub(a.Position(), pos)
	distSq := vmath.MaxF(vmath.V2FMagSq(delta), softening)

	// accel = strength * mass / distSq, direction normalized
	mag := a.Strength() * a.Mass() / distSq
	return vmath.V2FScale(vmath.V2FNormalize(delta), mag)
}

// GravityAt sums gravitational acceleration from every attractor at pos
func GravityAt[A Attractor](pos vmath.Vec2F, bodies []A, softening float64) vmath.Vec2F {
	var total vmath.Vec2F
	for i := range bodies {
		total = vmath.V2FAdd(total, GravitationalAccel(pos, bodies[i], softening))
	}
	return total
}
