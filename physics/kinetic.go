package physics

import (
	"github.com/lixenwraith/gravity-ship/core"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
func Integrate(k *core.Kinetic, dt float64) {
	k.Vel = vmath.V2FAdd(k.Vel, vmath.V2FScale(k.Acc, dt))
	k.Pos = vmath.V2FAdd(k.Pos, vmath.V2FScale(k.Vel, dt))
}

// Drift advances position by constant velocity, acceleration is ignored
func Drift(k *core.Kinetic, dt float64) {
	k.Pos = vmath.V2FAdd(k.Pos, vmath.V2FScale(k.Vel, dt))
}
