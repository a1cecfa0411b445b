package physics

import (
	"github.com/lixenwraith/gravity-ship/core"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// ThrustAccel returns the acceleration contributed by held axes at the given magnitude
// Screen convention: up is -Y
func ThrustAccel(axes core.Axes, magnitude float64) vmath.Vec2F {
	var t vmath.Vec2F
	if axes.Left {
		t.X -= magnitude
	}
	if axes.Right {
		t.X += magnitude
	}
	if axes.Up {
		t.Y -= magnitude
	}
	if axes.Down {
		t.Y += magnitude
	}
	return t
}

// BurnFuel returns fuel after burning rate*dt, floored at zero
func BurnFuel(fuel, rate, dt float64) float64 {
	return vmath.MaxF(fuel-rate*dt, 0)
}
