package physics

import (
	"github.com/lixenwraith/gravity-ship/core"
)

// BoundaryPolicy selects the wall response of an entity kind
type BoundaryPolicy uint8

const (
	// BoundaryClamp pins position to the wall and zeroes that velocity component (inelastic)
	BoundaryClamp BoundaryPolicy = iota
	// BoundaryReflect pins position to the wall and negates that velocity component
	BoundaryReflect
)

// String returns the policy name
func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryClamp:
		return "clamp"
	case BoundaryReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// ApplyBoundary confines k to the square [-half, half]² using policy
// Axes are handled independently; returns true if either axis touched a wall
func ApplyBoundary(k *core.Kinetic, half float64, policy BoundaryPolicy) bool {
	hx := boundAxis(&k.Pos.X, &k.Vel.X, half, policy)
	hy := boundAxis(&k.Pos.Y, &k.Vel.Y, half, policy)
	return hx || hy
}

func boundAxis(pos, vel *float64, half float64, policy BoundaryPolicy) bool {
	var limit float64
	switch {
	case *pos < -half:
		limit = -half
	case *pos > half:
		limit = half
	default:
		return false
	}

	*pos = limit
	switch policy {
	case BoundaryClamp:
		*vel = 0
	case BoundaryReflect:
		*vel = -*vel
	}
	return true
}
