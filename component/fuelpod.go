package component

import "github.com/lixenwraith/gravity-ship/vmath"

// FuelPod is a collectible fuel canister
// Collected is terminal: a collected pod stays in the collection but is never drawn or collected again
type FuelPod struct {
	Pos       vmath.Vec2F
	Collected bool
}
