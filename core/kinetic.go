package core

import "github.com/lixenwraith/gravity-ship/vmath"

// Kinetic is the motion state shared by every mobile body in the arena
type Kinetic struct {
	// Pos is the world position in arena units, origin at arena center
	Pos vmath.Vec2F
	// Vel is velocity in units per second
	Vel vmath.Vec2F
	// Acc is frame-local acceleration in units per second squared, recomputed every step
	Acc vmath.Vec2F
}
