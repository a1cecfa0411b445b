package core

// Axes is a per-frame snapshot of directional thrust intent
// Each axis is independent; opposite axes may be held together
type Axes struct {
	Left, Right, Up, Down bool
}

// Any reports whether at least one axis is held
func (a Axes) Any() bool {
	return a.Left || a.Right || a.Up || a.Down
}
