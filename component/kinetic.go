package component

import (
	"github.com/lixenwraith/gravity-ship/core"
)

// KineticComponent provides the motion state for every mobile arena body
type KineticComponent struct {
	core.Kinetic
}
