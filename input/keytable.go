package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-ship/engine"
)

// Axis indexes a thrust direction
type Axis uint8

const (
	AxisLeft Axis = iota
	AxisRight
	AxisUp
	AxisDown
	axisCount
)

// KeyTable maps keys to thrust axes and, per session state, to UI regions
type KeyTable struct {
	// System keys active in every state
	SystemKeys map[tcell.Key]IntentType

	// Direction bindings, active while Playing
	AxisKeys  map[tcell.Key]Axis
	AxisRunes map[rune]Axis

	// Region shortcuts by state
	RegionKeys  map[string]map[tcell.Key]string
	RegionRunes map[string]map[rune]string
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SystemKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyCtrlQ: IntentQuit,
			tcell.KeyCtrlS: IntentToggleMute,
		},

		AxisKeys: map[tcell.Key]Axis{
			tcell.KeyLeft:  AxisLeft,
			tcell.KeyRight: AxisRight,
			tcell.KeyUp:    AxisUp,
			tcell.KeyDown:  AxisDown,
		},
		AxisRunes: map[rune]Axis{
			'a': AxisLeft, 'A': AxisLeft,
			'd': AxisRight, 'D': AxisRight,
			'w': AxisUp, 'W': AxisUp,
			's': AxisDown, 'S': AxisDown,
		},

		RegionKeys: map[string]map[tcell.Key]string{
			engine.StateMenu: {
				tcell.KeyEnter:  engine.RegionMenuStart,
				tcell.KeyEscape: engine.RegionMenuQuit,
			},
			engine.StateInstructions: {
				tcell.KeyEscape:    engine.RegionBack,
				tcell.KeyBackspace: engine.RegionBack,
				tcell.KeyEnter:     engine.RegionBack,
			},
			engine.StateUpgradeShop: {
				tcell.KeyEscape:    engine.RegionBack,
				tcell.KeyBackspace: engine.RegionBack,
			},
			engine.StateGameOver: {
				tcell.KeyEnter:  engine.RegionGameOverMenu,
				tcell.KeyEscape: engine.RegionGameOverMenu,
			},
		},
		RegionRunes: map[string]map[rune]string{
			engine.StateMenu: {
				's': engine.RegionMenuStart, 'S': engine.RegionMenuStart,
				'i': engine.RegionMenuInstructions, 'I': engine.RegionMenuInstructions,
				'u': engine.RegionMenuShop, 'U': engine.RegionMenuShop,
				'q': engine.RegionMenuQuit, 'Q': engine.RegionMenuQuit,
			},
			engine.StateInstructions: {
				'b': engine.RegionBack, 'B': engine.RegionBack,
			},
			engine.StateUpgradeShop: {
				'1': engine.RegionShopMaxFuel,
				'2': engine.RegionShopRecharge,
				'3': engine.RegionShopThrust,
				'b': engine.RegionBack, 'B': engine.RegionBack,
			},
			engine.StateGameOver: {
				'm': engine.RegionGameOverMenu, 'M': engine.RegionGameOverMenu,
			},
		},
	}
}
