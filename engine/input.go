package engine

import (
	"github.com/lixenwraith/gravity-ship/core"
	"github.com/lixenwraith/gravity-ship/economy"
	"github.com/lixenwraith/gravity-ship/event"
)

// Input is the per-frame snapshot of directional intent
type Input struct {
	core.Axes
}

// UI regions resolved by the presentation layer
const (
	RegionMenuStart        = "menu.start"
	RegionMenuInstructions = "menu.instructions"
	RegionMenuShop         = "menu.shop"
	RegionMenuQuit         = "menu.quit"
	RegionBack             = "back"
	RegionShopMaxFuel      = "shop.max_fuel"
	RegionShopRecharge     = "shop.recharge"
	RegionShopThrust       = "shop.thrust"
	RegionGameOverMenu     = "gameover.menu"
)

var regionEvents = map[string]event.EventType{
	RegionMenuStart:        event.EventMenuStart,
	RegionMenuInstructions: event.EventMenuInstructions,
	RegionMenuShop:         event.EventMenuShop,
	RegionMenuQuit:         event.EventMenuQuit,
	RegionBack:             event.EventBack,
	RegionGameOverMenu:     event.EventGameOverMenu,
}

var regionStats = map[string]economy.StatKind{
	RegionShopMaxFuel:  economy.StatMaxFuel,
	RegionShopRecharge: economy.StatRecharge,
	RegionShopThrust:   economy.StatThrust,
}

// ShopRegion returns the region name of a stat's buy button
func ShopRegion(kind economy.StatKind) string {
	return "shop." + kind.String()
}

// Activate handles a UI activation on a named region
// Returns true if the activation changed state or attempted a purchase
func (s *Session) Activate(region string) bool {
	if kind, ok := regionStats[region]; ok {
		if s.State() != StateUpgradeShop {
			return false
		}
		s.purchase(kind)
		return true
	}

	et, ok := regionEvents[region]
	if !ok {
		return false
	}
	before := s.machine.CurrentStateID()
	s.Push(et, nil)
	s.dispatch()
	return s.machine.CurrentStateID() != before
}
