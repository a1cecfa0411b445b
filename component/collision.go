package component

import (
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
)

// ShipPlanetContactDistance is the center distance below which the ship touches a planet
const ShipPlanetContactDistance = parameter.ShipRadius + parameter.PlanetRadius

// CheckPlanetCollision kills the ship on the first planet within contact distance
// Returns the index of the triggering planet; a dead ship reports no new contact
func CheckPlanetCollision(s *Ship, planets []Planet) (int, bool) {
	if !s.Alive {
		return -1, false
	}
	for i := range planets {
		if vmath.V2FDist(s.Pos, planets[i].Pos) < ShipPlanetContactDistance {
			s.Alive = false
			return i, true
		}
	}
	return -1, false
}

// CollectPods marks every uncollected pod within pickup radius as collected and refuels the ship
// Returns the number of pods collected this call
func CollectPods(s *Ship, pods []FuelPod, recharge, maxFuel float64) int {
	collected := 0
	for i := range pods {
		pod := &pods[i]
		if pod.Collected {
			continue
		}
		if vmath.V2FDist(s.Pos, pod.Pos) < parameter.PickupRadius {
			pod.Collected = true
			s.AddFuel(recharge, maxFuel)
			collected++
		}
	}
	return collected
}

// ActivePods counts uncollected pods
func ActivePods(pods []FuelPod) int {
	n := 0
	for i := range pods {
		if !pods[i].Collected {
			n++
		}
	}
	return n
}
