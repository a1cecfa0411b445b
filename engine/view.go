package engine

import (
	"github.com/lixenwraith/gravity-ship/component"
	"github.com/lixenwraith/gravity-ship/economy"
	"github.com/lixenwraith/gravity-ship/parameter"
	"github.com/lixenwraith/gravity-ship/vmath"
	"github.com/lixenwraith/gravity-ship/world"
)

// ShipView is the ship as seen from the camera
type ShipView struct {
	Rel   vmath.Vec2F
	Pos   vmath.Vec2F
	Vel   vmath.Vec2F
	Alive bool
}

// PlanetView is one planet relative to the camera
type PlanetView struct {
	Rel     vmath.Vec2F
	Type    component.PlanetType
	Warning bool
}

// PodView is one uncollected pod relative to the camera
type PodView struct {
	Rel vmath.Vec2F
}

// UpgradeRow is one shop line
type UpgradeRow struct {
	Stat       economy.StatKind
	Region     string
	Value      float64
	Next       float64
	Price      int
	AtCap      bool
	Affordable bool
}

// View is a read-only per-frame snapshot; renderers draw it without applying game rules
type View struct {
	State string

	// Camera is the world point drawn at screen center
	Camera vmath.Vec2F
	Half   float64

	Ship    ShipView
	Planets []PlanetView
	Pods    []PodView

	Fuel      float64
	MaxFuel   float64
	Score     float64
	HighScore float64
	Coins     int
	TimeAlive float64

	Upgrades     []UpgradeRow
	LastPurchase string

	NameText   string
	NameMax    int
	PlayerName string

	Exploding bool
	Shaking   bool
}

// View builds the snapshot for the current frame
func (s *Session) View() View {
	camera := vmath.V2FAdd(s.Ship.Pos, s.ShakeOffset)

	v := View{
		State:  s.State(),
		Camera: camera,
		Half:   s.World.Half,
		Ship: ShipView{
			Rel:   vmath.V2FSub(s.Ship.Pos, camera),
			Pos:   s.Ship.Pos,
			Vel:   s.Ship.Vel,
			Alive: s.Ship.Alive,
		},
		Fuel:       s.Ship.Fuel,
		MaxFuel:    s.Upgrades.MaxFuel(),
		Score:      s.Score,
		HighScore:  s.HighScore,
		Coins:      s.Upgrades.Coins,
		TimeAlive:  s.Ship.TimeAlive,
		NameText:   string(s.nameBuf),
		NameMax:    parameter.NameMaxLength,
		PlayerName: s.PlayerName,
		Exploding:  s.ExplosionTimer > 0,
		Shaking:    s.ShakeTimer > 0,
	}

	v.Planets = make([]PlanetView, len(s.World.Planets))
	for i := range s.World.Planets {
		p := &s.World.Planets[i]
		v.Planets[i] = PlanetView{
			Rel:  vmath.V2FSub(p.Pos, camera),
			Type: p.Type,
		}
	}
	if s.Ship.Alive {
		for _, i := range s.World.PlanetsNear(s.Ship.Pos, world.WarningRadius()) {
			v.Planets[i].Warning = true
		}
	}

	v.Pods = make([]PodView, 0, s.World.Floor)
	for i := range s.World.Pods {
		if s.World.Pods[i].Collected {
			continue
		}
		v.Pods = append(v.Pods, PodView{Rel: vmath.V2FSub(s.World.Pods[i].Pos, camera)})
	}

	for _, kind := range economy.StatKinds() {
		st := s.Upgrades.Stat(kind)
		v.Upgrades = append(v.Upgrades, UpgradeRow{
			Stat:       kind,
			Region:     ShopRegion(kind),
			Value:      st.Value,
			Next:       st.Next(),
			Price:      st.Price(),
			AtCap:      st.AtCap(),
			Affordable: !st.AtCap() && s.Upgrades.Coins >= st.Price(),
		})
	}

	if s.LastPurchaseSet {
		v.LastPurchase = s.LastPurchase.String()
	}
	return v
}
