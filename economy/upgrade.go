package economy

import (
	"math"

	"github.com/lixenwraith/gravity-ship/parameter"
)

// StatKind identifies an upgradeable ship stat
type StatKind uint8

const (
	StatMaxFuel StatKind = iota
	StatRecharge
	StatThrust
	statKindCount
)

var statNames = [statKindCount]string{
	StatMaxFuel:  "max_fuel",
	StatRecharge: "recharge",
	StatThrust:   "thrust",
}

// String returns the stat key used in UI regions and config
func (k StatKind) String() string {
	if k >= statKindCount {
		return "unknown"
	}
	return statNames[k]
}

// StatKinds lists every stat in shop order
func StatKinds() []StatKind {
	return []StatKind{StatMaxFuel, StatRecharge, StatThrust}
}

// ParseStatKind resolves a stat key, ok is false for unknown keys
func ParseStatKind(name string) (StatKind, bool) {
	for k, n := range statNames {
		if n == name {
			return StatKind(k), true
		}
	}
	return 0, false
}

// Stat is one upgradeable value with its pricing curve
type Stat struct {
	Value     float64
	Base      float64
	Increment float64
	Cap       float64
	PriceBase int
	PriceStep int
}

// Level is the number of increments already applied
func (s Stat) Level() int {
	if s.Increment <= 0 {
		return 0
	}
	return int(math.Round((s.Value - s.Base) / s.Increment))
}

// Price is the coin cost of the next increment
func (s Stat) Price() int {
	return s.PriceBase + s.Level()*s.PriceStep
}

// AtCap reports whether the stat can no longer be raised
func (s Stat) AtCap() bool {
	return s.Value >= s.Cap
}

// Next returns the value after one more purchase, clamped to the cap
func (s Stat) Next() float64 {
	return math.Min(s.Value+s.Increment, s.Cap)
}

// PurchaseResult is the outcome of a purchase attempt
type PurchaseResult uint8

const (
	PurchaseOK PurchaseResult = iota
	PurchaseInsufficient
	PurchaseAtCap
)

// String returns a short outcome label
func (r PurchaseResult) String() string {
	switch r {
	case PurchaseOK:
		return "ok"
	case PurchaseInsufficient:
		return "insufficient"
	case PurchaseAtCap:
		return "at_cap"
	default:
		return "unknown"
	}
}

// UpgradeState is the meta-progression record: three stats and the coin balance
// Lives for the process; a session reset never touches it
type UpgradeState struct {
	Stats [statKindCount]Stat
	Coins int
}

// NewUpgradeState returns every stat at its base value and zero coins
func NewUpgradeState() *UpgradeState {
	u := &UpgradeState{}
	u.Stats[StatMaxFuel] = Stat{
		Value: parameter.MaxFuelBase, Base: parameter.MaxFuelBase,
		Increment: parameter.MaxFuelIncrement, Cap: parameter.MaxFuelCap,
		PriceBase: parameter.MaxFuelPriceBase, PriceStep: parameter.MaxFuelPriceStep,
	}
	u.Stats[StatRecharge] = Stat{
		Value: parameter.RechargeBase, Base: parameter.RechargeBase,
		Increment: parameter.RechargeIncrement, Cap: parameter.RechargeCap,
		PriceBase: parameter.RechargePriceBase, PriceStep: parameter.RechargePriceStep,
	}
	u.Stats[StatThrust] = Stat{
		Value: parameter.ThrustBase, Base: parameter.ThrustBase,
		Increment: parameter.ThrustIncrement, Cap: parameter.ThrustCap,
		PriceBase: parameter.ThrustPriceBase, PriceStep: parameter.ThrustPriceStep,
	}
	return u
}

// Stat returns a copy of the stat for kind
func (u *UpgradeState) Stat(kind StatKind) Stat {
	return u.Stats[kind]
}

// MaxFuel is the current fuel capacity
func (u *UpgradeState) MaxFuel() float64 { return u.Stats[StatMaxFuel].Value }

// Recharge is the current fuel granted per pod
func (u *UpgradeState) Recharge() float64 { return u.Stats[StatRecharge].Value }

// Thrust is the current thrust acceleration per axis
func (u *UpgradeState) Thrust() float64 { return u.Stats[StatThrust].Value }

// Purchase buys one increment of kind
// At-cap stats are rejected before any price is computed; coins are debited only on PurchaseOK
func (u *UpgradeState) Purchase(kind StatKind) PurchaseResult {
	if kind >= statKindCount {
		return PurchaseAtCap
	}
	s := &u.Stats[kind]
	if s.AtCap() {
		return PurchaseAtCap
	}
	price := s.Price()
	if u.Coins < price {
		return PurchaseInsufficient
	}
	u.Coins -= price
	s.Value = s.Next()
	return PurchaseOK
}

// Accrue credits coins earned between the awarded band and the band of score
// Returns the new awarded band and the coins credited this call
func (u *UpgradeState) Accrue(score float64, awarded int) (int, int) {
	band := CoinsForScore(score)
	if band <= awarded {
		return awarded, 0
	}
	credited := band - awarded
	u.Coins += credited
	return band, credited
}
