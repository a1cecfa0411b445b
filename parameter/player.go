package parameter

// Ship motion and fuel
const (
	// FuelConsumptionRate is fuel burned per second while any thrust axis is held
	FuelConsumptionRate = 10.0
)

// Upgradeable ship stats: base value, increment per purchase, cap
const (
	MaxFuelBase      = 100.0
	MaxFuelIncrement = 20.0
	MaxFuelCap       = 240.0

	RechargeBase      = 50.0
	RechargeIncrement = 10.0
	RechargeCap       = 150.0

	ThrustBase      = 100.0
	ThrustIncrement = 10.0
	ThrustCap       = 200.0
)
