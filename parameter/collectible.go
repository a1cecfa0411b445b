package parameter

// Scoring and currency
const (
	// DistancePerPoint converts distance traveled into score
	DistancePerPoint = 10.0

	// PointsPerCoin converts score into coins, paid per full band
	PointsPerCoin = 100.0
)

// Upgrade pricing: price = base + level*step
const (
	MaxFuelPriceBase = 10
	MaxFuelPriceStep = 10

	RechargePriceBase = 10
	RechargePriceStep = 8

	ThrustPriceBase = 5
	ThrustPriceStep = 10
)
