package parameter

import "time"

// Planet population per gravity class, placed in this order: High, Low, Medium
const (
	PlanetCountHigh   = 10
	PlanetCountLow    = 60
	PlanetCountMedium = 30
)

// Planet placement
const (
	// PlanetSafeDistance keeps the spawn point clear: no planet center closer than this to origin
	PlanetSafeDistance = 500.0

	// PlanetSpacingMargin is added to two planet radii for the minimum center spacing
	PlanetSpacingMargin = 80.0

	// PlanetAttemptsPerTarget bounds rejection sampling at count*PlanetAttemptsPerTarget tries
	PlanetAttemptsPerTarget = 100

	// PlanetDriftMax bounds each drift velocity component to [-PlanetDriftMax, PlanetDriftMax]
	PlanetDriftMax = 20.0
)

// Planet class constants
const (
	PlanetMassHigh       = 5000.0
	PlanetStrengthHigh   = 1500.0
	PlanetMassMedium     = 4000.0
	PlanetStrengthMedium = 1000.0
	PlanetMassLow        = 3000.0
	PlanetStrengthLow    = 500.0
)

// Fuel pods
const (
	// FuelPodFloor is the number of uncollected pods kept on the map at all times
	FuelPodFloor = 20
)

// Proximity warning
const (
	// WarningDistance is the gap between ship and planet surface that flags the planet as dangerous
	WarningDistance = 120.0
)

// Death feedback
const (
	// ExplosionDuration is how long the explosion marker stays after death
	ExplosionDuration = 1500 * time.Millisecond

	// ShakeDuration is how long the camera shakes after death
	ShakeDuration = 300 * time.Millisecond

	// ShakeAmplitude bounds the camera offset per axis while shaking
	ShakeAmplitude = 10
)
