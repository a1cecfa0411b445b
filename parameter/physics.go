package parameter

// Arena geometry
const (
	// ArenaSize is the full side length of the square arena in world units
	ArenaSize = 5000

	// ArenaHalf is the half-extent H; every entity satisfies |x| <= H and |y| <= H after each frame
	ArenaHalf = ArenaSize / 2
)

// Gravity
const (
	// GravitySoftening is the floor applied to squared distance before the inverse-square division
	// Keeps acceleration bounded when the ship passes through a planet center
	GravitySoftening = 100.0
)

// Collision radii, identical across all planet types
const (
	// PlanetRadius is the collision and visual radius of every planet
	PlanetRadius = 30.0

	// ShipRadius is the collision radius of the ship
	ShipRadius = 8.0

	// PickupRadius is the ship-to-pod distance below which a pod is collected
	PickupRadius = 20.0

	// PodVisualRadius is the drawn radius of a fuel pod
	PodVisualRadius = 6.0
)
