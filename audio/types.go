package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundExplosion SoundType = iota // Ship destroyed
	SoundPickup                     // Fuel pod collected
	SoundPurchase                   // Upgrade bought
	SoundReject                     // Upgrade refused
	SoundCoin                       // Coins credited
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundExplosion: "explosion",
	SoundPickup:    "pickup",
	SoundPurchase:  "purchase",
	SoundReject:    "reject",
	SoundCoin:      "coin",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
