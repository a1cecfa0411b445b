package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Explosion Sound
const (
	ExplosionSoundDuration = 600 * time.Millisecond
	ExplosionSoundVolume   = 0.5
)

// Pickup Sound
const (
	PickupSoundDuration = 120 * time.Millisecond
	PickupSoundFreq     = 880
)

// Purchase Sound
const (
	PurchaseSoundDuration = 80 * time.Millisecond
	PurchaseSoundFreq     = 660
	RejectSoundFreq       = 140
)

// Coin Sound
const (
	CoinSoundDuration = 40 * time.Millisecond
	CoinSoundFreq     = 1320
)
