package audio

import (
	"github.com/lixenwraith/gravity-ship/config"
	"github.com/lixenwraith/gravity-ship/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns defaults with sound on at full master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundExplosion: parameter.ExplosionSoundVolume,
			SoundPickup:    0.4,
			SoundPurchase:  0.3,
			SoundReject:    0.3,
			SoundCoin:      0.25,
		},
	}
}

// FromConfig builds playback settings from the runtime [audio] section
func FromConfig(c config.AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.Enabled
	cfg.MasterVolume = c.Volume
	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 1 {
		cfg.MasterVolume = 1
	}
	return cfg
}

// volume returns the effective linear volume for a sound
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
