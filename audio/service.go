package audio

import (
	"log"
	"sync/atomic"
)

// AudioService wraps SoundManager as a service.Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	cfg      *AudioConfig
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: *AudioConfig - playback settings (default DefaultAudioConfig)
// args[1]: bool - mute override from the command line (true = muted)
func (s *AudioService) Init(args ...any) error {
	cfg := DefaultAudioConfig()
	if len(args) > 0 {
		if c, ok := args[0].(*AudioConfig); ok && c != nil {
			cfg = c
		}
	}
	if len(args) > 1 {
		if muted, ok := args[1].(bool); ok && muted {
			cfg.Enabled = false
		}
	}
	s.cfg = cfg

	if !cfg.Enabled {
		s.disabled.Store(true)
		return nil
	}
	s.manager = NewSoundManager(cfg)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}

	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio: initialization failed, continuing without sound: %v", err)
		s.disabled.Store(true)
		s.manager = nil
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable or turned off
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Manager returns the sound manager, nil if disabled
func (s *AudioService) Manager() *SoundManager {
	if s.disabled.Load() {
		return nil
	}
	return s.manager
}

// Handler returns a session event handler, nil if disabled
func (s *AudioService) Handler() *EventHandler {
	m := s.Manager()
	if m == nil {
		return nil
	}
	return NewEventHandler(m)
}
