package fsm

import (
	"fmt"
	"os"
)

// LoadConfigAuto loads FSM config with priority: customPath > DefaultConfigFile > embedded
func LoadConfigAuto[T any](m *Machine[T], customPath, embeddedFallback string) error {
	// Priority 1: custom path from CLI or config
	if customPath != "" {
		return LoadConfigFromPath(m, customPath)
	}

	// Priority 2: default external file in the working directory
	if fileExists(DefaultConfigFile) {
		return LoadConfigFromPath(m, DefaultConfigFile)
	}

	// Priority 3: embedded fallback
	return m.LoadConfig([]byte(embeddedFallback))
}

// LoadConfigFromPath loads FSM config from an arbitrary file path
func LoadConfigFromPath[T any](m *Machine[T], configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read FSM config %s: %w", configPath, err)
	}
	if err := m.LoadConfig(data); err != nil {
		return fmt.Errorf("failed to load FSM config from %s: %w", configPath, err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
