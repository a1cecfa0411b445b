package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gravity-ship/parameter"
)

// DefaultPath is the config file looked up in the working directory when no -config is given
const DefaultPath = "gravity-ship.toml"

// Config is the runtime configuration, layered as defaults, then TOML file, then environment
type Config struct {
	Arena ArenaConfig `toml:"arena"`
	Ship  ShipConfig  `toml:"ship"`
	World WorldConfig `toml:"world"`
	Score ScoreConfig `toml:"score"`
	Audio AudioConfig `toml:"audio"`
	FSM   FSMConfig   `toml:"fsm"`
}

type ArenaConfig struct {
	Half int `toml:"half"`
}

type ShipConfig struct {
	FuelRate  float64 `toml:"fuel_rate"`
	Softening float64 `toml:"softening"`
}

type WorldConfig struct {
	PlanetsHigh   int   `toml:"planets_high"`
	PlanetsLow    int   `toml:"planets_low"`
	PlanetsMedium int   `toml:"planets_medium"`
	PodFloor      int   `toml:"pod_floor"`
	Seed          int64 `toml:"seed"` // 0 = time based
}

type ScoreConfig struct {
	// Endpoint is the leaderboard URL; empty disables reporting and name entry
	Endpoint      string `toml:"endpoint"`
	HighScoreFile string `toml:"high_score_file"`
	TimeoutMs     int    `toml:"timeout_ms"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0 - 1.0
}

type FSMConfig struct {
	// Path overrides the embedded session graph when set
	Path string `toml:"path"`
}

// Default returns the configuration matching compile-time parameters
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{Half: parameter.ArenaHalf},
		Ship: ShipConfig{
			FuelRate:  parameter.FuelConsumptionRate,
			Softening: parameter.GravitySoftening,
		},
		World: WorldConfig{
			PlanetsHigh:   parameter.PlanetCountHigh,
			PlanetsLow:    parameter.PlanetCountLow,
			PlanetsMedium: parameter.PlanetCountMedium,
			PodFloor:      parameter.FuelPodFloor,
		},
		Score: ScoreConfig{
			Endpoint:      parameter.ScoreEndpoint,
			HighScoreFile: parameter.HighScoreFile,
			TimeoutMs:     int(parameter.ScoreReportTimeout / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load decodes path over defaults; a missing file yields defaults without error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories
func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Arena.Half <= 0 {
		return fmt.Errorf("arena.half must be positive, got %d", c.Arena.Half)
	}
	if c.Ship.FuelRate < 0 {
		return fmt.Errorf("ship.fuel_rate must not be negative, got %f", c.Ship.FuelRate)
	}
	if c.Ship.Softening <= 0 {
		return fmt.Errorf("ship.softening must be positive, got %f", c.Ship.Softening)
	}
	if c.World.PlanetsHigh < 0 || c.World.PlanetsLow < 0 || c.World.PlanetsMedium < 0 {
		return errors.New("world planet counts must not be negative")
	}
	if c.World.PodFloor < 0 {
		return fmt.Errorf("world.pod_floor must not be negative, got %d", c.World.PodFloor)
	}
	if c.Score.TimeoutMs <= 0 {
		return fmt.Errorf("score.timeout_ms must be positive, got %d", c.Score.TimeoutMs)
	}
	return nil
}

// ScoreTimeout returns the per-request reporting bound
func (c *Config) ScoreTimeout() time.Duration {
	return time.Duration(c.Score.TimeoutMs) * time.Millisecond
}

// ApplyEnv overrides fields from GRAVITY_SHIP_* variables; unparsable values are ignored
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv("GRAVITY_SHIP_SCORE_ENDPOINT"); ok {
		c.Score.Endpoint = v
	}

	if v := os.Getenv("GRAVITY_SHIP_HIGHSCORE_FILE"); v != "" {
		c.Score.HighScoreFile = v
	}

	if v := os.Getenv("GRAVITY_SHIP_AUDIO_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Volume as 0-100
	if v := os.Getenv("GRAVITY_SHIP_VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = float64(val) / 100.0
			if c.Audio.Volume < 0 {
				c.Audio.Volume = 0
			}
			if c.Audio.Volume > 1 {
				c.Audio.Volume = 1
			}
		}
	}

	if v := os.Getenv("GRAVITY_SHIP_SEED"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.World.Seed = val
		}
	}

	if v := os.Getenv("GRAVITY_SHIP_FSM_CONFIG"); v != "" {
		c.FSM.Path = v
	}
}
