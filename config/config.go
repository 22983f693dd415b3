package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/cellforge/engine"
)

// Config holds host-tunable engine settings, loaded from a TOML file
// over defaults
type Config struct {
	// Name appears in the status registry and terminal title
	Name string `toml:"name"`

	// Frame buffer dimensions in cells
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// MinFrameIntervalMs throttles the loop to at most one frame per
	// interval. 0 keeps the default uncapped behavior.
	MinFrameIntervalMs int `toml:"min_frame_interval_ms"`
}

// Default returns production-safe defaults
func Default() *Config {
	return &Config{
		Name:               "cellforge",
		Width:              80,
		Height:             24,
		MinFrameIntervalMs: 0,
	}
}

// Load reads TOML configuration from path, layered over Default. A
// missing file is not an error: hosts run fine on defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine would refuse at loop construction
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dimensions must be positive: %dx%d", c.Width, c.Height)
	}
	if c.MinFrameIntervalMs < 0 {
		return fmt.Errorf("min_frame_interval_ms must not be negative: %d", c.MinFrameIntervalMs)
	}
	return nil
}

// Loop converts to the engine loop configuration
func (c *Config) Loop() engine.Config {
	return engine.Config{
		Name:             c.Name,
		Width:            c.Width,
		Height:           c.Height,
		MinFrameInterval: time.Duration(c.MinFrameIntervalMs) * time.Millisecond,
	}
}
