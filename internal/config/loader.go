package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFile = "ninja.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.ninja/configs/ninja.yaml -> ./configs/ninja.yaml -> embedded default
func Load(customPath string) (NinjaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NinjaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return NinjaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		return DefaultNinjaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a partial file only
// overrides the keys it names, and validates the result.
func Parse(data []byte) (NinjaConfig, error) {
	cfg := DefaultNinjaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NinjaConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return NinjaConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c NinjaConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world: width and height must be positive"))
	}
	if c.World.TickRate <= 0 {
		errs = append(errs, errors.New("world: tick_rate must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player: width and height must be positive"))
	}
	if c.Player.JumpImpulse >= 0 {
		errs = append(errs, errors.New("player: jump_impulse must be negative"))
	}
	if c.Player.Gravity <= 0 {
		errs = append(errs, errors.New("player: gravity must be positive"))
	}
	if c.Platforms.Count < 1 {
		errs = append(errs, errors.New("platforms: count must be at least 1"))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Height <= 0 {
		errs = append(errs, errors.New("platforms: width and height must be positive"))
	}
	if c.Platforms.Width > c.World.Width {
		errs = append(errs, errors.New("platforms: width must fit inside the world"))
	}
	if c.Scoring.LandingBonus < 0 || c.Scoring.RecycleBonus < 0 {
		errs = append(errs, errors.New("scoring: bonuses must not be negative"))
	}
	return errors.Join(errs...)
}

// LeaderboardTimeout returns the per-request timeout for leaderboard calls.
func (c NinjaConfig) LeaderboardTimeout() time.Duration {
	if c.Leaderboard.TimeoutMS <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Leaderboard.TimeoutMS) * time.Millisecond
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ninja", "configs", filename)
}
