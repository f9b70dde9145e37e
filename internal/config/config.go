// Package config provides YAML-based game configuration loading for Ninja Jump.
package config

// NinjaConfig contains all configuration for the game and its frontends.
type NinjaConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Platforms   PlatformConfig    `yaml:"platforms"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Terminal    TerminalConfig    `yaml:"terminal"`
}

// WorldConfig defines the fixed world the simulation runs in.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"`
}

// PlayerConfig defines the player's size and physics constants.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	Gravity     float64 `yaml:"gravity"`
	Speed       float64 `yaml:"speed"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the spawn point above the bottom edge
}

// PlatformConfig defines the platform pool.
type PlatformConfig struct {
	Count            int     `yaml:"count"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
	StartOffset      float64 `yaml:"start_offset"` // Distance of the first platform above the bottom edge
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	LandingBonus int `yaml:"landing_bonus"`
	RecycleBonus int `yaml:"recycle_bonus"`
}

// LeaderboardConfig points the client at the remote leaderboard.
type LeaderboardConfig struct {
	URL       string `yaml:"url"`
	TimeoutMS int    `yaml:"timeout_ms"`
	Limit     int    `yaml:"limit"` // Rows served by `ninja leaderboard`
}

// TerminalConfig tunes the terminal frontend.
type TerminalConfig struct {
	// KeyReleaseTicks is how long a direction stays held without a key
	// repeat before the terminal frontend treats the key as released.
	KeyReleaseTicks int `yaml:"key_release_ticks"`
}
