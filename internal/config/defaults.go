package config

import (
	_ "embed"
)

//go:embed defaults/ninja.yaml
var defaultNinjaYAML []byte

// DefaultNinjaConfig returns the built-in configuration.
// It mirrors defaults/ninja.yaml and is used if the embedded file cannot be parsed.
func DefaultNinjaConfig() NinjaConfig {
	return NinjaConfig{
		World: WorldConfig{
			Width:    400,
			Height:   600,
			TickRate: 60,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      40,
			JumpImpulse: -15,
			Gravity:     0.5,
			Speed:       7,
			StartOffset: 100,
		},
		Platforms: PlatformConfig{
			Count:            7,
			Width:            85,
			Height:           15,
			LandingTolerance: 10,
			StartOffset:      50,
		},
		Scoring: ScoringConfig{
			LandingBonus: 10,
			RecycleBonus: 20,
		},
		Leaderboard: LeaderboardConfig{
			URL:       "http://localhost:8080",
			TimeoutMS: 5000,
			Limit:     10,
		},
		Terminal: TerminalConfig{
			KeyReleaseTicks: 45,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultNinjaYAML
}
