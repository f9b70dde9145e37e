package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultNinjaConfig() {
		t.Errorf("embedded YAML and DefaultNinjaConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultNinjaConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("platforms:\n  count: 9\nscoring:\n  landing_bonus: 15\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Platforms.Count != 9 {
		t.Errorf("Platforms.Count = %d, expected 9", cfg.Platforms.Count)
	}
	if cfg.Scoring.LandingBonus != 15 {
		t.Errorf("Scoring.LandingBonus = %d, expected 15", cfg.Scoring.LandingBonus)
	}
	// Keys missing from the file keep their defaults
	if cfg.World.Width != 400 || cfg.Player.Gravity != 0.5 {
		t.Errorf("unspecified keys should keep defaults, got world=%v gravity=%v", cfg.World.Width, cfg.Player.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"positive jump impulse", "player:\n  jump_impulse: 5\n"},
		{"zero platforms", "platforms:\n  count: 0\n"},
		{"platform wider than world", "platforms:\n  width: 500\n"},
		{"negative bonus", "scoring:\n  recycle_bonus: -1\n"},
		{"zero gravity", "player:\n  gravity: 0\n"},
		{"malformed", "world: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestLeaderboardTimeout(t *testing.T) {
	cfg := DefaultNinjaConfig()
	if got := cfg.LeaderboardTimeout(); got != 5*time.Second {
		t.Errorf("LeaderboardTimeout() = %v, expected 5s", got)
	}

	cfg.Leaderboard.TimeoutMS = 0
	if got := cfg.LeaderboardTimeout(); got != 5*time.Second {
		t.Errorf("zero timeout should fall back to 5s, got %v", got)
	}

	cfg.Leaderboard.TimeoutMS = 250
	if got := cfg.LeaderboardTimeout(); got != 250*time.Millisecond {
		t.Errorf("LeaderboardTimeout() = %v, expected 250ms", got)
	}
}

func TestDefaultKeyReleaseOutlastsRepeatDelay(t *testing.T) {
	cfg := DefaultNinjaConfig()

	// X11 starts repeating a held key after 660ms
	const repeatDelay = 660 * time.Millisecond
	hold := time.Duration(cfg.Terminal.KeyReleaseTicks) * time.Second / time.Duration(cfg.World.TickRate)
	if hold <= repeatDelay {
		t.Errorf("key release after %v would drop a held arrow before the first repeat (%v)", hold, repeatDelay)
	}
}
