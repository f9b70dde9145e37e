package jump

import (
	"github.com/vovakirdan/ninja-jump/internal/config"
)

// Landed reports whether a falling player touches the top of a platform.
//
// The horizontal extents must overlap and the player's feet must be inside
// [platform top, platform top + height + tolerance). Only a falling player
// (VY > 0) can land, so jumping up through a platform never counts.
func Landed(p Player, pl Platform, cfg *config.NinjaConfig) bool {
	if p.VY <= 0 {
		return false
	}

	if !p.Box().OverlapsX(pl.Box(cfg)) {
		return false
	}

	feet := p.Y + p.H
	return feet >= pl.Y && feet < pl.Y+cfg.Platforms.Height+cfg.Platforms.LandingTolerance
}
