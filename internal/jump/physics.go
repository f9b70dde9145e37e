package jump

import (
	"math"

	"github.com/vovakirdan/ninja-jump/internal/config"
)

// Advance integrates one tick: position moves by the current velocity, then
// gravity accelerates the fall. The world wraps horizontally, so there are
// no side walls.
func Advance(p *Player, cfg *config.NinjaConfig) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += cfg.Player.Gravity

	p.X = wrap(p.X, cfg.World.Width)
}

// wrap maps x into [0, width]. Positions past either edge re-enter from the
// opposite edge by the same overshoot.
func wrap(x, width float64) float64 {
	if x > width {
		return math.Mod(x, width)
	}
	if x < 0 {
		return width + math.Mod(x, width)
	}
	return x
}
