// Package jump implements the Ninja Jump simulation: a ninja bounces on a
// fixed pool of platforms that scroll down as the ninja climbs.
package jump

import (
	"github.com/vovakirdan/ninja-jump/internal/config"
	"github.com/vovakirdan/ninja-jump/internal/core"
)

// Direction is a horizontal steering direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Player is the ninja. Y grows downward, so negative VY moves up.
type Player struct {
	X, Y   float64   // Top-left corner
	VX, VY float64   // Velocity per tick
	W, H   float64   // Hitbox size
	Facing Direction // DirectionLeft or DirectionRight
}

// newPlayer places a player at the spawn point, facing right and at rest.
func newPlayer(cfg *config.NinjaConfig) Player {
	return Player{
		X:      cfg.World.Width / 2,
		Y:      cfg.World.Height - cfg.Player.StartOffset,
		W:      cfg.Player.Width,
		H:      cfg.Player.Height,
		Facing: DirectionRight,
	}
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Steer applies a directional input. Left and right set the horizontal
// speed and facing; DirectionNone stops horizontal motion but keeps facing.
func (p *Player) Steer(dir Direction, speed float64) {
	switch dir {
	case DirectionLeft:
		p.VX = -speed
		p.Facing = DirectionLeft
	case DirectionRight:
		p.VX = speed
		p.Facing = DirectionRight
	default:
		p.VX = 0
	}
}

// Platform is one slot of the fixed platform pool.
type Platform struct {
	X, Y float64 // Top-left corner
}

// Box returns the platform's collision box.
func (pl Platform) Box(cfg *config.NinjaConfig) core.Box {
	return core.NewBox(pl.X, pl.Y, cfg.Platforms.Width, cfg.Platforms.Height)
}
