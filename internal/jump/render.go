package jump

import "github.com/vovakirdan/ninja-jump/internal/core"

// PlatformColor is the fill used for platforms.
const PlatformColor = core.ColorBrown

// Render draws the current frame. It only reads game state.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()

	dst.DrawSprite(core.SpriteNinja, g.player.Box(), g.player.Facing == DirectionLeft)

	for _, pl := range g.platforms {
		dst.FillRect(pl.Box(g.cfg), PlatformColor)
	}
}
