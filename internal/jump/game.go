package jump

import (
	"github.com/vovakirdan/ninja-jump/internal/config"
	"github.com/vovakirdan/ninja-jump/internal/core"
)

// Game implements the Ninja Jump simulation for a single run.
// It is not safe for concurrent use; the frame scheduler owns it.
type Game struct {
	cfg       *config.NinjaConfig
	player    Player
	platforms []Platform
	gen       *Generator
	score     int
	gameOver  bool
	tickCount int
}

// New creates a game. Call Reset before the first Step.
func New(cfg config.NinjaConfig) *Game {
	return &Game{
		cfg:      &cfg,
		player:   newPlayer(&cfg),
		gen:      NewGenerator(0, &cfg),
		gameOver: true,
	}
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.NinjaConfig {
	return *g.cfg
}

// Reset starts a new run: score back to zero, the player at the spawn point
// with an upward kick, and a freshly generated platform pool.
func (g *Game) Reset(seed int64) {
	g.gen.Reseed(seed)
	g.player = newPlayer(g.cfg)
	g.player.VY = g.cfg.Player.JumpImpulse
	g.platforms = g.gen.Generate(g.platforms)
	g.score = 0
	g.gameOver = false
	g.tickCount = 0
}

// Steer applies directional input to the player.
func (g *Game) Steer(dir Direction) {
	g.player.Steer(dir, g.cfg.Player.Speed)
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	Advance(&g.player, g.cfg)

	// Landings are checked in pool order against the player's current
	// velocity, so once one landing flips VY upward the remaining platforms
	// in the same tick cannot register.
	landings := 0
	for _, pl := range g.platforms {
		if Landed(g.player, pl, g.cfg) {
			g.player.VY = g.cfg.Player.JumpImpulse
			g.score += g.cfg.Scoring.LandingBonus
			landings++
		}
	}

	// Camera follow: above the midpoint the player stays put and the world
	// scrolls down instead.
	recycles := 0
	midY := g.cfg.World.Height / 2
	if g.player.Y < midY {
		g.player.Y = midY
		recycles = g.gen.Scroll(g.platforms, -g.player.VY)
		g.score += recycles * g.cfg.Scoring.RecycleBonus
	}

	if g.player.Y > g.cfg.World.Height {
		g.gameOver = true
	}

	return core.StepResult{
		State:    g.State(),
		Landings: landings,
		Recycles: recycles,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Platforms returns a copy of the platform pool.
func (g *Game) Platforms() []Platform {
	out := make([]Platform, len(g.platforms))
	copy(out, g.platforms)
	return out
}

// TickCount returns the number of ticks simulated in this run.
func (g *Game) TickCount() int {
	return g.tickCount
}
