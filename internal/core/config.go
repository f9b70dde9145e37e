package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The world size is fixed by the game config; the screen size only affects
// how the world is projected onto a terminal.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible state of a run.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the player fell out of the world
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that happened during the tick.
type StepResult struct {
	State    GameState
	Landings int // Platforms landed on this tick
	Recycles int // Platforms moved back to the top this tick
}
