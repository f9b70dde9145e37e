package jump

import (
	"math/rand"

	"github.com/vovakirdan/ninja-jump/internal/config"
)

// Generator lays out and recycles the platform pool.
type Generator struct {
	rng *rand.Rand
	cfg *config.NinjaConfig
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, cfg *config.NinjaConfig) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reseed resets the RNG.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate fills dst with a fresh layout and returns it, reusing dst's
// backing array when it is large enough.
//
// Platform 0 sits horizontally centered near the bottom, under the spawn
// point. The rest are spread top to bottom, one per horizontal band, at
// random x.
func (g *Generator) Generate(dst []Platform) []Platform {
	n := g.cfg.Platforms.Count
	if cap(dst) < n {
		dst = make([]Platform, n)
	}
	dst = dst[:n]

	worldH := g.cfg.World.Height
	dst[0] = Platform{
		X: g.cfg.World.Width/2 - g.cfg.Platforms.Width/2,
		Y: worldH - g.cfg.Platforms.StartOffset,
	}

	band := worldH / float64(n)
	for i := 1; i < n; i++ {
		dst[i] = Platform{
			X: g.randomX(),
			Y: worldH - float64(i)*band,
		}
	}
	return dst
}

// Scroll moves every platform down by dy. A platform that leaves the bottom
// of the world is recycled to the top with a new random x.
// Returns the number of platforms recycled.
func (g *Generator) Scroll(platforms []Platform, dy float64) int {
	recycled := 0
	for i := range platforms {
		platforms[i].Y += dy
		if platforms[i].Y > g.cfg.World.Height {
			platforms[i].Y = 0
			platforms[i].X = g.randomX()
			recycled++
		}
	}
	return recycled
}

// randomX returns a uniform x that keeps a platform fully inside the world.
func (g *Generator) randomX() float64 {
	return g.rng.Float64() * (g.cfg.World.Width - g.cfg.Platforms.Width)
}
