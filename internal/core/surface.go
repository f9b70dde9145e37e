package core

// Sprite identifies an image a surface knows how to draw.
type Sprite int

const (
	SpriteNinja Sprite = iota
)

// Surface is the 2D drawing target the game renders onto.
// Coordinates are world units; implementations project them onto
// terminal cells or pixels.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	// FillRect fills a box with a solid color.
	FillRect(b Box, c Color)

	// DrawSprite draws an image stretched over a box, mirrored horizontally
	// when mirrored is true.
	DrawSprite(s Sprite, b Box, mirrored bool)
}

// Ninja glyphs for the terminal, left to right. The arrow marks the facing side.
var (
	ninjaRight = []rune{'░', '▓', '►'}
	ninjaLeft  = []rune{'◄', '▓', '░'}
)

// Canvas projects a world of fixed size onto a character Screen.
type Canvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas that maps a worldW x worldH world onto screen.
func NewCanvas(screen *Screen, worldW, worldH float64) *Canvas {
	return &Canvas{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

func (c *Canvas) scale() (float64, float64) {
	return float64(c.screen.Width()) / c.worldW, float64(c.screen.Height()) / c.worldH
}

// Clear erases the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect fills the cells covered by the box.
func (c *Canvas) FillRect(b Box, col Color) {
	sx, sy := c.scale()
	c.screen.DrawRect(b.Scale(sx, sy), '▀', col)
}

// DrawSprite draws a glyph strip across the cells covered by the box.
func (c *Canvas) DrawSprite(s Sprite, b Box, mirrored bool) {
	sx, sy := c.scale()
	r := b.Scale(sx, sy)

	glyphs := ninjaRight
	if mirrored {
		glyphs = ninjaLeft
	}

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			// Stretch the strip across the sprite width
			i := (x - r.X) * len(glyphs) / Max(r.W, 1)
			c.screen.SetColored(x, y, glyphs[Clamp(i, 0, len(glyphs)-1)], ColorBrightWhite)
		}
	}
}

var _ Surface = (*Canvas)(nil)
