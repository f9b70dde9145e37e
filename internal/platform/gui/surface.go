// Package gui provides the Ebiten desktop frontend for Ninja Jump. The
// window shows the world at its native size.
package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ninja-jump/internal/core"
)

var background = color.RGBA{0xf0, 0xf4, 0xf8, 0xff}

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {0x21, 0x21, 0x21, 0xff},
	core.ColorRed:         {0xc6, 0x28, 0x28, 0xff},
	core.ColorGreen:       {0x2e, 0x7d, 0x32, 0xff},
	core.ColorYellow:      {0xf9, 0xa8, 0x25, 0xff},
	core.ColorBlue:        {0x15, 0x65, 0xc0, 0xff},
	core.ColorWhite:       {0xfa, 0xfa, 0xfa, 0xff},
	core.ColorBrightWhite: {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:        {0x75, 0x75, 0x75, 0xff},
	core.ColorBrown:       {0x79, 0x55, 0x48, 0xff},
}

func paletteColor(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// imageSurface draws onto an Ebiten image in world coordinates.
type imageSurface struct {
	dst     *ebiten.Image
	sprites map[core.Sprite]*ebiten.Image
}

func newImageSurface() *imageSurface {
	return &imageSurface{}
}

// target sets the image the next frame is drawn on. Sprites are uploaded
// on the first frame, once the graphics driver is up.
func (s *imageSurface) target(dst *ebiten.Image) {
	s.dst = dst
	if s.sprites == nil {
		s.sprites = map[core.Sprite]*ebiten.Image{
			core.SpriteNinja: ebiten.NewImageFromImage(ninjaImage()),
		}
	}
}

func (s *imageSurface) Clear() {
	s.dst.Fill(background)
}

func (s *imageSurface) FillRect(b core.Box, c core.Color) {
	vector.FillRect(s.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), paletteColor(c), false)
}

func (s *imageSurface) DrawSprite(sp core.Sprite, b core.Box, mirrored bool) {
	img, ok := s.sprites[sp]
	if !ok {
		return
	}
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.W/float64(bounds.Dx()), b.H/float64(bounds.Dy()))
	if mirrored {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(b.W, 0)
	}
	op.GeoM.Translate(b.X, b.Y)
	op.Filter = ebiten.FilterNearest
	s.dst.DrawImage(img, op)
}

var _ core.Surface = (*imageSurface)(nil)

// ninjaPattern is a 16x16 ninja facing right.
// K body, R headband, W eyes, '.' transparent.
var ninjaPattern = [...]string{
	"................",
	".....KKKKKK.....",
	"....KKKKKKKK....",
	"...RRRRRRRRRRR..",
	"...RRRRRRRRRRRRR",
	"...KKKWWKKWWK.RR",
	"...KKKKKKKKKK...",
	"....KKKKKKKK....",
	"..KKKKKKKKKKKK..",
	".KKKKKKRRKKKKKK.",
	".KK.KKKKKKKK.KK.",
	".KK.KKKKKKKK.KK.",
	"....KKKKKKKK....",
	"....KKK..KKK....",
	"...KKKK..KKKK...",
	"...KKK....KKK...",
}

var ninjaColors = map[byte]color.RGBA{
	'K': {0x1b, 0x1b, 0x1f, 0xff},
	'R': {0xd3, 0x2f, 0x2f, 0xff},
	'W': {0xff, 0xff, 0xff, 0xff},
}

// ninjaImage rasterizes ninjaPattern.
func ninjaImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(ninjaPattern[0]), len(ninjaPattern)))
	for y, row := range ninjaPattern {
		for x := 0; x < len(row); x++ {
			if c, ok := ninjaColors[row[x]]; ok {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
