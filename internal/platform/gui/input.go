package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyboard is the slice of Ebiten's input state the game reads.
type keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	PressDuration(k ebiten.Key) int
	AppendChars(dst []rune) []rune
}

// ebitenKeyboard reads the live keyboard.
type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeyboard) PressDuration(k ebiten.Key) int { return inpututil.KeyPressDuration(k) }
func (ebitenKeyboard) AppendChars(dst []rune) []rune  { return ebiten.AppendInputChars(dst) }
