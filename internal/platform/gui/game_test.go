package gui

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/ninja-jump/internal/config"
	"github.com/vovakirdan/ninja-jump/internal/session"
)

// scriptedKeys replays one frame of keyboard state per Update.
type scriptedKeys struct {
	held     map[ebiten.Key]bool
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
	chars    []rune
}

func newScriptedKeys() *scriptedKeys {
	return &scriptedKeys{
		held:     map[ebiten.Key]bool{},
		pressed:  map[ebiten.Key]bool{},
		released: map[ebiten.Key]bool{},
	}
}

func (k *scriptedKeys) Pressed(key ebiten.Key) bool      { return k.held[key] }
func (k *scriptedKeys) JustPressed(key ebiten.Key) bool  { return k.pressed[key] }
func (k *scriptedKeys) JustReleased(key ebiten.Key) bool { return k.released[key] }
func (k *scriptedKeys) AppendChars(dst []rune) []rune    { return append(dst, k.chars...) }

func (k *scriptedKeys) PressDuration(key ebiten.Key) int {
	if k.pressed[key] {
		return 1
	}
	return 0
}

func (k *scriptedKeys) press(keys ...ebiten.Key) {
	for _, key := range keys {
		k.held[key] = true
		k.pressed[key] = true
	}
}

func (k *scriptedKeys) release(keys ...ebiten.Key) {
	for _, key := range keys {
		delete(k.held, key)
		k.released[key] = true
	}
}

// frame runs one Update and clears the per-frame edges.
func (k *scriptedKeys) frame(t *testing.T, g *Game) error {
	t.Helper()
	err := g.Update()
	k.pressed = map[ebiten.Key]bool{}
	k.released = map[ebiten.Key]bool{}
	k.chars = nil
	return err
}

func newScriptedGame(name string) (*Game, *scriptedKeys) {
	g := NewGame(Options{Config: config.DefaultNinjaConfig(), Seed: 7, PlayerName: name})
	keys := newScriptedKeys()
	g.keys = keys
	return g, keys
}

func TestGameTypedNameStartsRun(t *testing.T) {
	g, keys := newScriptedGame("")

	keys.chars = []rune("kai")
	keys.frame(t, g)
	keys.press(ebiten.KeyEnter)
	keys.frame(t, g)

	s := g.Session()
	if s.State() != session.StateRunning || s.Name() != "kai" {
		t.Fatalf("state = %v, name = %q, expected a running run for kai", s.State(), s.Name())
	}
}

func TestGameBlankNameShowsNotice(t *testing.T) {
	g, keys := newScriptedGame("")

	keys.press(ebiten.KeyEnter)
	keys.frame(t, g)

	if g.Session().State() != session.StateIdle {
		t.Errorf("state = %v, expected idle", g.Session().State())
	}
	if g.notice == "" {
		t.Error("expected a validation notice")
	}
}

func TestGameReleasingEitherArrowStops(t *testing.T) {
	g, keys := newScriptedGame("kai")
	keys.press(ebiten.KeyEnter)
	keys.frame(t, g)

	speed := g.Session().Game().Config().Player.Speed
	player := func() float64 { return g.Session().Game().Player().VX }

	keys.press(ebiten.KeyArrowRight)
	keys.frame(t, g)
	if player() != speed {
		t.Fatalf("VX = %v after pressing right, expected %v", player(), speed)
	}

	keys.press(ebiten.KeyArrowLeft)
	keys.frame(t, g)
	if player() != -speed {
		t.Fatalf("VX = %v after pressing left, expected %v", player(), -speed)
	}

	// Letting go of left stops the ninja although right is still down
	keys.release(ebiten.KeyArrowLeft)
	keys.frame(t, g)
	if player() != 0 {
		t.Errorf("VX = %v after releasing left, expected 0", player())
	}
	if !keys.held[ebiten.KeyArrowRight] {
		t.Fatal("right should still be held")
	}
}

func TestGameRestartAndEscape(t *testing.T) {
	g, keys := newScriptedGame("kai")
	keys.press(ebiten.KeyEnter)
	keys.frame(t, g)

	keys.press(ebiten.KeyControlLeft, ebiten.KeyR)
	keys.frame(t, g)
	keys.release(ebiten.KeyControlLeft, ebiten.KeyR)

	s := g.Session()
	if s.Run() != 2 || s.State() != session.StateRunning {
		t.Fatalf("run = %d, state = %v, expected a second running run", s.Run(), s.State())
	}

	keys.press(ebiten.KeyEscape)
	if err := keys.frame(t, g); err != nil {
		t.Fatalf("esc during a run: %v", err)
	}
	if s.State() != session.StateIdle {
		t.Fatalf("state = %v, expected idle after esc", s.State())
	}
	if g.name.String() != "kai" {
		t.Errorf("name field = %q, expected the retained name", g.name.String())
	}

	keys.press(ebiten.KeyEscape)
	if err := keys.frame(t, g); !errors.Is(err, ebiten.Termination) {
		t.Errorf("esc on the menu = %v, expected ebiten.Termination", err)
	}
}
