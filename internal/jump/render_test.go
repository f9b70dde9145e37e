package jump

import (
	"testing"

	"github.com/vovakirdan/ninja-jump/internal/core"
)

type drawCall struct {
	op       string
	box      core.Box
	color    core.Color
	mirrored bool
}

// recordingSurface captures draw calls in order.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) Clear() {
	r.calls = append(r.calls, drawCall{op: "clear"})
}

func (r *recordingSurface) FillRect(b core.Box, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "fill", box: b, color: c})
}

func (r *recordingSurface) DrawSprite(_ core.Sprite, b core.Box, mirrored bool) {
	r.calls = append(r.calls, drawCall{op: "sprite", box: b, mirrored: mirrored})
}

func TestRenderDrawsPlayerAndPlatforms(t *testing.T) {
	g := newTestGame(5)
	cfg := g.Config()
	surface := &recordingSurface{}

	g.Render(surface)

	if len(surface.calls) != 2+cfg.Platforms.Count {
		t.Fatalf("expected %d draw calls, got %d", 2+cfg.Platforms.Count, len(surface.calls))
	}
	if surface.calls[0].op != "clear" {
		t.Errorf("first call should clear, got %q", surface.calls[0].op)
	}

	sprite := surface.calls[1]
	if sprite.op != "sprite" || sprite.mirrored {
		t.Errorf("expected an unmirrored sprite, got %+v", sprite)
	}
	if sprite.box != g.player.Box() {
		t.Errorf("sprite box = %+v, expected %+v", sprite.box, g.player.Box())
	}

	for i, call := range surface.calls[2:] {
		if call.op != "fill" || call.color != PlatformColor {
			t.Errorf("call %d should fill a platform, got %+v", i+2, call)
		}
		if call.box.W != cfg.Platforms.Width || call.box.H != cfg.Platforms.Height {
			t.Errorf("platform box has wrong size: %+v", call.box)
		}
	}
}

func TestRenderMirrorsWhenFacingLeft(t *testing.T) {
	g := newTestGame(5)
	g.Steer(DirectionLeft)
	surface := &recordingSurface{}

	g.Render(surface)

	if !surface.calls[1].mirrored {
		t.Error("sprite should be mirrored when facing left")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(5)
	player := g.Player()
	platforms := g.Platforms()

	g.Render(core.NewCanvas(core.NewScreen(80, 24), 400, 600))

	if g.Player() != player {
		t.Error("Render changed the player")
	}
	for i, pl := range g.Platforms() {
		if pl != platforms[i] {
			t.Errorf("Render changed platform %d", i)
		}
	}
}
