package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-jump/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		typing bool
		want   core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, false, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, false, core.ActionRight},
		{"a steers", runeKey('a'), false, core.ActionLeft},
		{"d steers", runeKey('d'), false, core.ActionRight},
		{"a types", runeKey('a'), true, core.ActionNone},
		{"arrow while typing", tea.KeyMsg{Type: tea.KeyLeft}, true, core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false, core.ActionBack},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, true, core.ActionRestart},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, core.ActionQuit},
		{"q is not quit", runeKey('q'), false, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, tt.typing); got != tt.want {
				t.Errorf("MapKey() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestHoldTrackerReleasesAfterTimeout(t *testing.T) {
	h := NewHoldTracker(3)

	if h.Tick() {
		t.Error("Tick() with nothing held should not release")
	}

	h.Press(core.ActionLeft)
	if h.held != core.ActionLeft {
		t.Fatalf("held = %v, expected Left", h.held)
	}

	if h.Tick() || h.Tick() {
		t.Fatal("released before the timeout")
	}
	if !h.Tick() {
		t.Fatal("expected a release on the third idle tick")
	}
	if h.held != core.ActionNone {
		t.Errorf("held after release = %v", h.held)
	}
	if h.Tick() {
		t.Error("a release should fire once")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionRight)

	for i := 0; i < 10; i++ {
		if h.Tick() {
			t.Fatalf("released at tick %d despite key repeats", i)
		}
		h.Press(core.ActionRight)
	}
}

func TestHoldTrackerIgnoresNonDirectional(t *testing.T) {
	h := NewHoldTracker(1)
	h.Press(core.ActionConfirm)

	if h.held != core.ActionNone || h.Tick() {
		t.Error("non-directional actions should not be held")
	}
}

func TestBoardSizeKeepsAspect(t *testing.T) {
	tests := []struct {
		termW, termH int
		wantW, wantH int
	}{
		{120, 40, 48, 36},
		{40, 40, 38, 28},
		{10, 5, minBoardW, 15},
	}

	for _, tt := range tests {
		w, h := boardSize(tt.termW, tt.termH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("boardSize(%d, %d) = (%d, %d), expected (%d, %d)",
				tt.termW, tt.termH, w, h, tt.wantW, tt.wantH)
		}
	}
}
