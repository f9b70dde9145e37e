package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-jump/internal/config"
	"github.com/vovakirdan/ninja-jump/internal/core"
	"github.com/vovakirdan/ninja-jump/internal/highscore"
	"github.com/vovakirdan/ninja-jump/internal/session"
)

func newTestModel(name string) Model {
	cfg := config.DefaultNinjaConfig()
	cfg.Terminal.KeyReleaseTicks = 3
	return NewModel(Options{
		Config:     cfg,
		Runtime:    core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 11},
		HighScores: &highscore.Memory{},
		PlayerName: name,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsRunOnEnter(t *testing.T) {
	m := newTestModel("kai")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Session().State() != session.StateRunning {
		t.Fatalf("State() = %v, expected running", m.Session().State())
	}
	if cmd == nil || !m.ticking {
		t.Error("starting a run should start the tick chain")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the score")
	}
}

func TestModelRejectsBlankName(t *testing.T) {
	m := newTestModel("   ")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Session().State() != session.StateIdle {
		t.Errorf("State() = %v, expected idle", m.Session().State())
	}
	if m.notice == "" {
		t.Error("a validation message should be shown")
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := newTestModel("kai")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, TickMsg{})

	if got := m.Session().Game().TickCount(); got != 1 {
		t.Errorf("TickCount() = %d, expected 1", got)
	}
	if cmd == nil {
		t.Error("a running game should request another tick")
	}
}

func TestModelSteerAndSyntheticRelease(t *testing.T) {
	m := newTestModel("kai")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	speed := m.Session().Game().Config().Player.Speed

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if vx := m.Session().Game().Player().VX; vx != -speed {
		t.Fatalf("VX = %v after left, expected %v", vx, -speed)
	}

	// Two idle ticks keep the key held, the third releases it
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})
	if vx := m.Session().Game().Player().VX; vx != -speed {
		t.Fatalf("VX = %v before release timeout", vx)
	}
	m, _ = update(t, m, TickMsg{})
	if vx := m.Session().Game().Player().VX; vx != 0 {
		t.Errorf("VX = %v after release timeout, expected 0", vx)
	}
}

func TestModelEscAbandonsThenQuits(t *testing.T) {
	m := newTestModel("kai")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Session().State() != session.StateIdle {
		t.Fatalf("State() = %v after esc, expected idle", m.Session().State())
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting || cmd == nil {
		t.Error("esc on the menu should quit")
	}
}

func TestModelTypingDoesNotSteer(t *testing.T) {
	m := newTestModel("")

	for _, r := range "dan" {
		m, _ = update(t, m, runeKey(r))
	}

	if got := m.name.Value(); got != "dan" {
		t.Errorf("name = %q, expected typed text", got)
	}
	if vx := m.Session().Game().Player().VX; vx != 0 {
		t.Errorf("typing moved the player, VX = %v", vx)
	}
}

func TestModelAppliesLeaderboardUpdates(t *testing.T) {
	m := newTestModel("kai")

	// An update for a run that never happened is ignored
	m, cmd := update(t, m, leaderboardMsg{Run: 42})
	if cmd == nil {
		t.Error("the leaderboard listener should be re-armed")
	}
	if m.Session().Leaderboard() != nil {
		t.Error("stale update was applied")
	}
}
