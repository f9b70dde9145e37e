package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-jump/internal/core"
)

// KeyMap defines the key bindings of the game screens.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Confirm, k.Restart, k.Back},
		{k.Screenshot, k.Quit},
	}
}

// menuHelp lists the bindings shown while the name field has focus.
type menuHelp struct {
	keys KeyMap
}

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Confirm, h.keys.Restart, h.keys.Back, h.keys.Quit}
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. While typing, printable
// keys belong to the text field and only control keys map to actions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, typing bool) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm
	}

	if typing {
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// HoldTracker synthesizes key releases. Terminals report key repeats but
// never key-ups, so a direction counts as released once no repeat arrived
// for a number of ticks.
type HoldTracker struct {
	timeout int
	held    core.Action
	idle    int
}

// NewHoldTracker creates a tracker releasing after timeout idle ticks.
func NewHoldTracker(timeout int) *HoldTracker {
	if timeout < 1 {
		timeout = 1
	}
	return &HoldTracker{timeout: timeout}
}

// Press records a directional key press or repeat.
func (h *HoldTracker) Press(a core.Action) {
	if !a.IsDirectional() {
		return
	}
	h.held = a
	h.idle = 0
}

// Tick advances the idle counter and reports whether the held key was
// released on this tick.
func (h *HoldTracker) Tick() bool {
	if h.held == core.ActionNone {
		return false
	}
	h.idle++
	if h.idle >= h.timeout {
		h.Reset()
		return true
	}
	return false
}

// Reset forgets any held key.
func (h *HoldTracker) Reset() {
	h.held = core.ActionNone
	h.idle = 0
}
