// Package tui provides the Bubble Tea frontend for Ninja Jump.
// It handles the terminal UI loop, input mapping, and the game screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-jump/internal/session"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(session.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// leaderboardMsg carries a finished leaderboard round trip.
type leaderboardMsg session.LeaderboardUpdate

// waitForLeaderboard blocks on the session's update channel.
// The model re-issues it after every delivery.
func waitForLeaderboard(updates <-chan session.LeaderboardUpdate) tea.Cmd {
	return func() tea.Msg {
		return leaderboardMsg(<-updates)
	}
}
