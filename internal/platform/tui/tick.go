// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, tick scheduling, input mapping and the
// SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the scheduler's timer fires. Gen identifies the
// timer registration; messages from superseded registrations are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that fires one TickMsg after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
