// Package tui runs the snake game in a terminal with Bubble Tea, locally or
// per SSH session. It maps keys to game actions, paces the simulation and
// converts the game's screen buffer to styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick chain so a superseded chain dies out.
type TickMsg struct {
	Time time.Time
	Loop int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, loop int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
