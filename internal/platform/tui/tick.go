// Package tui runs arcade games in a terminal with Bubble Tea.
// A game advances one frame per TickMsg; the same models back local play
// and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance its game by one frame.
type TickMsg time.Time

// frameInterval is the wall-clock time between frames at rate frames per
// second. Non-positive rates run at 60.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
