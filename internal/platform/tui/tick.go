// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seal-arcade/internal/frame"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time

	// driver identifies the frame driver that produced the tick so a model
	// can drop ticks left over from a previous game.
	driver *frame.Driver
}

// waitFrame returns a command that blocks until the driver delivers the next
// frame. It yields nil once the driver is cancelled, which ends the chain.
func waitFrame(d *frame.Driver) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-d.Frames()
		if !ok {
			return nil
		}
		return TickMsg{Time: t, driver: d}
	}
}
