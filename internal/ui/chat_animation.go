package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// SelectionFlashTickMsg is sent to animate the selection copy flash
type SelectionFlashTickMsg time.Time

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

// IsSelectionFlashing returns whether the selection flash animation is active
func (c *Chat) IsSelectionFlashing() bool {
	return c.selection.FlashFrame >= 0
}

// handleSelectionFlashTick shows the copied highlight for one frame, then clears the selection
func (c *Chat) handleSelectionFlashTick() tea.Cmd {
	if c.selection.FlashFrame < 0 {
		return nil
	}
	c.selection.FlashFrame++
	if c.selection.FlashFrame >= 1 {
		c.selection.FlashFrame = -1
		c.SelectionClear()
	}
	return nil
}
