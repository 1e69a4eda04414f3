package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/config"
	"github.com/zhubert/wachat/internal/keys"
	"github.com/zhubert/wachat/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.BackgroundColorMsg:
		return m.handleBackgroundColor(msg)

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case LifecycleMsg:
		return m.handleLifecycleMsg(msg)

	case NotificationErrorMsg:
		m.log.Warn("desktop notification failed", "error", msg.Error)
		return m, nil

	case ui.ConversationSelectedMsg:
		return m.openConversation(msg.ID)

	case ui.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	// Non-key messages for the modal (cursor blink, form internals)
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	// Handle tick messages - both panels need these regardless of focus
	if cmd, handled := m.handleTickMessages(msg); handled {
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Route scroll/mouse events to appropriate panel
	if cmd, handled := m.routeScrollAndMouseEvents(msg); handled {
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update focused panel for other messages
	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)
	} else {
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "focus", m.focus, "modalVisible", m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// ctrl+c always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if key == keys.Escape && m.chat.HasTextSelection() {
		m.chat.SelectionClear()
		return m, nil
	}

	if m.focus == FocusChat && m.chat.HasConversation() {
		if result, cmd, handled := m.handleChatFocusedKeys(key); handled {
			return result, cmd
		}
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	return nil, nil
}

// handleChatFocusedKeys handles the composer's send and newline keys
func (m *Model) handleChatFocusedKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case keys.Enter:
		result, cmd := m.sendMessage()
		return result, cmd, true
	case keys.ShiftEnter, keys.AltEnter:
		m.chat.InsertNewline()
		return m, nil, true
	}
	return m, nil, false
}

// handleBackgroundColor follows the terminal's darkness until a mode is saved
func (m *Model) handleBackgroundColor(msg tea.BackgroundColorMsg) (tea.Model, tea.Cmd) {
	if m.config.HasTheme() {
		return m, nil
	}

	mode := config.ThemeLight
	if msg.IsDark() {
		mode = config.ThemeDark
	}
	if mode != ui.CurrentMode() {
		ui.SetMode(mode)
		m.chat.RefreshStyles()
		m.log.Debug("theme follows terminal background", "mode", mode)
	}
	return m, nil
}

// handleTickMessages handles timers owned by the footer and the chat panel
func (m *Model) handleTickMessages(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ui.SelectionFlashTickMsg:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return cmd, true
	case ui.FlashTickMsg:
		// Check if flash message has expired
		if m.footer.ClearIfExpired() {
			return nil, true
		}
		// Flash still active, continue ticking
		if m.footer.HasFlash() {
			return ui.FlashTick(), true
		}
		return nil, true
	case ui.ClipboardErrorMsg:
		m.log.Warn("clipboard write failed", "error", msg.Error)
		return m.ShowFlashError("Failed to copy to clipboard"), true
	}
	return nil, false
}
