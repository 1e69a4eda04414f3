package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/keys"
	"github.com/zhubert/wachat/internal/ui"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *ui.SearchMessagesState:
		return m.handleSearchMessagesModal(key, msg, s)
	case *ui.AppearanceState:
		return m.handleAppearanceModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *ui.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, Enter and Esc belong to the list's filter input
	if !state.IsFiltering() {
		switch key {
		case keys.Escape, "q", "?":
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			return m, state.Trigger()
		}
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSearchMessagesModal handles key events for the Search Messages modal.
// Enter copies the selected message.
func (m *Model) handleSearchMessagesModal(key string, msg tea.KeyPressMsg, state *ui.SearchMessagesState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		result := state.GetSelectedResult()
		if result == nil {
			return m, nil
		}
		m.modal.Hide()
		return m, tea.Batch(copyText(result.Content), m.ShowFlashSuccess("Message copied"))
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleAppearanceModal previews mode and accent while the modal is open.
// Enter persists the choice, Esc restores the theme the modal opened with.
func (m *Model) handleAppearanceModal(key string, msg tea.KeyPressMsg, state *ui.AppearanceState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.applyTheme(state.OriginalMode, state.OriginalAccent)
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.Changed() {
			return m, nil
		}
		return m, m.saveAppearance(state)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	m.applyTheme(state.GetMode(), state.GetAccent())
	return m, cmd
}

// applyTheme switches the palette when it differs from the active one
func (m *Model) applyTheme(mode, accent string) {
	if mode == ui.CurrentMode() && accent == ui.CurrentAccent() {
		return
	}
	ui.SetTheme(mode, accent)
	m.chat.RefreshStyles()
}

// saveAppearance stores the modal's values and writes the config file
func (m *Model) saveAppearance(state *ui.AppearanceState) tea.Cmd {
	m.applyTheme(state.GetMode(), state.GetAccent())

	// An unsaved mode keeps following the terminal unless the user changed it
	if state.GetMode() != state.OriginalMode || m.config.HasTheme() {
		if err := m.config.SetTheme(state.GetMode()); err != nil {
			m.log.Error("invalid theme from appearance modal", "error", err)
			return m.ShowFlashError("Unknown theme " + state.GetMode())
		}
	}
	if err := m.config.SetColorTheme(state.GetAccent()); err != nil {
		m.log.Error("invalid accent from appearance modal", "error", err)
		return m.ShowFlashError("Unknown accent " + state.GetAccent())
	}
	m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())

	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return cmd
	}
	m.log.Info("appearance saved",
		"theme", ui.CurrentThemeName(),
		"notifications", state.GetNotificationsEnabled(),
	)
	return m.ShowFlashSuccess("Appearance saved")
}
