package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/ui"
)

// routeScrollAndMouseEvents routes scroll keys and mouse events to the appropriate panel.
// Reports whether the event was consumed.
func (m *Model) routeScrollAndMouseEvents(msg tea.Msg) (tea.Cmd, bool) {
	if m.modal.IsVisible() {
		return nil, false
	}

	// Scroll keys reach the message pane even while the sidebar is focused
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey && m.focus == FocusSidebar && m.chatShown() {
		switch keyMsg.String() {
		case "pgup", "pgdown", "page up", "page down":
			return m.updateChat(msg), true
		}
		return nil, false
	}

	switch mouseMsg := msg.(type) {
	case tea.MouseWheelMsg:
		if m.inChatPane(mouseMsg.X) {
			return m.updateChat(msg), true
		}
		return nil, true

	case tea.MouseClickMsg:
		if m.inChatPane(mouseMsg.X) {
			return m.updateChat(m.adjustMouseClickMsg(mouseMsg)), true
		}
		return m.handleSidebarClick(mouseMsg), true

	case tea.MouseMotionMsg:
		if m.inChatPane(mouseMsg.X) {
			return m.updateChat(m.adjustMouseMotionMsg(mouseMsg)), true
		}
		return nil, true

	case tea.MouseReleaseMsg:
		if m.inChatPane(mouseMsg.X) {
			return m.updateChat(m.adjustMouseReleaseMsg(mouseMsg)), true
		}
		return nil, true
	}

	return nil, false
}

// sidebarOffset is the screen column where the message pane starts
func (m *Model) sidebarOffset() int {
	if !m.sidebarVisible {
		return 0
	}
	return m.sidebar.Width()
}

// inChatPane reports whether a screen column falls inside the message pane
func (m *Model) inChatPane(x int) bool {
	return m.chatShown() && x >= m.sidebarOffset()
}

func (m *Model) updateChat(msg tea.Msg) tea.Cmd {
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	return cmd
}

// handleSidebarClick opens the conversation under the pointer
func (m *Model) handleSidebarClick(msg tea.MouseClickMsg) tea.Cmd {
	if !m.sidebarVisible || msg.Button != tea.MouseLeft {
		return nil
	}
	id, ok := m.sidebar.ConversationAtLine(msg.Y - ui.HeaderHeight)
	if !ok {
		return nil
	}
	m.sidebar.SelectConversation(id)
	_, cmd := m.openConversation(id)
	return cmd
}

// adjustMouseClickMsg adjusts mouse click coordinates for the chat panel.
// X is adjusted by subtracting sidebar width, Y by subtracting header height.
func (m *Model) adjustMouseClickMsg(msg tea.MouseClickMsg) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      msg.X - m.sidebarOffset(),
		Y:      msg.Y - ui.HeaderHeight,
		Button: msg.Button,
		Mod:    msg.Mod,
	}
}

// adjustMouseMotionMsg adjusts mouse motion coordinates for the chat panel.
func (m *Model) adjustMouseMotionMsg(msg tea.MouseMotionMsg) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{
		X:      msg.X - m.sidebarOffset(),
		Y:      msg.Y - ui.HeaderHeight,
		Button: msg.Button,
		Mod:    msg.Mod,
	}
}

// adjustMouseReleaseMsg adjusts mouse release coordinates for the chat panel.
func (m *Model) adjustMouseReleaseMsg(msg tea.MouseReleaseMsg) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{
		X:      msg.X - m.sidebarOffset(),
		Y:      msg.Y - ui.HeaderHeight,
		Button: msg.Button,
		Mod:    msg.Mod,
	}
}
