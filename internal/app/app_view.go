package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/wachat/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// The demo executor captures frames through it.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	var panels []string
	if m.sidebarVisible {
		panels = append(panels, m.sidebar.View())
	}
	if m.chatShown() {
		panels = append(panels, m.chat.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, panels...),
		m.footer.View(),
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.chat.HasConversation(), m.focus == FocusSidebar, m.sidebar.IsSearchMode())
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.SetSidebarVisible(m.sidebarVisible)
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.header.SetNarrow(ctx.Narrow && m.sidebarVisible)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
}
