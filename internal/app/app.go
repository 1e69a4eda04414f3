package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/chat"
	"github.com/zhubert/wachat/internal/clipboard"
	"github.com/zhubert/wachat/internal/config"
	"github.com/zhubert/wachat/internal/logger"
	"github.com/zhubert/wachat/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "Sidebar"
	case FocusChat:
		return "Chat"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config     *config.Config
	opts       Options
	controller *chat.Controller
	scheduler  Scheduler

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.Chat
	modal   *ui.Modal

	width          int
	height         int
	focus          Focus
	sidebarVisible bool

	log *slog.Logger
}

// New creates a new app model. The saved theme is applied before any
// component is built so the first frame already uses it.
func New(cfg *config.Config, opts Options) *Model {
	mode := config.ThemeLight
	if cfg.HasTheme() {
		mode = cfg.GetTheme()
	}
	ui.SetTheme(mode, cfg.GetColorTheme())

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = TickScheduler{}
	}

	ctrl := chat.NewController(opts.Seed, opts.Chat)

	m := &Model{
		config:         cfg,
		opts:           opts,
		controller:     ctrl,
		scheduler:      scheduler,
		header:         ui.NewHeader(),
		footer:         ui.NewFooter(),
		sidebar:        ui.NewSidebar(),
		chat:           ui.NewChat(),
		modal:          ui.NewModal(),
		focus:          FocusSidebar,
		sidebarVisible: true,
		log:            logger.WithComponent("app"),
	}

	m.sidebar.SetCurrentUser(ctrl.CurrentUser())
	m.chat.SetCurrentUser(ctrl.CurrentUser().ID)
	m.sidebar.SetFocused(true)
	m.refreshViews()

	m.log.Info("app started",
		"version", opts.Version,
		"conversations", len(opts.Seed),
		"theme", ui.CurrentThemeName(),
	)
	return m
}

// Init asks the terminal for its background color when no theme mode was saved.
func (m *Model) Init() tea.Cmd {
	if !m.config.HasTheme() {
		return tea.RequestBackgroundColor
	}
	return nil
}

// Controller returns the lifecycle controller. Used by the demo executor and tests.
func (m *Model) Controller() *chat.Controller {
	return m.controller
}

// Focus returns the focused panel
func (m *Model) Focus() Focus {
	return m.focus
}

// SidebarVisible reports whether the conversation list is shown
func (m *Model) SidebarVisible() bool {
	return m.sidebarVisible
}

// =============================================================================
// Layout
// =============================================================================

// isNarrow reports whether only one pane fits
func (m *Model) isNarrow() bool {
	return m.width > 0 && m.width < ui.NarrowWidth
}

// chatShown reports whether the message pane is rendered
func (m *Model) chatShown() bool {
	return !(m.isNarrow() && m.sidebarVisible)
}

// =============================================================================
// Focus Management
// =============================================================================

// setFocus moves focus, refusing to focus the chat without an open conversation
func (m *Model) setFocus(f Focus) {
	if f == FocusChat && !m.chat.HasConversation() {
		return
	}
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)
	m.chat.SetFocused(f == FocusChat)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		if !m.chat.HasConversation() {
			return
		}
		if !m.chatShown() {
			m.sidebarVisible = false
			m.updateSizes()
		}
		m.setFocus(FocusChat)
		return
	}

	if !m.sidebarVisible {
		m.sidebarVisible = true
		m.updateSizes()
	}
	m.setFocus(FocusSidebar)
}

// toggleSidebar shows or hides the conversation list
func (m *Model) toggleSidebar() {
	m.sidebarVisible = !m.sidebarVisible
	m.updateSizes()

	switch {
	case !m.sidebarVisible:
		m.setFocus(FocusChat)
	case !m.chatShown():
		m.setFocus(FocusSidebar)
	}
	m.log.Debug("sidebar toggled", "visible", m.sidebarVisible, "focus", m.focus)
}

// =============================================================================
// Conversations
// =============================================================================

// refreshViews pushes fresh snapshots from the controller into every component
func (m *Model) refreshViews() {
	m.sidebar.SetConversations(m.controller.Conversations(), m.controller.ActiveID())

	conv, ok := m.controller.Active()
	if !ok {
		m.chat.ClearConversation()
		m.header.ClearContact()
		return
	}

	m.chat.SetConversation(conv)
	if other, ok := conv.OtherParticipant(m.controller.CurrentUser().ID); ok {
		m.header.SetContact(other.Name, other.Presence())
	} else {
		m.header.ClearContact()
	}
}

// selectConversation makes id active. In the narrow layout the list gives way
// to the conversation.
func (m *Model) selectConversation(id string) bool {
	if !m.controller.SelectConversation(id) {
		m.log.Warn("select of unknown conversation", "conversationID", id)
		return false
	}
	m.refreshViews()
	m.sidebar.SelectConversation(id)

	if m.isNarrow() && m.sidebarVisible {
		m.sidebarVisible = false
		m.updateSizes()
		m.setFocus(FocusChat)
	}
	return true
}

// openConversation selects a conversation and focuses the composer
func (m *Model) openConversation(id string) (tea.Model, tea.Cmd) {
	if m.selectConversation(id) {
		m.setFocus(FocusChat)
	}
	return m, nil
}

// cycleConversation selects the next or previous listed conversation, keeping focus
func (m *Model) cycleConversation(delta int) (tea.Model, tea.Cmd) {
	ids := m.sidebar.VisibleIDs()
	if len(ids) == 0 {
		return m, nil
	}

	next := 0
	for i, id := range ids {
		if id == m.controller.ActiveID() {
			next = (i + delta + len(ids)) % len(ids)
			break
		}
	}
	m.selectConversation(ids[next])
	return m, nil
}

// sendMessage sends the composer contents and schedules the lifecycle transitions
func (m *Model) sendMessage() (tea.Model, tea.Cmd) {
	msg, scheduled, ok := m.controller.SendMessage(m.chat.GetInput())
	if !ok {
		return m, nil
	}

	m.chat.ClearInput()
	m.refreshViews()
	m.log.Debug("message sent", "conversationID", m.controller.ActiveID(), "messageID", msg.ID)

	return m, m.scheduler.Schedule(scheduled)
}

// copyLastMessage copies the newest message of the active conversation
func (m *Model) copyLastMessage() (tea.Model, tea.Cmd) {
	conv, ok := m.controller.Active()
	if !ok {
		return m, nil
	}
	last, ok := conv.LastMessage()
	if !ok {
		return m, m.ShowFlashWarning("No messages to copy")
	}
	return m, tea.Batch(copyText(last.Content), m.ShowFlashSuccess("Message copied"))
}

// copyText writes text through OSC 52 and the native clipboard
func copyText(text string) tea.Cmd {
	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				return ui.ClipboardErrorMsg{Error: err}
			}
			return nil
		},
	)
}
