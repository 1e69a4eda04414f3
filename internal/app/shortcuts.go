package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/chat"
	"github.com/zhubert/wachat/internal/keys"
	"github.com/zhubert/wachat/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key                  string                              // The key binding (e.g., "/", "ctrl+t")
	DisplayKey           string                              // Display name in help; defaults to Key
	Description          string                              // Human-readable description
	Category             string                              // Section for help modal grouping
	RequiresConversation bool                                // Must have an active conversation
	RequiresSidebar      bool                                // Must not be in chat focus
	Handler              func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition            func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryChat       = "Chat"
	CategoryAppearance = "Appearance"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryChat,
	CategoryAppearance,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		Description: "Switch between conversations and chat",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:             "/",
		Description:     "Search conversations",
		Category:        CategoryNavigation,
		RequiresSidebar: true,
		Handler:         shortcutSearch,
		Condition:       func(m *Model) bool { return m.sidebarVisible && !m.sidebar.IsSearchMode() },
	},
	{
		Key:         keys.CtrlN,
		Description: "Next conversation",
		Category:    CategoryNavigation,
		Handler:     shortcutNextConversation,
	},
	{
		Key:         keys.CtrlP,
		Description: "Previous conversation",
		Category:    CategoryNavigation,
		Handler:     shortcutPreviousConversation,
	},
	{
		Key:         keys.CtrlB,
		Description: "Show or hide the sidebar",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleSidebar,
	},

	// Chat
	{
		Key:                  keys.CtrlF,
		Description:          "Search messages",
		Category:             CategoryChat,
		RequiresConversation: true,
		Handler:              shortcutSearchMessages,
	},
	{
		Key:                  keys.CtrlY,
		Description:          "Copy last message",
		Category:             CategoryChat,
		RequiresConversation: true,
		Handler:              shortcutCopyLastMessage,
	},

	// Appearance
	{
		Key:         keys.CtrlT,
		Description: "Theme, accent color and notifications",
		Category:    CategoryAppearance,
		Handler:     shortcutAppearance,
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:             "q",
		Description:     "Quit application",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Show this help",
	Category:        CategoryGeneral,
	RequiresSidebar: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
// These are context-sensitive or informational entries.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move through the conversation list", Category: CategoryNavigation},
	{DisplayKey: "enter", Description: "Open conversation / Send message", Category: CategoryNavigation},
	{DisplayKey: "esc", Description: "Clear search or text selection", Category: CategoryNavigation},

	{DisplayKey: "shift+enter", Description: "New line in message", Category: CategoryChat},
	{DisplayKey: "pgup/pgdn", Description: "Scroll messages", Category: CategoryChat},
	{DisplayKey: "mouse drag", Description: "Select text (copies on release)", Category: CategoryChat},

	{DisplayKey: "ctrl+c", Description: "Quit from anywhere", Category: CategoryGeneral},
}

// displayKey returns the key as listed in the help modal
func (s Shortcut) displayKey() string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.chat.IsFocused() {
		return false
	}
	if s.RequiresConversation && m.controller.ActiveID() == "" {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards (RequiresSidebar, RequiresConversation, Condition) before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Keys typed into the sidebar search belong to the search input
	if m.sidebar.IsSearchMode() {
		return m, nil, false
	}

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "chatFocused", m.chat.IsFocused())
			return m, nil, false // let the key reach the focused panel
		}
		m.log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  s.displayKey(),
			Desc: s.Description,
		})
	}

	// Chat hints only matter with a conversation open
	for _, s := range displayOnly {
		if s.Category == CategoryChat && m.controller.ActiveID() == "" {
			continue
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  s.displayKey(),
			Desc: s.Description,
		})
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// handleHelpShortcutTrigger runs the shortcut picked in the help modal.
// Display-only entries have no handler and are ignored.
func (m *Model) handleHelpShortcutTrigger(displayed string) (tea.Model, tea.Cmd) {
	m.modal.Hide()

	for _, s := range append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut) {
		if s.displayKey() == displayed {
			result, cmd, _ := m.ExecuteShortcut(s.Key)
			return result, cmd
		}
	}
	m.log.Debug("help entry is not executable", "key", displayed)
	return m, nil
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	m.setFocus(FocusSidebar)
	return m, m.sidebar.EnterSearchMode()
}

func shortcutNextConversation(m *Model) (tea.Model, tea.Cmd) {
	return m.cycleConversation(1)
}

func shortcutPreviousConversation(m *Model) (tea.Model, tea.Cmd) {
	return m.cycleConversation(-1)
}

func shortcutToggleSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.toggleSidebar()
	return m, nil
}

func shortcutSearchMessages(m *Model) (tea.Model, tea.Cmd) {
	conv, ok := m.controller.Active()
	if !ok {
		return m, nil
	}

	currentUser := m.controller.CurrentUser()
	var contact string
	if other, ok := conv.OtherParticipant(currentUser.ID); ok {
		contact = other.Name
	}

	messages := make([]ui.SearchableMessage, 0, len(conv.Messages))
	for _, msg := range conv.Messages {
		messages = append(messages, ui.SearchableMessage{
			ID:      msg.ID,
			Sender:  senderName(conv, msg, currentUser),
			Sent:    msg.SenderID == currentUser.ID,
			Content: msg.Content,
		})
	}

	m.modal.Show(ui.NewSearchMessagesState(contact, messages))
	return m, nil
}

// senderName labels a message for the search results
func senderName(conv chat.Conversation, msg chat.Message, currentUser chat.User) string {
	if msg.SenderID == currentUser.ID {
		return "You"
	}
	for _, p := range conv.Participants {
		if p.ID == msg.SenderID {
			return p.Name
		}
	}
	return msg.SenderID
}

func shortcutCopyLastMessage(m *Model) (tea.Model, tea.Cmd) {
	return m.copyLastMessage()
}

func shortcutAppearance(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewAppearanceState(m.config.GetNotificationsEnabled()))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(ui.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
