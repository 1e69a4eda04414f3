package ui

import (
	"hash/fnv"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/wachat/internal/chat"
	"github.com/zhubert/wachat/internal/keys"
	"github.com/zhubert/wachat/internal/logger"
)

// SearchPlaceholder is shown in the empty search input.
const SearchPlaceholder = "Search or start new chat"

// ConversationSelectedMsg is emitted when the user opens a conversation from the list
type ConversationSelectedMsg struct {
	ID string
}

// Sidebar represents the left panel with the current user and the conversation list
type Sidebar struct {
	currentUser   chat.User
	conversations []chat.Conversation // every conversation, controller order
	visible       []chat.Conversation // conversations matching the search query
	activeID      string
	selectedIdx   int
	width         int
	height        int
	focused       bool
	scrollOffset  int // first visible row

	// Cache for incremental updates
	lastHash  uint64
	lastQuery string

	// Search mode
	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.CharLimit = SidebarSearchCharLimit
	ti.Prompt = ""

	return &Sidebar{
		searchInput: ti,
	}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height

	ctx := GetViewContext()
	ctx.Log("Sidebar.SetSize",
		"outerWidth", width,
		"outerHeight", height,
		"innerWidth", ctx.InnerWidth(width),
		"innerHeight", ctx.InnerHeight(height),
	)
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
	if !focused && s.searchMode {
		s.searchMode = false
		s.searchInput.Blur()
	}
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetCurrentUser sets the user shown in the profile row
func (s *Sidebar) SetCurrentUser(u chat.User) {
	s.currentUser = u
	s.lastHash = 0
}

// hashConversations computes a fast hash of everything a row displays
func hashConversations(convs []chat.Conversation, activeID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(activeID))
	for _, conv := range convs {
		h.Write([]byte{0})
		h.Write([]byte(conv.ID))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(conv.UnreadCount)))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(len(conv.Messages))))
		if last, ok := conv.LastMessage(); ok {
			h.Write([]byte{0})
			h.Write([]byte(last.ID))
			h.Write([]byte{0})
			h.Write([]byte(last.Status))
		}
	}
	return h.Sum64()
}

// SetConversations replaces the list with a fresh snapshot from the controller.
// The search filter is re-applied so new messages can move rows in or out of it.
func (s *Sidebar) SetConversations(convs []chat.Conversation, activeID string) {
	newHash := hashConversations(convs, activeID)
	if newHash == s.lastHash && s.lastQuery == s.searchInput.Value() && len(convs) == len(s.conversations) {
		return
	}
	s.lastHash = newHash

	selected := s.SelectedConversationID()
	s.conversations = convs
	s.activeID = activeID
	s.applyFilter(s.searchInput.Value())

	// Keep the cursor on the same conversation when it is still listed
	if selected != "" {
		s.SelectConversation(selected)
	} else if activeID != "" {
		s.SelectConversation(activeID)
	}
}

// applyFilter filters conversations by participant name or last message
func (s *Sidebar) applyFilter(query string) {
	s.lastQuery = query
	s.visible = chat.FilterConversations(s.conversations, s.currentUser.ID, query)

	if s.selectedIdx >= len(s.visible) {
		s.selectedIdx = len(s.visible) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}

	logger.WithComponent("sidebar").Debug("filter applied", "query", query, "matches", len(s.visible))
}

// SelectedConversationID returns the conversation under the cursor, or "" if none
func (s *Sidebar) SelectedConversationID() string {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.visible) {
		return ""
	}
	return s.visible[s.selectedIdx].ID
}

// SelectConversation moves the cursor to a conversation by ID
func (s *Sidebar) SelectConversation(id string) {
	for i, conv := range s.visible {
		if conv.ID == id {
			s.selectedIdx = i
			return
		}
	}
}

// VisibleIDs returns the IDs of the listed conversations in display order
func (s *Sidebar) VisibleIDs() []string {
	ids := make([]string, len(s.visible))
	for i, conv := range s.visible {
		ids[i] = conv.ID
	}
	return ids
}

// EnterSearchMode focuses the search input, keeping any existing query
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	return s.searchInput.Focus()
}

// ExitSearchMode blurs the search input and clears the filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.applyFilter("")
	if s.activeID != "" {
		s.SelectConversation(s.activeID)
	}
}

// IsSearchMode returns whether the search input has focus
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// GetSearchQuery returns the current search query
func (s *Sidebar) GetSearchQuery() string {
	return s.searchInput.Value()
}

// SetSearchQuery replaces the query and re-filters the list
func (s *Sidebar) SetSearchQuery(query string) {
	s.searchInput.SetValue(query)
	s.applyFilter(query)
	s.scrollOffset = 0
}

func (s *Sidebar) openSelected() tea.Cmd {
	id := s.SelectedConversationID()
	if id == "" {
		return nil
	}
	return func() tea.Msg {
		return ConversationSelectedMsg{ID: id}
	}
}

func (s *Sidebar) moveCursor(delta int) {
	s.selectedIdx = max(0, min(s.selectedIdx+delta, len(s.visible)-1))
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	if s.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			s.ExitSearchMode()
			return s, nil
		case keys.Enter:
			// Leave the input but keep the filter applied
			s.searchMode = false
			s.searchInput.Blur()
			return s, s.openSelected()
		case keys.Up, keys.CtrlP:
			s.moveCursor(-1)
			return s, nil
		case keys.Down, keys.CtrlN:
			s.moveCursor(1)
			return s, nil
		default:
			var cmd tea.Cmd
			s.searchInput, cmd = s.searchInput.Update(keyMsg)
			if s.searchInput.Value() != s.lastQuery {
				s.applyFilter(s.searchInput.Value())
				s.selectedIdx = 0
				s.scrollOffset = 0
			}
			return s, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		s.moveCursor(-1)
	case keys.Down, "j":
		s.moveCursor(1)
	case keys.Home, "g":
		s.selectedIdx = 0
	case keys.End, "G":
		s.selectedIdx = max(len(s.visible)-1, 0)
	case keys.Enter:
		return s, s.openSelected()
	case keys.Escape:
		if s.searchInput.Value() != "" {
			s.ExitSearchMode()
		}
	}
	return s, nil
}

// listTop is the panel line where the first conversation row starts
func listTop() int {
	return 1 + SidebarProfileHeight + SidebarSearchHeight // top border first
}

// ConversationAtLine returns the conversation rendered at a panel-relative line
func (s *Sidebar) ConversationAtLine(line int) (string, bool) {
	row := line - listTop()
	if row < 0 {
		return "", false
	}
	idx := s.scrollOffset + row/ConversationRowHeight
	if idx >= len(s.visible) {
		return "", false
	}
	return s.visible[idx].ID, true
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)
	rowWidth := max(innerWidth-SidebarItemStyle.GetHorizontalPadding(), 0)

	var lines []string
	lines = append(lines, s.renderProfile(innerWidth))
	lines = append(lines, s.renderSearch(innerWidth))
	lines = append(lines, lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", innerWidth)))

	listHeight := innerHeight - SidebarProfileHeight - SidebarSearchHeight
	visibleRows := max(listHeight/ConversationRowHeight, 1)

	// Keep the cursor row on screen
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	} else if s.selectedIdx >= s.scrollOffset+visibleRows {
		s.scrollOffset = s.selectedIdx - visibleRows + 1
	}
	s.scrollOffset = max(0, min(s.scrollOffset, len(s.visible)-visibleRows))

	switch {
	case len(s.conversations) == 0:
		lines = append(lines, EmptyTextStyle.Italic(true).Render(" No conversations."))
	case len(s.visible) == 0:
		lines = append(lines, EmptyTextStyle.Italic(true).Render(" No chats found"))
	default:
		end := min(s.scrollOffset+visibleRows, len(s.visible))
		for i := s.scrollOffset; i < end; i++ {
			itemStyle := SidebarItemStyle.Width(innerWidth)
			if i == s.selectedIdx && (s.focused || s.visible[i].ID == s.activeID) {
				itemStyle = SidebarSelectedStyle.Width(innerWidth)
			}
			row := s.renderConversation(s.visible[i], i == s.selectedIdx, rowWidth)
			lines = append(lines, strings.Split(itemStyle.Render(row), "\n")...)
		}
	}

	if len(lines) > innerHeight && innerHeight > 0 {
		lines = lines[:innerHeight]
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(strings.Join(lines, "\n"))
}

func (s *Sidebar) renderProfile(width int) string {
	if s.currentUser.ID == "" {
		return ""
	}
	avatar := AvatarStyle.Render(s.currentUser.Initials())
	name := runewidth.Truncate(s.currentUser.Name, max(width-AvatarWidth-1, 0), "…")
	return avatar + " " + SidebarNameStyle.Render(name)
}

func (s *Sidebar) renderSearch(width int) string {
	s.searchInput.SetWidth(max(width-3, 1)) // Leave room for the prompt
	prompt := SearchPromptStyle.Render("⌕")
	if !s.searchMode && s.searchInput.Value() == "" {
		prompt = lipgloss.NewStyle().Foreground(ColorTextMuted).Render("⌕")
	}
	return prompt + " " + s.searchInput.View()
}

// renderConversation builds the two-line row for a conversation.
// Selected rows are left unstyled so the selection background is not interrupted.
func (s *Sidebar) renderConversation(conv chat.Conversation, selected bool, width int) string {
	other, _ := conv.OtherParticipant(s.currentUser.ID)
	last, hasLast := conv.LastMessage()

	textWidth := max(width-AvatarWidth-1, 0)

	var timeText, preview string
	if hasLast {
		timeText = last.Timestamp
		preview = strings.Join(strings.Fields(last.Content), " ")
		if last.SenderID == s.currentUser.ID {
			preview = tickText(last.Status) + " " + preview
		}
	}

	var badge string
	if conv.UnreadCount > 0 {
		badge = UnreadBadgeStyle.Render(strconv.Itoa(conv.UnreadCount))
	}

	nameWidth := max(textWidth-runewidth.StringWidth(timeText)-1, 0)
	name := runewidth.Truncate(other.Name, nameWidth, "…")
	previewWidth := max(textWidth-lipgloss.Width(badge)-1, 0)
	preview = runewidth.Truncate(preview, previewWidth, "…")

	line1Pad := max(textWidth-runewidth.StringWidth(name)-runewidth.StringWidth(timeText), 1)
	line2Pad := max(textWidth-runewidth.StringWidth(preview)-lipgloss.Width(badge), 1)

	avatar := AvatarStyle.Render(other.Initials())
	avatarPad := AvatarStyle.Render("")

	if selected {
		return avatar + " " + name + strings.Repeat(" ", line1Pad) + timeText + "\n" +
			avatarPad + " " + preview + strings.Repeat(" ", line2Pad) + badge
	}

	nameStyle := SidebarNameStyle
	if conv.ID == s.activeID {
		nameStyle = nameStyle.Foreground(ColorPrimary)
	}
	timeStyle := SidebarTimeStyle
	if conv.UnreadCount > 0 {
		timeStyle = timeStyle.Foreground(ColorPrimary)
	}

	return avatar + " " + nameStyle.Render(name) + strings.Repeat(" ", line1Pad) + timeStyle.Render(timeText) + "\n" +
		avatarPad + " " + SidebarPreviewStyle.Render(preview) + strings.Repeat(" ", line2Pad) + badge
}

// tickText returns the receipt glyph for a message the current user sent
func tickText(status chat.Status) string {
	switch status {
	case chat.StatusDelivered, chat.StatusRead:
		return "✓✓"
	default:
		return "✓"
	}
}
