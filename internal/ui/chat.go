package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/wachat/internal/chat"
	"github.com/zhubert/wachat/internal/logger"
	"github.com/zhubert/wachat/internal/ui/modals"
)

// ComposerPlaceholder is shown in the empty message input.
const ComposerPlaceholder = "Type a message"

// Chat represents the right panel with the open conversation and the composer
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	currentUserID   string
	conversationID  string
	messages        []chat.Message
	hasConversation bool

	// Rendered content lines and where each message's text sits in them
	lines []string
	spans []bubbleSpan

	selection *TextSelection
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = ComposerPlaceholder
	ti.CharLimit = ComposerCharLimit
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	modals.ApplyTextareaStyles(&ti)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:  vp,
		input:     ti,
		selection: NewTextSelection(),
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	if width != c.width {
		// Bubbles rewrap, so stored positions no longer point at the same text
		c.SelectionClear()
	}
	c.width = width
	c.height = height

	ctx := GetViewContext()

	// Message panel height (excluding the composer which is separate)
	chatPanelHeight := height - InputTotalHeight

	innerWidth := ctx.InnerWidth(width)
	viewportHeight := max(ctx.InnerHeight(chatPanelHeight), 1)

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(max(ctx.InnerWidth(width)-InputPaddingWidth, 1))

	ctx.Log("Chat.SetSize",
		"outerWidth", width,
		"outerHeight", height,
		"viewportWidth", c.viewport.Width(),
		"viewportHeight", c.viewport.Height(),
	)

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetCurrentUser sets whose messages are drawn as sent
func (c *Chat) SetCurrentUser(id string) {
	c.currentUserID = id
}

// SetConversation shows a conversation. Switching to a different conversation
// clears any selection; refreshing the same one keeps the scroll pinned to the bottom.
func (c *Chat) SetConversation(conv chat.Conversation) {
	if conv.ID != c.conversationID {
		c.SelectionClear()
	}
	c.conversationID = conv.ID
	c.messages = conv.Messages
	c.hasConversation = true
	c.updateContent()
}

// ClearConversation shows the welcome placeholder
func (c *Chat) ClearConversation() {
	c.conversationID = ""
	c.messages = nil
	c.hasConversation = false
	c.SelectionClear()
	c.updateContent()
}

// HasConversation reports whether a conversation is open
func (c *Chat) HasConversation() bool {
	return c.hasConversation
}

// ConversationID returns the open conversation's ID, or ""
func (c *Chat) ConversationID() string {
	return c.conversationID
}

// GetInput returns the composer text exactly as typed
func (c *Chat) GetInput() string {
	val := c.input.Value()
	logger.WithConversation(c.conversationID).Debug("Chat.GetInput", "len", len(val))
	return val
}

// ClearInput clears the composer
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the composer value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// InsertNewline adds a line break to the composer at the cursor
func (c *Chat) InsertNewline() {
	c.input.InsertString("\n")
}

// ScrollToBottom pins the viewport to the newest message
func (c *Chat) ScrollToBottom() {
	c.viewport.GotoBottom()
}

// AtBottom reports whether the newest message is visible
func (c *Chat) AtBottom() bool {
	return c.viewport.AtBottom()
}

// RefreshStyles re-renders content after a theme change
func (c *Chat) RefreshStyles() {
	modals.ApplyTextareaStyles(&c.input)
	c.updateContent()
}

func (c *Chat) updateContent() {
	c.lines, c.spans = nil, nil
	if !c.hasConversation {
		c.viewport.SetContent("")
		return
	}

	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var content string
	if len(c.messages) == 0 {
		content = lipgloss.PlaceHorizontal(wrapWidth, lipgloss.Center,
			EmptyTextStyle.Italic(true).Render("No messages yet. Say hello!"))
	} else {
		content, c.spans = renderMessages(c.messages, c.currentUserID, wrapWidth)
	}

	c.lines = strings.Split(content, "\n")
	c.viewport.SetContent(content)
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case SelectionFlashTickMsg:
		return c, c.handleSelectionFlashTick()

	case tea.MouseClickMsg:
		if !c.hasConversation || msg.Button != tea.MouseLeft {
			return c, nil
		}
		col, line := c.contentPos(msg.X, msg.Y)
		return c, c.handleMouseClick(col, line)

	case tea.MouseMotionMsg:
		if c.selection.Active {
			c.EndSelection(c.contentPos(msg.X, msg.Y))
		}
		return c, nil

	case tea.MouseReleaseMsg:
		if !c.selection.Active {
			return c, nil
		}
		c.EndSelection(c.contentPos(msg.X, msg.Y))
		c.SelectionStop()
		if c.HasTextSelection() {
			return c, c.CopySelectedText()
		}
		c.SelectionClear()
		return c, nil
	}

	if c.focused && c.hasConversation {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			// Allow scroll keys to pass through to viewport
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down",
				"page up", "page down", "ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}

			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}
	}

	// Scroll keys and wheel events reach the viewport when the input is not consuming them
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	ctx := GetViewContext()

	if !c.hasConversation {
		welcome := renderWelcome(ctx.InnerWidth(c.width), ctx.InnerHeight(c.height))
		return panelStyle.Width(c.width).Height(c.height).Render(welcome)
	}

	chatPanelHeight := c.height - InputTotalHeight
	viewportContent := c.selectionView(c.viewport.View())
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(viewportContent)

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
