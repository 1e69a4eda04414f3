package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a footer flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a transient message that replaces the key bindings until it expires
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg is sent periodically while a flash is visible so it can expire
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg after FlashTickInterval
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width           int
	bindings        []KeyBinding
	hasConversation bool // Whether a conversation is open
	sidebarFocused  bool // Whether sidebar has focus
	searching       bool // Whether the sidebar search input has focus
	flashMessage    *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "/", Desc: "search"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "ctrl+t", Desc: "appearance"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasConversation, sidebarFocused, searching bool) {
	f.hasConversation = hasConversation
	f.sidebarFocused = sidebarFocused
	f.searching = searching
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var bindings []KeyBinding
	switch {
	case f.searching:
		bindings = []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "clear"},
		}
	case !f.sidebarFocused && f.hasConversation:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "ctrl+b", Desc: "sidebar"},
			{Key: "?", Desc: "help"},
		}
	default:
		for _, b := range f.bindings {
			// Nothing to switch to without an open conversation
			if b.Key == "tab" && !f.hasConversation {
				continue
			}
			bindings = append(bindings, b)
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	var style lipgloss.Style
	switch f.flashMessage.Type {
	case FlashError:
		icon, style = "✕", FlashErrorStyle
	case FlashWarning:
		icon, style = "⚠", FlashWarningStyle
	case FlashSuccess:
		icon, style = "✓", FlashSuccessStyle
	default:
		icon, style = "ℹ", FlashInfoStyle
	}
	return style.Render(icon + " " + f.flashMessage.Text)
}
