package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// appTitle is drawn bold at the left edge of the header.
const appTitle = " wachat"

// narrowTitle replaces the contact name when only the conversation list fits.
const narrowTitle = "WhatsApp Chat"

// Header represents the top header bar
type Header struct {
	width    int
	contact  string
	presence string
	narrow   bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetContact sets the active conversation's other participant and their presence line
// ("online" or "last seen ...").
func (h *Header) SetContact(name, presence string) {
	h.contact = name
	h.presence = presence
}

// ClearContact removes the contact from the header.
func (h *Header) ClearContact() {
	h.contact = ""
	h.presence = ""
}

// SetNarrow switches the header to the single-pane title.
func (h *Header) SetNarrow(narrow bool) {
	h.narrow = narrow
}

// View renders the header
func (h *Header) View() string {
	var rightText string
	switch {
	case h.narrow:
		rightText = narrowTitle + " "
	case h.contact != "":
		rightText = h.contact
		if h.presence != "" {
			rightText += " · " + h.presence
		}
		rightText += " "
	}

	paddingLen := h.width - runewidth.StringWidth(appTitle) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		// Drop the presence before dropping the name
		rightText = runewidth.Truncate(rightText, max(h.width-runewidth.StringWidth(appTitle), 0), "…")
		paddingLen = 0
	}

	fullContent := appTitle + strings.Repeat(" ", paddingLen) + rightText

	mutedFrom := -1
	if !h.narrow && h.presence != "" {
		mutedFrom = strings.LastIndex(fullContent, " · ")
		if mutedFrom >= 0 {
			mutedFrom = len([]rune(fullContent[:mutedFrom]))
		}
	}
	return h.renderGradient(fullContent, mutedFrom)
}

// parseHexColor parses a hex color string (e.g., "#008069") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// Runes at or after mutedFrom use the muted text color; -1 disables muting.
func (h *Header) renderGradient(content string, mutedFrom int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	titleColor := lipgloss.Color(theme.TextInverse)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	titleLen := len([]rune(appTitle))
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		switch {
		case i < titleLen:
			style = style.Foreground(titleColor)
		case mutedFrom >= 0 && i >= mutedFrom:
			style = style.Foreground(mutedColor)
		default:
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
