package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette (updated by regenerateStyles)
var (
	ColorPrimary        color.Color
	ColorSecondary      color.Color
	ColorBorder         color.Color
	ColorBorderFocus    color.Color
	ColorBg             color.Color
	ColorBgPanel        color.Color
	ColorBgSelected     color.Color
	ColorText           color.Color
	ColorTextMuted      color.Color
	ColorTextInverse    color.Color
	ColorBubbleSent     color.Color
	ColorBubbleReceived color.Color
	ColorTickRead       color.Color
	ColorWarning        color.Color
	ColorInfo           color.Color
	ColorError          color.Color
	ColorSuccess        color.Color
)

// Header styles
var (
	HeaderStyle         lipgloss.Style
	HeaderTitleStyle    lipgloss.Style
	HeaderPresenceStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style

	FlashErrorStyle   lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarNameStyle     lipgloss.Style
	SidebarPreviewStyle  lipgloss.Style
	SidebarTimeStyle     lipgloss.Style
	UnreadBadgeStyle     lipgloss.Style
	AvatarStyle          lipgloss.Style
	SearchPromptStyle    lipgloss.Style
)

// Chat styles
var (
	BubbleSentStyle     lipgloss.Style
	BubbleReceivedStyle lipgloss.Style
	BubbleMetaStyle     lipgloss.Style
	TickStyle           lipgloss.Style
	TickReadStyle       lipgloss.Style

	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style

	EmptyTitleStyle lipgloss.Style
	EmptyTextStyle  lipgloss.Style
)

// Message formatting styles
var (
	FormatBoldStyle   lipgloss.Style
	FormatItalicStyle lipgloss.Style
	FormatStrikeStyle lipgloss.Style
	InlineCodeStyle   lipgloss.Style
	CodeBlockStyle    lipgloss.Style
)

// Modal styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

// Text selection styles
var (
	TextSelectionStyle lipgloss.Style

	// TextSelectionFlashStyle is used briefly when text is copied to indicate success
	TextSelectionFlashStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}

// buildStyles derives every style from the color variables.
func buildStyles() {
	t := currentTheme

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	HeaderPresenceStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FlashErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	FlashWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Padding(0, 1)

	SidebarNameStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	SidebarPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	SidebarTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	UnreadBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	AvatarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true).
		Width(AvatarWidth).
		Align(lipgloss.Center)

	SearchPromptStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	BubbleSentStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBubbleSent).
		Padding(0, 1)

	BubbleReceivedStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBubbleReceived).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	BubbleMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	TickStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	TickReadStyle = lipgloss.NewStyle().
		Foreground(ColorTickRead).
		Bold(true)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	EmptyTitleStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	EmptyTextStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FormatBoldStyle = lipgloss.NewStyle().Bold(true)
	FormatItalicStyle = lipgloss.NewStyle().Italic(true)
	FormatStrikeStyle = lipgloss.NewStyle().Strikethrough(true)

	InlineCodeStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(lipgloss.Color(t.CodeBg))

	CodeBlockStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CodeBg)).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.SelectionBg)).
		Foreground(lipgloss.Color(t.SelectionFg))

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(ColorSuccess).
		Foreground(ColorTextInverse)
}
