// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/3 of total width)
	SidebarWidthRatio = 3

	// MinSidebarWidth keeps names and badges legible on mid-sized terminals
	MinSidebarWidth = 28

	// NarrowWidth is the width below which only one pane is shown at a time
	NarrowWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp layout math
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// TextareaHeight is the number of lines for the composer textarea
	TextareaHeight = 1

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// SidebarSearchHeight is the search input line plus its separator
	SidebarSearchHeight = 2

	// SidebarProfileHeight is the current user's row at the top of the sidebar
	SidebarProfileHeight = 1

	// ConversationRowHeight is the number of lines per conversation in the sidebar
	ConversationRowHeight = 2

	// AvatarWidth is the width of the initials block
	AvatarWidth = 4

	// BubbleMaxRatio caps a bubble at 85% of the message pane width
	BubbleMaxRatio = 0.85

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Sidebar limits
const (
	// SidebarSearchCharLimit is the character limit for the conversation search
	SidebarSearchCharLimit = 64
)

// Composer limits
const (
	// ComposerCharLimit caps a single message
	ComposerCharLimit = 4096
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of shortcut rows shown at once
	HelpModalMaxVisible = 14
)

// Flash durations
const (
	// DefaultFlashDuration is how long a footer flash stays visible
	DefaultFlashDuration = 4 * time.Second

	// FlashTickInterval is how often flash expiry is checked
	FlashTickInterval = 500 * time.Millisecond
)
