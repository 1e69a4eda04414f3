// Package ui provides the user interface components for the wachat TUI.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling library. Components hold display state only;
// conversations and message status live in the chat package and are pushed in
// as snapshots by the app layer.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header: title, contact name · presence (1 line)     │
//	├─────────────────┬───────────────────────────────────┤
//	│ Profile         │                                   │
//	│ ⌕ Search        │   Messages (viewport)             │
//	│ ─────────────── │                                   │
//	│ Conversations   ├───────────────────────────────────┤
//	│                 │   Composer (textarea)             │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer: shortcuts or flash message (1 line)         │
//	└─────────────────────────────────────────────────────┘
//
// Below NarrowWidth columns only one pane is shown: the sidebar, or the open
// conversation once one is selected.
//
// # Components
//
// ViewContext: Singleton that owns layout math. All size calculations go
// through it.
//
// Header: Application title on a gradient, plus the open contact's name and
// presence ("online" or "last seen ...").
//
// Footer: Context-aware key hints, replaced temporarily by flash messages
// (the reply toast, copy confirmations, save errors).
//
// Sidebar: Current user, search input and the conversation list with avatars,
// last-message previews, receipt ticks and unread badges.
//
// Chat: Message bubbles (sent right, received left, grouped when sequential),
// inline formatting and highlighted code blocks, mouse text selection, and the
// composer.
//
// Modal: Popup dialogs backed by the modals package: keyboard shortcuts,
// message search and appearance.
//
// # Themes
//
// A theme is a display mode (light or dark) combined with an accent color.
// SetTheme regenerates every style variable in styles.go and pushes the
// palette into the modals package.
package ui
