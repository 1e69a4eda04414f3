// Package modals provides modal dialog state types for the UI.
// Each modal type implements the ModalState interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithPreferredWidth is an optional interface that modals can implement
// to specify a custom width. If not implemented, the default ModalWidth is used.
type ModalWithPreferredWidth interface {
	ModalState
	PreferredWidth() int
}

// ModalWithSize is an optional interface for modals that lay out content
// against the space the modal frame leaves them.
type ModalWithSize interface {
	ModalState
	SetSize(width, height int)
}

// HelpShortcut represents a single keyboard shortcut for display
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpShortcutTriggeredMsg is sent when user selects a shortcut in the help modal
type HelpShortcutTriggeredMsg struct {
	Key string // The key string to simulate (e.g., "tab", "ctrl+b", "q")
}

// HelpSection represents a group of related shortcuts
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// SearchResult represents a single message match with context
type SearchResult struct {
	MessageIndex int    // Index in the conversation's messages
	MessageID    string // ID of the matched message
	Sender       string // Display name of the sender
	Sent         bool   // True when the current user sent it
	Content      string // The full message content
	MatchStart   int    // Start position of match in content
	MatchEnd     int    // End position of match in content
}

// SearchableMessage is the input the message search modal filters.
type SearchableMessage struct {
	ID      string
	Sender  string
	Sent    bool
	Content string
}
