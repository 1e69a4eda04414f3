package ui

import "github.com/zhubert/wachat/internal/ui/modals"

// Modal state types re-exported so the app layer only imports ui.
type (
	ModalState               = modals.ModalState
	HelpState                = modals.HelpState
	HelpShortcut             = modals.HelpShortcut
	HelpSection              = modals.HelpSection
	HelpShortcutTriggeredMsg = modals.HelpShortcutTriggeredMsg
	AppearanceState          = modals.AppearanceState
	SearchMessagesState      = modals.SearchMessagesState
	SearchableMessage        = modals.SearchableMessage
)

// Modal constructors
var (
	NewHelpStateFromSections = modals.NewHelpStateFromSections
	NewSearchMessagesState   = modals.NewSearchMessagesState
)

// NewAppearanceState opens the appearance modal on the active theme.
func NewAppearanceState(notificationsEnabled bool) *AppearanceState {
	modes, accents := AppearanceChoices()
	return modals.NewAppearanceState(modes, accents, CurrentMode(), CurrentAccent(), notificationsEnabled)
}
