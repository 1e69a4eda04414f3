package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/wachat/internal/config"
	"github.com/zhubert/wachat/internal/ui/modals"
)

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State modals.ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// width returns the modal's preferred width, clamped to the screen
func (m *Modal) width(screenWidth int) int {
	w := ModalWidth
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		w = pw.PreferredWidth()
	}
	return max(min(w, screenWidth-2), 10)
}

// View renders the modal centered on a screen of the given size
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	width := m.width(screenWidth)
	if sized, ok := m.State.(modals.ModalWithSize); ok {
		frame := ModalStyle.GetHorizontalFrameSize()
		sized.SetSize(width-frame, screenHeight-ModalStyle.GetVerticalFrameSize()-2)
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Width(width).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// RefreshModalStyles pushes the current palette into the modals package.
// Called whenever the theme changes.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, SidebarItemStyle, SidebarSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorInfo, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth,
	)
}

// AppearanceChoices returns the mode and accent choices for the appearance modal.
func AppearanceChoices() (modes, accents []modals.Choice) {
	for _, key := range config.Themes() {
		modes = append(modes, modals.Choice{Key: key, Label: ModeDisplayNames[key]})
	}
	for _, key := range config.ColorThemes() {
		accents = append(accents, modals.Choice{Key: key, Label: AccentDisplayNames[key]})
	}
	return modes, accents
}
