package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// AppearanceState - display mode, accent color and notifications (huh form)
// =============================================================================

// Choice is a selectable value with its display label.
type Choice struct {
	Key   string
	Label string
}

// AppearanceState edits the persisted display preferences.
// The app previews mode and accent while the modal is open and saves on Enter.
type AppearanceState struct {
	// Bound form values
	mode          string
	accent        string
	notifications bool

	OriginalMode          string
	OriginalAccent        string
	OriginalNotifications bool

	form *huh.Form
}

func (*AppearanceState) modalState() {}

func (s *AppearanceState) Title() string { return "Appearance" }

func (s *AppearanceState) Help() string {
	return "up/down: choose  Tab: next field  Enter: save  Esc: cancel"
}

func (s *AppearanceState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AppearanceState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetMode returns the selected display mode key.
func (s *AppearanceState) GetMode() string {
	return s.mode
}

// GetAccent returns the selected accent key.
func (s *AppearanceState) GetAccent() string {
	return s.accent
}

// GetNotificationsEnabled returns the desktop notification toggle.
func (s *AppearanceState) GetNotificationsEnabled() bool {
	return s.notifications
}

// ThemeChanged reports whether mode or accent differ from when the modal opened.
func (s *AppearanceState) ThemeChanged() bool {
	return s.mode != s.OriginalMode || s.accent != s.OriginalAccent
}

// Changed reports whether any preference differs from when the modal opened.
func (s *AppearanceState) Changed() bool {
	return s.ThemeChanged() || s.notifications != s.OriginalNotifications
}

func choiceOptions(choices []Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label, c.Key)
	}
	return opts
}

// NewAppearanceState creates the appearance modal preloaded with the current preferences.
func NewAppearanceState(modes, accents []Choice, currentMode, currentAccent string, notificationsEnabled bool) *AppearanceState {
	s := &AppearanceState{
		mode:                  currentMode,
		accent:                currentAccent,
		notifications:         notificationsEnabled,
		OriginalMode:          currentMode,
		OriginalAccent:        currentAccent,
		OriginalNotifications: notificationsEnabled,
	}

	group := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Mode").
			Options(choiceOptions(modes)...).
			Value(&s.mode),
		huh.NewSelect[string]().
			Title("Accent color").
			Options(choiceOptions(accents)...).
			Value(&s.accent),
		huh.NewConfirm().
			Title("Desktop notifications").
			Description("Shown when a reply arrives").
			Affirmative("On").
			Negative("Off").
			Value(&s.notifications),
	)

	s.form = huh.NewForm(group).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
