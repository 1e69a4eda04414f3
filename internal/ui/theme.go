// Package ui provides theme management for the application.
// A theme is a display mode (light or dark) combined with an accent color,
// mirroring the two preferences stored in the config file.
package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/wachat/internal/config"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the accent color (header, focus, unread badges, send key)
	Primary string
	// Secondary is a lighter accent used for key hints and section titles
	Secondary string

	// Background colors
	Bg         string // Main background
	BgPanel    string // Sidebar and header strip
	BgSelected string // Active conversation row

	// Text colors
	Text        string // Primary text
	TextMuted   string // Timestamps, previews, presence
	TextInverse string // Text on accent backgrounds

	// Message bubbles
	BubbleSent     string // Messages from the current user
	BubbleReceived string // Messages from the other participant
	TickRead       string // Read receipt ticks

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	// Border colors
	Border      string
	BorderFocus string // defaults to Primary if empty

	// Inline formatting and code blocks
	CodeBg      string
	CodeStyle   string // chroma style name
	SelectionBg string
	SelectionFg string
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName identifies a mode and accent pair, e.g. "dark-purple".
type ThemeName string

// Name builds the ThemeName for a mode and accent.
func Name(mode, accent string) ThemeName {
	return ThemeName(mode + "-" + accent)
}

// DefaultTheme is used until a preference or the terminal background says otherwise.
var DefaultTheme = Name(config.ThemeLight, config.ColorDefault)

// AccentDisplayNames maps accent keys to the labels shown in the appearance modal.
var AccentDisplayNames = map[string]string{
	config.ColorDefault: "Green (Default)",
	config.ColorPurple:  "Purple",
	config.ColorBlue:    "Blue",
}

// ModeDisplayNames maps mode keys to the labels shown in the appearance modal.
var ModeDisplayNames = map[string]string{
	config.ThemeLight: "Light Mode",
	config.ThemeDark:  "Dark Mode",
}

// BuiltinThemes contains every mode and accent combination.
var BuiltinThemes = map[ThemeName]Theme{
	Name(config.ThemeLight, config.ColorDefault): {
		Name:           "Light / Green",
		Primary:        "#008069",
		Secondary:      "#25D366",
		Bg:             "#FFFFFF",
		BgPanel:        "#F0F2F5",
		BgSelected:     "#E9EDEF",
		Text:           "#111B21",
		TextMuted:      "#667781",
		TextInverse:    "#FFFFFF",
		BubbleSent:     "#D9FDD3",
		BubbleReceived: "#FFFFFF",
		TickRead:       "#2563EB",
		Warning:        "#D97706",
		Error:          "#DC2626",
		Info:           "#0891B2",
		Success:        "#16A34A",
		Border:         "#D1D7DB",
		CodeBg:         "#F3F4F6",
		CodeStyle:      "github",
		SelectionBg:    "#BFDBFE",
		SelectionFg:    "#111B21",
	},
	Name(config.ThemeLight, config.ColorPurple): {
		Name:           "Light / Purple",
		Primary:        "#7C3AED",
		Secondary:      "#A78BFA",
		Bg:             "#FFFFFF",
		BgPanel:        "#F5F3FF",
		BgSelected:     "#EDE9FE",
		Text:           "#1F2937",
		TextMuted:      "#6B7280",
		TextInverse:    "#FFFFFF",
		BubbleSent:     "#EDE9FE",
		BubbleReceived: "#FFFFFF",
		TickRead:       "#2563EB",
		Warning:        "#D97706",
		Error:          "#DC2626",
		Info:           "#0891B2",
		Success:        "#16A34A",
		Border:         "#DDD6FE",
		CodeBg:         "#F3F4F6",
		CodeStyle:      "github",
		SelectionBg:    "#C4B5FD",
		SelectionFg:    "#1F2937",
	},
	Name(config.ThemeLight, config.ColorBlue): {
		Name:           "Light / Blue",
		Primary:        "#2563EB",
		Secondary:      "#60A5FA",
		Bg:             "#FFFFFF",
		BgPanel:        "#EFF6FF",
		BgSelected:     "#DBEAFE",
		Text:           "#1E293B",
		TextMuted:      "#64748B",
		TextInverse:    "#FFFFFF",
		BubbleSent:     "#DBEAFE",
		BubbleReceived: "#FFFFFF",
		TickRead:       "#1D4ED8",
		Warning:        "#D97706",
		Error:          "#DC2626",
		Info:           "#0891B2",
		Success:        "#16A34A",
		Border:         "#BFDBFE",
		CodeBg:         "#F1F5F9",
		CodeStyle:      "github",
		SelectionBg:    "#93C5FD",
		SelectionFg:    "#1E293B",
	},
	Name(config.ThemeDark, config.ColorDefault): {
		Name:           "Dark / Green",
		Primary:        "#00A884",
		Secondary:      "#25D366",
		Bg:             "#111B21",
		BgPanel:        "#202C33",
		BgSelected:     "#2A3942",
		Text:           "#E9EDEF",
		TextMuted:      "#8696A0",
		TextInverse:    "#111B21",
		BubbleSent:     "#005C4B",
		BubbleReceived: "#202C33",
		TickRead:       "#60A5FA",
		Warning:        "#F59E0B",
		Error:          "#EF4444",
		Info:           "#06B6D4",
		Success:        "#10B981",
		Border:         "#2A3942",
		CodeBg:         "#0B141A",
		CodeStyle:      "monokai",
		SelectionBg:    "#1E3A8A",
		SelectionFg:    "#E9EDEF",
	},
	Name(config.ThemeDark, config.ColorPurple): {
		Name:           "Dark / Purple",
		Primary:        "#8B5CF6",
		Secondary:      "#C4B5FD",
		Bg:             "#1F1B2E",
		BgPanel:        "#2A2440",
		BgSelected:     "#3B3260",
		Text:           "#F5F3FF",
		TextMuted:      "#A1A1C2",
		TextInverse:    "#1F1B2E",
		BubbleSent:     "#4C1D95",
		BubbleReceived: "#2A2440",
		TickRead:       "#60A5FA",
		Warning:        "#F59E0B",
		Error:          "#EF4444",
		Info:           "#06B6D4",
		Success:        "#10B981",
		Border:         "#3B3260",
		CodeBg:         "#181425",
		CodeStyle:      "dracula",
		SelectionBg:    "#5B21B6",
		SelectionFg:    "#F5F3FF",
	},
	Name(config.ThemeDark, config.ColorBlue): {
		Name:           "Dark / Blue",
		Primary:        "#3B82F6",
		Secondary:      "#93C5FD",
		Bg:             "#0F172A",
		BgPanel:        "#1E293B",
		BgSelected:     "#334155",
		Text:           "#F1F5F9",
		TextMuted:      "#94A3B8",
		TextInverse:    "#0F172A",
		BubbleSent:     "#1E3A8A",
		BubbleReceived: "#1E293B",
		TickRead:       "#60A5FA",
		Warning:        "#F59E0B",
		Error:          "#EF4444",
		Info:           "#06B6D4",
		Success:        "#10B981",
		Border:         "#334155",
		CodeBg:         "#0B1120",
		CodeStyle:      "nord",
		SelectionBg:    "#1D4ED8",
		SelectionFg:    "#F1F5F9",
	},
}

// GetTheme returns a theme by name, defaulting to DefaultTheme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme  = BuiltinThemes[DefaultTheme]
	currentMode   = config.ThemeLight
	currentAccent = config.ColorDefault
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentMode returns the active display mode ("light" or "dark").
func CurrentMode() string {
	return currentMode
}

// CurrentAccent returns the active accent key.
func CurrentAccent() string {
	return currentAccent
}

// IsDark reports whether the dark palette is active.
func IsDark() bool {
	return currentMode == config.ThemeDark
}

// SetTheme activates a mode and accent and regenerates all styles.
// Unknown values fall back to the defaults.
func SetTheme(mode, accent string) {
	if _, ok := ModeDisplayNames[mode]; !ok {
		mode = config.ThemeLight
	}
	if _, ok := AccentDisplayNames[accent]; !ok {
		accent = config.ColorDefault
	}
	currentMode = mode
	currentAccent = accent
	currentTheme = GetTheme(Name(mode, accent))
	regenerateStyles()
}

// SetMode switches between light and dark, keeping the accent.
func SetMode(mode string) {
	SetTheme(mode, currentAccent)
}

// SetAccent switches the accent color, keeping the mode.
func SetAccent(accent string) {
	SetTheme(currentMode, accent)
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return Name(currentMode, currentAccent)
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgPanel = lipgloss.Color(t.BgPanel)
	ColorBgSelected = lipgloss.Color(t.BgSelected)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorBubbleSent = lipgloss.Color(t.BubbleSent)
	ColorBubbleReceived = lipgloss.Color(t.BubbleReceived)
	ColorTickRead = lipgloss.Color(t.TickRead)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	buildStyles()
	RefreshModalStyles()
}
