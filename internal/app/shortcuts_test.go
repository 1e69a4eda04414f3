package app

import (
	"slices"
	"testing"

	"github.com/zhubert/wachat/internal/keys"
	"github.com/zhubert/wachat/internal/ui"
)

// =============================================================================
// ShortcutRegistry Tests
// =============================================================================

func TestShortcutRegistry_AllShortcutsHaveHandlers(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if s.Handler == nil {
			t.Errorf("Shortcut %q has no handler", s.Key)
		}
		if s.Key == "" {
			t.Error("Shortcut has empty key")
		}
		if s.Description == "" {
			t.Errorf("Shortcut %q has no description", s.Key)
		}
		if !slices.Contains(categoryOrder, s.Category) {
			t.Errorf("Shortcut %q has invalid category: %q", s.Key, s.Category)
		}
	}
}

func TestShortcutRegistry_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range ShortcutRegistry {
		if seen[s.Key] {
			t.Errorf("Duplicate shortcut key: %q", s.Key)
		}
		seen[s.Key] = true
	}
	if seen[helpShortcut.Key] {
		t.Error("Help shortcut key '?' duplicated in registry")
	}
}

func TestDisplayOnlyShortcuts_HaveNoHandlers(t *testing.T) {
	for _, s := range DisplayOnlyShortcuts {
		if s.Handler != nil || s.Key != "" {
			t.Errorf("display-only entry %q should not be executable", s.DisplayKey)
		}
		if !slices.Contains(categoryOrder, s.Category) {
			t.Errorf("display-only entry %q has invalid category %q", s.DisplayKey, s.Category)
		}
	}
}

// =============================================================================
// ExecuteShortcut Tests
// =============================================================================

func TestExecuteShortcut_ReturnsNotHandledForUnknownKey(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)

	if _, _, handled := m.ExecuteShortcut("unknown-key"); handled {
		t.Error("Expected unknown key to not be handled")
	}
}

func TestExecuteShortcut_HelpShortcutHandledSpecially(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)

	if _, _, handled := m.ExecuteShortcut("?"); !handled {
		t.Error("Expected '?' shortcut to be handled")
	}
	if !m.modal.IsVisible() {
		t.Error("Expected the help modal to open")
	}
}

func TestExecuteShortcut_RequiresSidebarGuard(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)
	m = sendKey(m, keys.Tab)

	for _, key := range []string{"q", "/", "?"} {
		if _, _, handled := m.ExecuteShortcut(key); handled {
			t.Errorf("%q should fall through to the composer while it has focus", key)
		}
	}
}

func TestExecuteShortcut_RequiresConversationGuard(t *testing.T) {
	opts := testOptions(&fakeScheduler{})
	opts.Seed = nil
	m := New(testConfig(), opts)
	m.Update(testWindow)

	for _, key := range []string{keys.CtrlF, keys.CtrlY} {
		if _, _, handled := m.ExecuteShortcut(key); handled {
			t.Errorf("%q needs an open conversation", key)
		}
	}
}

func TestExecuteShortcut_BlockedWhileSearching(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)
	m = sendKey(m, "/")

	for _, key := range []string{keys.Tab, keys.CtrlT, "q"} {
		if _, _, handled := m.ExecuteShortcut(key); handled {
			t.Errorf("%q should belong to the search input", key)
		}
	}
}

func TestExecuteShortcut_SearchNeedsVisibleSidebar(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)
	m = sendKey(m, keys.CtrlB) // hide, composer focused
	m.setFocus(FocusSidebar)

	if _, _, handled := m.ExecuteShortcut("/"); handled {
		t.Error("search needs the sidebar on screen")
	}
}

func TestSearchShortcut_FocusesSidebar(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)
	m.setFocus(FocusSidebar)

	_, cmd, handled := m.ExecuteShortcut("/")
	if !handled {
		t.Fatal("expected / to be handled")
	}
	if cmd == nil {
		t.Error("expected the search input focus command")
	}
	if !m.sidebar.IsSearchMode() || m.Focus() != FocusSidebar {
		t.Error("expected sidebar search mode with focus")
	}
}

// =============================================================================
// Help sections
// =============================================================================

func sectionKeys(sections []ui.HelpSection) map[string][]string {
	out := make(map[string][]string)
	for _, s := range sections {
		for _, sc := range s.Shortcuts {
			out[s.Title] = append(out[s.Title], sc.Key)
		}
	}
	return out
}

func TestGetApplicableHelpSections_Order(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)
	all := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(all, DisplayOnlyShortcuts)

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	want := []string{CategoryNavigation, CategoryChat, CategoryAppearance, CategoryGeneral}
	if !slices.Equal(titles, want) {
		t.Errorf("sections = %v, want %v", titles, want)
	}

	general := sectionKeys(sections)[CategoryGeneral]
	for _, key := range []string{"q", "?", "ctrl+c"} {
		if !slices.Contains(general, key) {
			t.Errorf("General missing %q: %v", key, general)
		}
	}
}

func TestGetApplicableHelpSections_ChatFocus(t *testing.T) {
	m, _ := testModelWithSize(testConfig(), 120, 40)
	m = sendKey(m, keys.Tab)

	all := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)
	got := sectionKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))

	if slices.Contains(got[CategoryGeneral], "q") {
		t.Error("q is typed into the composer, so help should not list it")
	}
	if slices.Contains(got[CategoryNavigation], "/") {
		t.Error("search is a sidebar shortcut")
	}
	if !slices.Contains(got[CategoryChat], keys.CtrlF) {
		t.Error("message search should be listed with a conversation open")
	}
}

func TestGetApplicableHelpSections_NoConversation(t *testing.T) {
	opts := testOptions(&fakeScheduler{})
	opts.Seed = nil
	m := New(testConfig(), opts)
	m.Update(testWindow)

	all := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)
	got := sectionKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))
	if len(got[CategoryChat]) != 0 {
		t.Errorf("chat entries need a conversation, got %v", got[CategoryChat])
	}
}

func TestHandleHelpShortcutTrigger(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFocus Focus
		wantModal bool
	}{
		{"executable shortcut", keys.Tab, FocusChat, false},
		{"display only entry", "pgup/pgdn", FocusSidebar, false},
		{"help reopens help", "?", FocusSidebar, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModelWithSize(testConfig(), 120, 40)
			m = sendKey(m, "?")

			m.Update(ui.HelpShortcutTriggeredMsg{Key: tt.key})

			if m.Focus() != tt.wantFocus {
				t.Errorf("focus = %s, want %s", m.Focus(), tt.wantFocus)
			}
			if m.modal.IsVisible() != tt.wantModal {
				t.Errorf("modal visible = %v, want %v", m.modal.IsVisible(), tt.wantModal)
			}
		})
	}
}
