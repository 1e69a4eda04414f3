package modals

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/wachat/internal/keys"
)

// =============================================================================
// SearchMessagesState - search within the open conversation
// =============================================================================

type SearchMessagesState struct {
	Query         string
	Input         textinput.Model
	Contact       string
	AllMessages   []SearchResult
	Results       []SearchResult
	SelectedIndex int
	ScrollOffset  int
	maxVisible    int
}

func (*SearchMessagesState) modalState() {}

func (s *SearchMessagesState) Title() string {
	if s.Contact == "" {
		return "Search Messages"
	}
	return "Search Messages with " + s.Contact
}

func (s *SearchMessagesState) Help() string {
	if len(s.Results) == 0 && s.Query != "" {
		return "No matches found. Esc: close"
	}
	return "Type to search  up/down: navigate  Enter: copy message  Esc: close"
}

func (s *SearchMessagesState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	inputView := inputStyle.Render(s.Input.View())

	muted := lipgloss.NewStyle().Foreground(ColorTextMuted)

	var results string
	switch {
	case s.Query == "":
		results = muted.Italic(true).MarginTop(1).Render("Start typing to search this conversation...")
	case len(s.Results) == 0:
		results = muted.Italic(true).MarginTop(1).Render("No matches found")
	default:
		results = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			MarginTop(1).
			MarginBottom(1).
			Render(fmt.Sprintf("%d match(es) found", len(s.Results)))

		visibleEnd := min(s.ScrollOffset+s.maxVisible, len(s.Results))
		if s.ScrollOffset > 0 {
			results += "\n" + muted.Render("  ↑ more above")
		}

		for i := s.ScrollOffset; i < visibleEnd; i++ {
			r := s.Results[i]

			senderStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
			if r.Sent {
				senderStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
			}

			prefix := "  "
			style := SidebarItemStyle
			if i == s.SelectedIndex {
				prefix = "> "
				style = SidebarSelectedStyle
			}

			line := fmt.Sprintf("%s%s: %s", prefix, senderStyle.Render(r.Sender), s.extractSnippet(r, SearchSnippetWidth))
			results += "\n" + style.Render(line)
		}

		if visibleEnd < len(s.Results) {
			results += "\n" + muted.Render("  ↓ more below")
		}
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, inputView, results, help)
}

// extractSnippet returns up to maxLen bytes of content centered on the match
func (s *SearchMessagesState) extractSnippet(r SearchResult, maxLen int) string {
	content := strings.Join(strings.Fields(r.Content), " ")
	matchStart, matchEnd := r.MatchStart, r.MatchEnd

	// Collapsing whitespace moves offsets; find the match again
	if idx := strings.Index(strings.ToLower(content), strings.ToLower(s.Query)); idx >= 0 {
		matchStart, matchEnd = idx, idx+len(s.Query)
	}

	if len(content) <= maxLen {
		return highlightMatch(content, matchStart, matchEnd)
	}

	start := max((matchStart+matchEnd)/2-maxLen/2, 0)
	end := min(start+maxLen, len(content))
	start = max(end-maxLen, 0)

	// Keep slice bounds on rune boundaries
	for start > 0 && !isRuneStart(content[start]) {
		start--
	}
	for end < len(content) && !isRuneStart(content[end]) {
		end++
	}

	prefix, suffix := "", ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(content) {
		suffix = "..."
	}
	return prefix + highlightMatch(content[start:end], matchStart-start, matchEnd-start) + suffix
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// highlightMatch highlights text[start:end], or returns text unchanged when out of range
func highlightMatch(text string, start, end int) string {
	if start < 0 || end > len(text) || start >= end {
		return text
	}

	highlightStyle := lipgloss.NewStyle().
		Background(ColorWarning).
		Foreground(ColorTextInverse).
		Bold(true)

	return text[:start] + highlightStyle.Render(text[start:end]) + text[end:]
}

func (s *SearchMessagesState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, keys.CtrlP:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
				if s.SelectedIndex < s.ScrollOffset {
					s.ScrollOffset = s.SelectedIndex
				}
			}
			return s, nil
		case keys.Down, keys.CtrlN:
			if s.SelectedIndex < len(s.Results)-1 {
				s.SelectedIndex++
				if s.SelectedIndex >= s.ScrollOffset+s.maxVisible {
					s.ScrollOffset = s.SelectedIndex - s.maxVisible + 1
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	oldQuery := s.Input.Value()
	s.Input, cmd = s.Input.Update(msg)
	if newQuery := s.Input.Value(); newQuery != oldQuery {
		s.Query = newQuery
		s.filterResults()
	}

	return s, cmd
}

// filterResults keeps messages whose content contains the query, ignoring case
func (s *SearchMessagesState) filterResults() {
	s.Results = nil
	s.SelectedIndex = 0
	s.ScrollOffset = 0

	if s.Query == "" {
		return
	}

	query := strings.ToLower(s.Query)
	for _, m := range s.AllMessages {
		idx := strings.Index(strings.ToLower(m.Content), query)
		if idx == -1 {
			continue
		}
		m.MatchStart = idx
		m.MatchEnd = idx + len(query)
		s.Results = append(s.Results, m)
	}
}

// GetSelectedResult returns the currently selected search result
func (s *SearchMessagesState) GetSelectedResult() *SearchResult {
	if len(s.Results) == 0 || s.SelectedIndex >= len(s.Results) {
		return nil
	}
	return &s.Results[s.SelectedIndex]
}

// NewSearchMessagesState creates a search over one conversation's messages.
func NewSearchMessagesState(contact string, messages []SearchableMessage) *SearchMessagesState {
	input := textinput.New()
	input.Placeholder = "Type to search..."
	input.CharLimit = SearchInputCharLimit
	input.SetWidth(ModalInputWidth)
	input.Focus()

	all := make([]SearchResult, 0, len(messages))
	for i, m := range messages {
		all = append(all, SearchResult{
			MessageIndex: i,
			MessageID:    m.ID,
			Sender:       m.Sender,
			Sent:         m.Sent,
			Content:      m.Content,
		})
	}

	return &SearchMessagesState{
		Input:       input,
		Contact:     contact,
		AllMessages: all,
		maxVisible:  SearchModalMaxVisible,
	}
}
