// Text selection in the message pane.
//
// Selections are stored in content coordinates: a line is an index into the rendered
// conversation, not a viewport row, so a selection stays on the same messages while the
// pane scrolls. Mouse events arrive relative to the chat panel; contentPos removes the
// panel border and adds the viewport's scroll offset.
//
// Only message text is selectable. Each rendered message records a bubbleSpan, and both
// copying and highlighting are clipped to those spans, so bubble borders, padding, the
// gaps between groups and the timestamp/tick line under every bubble never end up on the
// clipboard.
//
// Clicks:
//   - drag selects text across one or more messages
//   - double click selects the word under the pointer
//   - triple click selects the whole message and copies its original text, including
//     formatting markers and line breaks that wrapping hides
package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zhubert/wachat/internal/clipboard"
	"github.com/zhubert/wachat/internal/logger"
)

// ClipboardErrorMsg is sent when clipboard operations fail
type ClipboardErrorMsg struct {
	Error error
}

const (
	multiClickInterval = 500 * time.Millisecond
	multiClickSlop     = 2 // cells
)

// contentPos converts panel coordinates to content coordinates.
func (c *Chat) contentPos(x, y int) (col, line int) {
	return x - 1, y - 1 + c.viewport.YOffset()
}

// StartSelection begins a drag at a content position
func (c *Chat) StartSelection(col, line int) {
	c.selection.StartCol, c.selection.StartLine = col, line
	c.selection.EndCol, c.selection.EndLine = col, line
	c.selection.Message = -1
	c.selection.Active = true
}

// EndSelection moves the end of the selection while dragging
func (c *Chat) EndSelection(col, line int) {
	if !c.selection.Active {
		return
	}
	c.selection.EndCol, c.selection.EndLine = col, line
}

// SelectionStop ends the drag but keeps the selection visible
func (c *Chat) SelectionStop() {
	c.selection.Active = false
}

// SelectionClear clears the selection entirely
func (c *Chat) SelectionClear() {
	c.selection.Clear()
}

// HasTextSelection returns true if there is an active or completed selection
func (c *Chat) HasTextSelection() bool {
	return c.selection.HasSelection()
}

// spanAt returns the message whose text covers (col, line).
func (c *Chat) spanAt(col, line int) (bubbleSpan, bool) {
	for _, s := range c.spans {
		if s.contains(col, line) {
			return s, true
		}
	}
	return bubbleSpan{}, false
}

// handleMouseClick counts clicks on the same spot and dispatches single, double
// and triple clicks.
func (c *Chat) handleMouseClick(col, line int) tea.Cmd {
	sel := c.selection
	now := time.Now()

	if now.Sub(sel.LastClickTime) <= multiClickInterval &&
		abs(col-sel.LastClickX) <= multiClickSlop &&
		abs(line-sel.LastClickY) <= multiClickSlop {
		sel.ClickCount++
	} else {
		sel.ClickCount = 1
	}
	sel.LastClickTime = now
	sel.LastClickX, sel.LastClickY = col, line

	switch sel.ClickCount {
	case 1:
		c.StartSelection(col, line)
	case 2:
		if c.SelectWord(col, line) {
			return c.CopySelectedText()
		}
	default:
		sel.ClickCount = 0
		if c.SelectMessage(col, line) {
			return c.CopySelectedText()
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// spanText returns the visible text of a message line between two columns.
func (c *Chat) spanText(line, left, right int) string {
	if line < 0 || line >= len(c.lines) || left >= right {
		return ""
	}
	return strings.TrimRight(ansi.Strip(ansi.Cut(c.lines[line], left, right)), " ")
}

// SelectWord selects the word under (col, line). Whitespace, the timestamp line and
// anything outside a bubble select nothing.
func (c *Chat) SelectWord(col, line int) bool {
	span, ok := c.spanAt(col, line)
	if !ok {
		c.SelectionClear()
		return false
	}

	text := c.spanText(line, span.Left, span.Right)
	target := col - span.Left
	pos, state := 0, -1
	for text != "" {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		w := uniseg.StringWidth(word)
		if target < pos+w {
			if strings.TrimSpace(word) == "" {
				break
			}
			c.selection.StartCol, c.selection.StartLine = span.Left+pos, line
			c.selection.EndCol, c.selection.EndLine = span.Left+pos+w, line
			c.selection.Message = -1
			c.selection.Active = false
			return true
		}
		pos += w
	}

	c.SelectionClear()
	return false
}

// SelectMessage selects every line of the message under (col, line).
func (c *Chat) SelectMessage(col, line int) bool {
	span, ok := c.spanAt(col, line)
	if !ok {
		c.SelectionClear()
		return false
	}
	c.selection.StartCol, c.selection.StartLine = span.Left, span.Top
	c.selection.EndCol, c.selection.EndLine = span.Right, span.Bottom
	c.selection.Message = span.Index
	c.selection.Active = false
	return true
}

// selectionArea returns the selection with its start before its end in reading order,
// whichever way the pointer was dragged.
func (c *Chat) selectionArea() (startCol, startLine, endCol, endLine int) {
	s := c.selection
	startCol, startLine, endCol, endLine = s.StartCol, s.StartLine, s.EndCol, s.EndLine
	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}
	return
}

// selectedRange clips the selection to the text of one message line. ok is false when
// the line holds none of the selection.
func (c *Chat) selectedRange(span bubbleSpan, line int) (left, right int, ok bool) {
	startCol, startLine, endCol, endLine := c.selectionArea()
	if line < startLine || line > endLine || line < span.Top || line > span.Bottom {
		return 0, 0, false
	}
	left, right = span.Left, span.Right
	if line == startLine {
		left = max(left, startCol)
	}
	if line == endLine {
		right = min(right, endCol)
	}
	return left, right, left < right
}

// GetSelectedText returns the selected message text. Lines of one message are joined
// with newlines, as are consecutive messages. A whole-message selection returns the
// message as it was written.
func (c *Chat) GetSelectedText() string {
	if !c.HasTextSelection() {
		return ""
	}
	if i := c.selection.Message; i >= 0 && i < len(c.messages) {
		return c.messages[i].Content
	}

	var parts []string
	for _, span := range c.spans {
		for line := span.Top; line <= span.Bottom; line++ {
			left, right, ok := c.selectedRange(span, line)
			if !ok {
				continue
			}
			if text := c.spanText(line, left, right); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// CopySelectedText copies the selected text to the clipboard and starts flash animation
func (c *Chat) CopySelectedText() tea.Cmd {
	text := c.GetSelectedText()
	if text == "" {
		return nil
	}

	c.selection.FlashFrame = 0

	return tea.Batch(
		// OSC 52 for terminals that support it
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				logger.WithConversation(c.conversationID).Warn("native clipboard write failed", "error", err)
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		SelectionFlashTick(),
	)
}

// selectionView highlights the selected message text in the rendered viewport.
func (c *Chat) selectionView(view string) string {
	if !c.HasTextSelection() {
		return view
	}

	width := c.viewport.Width()
	height := c.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	style := TextSelectionStyle
	if c.selection.FlashFrame == 0 {
		style = TextSelectionFlashStyle
	}
	var bg, fg color.Color = style.GetBackground(), style.GetForeground()

	offset := c.viewport.YOffset()
	for _, span := range c.spans {
		for line := max(span.Top, offset); line <= span.Bottom && line < offset+height; line++ {
			left, right, ok := c.selectedRange(span, line)
			if !ok {
				continue
			}
			for x := left; x < right && x < width; x++ {
				cell := scr.CellAt(x, line-offset)
				if cell == nil {
					continue
				}
				cell = cell.Clone()
				cell.Style.Bg = bg
				cell.Style.Fg = fg
				scr.SetCell(x, line-offset, cell)
			}
		}
	}

	return scr.Render()
}
