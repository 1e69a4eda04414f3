package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/wachat/internal/chat"
)

// Compiled patterns for the chat formatting markers
var (
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")
	boldPattern       = regexp.MustCompile(`(^|[\s(])\*([^*\s](?:[^*\n]*[^*\s])?)\*`)
	italicPattern     = regexp.MustCompile(`(^|[\s(])_([^_\s](?:[^_\n]*[^_\s])?)_`)
	strikePattern     = regexp.MustCompile(`(^|[\s(])~([^~\s](?:[^~\n]*[^~\s])?)~`)
)

// highlightCode applies syntax highlighting to code using chroma and the theme's code style
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// renderInlineFormatting applies *bold*, _italic_, ~strike~ and `code` to a line
func renderInlineFormatting(line string) string {
	// Protect code spans from other formatting
	var codeSpans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		codeSpans = append(codeSpans, InlineCodeStyle.Render(code))
		return fmt.Sprintf("\x00CODE%d\x00", len(codeSpans)-1)
	})

	apply := func(pattern *regexp.Regexp, style lipgloss.Style) {
		line = pattern.ReplaceAllStringFunc(line, func(match string) string {
			parts := pattern.FindStringSubmatch(match)
			return parts[1] + style.Render(parts[2])
		})
	}
	apply(boldPattern, FormatBoldStyle)
	apply(italicPattern, FormatItalicStyle)
	apply(strikePattern, FormatStrikeStyle)

	for i, rendered := range codeSpans {
		line = strings.Replace(line, fmt.Sprintf("\x00CODE%d\x00", i), rendered, 1)
	}
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// renderMessageContent formats message text, highlighting fenced code blocks,
// and wraps it to width.
func renderMessageContent(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var out []string
	var code strings.Builder
	inCodeBlock := false
	codeLang := ""

	flushCode := func() {
		highlighted := highlightCode(code.String(), codeLang)
		out = append(out, CodeBlockStyle.Render(highlighted))
		code.Reset()
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeLang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
			} else {
				inCodeBlock = false
				flushCode()
				codeLang = ""
			}
			continue
		}

		if inCodeBlock {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}

		out = append(out, wrapText(renderInlineFormatting(line), width))
	}

	// Unterminated block: show what we have
	if inCodeBlock {
		flushCode()
	}

	return strings.Join(out, "\n")
}

// renderTicks returns the receipt indicator for a message the current user sent
func renderTicks(status chat.Status) string {
	switch status {
	case chat.StatusRead:
		return TickReadStyle.Render("✓✓")
	case chat.StatusDelivered:
		return TickStyle.Render("✓✓")
	default:
		return TickStyle.Render("✓")
	}
}

// bubbleSpan locates one message's text in the rendered pane. Lines are content lines
// (not viewport rows); columns bound the text inside the bubble's border and padding.
// The line after Bottom holds the timestamp and ticks.
type bubbleSpan struct {
	Index       int // position in the message list
	Top, Bottom int // first and last body line
	Left, Right int // text columns [Left, Right)
}

// contains reports whether (col, line) falls on the message text.
func (s bubbleSpan) contains(col, line int) bool {
	return line >= s.Top && line <= s.Bottom && col >= s.Left && col < s.Right
}

// renderBubble renders one message as a bubble no wider than maxWidth, aligned to paneWidth.
func renderBubble(msg chat.Message, sent bool, maxWidth, paneWidth int) string {
	out, _ := layoutBubble(msg, sent, maxWidth, paneWidth)
	return out
}

// layoutBubble renders a bubble and reports where its text sits, relative to the
// bubble's first line.
func layoutBubble(msg chat.Message, sent bool, maxWidth, paneWidth int) (string, bubbleSpan) {
	style := BubbleReceivedStyle
	if sent {
		style = BubbleSentStyle
	}
	frame := style.GetHorizontalFrameSize()
	innerMax := max(maxWidth-frame, 1)

	body := renderMessageContent(msg.Content, innerMax)

	meta := BubbleMetaStyle.Render(msg.Timestamp)
	if sent {
		meta += " " + renderTicks(msg.Status)
	}

	innerWidth := min(max(lipgloss.Width(body), lipgloss.Width(meta)), innerMax)
	metaLine := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Right, meta)

	bubble := style.Width(innerWidth + frame).Render(body + "\n" + metaLine)
	w := lipgloss.Width(bubble)

	align := lipgloss.Left
	left := 0
	if sent {
		align = lipgloss.Right
		left = max(paneWidth-w, 0)
	}
	span := bubbleSpan{
		Bottom: lipgloss.Height(bubble) - 2,
		Left:   left + style.GetBorderLeftSize() + style.GetPaddingLeft(),
		Right:  left + w - style.GetBorderRightSize() - style.GetPaddingRight(),
	}
	return lipgloss.PlaceHorizontal(paneWidth, align, bubble), span
}

// renderMessages renders a conversation's messages as bubbles and returns where each
// message's text landed.
// Sent messages are right-aligned; consecutive messages from the same sender with the same
// timestamp are grouped without a gap.
func renderMessages(messages []chat.Message, currentUserID string, paneWidth int) (string, []bubbleSpan) {
	if paneWidth <= 0 {
		paneWidth = DefaultWrapWidth
	}
	maxWidth := max(int(float64(paneWidth)*BubbleMaxRatio), 1)

	var sb strings.Builder
	spans := make([]bubbleSpan, 0, len(messages))
	line := 0
	for i, msg := range messages {
		if i > 0 {
			sb.WriteString("\n")
			line++
			if !chat.IsSequential(messages[i-1], msg) {
				sb.WriteString("\n")
				line++
			}
		}
		bubble, span := layoutBubble(msg, msg.SenderID == currentUserID, maxWidth, paneWidth)
		span.Index = i
		span.Top = line
		span.Bottom += line
		spans = append(spans, span)

		sb.WriteString(bubble)
		line += strings.Count(bubble, "\n")
	}
	return sb.String(), spans
}

// renderWelcome renders the placeholder shown when no conversation is open
func renderWelcome(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		EmptyTitleStyle.Render("Welcome to WhatsApp"),
		"",
		EmptyTextStyle.Render("Select a conversation to start chatting"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
