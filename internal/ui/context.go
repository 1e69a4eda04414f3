package ui

import (
	"sync"

	"github.com/zhubert/wachat/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int // 0 when the sidebar is hidden
	ChatWidth     int // 0 when the narrow layout shows only the sidebar

	// Narrow is true below NarrowWidth, where one pane is shown at a time
	Narrow bool
	// SidebarVisible is the user's sidebar toggle
	SidebarVisible bool

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight:   HeaderHeight,
			FooterHeight:   FooterHeight,
			SidebarVisible: true,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.recalculate()
}

// SetSidebarVisible shows or hides the sidebar and recalculates pane widths.
func (v *ViewContext) SetSidebarVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.SidebarVisible = visible
	v.recalculate()
}

// recalculate must be called with mu held.
func (v *ViewContext) recalculate() {
	width := v.TerminalWidth

	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = v.TerminalHeight - v.HeaderHeight - v.FooterHeight
	v.Narrow = width < NarrowWidth

	switch {
	case v.Narrow && v.SidebarVisible:
		v.SidebarWidth = width
		v.ChatWidth = 0
	case !v.SidebarVisible:
		v.SidebarWidth = 0
		v.ChatWidth = width
	default:
		v.SidebarWidth = max(width/SidebarWidthRatio, MinSidebarWidth)
		v.ChatWidth = width - v.SidebarWidth
	}

	v.Log("layout updated",
		"width", width,
		"height", v.TerminalHeight,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"chatWidth", v.ChatWidth,
		"narrow", v.Narrow,
	)
}

// Log writes a structured layout debug message tagged with the ui component.
func (v *ViewContext) Log(msg string, args ...any) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}
