package ui

import "time"

// TextSelection tracks mouse-based text selection in the message pane.
type TextSelection struct {
	StartCol, StartLine int  // Start position (column, content line)
	EndCol, EndLine     int  // End position (column, content line)
	Active              bool // True during drag operation

	// Message is the index of a whole selected message, or -1
	Message int

	// Click tracking for double/triple click detection
	LastClickTime time.Time
	LastClickX    int
	LastClickY    int
	ClickCount    int

	// Selection flash animation (brief highlight after copy, then clear)
	FlashFrame int // -1 = inactive, 0 = flash visible, 1+ = done
}

// NewTextSelection creates a new TextSelection in inactive state.
func NewTextSelection() *TextSelection {
	return &TextSelection{
		StartCol:   -1,
		StartLine:  -1,
		EndCol:     -1,
		EndLine:    -1,
		Message:    -1,
		FlashFrame: -1,
	}
}

// HasSelection returns true if there's a non-empty text selection.
func (s *TextSelection) HasSelection() bool {
	if s.StartCol < 0 || s.StartLine < 0 {
		return false
	}
	return s.StartLine != s.EndLine || s.StartCol != s.EndCol
}

// Clear resets the selection to empty state.
func (s *TextSelection) Clear() {
	s.StartCol = -1
	s.StartLine = -1
	s.EndCol = -1
	s.EndLine = -1
	s.Message = -1
	s.Active = false
}
