package demo

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// clearScreen homes the cursor and clears the screen before each frame
const clearScreen = "\x1b[H\x1b[2J"

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// CastOptions configures GenerateASCIICast.
type CastOptions struct {
	Width  int
	Height int
	Title  string

	// Timestamp is the recording time written to the header; zero omits it
	Timestamp time.Time
}

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// redraws the full screen and stays up for its Delay. Annotations become
// markers ("m" events) at the frame they belong to.
func GenerateASCIICast(w io.Writer, frames []Frame, opts CastOptions) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	header := castHeader{
		Version: 2,
		Width:   opts.Width,
		Height:  opts.Height,
		Title:   opts.Title,
		Env:     map[string]string{"TERM": "xterm-256color", "SHELL": "/bin/sh"},
	}
	if !opts.Timestamp.IsZero() {
		header.Timestamp = opts.Timestamp.Unix()
	}
	if err := enc.Encode(header); err != nil {
		return err
	}

	var at time.Duration
	for _, f := range frames {
		ts := at.Seconds()
		if f.Annotation != "" {
			if err := enc.Encode([]any{ts, "m", f.Annotation}); err != nil {
				return err
			}
		}
		out := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{ts, "o", out}); err != nil {
			return err
		}
		at += f.Delay
	}

	return bw.Flush()
}
