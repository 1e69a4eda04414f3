// Package clipboard copies message text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/wachat/internal/errors"
	"github.com/zhubert/wachat/internal/logger"
)

// Backend is the system clipboard surface wachat uses.
type Backend interface {
	Init() error
	Write(text string) error
	Read() (string, error)
}

// system wraps golang.design/x/clipboard.
type system struct{}

func (system) Init() error { return clipboard.Init() }

func (system) Write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (system) Read() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

var (
	mu          sync.Mutex
	backend     Backend = system{}
	initialized bool
)

// SetBackend replaces the system clipboard. Used by tests and the demo runner.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(system{})
}

// ensureInit must be called with mu held.
func ensureInit() error {
	if initialized {
		return nil
	}
	if err := backend.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("clipboard unavailable", "error", err)
		return errors.ClipboardUnavailable(err)
	}
	initialized = true
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := ensureInit(); err != nil {
		return err
	}
	if err := backend.Write(text); err != nil {
		return errors.ClipboardUnavailable(err)
	}
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText returns the clipboard's text content.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := ensureInit(); err != nil {
		return "", err
	}
	return backend.Read()
}

// Memory is an in-process Backend.
type Memory struct {
	mu      sync.Mutex
	text    string
	InitErr error
}

func (m *Memory) Init() error { return m.InitErr }

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
