// Package demo drives the chat TUI through scripted scenarios and records the frames.
// Lifecycle transitions run on a virtual clock, so a recording of the delivered, read
// and reply sequence is deterministic and takes milliseconds to produce.
package demo

import (
	"slices"
	"strconv"
	"time"

	"github.com/zhubert/wachat/internal/config"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait holds the current frame for a duration (pacing only).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepAdvance moves the virtual clock forward, firing every lifecycle
	// transition that falls due, then captures a frame.
	StepAdvance
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next captured frame.
	StepAnnotate
)

var stepTypeNames = map[StepType]string{
	StepWait:     "wait",
	StepKey:      "key",
	StepTypeText: "type",
	StepAdvance:  "advance",
	StepCapture:  "capture",
	StepAnnotate: "annotate",
}

func (t StepType) String() string {
	if name, ok := stepTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait and StepAdvance
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Initial focus (sidebar or chat)
	Focus string

	// Conversation opened before the first step; empty keeps the startup selection
	Conversation string

	// Theme mode and accent color
	Theme  string
	Accent string

	// Lifecycle delays; zero keeps the defaults
	DeliveryDelay time.Duration
	ReadDelay     time.Duration
	ReplyDelay    time.Duration
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Focus:  "sidebar",
		Theme:  config.ThemeLight,
		Accent: config.ColorDefault,
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if err := s.Setup.validate(); err != nil {
		return err
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			err.Index = i
			return err
		}
	}
	return nil
}

func (s *ScenarioSetup) validate() error {
	if s.Focus == "" {
		s.Focus = "sidebar"
	}
	if s.Theme == "" {
		s.Theme = config.ThemeLight
	}
	if s.Accent == "" {
		s.Accent = config.ColorDefault
	}

	switch {
	case s.Focus != "sidebar" && s.Focus != "chat":
		return &ValidationError{Field: "Setup.Focus", Message: "must be sidebar or chat"}
	case !slices.Contains(config.Themes(), s.Theme):
		return &ValidationError{Field: "Setup.Theme", Message: "unknown theme " + s.Theme}
	case !slices.Contains(config.ColorThemes(), s.Accent):
		return &ValidationError{Field: "Setup.Accent", Message: "unknown accent " + s.Accent}
	case s.DeliveryDelay < 0 || s.ReadDelay < 0 || s.ReplyDelay < 0:
		return &ValidationError{Field: "Setup", Message: "delays cannot be negative"}
	}
	return nil
}

func (s Step) validate() *ValidationError {
	invalid := func(msg string) *ValidationError {
		return &ValidationError{Field: "Steps", Message: s.Type.String() + " step " + msg, Index: -1}
	}

	switch s.Type {
	case StepWait:
		if s.Duration < 0 {
			return invalid("has a negative duration")
		}
	case StepAdvance:
		if s.Duration <= 0 {
			return invalid("needs a positive duration")
		}
	case StepKey:
		if s.Key == "" {
			return invalid("needs a key")
		}
	case StepTypeText:
		if s.Text == "" {
			return invalid("needs text")
		}
	case StepAnnotate:
		if s.Annotation == "" {
			return invalid("needs text")
		}
	case StepCapture:
	default:
		return invalid("is not a known step type")
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
	Index   int // step index for step errors, -1 otherwise
}

func (e *ValidationError) Error() string {
	if e.Field == "Steps" && e.Index >= 0 {
		return "validation error: step " + strconv.Itoa(e.Index) + ": " + e.Message
	}
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Advance creates a step that lets d of virtual time pass.
func Advance(d time.Duration) Step {
	return Step{
		Type:     StepAdvance,
		Duration: d,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
