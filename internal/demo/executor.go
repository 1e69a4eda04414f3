package demo

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/wachat/internal/app"
	"github.com/zhubert/wachat/internal/clipboard"
	"github.com/zhubert/wachat/internal/config"
	"github.com/zhubert/wachat/internal/errors"
	"github.com/zhubert/wachat/internal/logger"
	"github.com/zhubert/wachat/internal/ui"
)

const (
	// cmdTimeout bounds how long a returned command may take before it is treated
	// as a timer (cursor blink, flash expiry) and dropped.
	cmdTimeout = 20 * time.Millisecond

	// maxCmdDepth stops command chains that keep producing follow-ups
	maxCmdDepth = 8
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // How long the frame stays on screen
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and typed character (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	clock  *VirtualClock
	frames []Frame

	// clipboard receives copies made during the run instead of the system clipboard
	clipboard *clipboard.Memory

	currentAnnotation string
	log               *slog.Logger
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
		log:    logger.WithComponent("demo"),
	}
}

// Model returns the model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Clock returns the virtual clock of the last Run.
func (e *Executor) Clock() *VirtualClock {
	return e.clock
}

// Clipboard returns the text copied during the last Run.
func (e *Executor) Clipboard() string {
	if e.clipboard == nil {
		return ""
	}
	text, _ := e.clipboard.Read()
	return text
}

// Cleanup restores the process-wide state Run replaced.
func (e *Executor) Cleanup() {
	clipboard.ResetBackend()
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, errors.ScenarioInvalid(scenario.Name, err.Error())
	}

	// Ensure cleanup is called when we're done
	defer e.Cleanup()

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	e.log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i, step.Type, err)
		}
	}

	e.log.Info("scenario finished", "name", scenario.Name, "frames", len(e.frames), "virtualTime", e.clock.Elapsed())
	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	setup := scenario.Setup

	e.clock = NewVirtualClock()
	e.frames = []Frame{}
	e.currentAnnotation = ""
	e.clipboard = &clipboard.Memory{}
	clipboard.SetBackend(e.clipboard)

	// In-memory preferences, never written to disk
	cfg := &config.Config{Theme: setup.Theme, ColorTheme: setup.Accent}

	opts := app.DefaultOptions("demo")
	opts.Scheduler = e.clock
	opts.DisableNotifications = true
	opts.Chat.Now = e.clock.Now
	if setup.DeliveryDelay > 0 {
		opts.Chat.DeliveryDelay = setup.DeliveryDelay
	}
	if setup.ReadDelay > 0 {
		opts.Chat.ReadDelay = setup.ReadDelay
	}
	if setup.ReplyDelay > 0 {
		opts.Chat.ReplyDelay = setup.ReplyDelay
	}

	e.model = app.New(cfg, opts)
	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})

	if setup.Conversation != "" {
		if _, ok := e.model.Controller().Conversation(setup.Conversation); !ok {
			return errors.ScenarioInvalid(scenario.Name, "unknown conversation "+setup.Conversation)
		}
		e.update(ui.ConversationSelectedMsg{ID: setup.Conversation})
	}

	want := app.FocusSidebar
	if setup.Focus == "chat" {
		want = app.FocusChat
	}
	if e.model.Focus() != want {
		e.sendKey("tab")
	}
	if e.model.Focus() != want {
		return errors.ScenarioInvalid(scenario.Name, "cannot focus "+setup.Focus)
	}
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepAdvance:
		due := e.clock.Advance(step.Duration)
		for _, ev := range due {
			e.update(app.LifecycleMsg{Event: ev})
		}
		e.log.Debug("virtual time advanced", "by", step.Duration, "fired", len(due))
		e.captureFrame(index, step.Duration)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// update delivers msg and follows up on the commands it returns.
func (e *Executor) update(msg tea.Msg) {
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	e.runCmd(cmd, 0)
}

// runCmd resolves a command the way the Bubble Tea runtime would, except that
// commands still blocked after cmdTimeout are timers and are dropped.
func (e *Executor) runCmd(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > maxCmdDepth {
		return
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		switch msg := msg.(type) {
		case nil:
		case tea.BatchMsg:
			for _, c := range msg {
				e.runCmd(c, depth+1)
			}
		case tea.QuitMsg:
			e.log.Debug("scenario requested quit")
		default:
			result, next := e.model.Update(msg)
			e.model = result.(*app.Model)
			e.runCmd(next, depth+1)
		}
	case <-time.After(cmdTimeout):
	}
}
