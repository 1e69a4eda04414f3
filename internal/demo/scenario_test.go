package demo

import (
	"errors"
	"testing"
	"time"

	"github.com/zhubert/wachat/internal/config"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  *Scenario
		wantErr   bool
		errField  string
		wantWidth int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
				Width:       100,
				Height:      30,
				Setup:       DefaultSetup(),
			},
			wantErr:   false,
			wantWidth: 100,
		},
		{
			name: "missing name",
			scenario: &Scenario{
				Description: "Test scenario",
			},
			wantErr:  true,
			errField: "Name",
		},
		{
			name: "default width and height",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
			},
			wantErr:   false,
			wantWidth: 120, // Default
		},
		{
			name: "bad focus",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Focus: "header"},
			},
			wantErr:  true,
			errField: "Setup.Focus",
		},
		{
			name: "bad theme",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Theme: "sepia"},
			},
			wantErr:  true,
			errField: "Setup.Theme",
		},
		{
			name: "bad accent",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Accent: "orange"},
			},
			wantErr:  true,
			errField: "Setup.Accent",
		},
		{
			name: "negative delay",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{ReplyDelay: -time.Second},
			},
			wantErr:  true,
			errField: "Setup",
		},
		{
			name: "empty key step",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{Wait(time.Second), Key("")},
			},
			wantErr:  true,
			errField: "Steps",
		},
		{
			name: "zero advance",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{Advance(0)},
			},
			wantErr:  true,
			errField: "Steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if ve.Field != tt.errField {
					t.Errorf("Validate() error field = %v, want %v", ve.Field, tt.errField)
				}
			}
			if !tt.wantErr && tt.wantWidth > 0 {
				if tt.scenario.Width != tt.wantWidth {
					t.Errorf("Width = %v, want %v", tt.scenario.Width, tt.wantWidth)
				}
			}
		})
	}
}

func TestScenarioValidate_FillsSetupDefaults(t *testing.T) {
	s := &Scenario{Name: "test", Setup: &ScenarioSetup{Conversation: "conv2"}}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if s.Setup.Focus != "sidebar" || s.Setup.Theme != config.ThemeLight || s.Setup.Accent != config.ColorDefault {
		t.Errorf("defaults not filled: %+v", s.Setup)
	}
	if s.Setup.Conversation != "conv2" {
		t.Error("explicit values must be kept")
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want Step
	}{
		{"Wait", Wait(500 * time.Millisecond), Step{Type: StepWait, Duration: 500 * time.Millisecond}},
		{"Key", Key("enter"), Step{Type: StepKey, Key: "enter"}},
		{"KeyWithDesc", KeyWithDesc("enter", "Send"), Step{Type: StepKey, Key: "enter", Description: "Send"}},
		{"Type", Type("hello world"), Step{Type: StepTypeText, Text: "hello world"}},
		{"TypeWithDesc", TypeWithDesc("hi", "Greet"), Step{Type: StepTypeText, Text: "hi", Description: "Greet"}},
		{"Advance", Advance(time.Second), Step{Type: StepAdvance, Duration: time.Second}},
		{"Annotate", Annotate("note"), Step{Type: StepAnnotate, Annotation: "note"}},
		{"Capture", Capture(), Step{Type: StepCapture}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step != tt.want {
				t.Errorf("got %+v, want %+v", tt.step, tt.want)
			}
		})
	}
}

func TestStepTypeString(t *testing.T) {
	if StepAdvance.String() != "advance" || StepTypeText.String() != "type" {
		t.Error("unexpected step names")
	}
	if StepType(99).String() != "unknown" {
		t.Error("unknown step types should say so")
	}
}

func TestDefaultSetup(t *testing.T) {
	setup := DefaultSetup()

	if setup.Focus != "sidebar" {
		t.Errorf("Focus = %v, want 'sidebar'", setup.Focus)
	}
	if setup.Conversation != "" {
		t.Error("default setup keeps the startup selection")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Field: "Name", Message: "is required", Index: -1}, "validation error: Name: is required"},
		{&ValidationError{Field: "Steps", Message: "key step needs a key", Index: 3}, "validation error: step 3: key step needs a key"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %v, want %v", got, tt.want)
		}
	}
}
