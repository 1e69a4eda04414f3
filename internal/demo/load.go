package demo

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/wachat/internal/errors"
)

// scenarioFile is the YAML form of a Scenario:
//
//	name: conv1-reply
//	width: 120
//	setup:
//	  focus: sidebar
//	  reply_delay: 3s
//	steps:
//	  - key: enter
//	  - type: "Here are the results"
//	  - advance: 5s
//	  - annotate: "Sarah replied"
//	  - capture: true
type scenarioFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Setup       *setupFile `yaml:"setup"`
	Steps       []stepFile `yaml:"steps"`
}

type setupFile struct {
	Focus         string   `yaml:"focus"`
	Conversation  string   `yaml:"conversation"`
	Theme         string   `yaml:"theme"`
	Accent        string   `yaml:"accent"`
	DeliveryDelay duration `yaml:"delivery_delay"`
	ReadDelay     duration `yaml:"read_delay"`
	ReplyDelay    duration `yaml:"reply_delay"`
}

// stepFile holds exactly one action per list entry.
type stepFile struct {
	Wait        *duration `yaml:"wait"`
	Key         string    `yaml:"key"`
	Type        string    `yaml:"type"`
	Advance     *duration `yaml:"advance"`
	Capture     bool      `yaml:"capture"`
	Annotate    string    `yaml:"annotate"`
	Description string    `yaml:"description"`
}

// duration accepts Go duration strings ("1.5s", "500ms").
type duration time.Duration

func (d *duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = duration(parsed)
	return nil
}

func (f stepFile) toStep() (Step, error) {
	var steps []Step
	if f.Wait != nil {
		steps = append(steps, Wait(time.Duration(*f.Wait)))
	}
	if f.Key != "" {
		steps = append(steps, Key(f.Key))
	}
	if f.Type != "" {
		steps = append(steps, Type(f.Type))
	}
	if f.Advance != nil {
		steps = append(steps, Advance(time.Duration(*f.Advance)))
	}
	if f.Capture {
		steps = append(steps, Capture())
	}
	if f.Annotate != "" {
		steps = append(steps, Annotate(f.Annotate))
	}

	if len(steps) != 1 {
		return Step{}, fmt.Errorf("expected exactly one action, got %d", len(steps))
	}
	step := steps[0]
	step.Description = f.Description
	return step, nil
}

// Parse decodes a YAML scenario and validates it. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.ScenarioInvalid(f.Name, err.Error())
	}

	s := &Scenario{
		Name:        f.Name,
		Description: f.Description,
		Width:       f.Width,
		Height:      f.Height,
	}
	if f.Setup != nil {
		s.Setup = &ScenarioSetup{
			Focus:         f.Setup.Focus,
			Conversation:  f.Setup.Conversation,
			Theme:         f.Setup.Theme,
			Accent:        f.Setup.Accent,
			DeliveryDelay: time.Duration(f.Setup.DeliveryDelay),
			ReadDelay:     time.Duration(f.Setup.ReadDelay),
			ReplyDelay:    time.Duration(f.Setup.ReplyDelay),
		}
	}

	for i, sf := range f.Steps {
		step, err := sf.toStep()
		if err != nil {
			return nil, errors.ScenarioInvalid(f.Name, fmt.Sprintf("step %d: %v", i, err))
		}
		s.Steps = append(s.Steps, step)
	}

	if err := s.Validate(); err != nil {
		return nil, errors.ScenarioInvalid(f.Name, err.Error())
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Used for embedded scenarios.
func MustParse(data []byte) *Scenario {
	s, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return s
}

// Load reads and parses a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ScenarioLoadFailed(path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.ScenarioLoadFailed(path, err)
	}
	return s, nil
}
