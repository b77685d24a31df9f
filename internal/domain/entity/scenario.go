package entity

import (
	"fmt"
)

type ActionType string

const (
	ActionNavigate      ActionType = "navigate"
	ActionClick         ActionType = "click"
	ActionExpectVisible ActionType = "expect_visible"
	ActionScreenshot    ActionType = "screenshot"
)

func (a ActionType) String() string {
	return string(a)
}

// Step is one named interaction of a scenario.
type Step struct {
	Name   string
	Action ActionType
	// URL is used by navigate. Empty means the scenario base URL.
	URL    string
	Target Locator
	// Path is used by screenshot. Empty means the scenario success path.
	Path string
}

func (s Step) Validate() error {
	switch s.Action {
	case ActionNavigate, ActionScreenshot:
		return nil
	case ActionClick, ActionExpectVisible:
		return s.Target.Validate()
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidScenario, s.Action)
	}
}

// Scenario is an ordered, non-branching sequence of steps against one target.
type Scenario struct {
	Name              string
	BaseURL           string
	Steps             []Step
	SuccessScreenshot string
	ErrorScreenshot   string
	// ErrorSnapshot is the path of the HTML dump written on failure. Empty disables it.
	ErrorSnapshot string
}

func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}
	for i, step := range s.Steps {
		if step.Name == "" {
			return fmt.Errorf("%w: step %d has no name", ErrInvalidScenario, i+1)
		}
		if step.Action == ActionNavigate && step.URL == "" && s.BaseURL == "" {
			return fmt.Errorf("%w: step %q navigates without url or base url", ErrInvalidScenario, step.Name)
		}
		if step.Action == ActionScreenshot && step.Path == "" && s.SuccessScreenshot == "" {
			return fmt.Errorf("%w: step %q has no screenshot path", ErrInvalidScenario, step.Name)
		}
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}
	return nil
}

// HasScreenshotStep reports whether the scenario takes its own success screenshot.
func (s Scenario) HasScreenshotStep() bool {
	for _, step := range s.Steps {
		if step.Action == ActionScreenshot {
			return true
		}
	}
	return false
}
