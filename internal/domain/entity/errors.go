package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrInvalidLocator  = errors.New("invalid locator")
	ErrInvalidURL      = errors.New("invalid url")
	ErrElementNotFound = errors.New("element not found")
	ErrNotVisible      = errors.New("element not visible")
	ErrBrowserClosed   = errors.New("browser is closed")
	ErrUnknownAction   = errors.New("unknown action")
)

// StepError is the single failure kind of a run: a verification step failed.
type StepError struct {
	Index int // 1-based, 0 for the browser launch
	Step  string
	Err   error
}

func (e *StepError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("step %d (%s) failed: %v", e.Index, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
