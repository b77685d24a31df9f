package action

import (
	"context"
	"time"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/application/service"
	"ui-verifier/internal/domain/entity"
)

type NavigateAction struct {
	timeout time.Duration
	logger  output.LoggerPort
}

func NewNavigateAction(timeout time.Duration, logger output.LoggerPort) *NavigateAction {
	return &NavigateAction{timeout: timeout, logger: logger}
}

func (a *NavigateAction) Name() entity.ActionType { return entity.ActionNavigate }
func (a *NavigateAction) Description() string     { return "Navigates the page to a URL" }

func (a *NavigateAction) Execute(ctx context.Context, browser output.BrowserPort, scenario entity.Scenario, step entity.Step) ([]entity.Artifact, error) {
	url := step.URL
	if url == "" {
		url = scenario.BaseURL
	}

	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	if err := browser.Navigate(ctx, url); err != nil {
		return nil, err
	}
	a.logger.Debug("Navigated", "url", url, "current_url", browser.CurrentURL())
	return nil, nil
}

type ClickAction struct {
	timeout time.Duration
	logger  output.LoggerPort
}

func NewClickAction(timeout time.Duration, logger output.LoggerPort) *ClickAction {
	return &ClickAction{timeout: timeout, logger: logger}
}

func (a *ClickAction) Name() entity.ActionType { return entity.ActionClick }
func (a *ClickAction) Description() string     { return "Clicks the first element matching the target" }

func (a *ClickAction) Execute(ctx context.Context, browser output.BrowserPort, scenario entity.Scenario, step entity.Step) ([]entity.Artifact, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	if err := browser.Click(ctx, step.Target); err != nil {
		return nil, err
	}
	a.logger.Debug("Clicked", "target", step.Target.String())
	return nil, nil
}

type ExpectVisibleAction struct {
	timeout time.Duration
	logger  output.LoggerPort
}

func NewExpectVisibleAction(timeout time.Duration, logger output.LoggerPort) *ExpectVisibleAction {
	return &ExpectVisibleAction{timeout: timeout, logger: logger}
}

func (a *ExpectVisibleAction) Name() entity.ActionType { return entity.ActionExpectVisible }
func (a *ExpectVisibleAction) Description() string {
	return "Requires the target to become visible within the assertion timeout"
}

func (a *ExpectVisibleAction) Execute(ctx context.Context, browser output.BrowserPort, scenario entity.Scenario, step entity.Step) ([]entity.Artifact, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	if err := browser.WaitVisible(ctx, step.Target); err != nil {
		return nil, err
	}
	a.logger.Debug("Visible", "target", step.Target.String())
	return nil, nil
}

type ScreenshotAction struct {
	capturer *service.Capturer
	timeout  time.Duration
}

func NewScreenshotAction(capturer *service.Capturer, timeout time.Duration) *ScreenshotAction {
	return &ScreenshotAction{capturer: capturer, timeout: timeout}
}

func (a *ScreenshotAction) Name() entity.ActionType { return entity.ActionScreenshot }
func (a *ScreenshotAction) Description() string     { return "Saves a screenshot of the viewport" }

func (a *ScreenshotAction) Execute(ctx context.Context, browser output.BrowserPort, scenario entity.Scenario, step entity.Step) ([]entity.Artifact, error) {
	path := step.Path
	if path == "" {
		path = scenario.SuccessScreenshot
	}

	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	artifact, err := a.capturer.Screenshot(ctx, browser, path, entity.ArtifactScreenshot)
	if err != nil {
		return nil, err
	}
	return []entity.Artifact{artifact}, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
