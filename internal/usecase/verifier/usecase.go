package verifier

import (
	"context"
	"fmt"
	"time"

	"ui-verifier/internal/application/port/input"
	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/application/service"
	"ui-verifier/internal/domain/entity"

	"github.com/google/uuid"
)

var _ input.Verifier = (*UseCase)(nil)

const (
	launchStep         = "launch browser"
	implicitScreenshot = "Taking screenshot..."

	// captureTimeout bounds failure evidence collection, which runs even when
	// the run context is already cancelled.
	captureTimeout = 15 * time.Second
)

type UseCase struct {
	launcher output.BrowserLauncher
	actions  output.ActionRegistry
	capturer *service.Capturer
	reporter output.ReporterPort
	logger   output.LoggerPort
	newID    func() string
}

func New(
	launcher output.BrowserLauncher,
	actions output.ActionRegistry,
	capturer *service.Capturer,
	reporter output.ReporterPort,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		launcher: launcher,
		actions:  actions,
		capturer: capturer,
		reporter: reporter,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Run executes the scenario steps in order against a freshly launched browser.
// The browser is closed exactly once on every path. The first failing step
// stops the run; error evidence is captured and a *entity.StepError returned.
func (uc *UseCase) Run(ctx context.Context, scenario entity.Scenario) (*entity.RunReport, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	if err := service.CheckScreenshotPaths(scenario); err != nil {
		return nil, err
	}

	steps := plan(scenario)
	for _, step := range steps {
		if _, ok := uc.actions.Get(step.Action); !ok {
			return nil, fmt.Errorf("%w: %s", entity.ErrUnknownAction, step.Action)
		}
	}

	report := &entity.RunReport{
		RunID:     uc.newID(),
		Scenario:  scenario.Name,
		StartedAt: time.Now(),
	}
	log := uc.logger.WithFields(map[string]any{
		"run_id":   report.RunID,
		"scenario": scenario.Name,
	})

	uc.reporter.RunStarted(ctx, report.RunID, scenario, len(steps))
	log.Info("Run started", "base_url", scenario.BaseURL, "steps", len(steps))

	err := uc.run(ctx, log, scenario, steps, report)

	report.Duration = time.Since(report.StartedAt)
	if err != nil {
		report.Status = entity.RunStatusFailed
		report.Err = err
		log.Error("Run failed", "error", err, "duration", report.Duration)
	} else {
		report.Status = entity.RunStatusPassed
		log.Info("Run passed", "duration", report.Duration, "artifacts", len(report.Artifacts))
	}

	uc.reporter.RunFinished(ctx, report)
	return report, err
}

func (uc *UseCase) run(ctx context.Context, log output.LoggerPort, scenario entity.Scenario, steps []entity.Step, report *entity.RunReport) error {
	browser, err := uc.launcher.Launch(ctx)
	if err != nil {
		return &entity.StepError{Step: launchStep, Err: err}
	}
	defer func() {
		browser.Close()
		log.Debug("Browser closed")
	}()

	for i, step := range steps {
		if err := uc.runStep(ctx, log, browser, scenario, step, i+1, len(steps), report); err != nil {
			uc.captureFailure(ctx, log, browser, scenario, report)
			return err
		}
	}
	return nil
}

func (uc *UseCase) runStep(
	ctx context.Context,
	log output.LoggerPort,
	browser output.BrowserPort,
	scenario entity.Scenario,
	step entity.Step,
	index, total int,
	report *entity.RunReport,
) error {
	action, _ := uc.actions.Get(step.Action)

	uc.reporter.StepStarted(ctx, index, total, step, action.Description())
	log.Info("Step started", "step", index, "name", step.Name, "action", step.Action)

	start := time.Now()
	artifacts, err := action.Execute(ctx, browser, scenario, step)
	result := entity.StepResult{
		Index:    index,
		Name:     step.Name,
		Action:   step.Action,
		Duration: time.Since(start),
		Err:      err,
	}
	report.Steps = append(report.Steps, result)

	if err != nil {
		uc.reporter.StepFailed(ctx, result)
		log.Error("Step failed", "step", index, "name", step.Name, "error", err, "duration", result.Duration)
		return &entity.StepError{Index: index, Step: step.Name, Err: err}
	}

	for _, a := range artifacts {
		report.Artifacts = append(report.Artifacts, a)
		uc.reporter.ArtifactSaved(ctx, a)
	}
	uc.reporter.StepPassed(ctx, result)
	log.Info("Step passed", "step", index, "name", step.Name, "duration", result.Duration)
	return nil
}

// captureFailure never returns an error: evidence collection must not mask the step failure.
func (uc *UseCase) captureFailure(ctx context.Context, log output.LoggerPort, browser output.BrowserPort, scenario entity.Scenario, report *entity.RunReport) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), captureTimeout)
	defer cancel()

	if scenario.ErrorScreenshot != "" {
		a, err := uc.capturer.Screenshot(ctx, browser, scenario.ErrorScreenshot, entity.ArtifactErrorScreenshot)
		if err != nil {
			log.Warn("Error screenshot failed", "path", scenario.ErrorScreenshot, "error", err)
		} else {
			report.Artifacts = append(report.Artifacts, a)
			uc.reporter.ArtifactSaved(ctx, a)
		}
	}

	if scenario.ErrorSnapshot != "" {
		a, err := uc.capturer.Snapshot(ctx, browser, scenario.ErrorSnapshot)
		if err != nil {
			log.Warn("Page snapshot failed", "path", scenario.ErrorSnapshot, "error", err)
		} else {
			report.Artifacts = append(report.Artifacts, a)
			uc.reporter.ArtifactSaved(ctx, a)
		}
	}
}

// plan appends the success screenshot when the scenario does not take one itself.
func plan(scenario entity.Scenario) []entity.Step {
	steps := make([]entity.Step, 0, len(scenario.Steps)+1)
	steps = append(steps, scenario.Steps...)
	if !scenario.HasScreenshotStep() && scenario.SuccessScreenshot != "" {
		steps = append(steps, entity.Step{Name: implicitScreenshot, Action: entity.ActionScreenshot})
	}
	return steps
}
