package output

import (
	"context"

	"ui-verifier/internal/domain/entity"
)

// ReporterPort receives run progress. total counts the planned steps,
// including the implicit success screenshot.
type ReporterPort interface {
	RunStarted(ctx context.Context, runID string, scenario entity.Scenario, total int)
	StepStarted(ctx context.Context, index, total int, step entity.Step, description string)
	StepPassed(ctx context.Context, result entity.StepResult)
	StepFailed(ctx context.Context, result entity.StepResult)
	ArtifactSaved(ctx context.Context, artifact entity.Artifact)
	RunFinished(ctx context.Context, report *entity.RunReport)
}
