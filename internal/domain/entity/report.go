package entity

import "time"

type RunStatus string

const (
	RunStatusPassed RunStatus = "passed"
	RunStatusFailed RunStatus = "failed"
)

type StepResult struct {
	Index    int
	Name     string
	Action   ActionType
	Duration time.Duration
	Err      error
}

type ArtifactKind string

const (
	ArtifactScreenshot      ArtifactKind = "screenshot"
	ArtifactErrorScreenshot ArtifactKind = "error_screenshot"
	ArtifactErrorSnapshot   ArtifactKind = "error_snapshot"
)

type Artifact struct {
	Kind  ArtifactKind
	Path  string
	Bytes int
}

type RunReport struct {
	RunID     string
	Scenario  string
	Status    RunStatus
	Steps     []StepResult
	Artifacts []Artifact
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

func (r *RunReport) Success() bool {
	return r.Status == RunStatusPassed
}

func (r *RunReport) Artifact(kind ArtifactKind) (Artifact, bool) {
	for _, a := range r.Artifacts {
		if a.Kind == kind {
			return a, true
		}
	}
	return Artifact{}, false
}
