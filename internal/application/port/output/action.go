package output

import (
	"context"

	"ui-verifier/internal/domain/entity"
)

// ActionPort executes one kind of scenario step against an open browser
// and returns the artifacts the step wrote, if any.
type ActionPort interface {
	Name() entity.ActionType
	Description() string
	Execute(ctx context.Context, browser BrowserPort, scenario entity.Scenario, step entity.Step) ([]entity.Artifact, error)
}

type ActionRegistry interface {
	Register(action ActionPort)
	Get(name entity.ActionType) (ActionPort, bool)
	All() []ActionPort
}
