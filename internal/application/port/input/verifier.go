package input

import (
	"context"

	"ui-verifier/internal/domain/entity"
)

type Verifier interface {
	Run(ctx context.Context, scenario entity.Scenario) (*entity.RunReport, error)
}
