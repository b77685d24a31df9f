package output

import (
	"context"

	"ui-verifier/internal/domain/entity"
)

type BrowserPort interface {
	Navigate(ctx context.Context, url string) error
	Click(ctx context.Context, target entity.Locator) error
	WaitVisible(ctx context.Context, target entity.Locator) error

	Screenshot(ctx context.Context, format string) (*entity.Screenshot, error)
	Snapshot(ctx context.Context) (*entity.PageSnapshot, error)

	CurrentURL() string
	IsReady() bool
	Close()
}

// BrowserLauncher starts a fresh browser for every run.
type BrowserLauncher interface {
	Launch(ctx context.Context) (BrowserPort, error)
}
