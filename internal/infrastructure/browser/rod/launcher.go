package rod

import (
	"context"

	"ui-verifier/internal/application/port/output"
)

var _ output.BrowserLauncher = (*Launcher)(nil)

type Launcher struct {
	cfg BrowserConfig
}

func NewLauncher(cfg BrowserConfig) *Launcher {
	return &Launcher{cfg: cfg}
}

func (l *Launcher) Launch(ctx context.Context) (output.BrowserPort, error) {
	adapter, err := NewBrowserAdapter(ctx, l.cfg)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}
