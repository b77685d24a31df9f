package di

import (
	"fmt"
	"io"

	"ui-verifier/internal/adapter/action"
	"ui-verifier/internal/application/port/input"
	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/application/service"
	"ui-verifier/internal/config"
	"ui-verifier/internal/infrastructure/artifact"
	"ui-verifier/internal/infrastructure/browser/rod"
	"ui-verifier/internal/infrastructure/browser/snapshot"
	"ui-verifier/internal/infrastructure/console"
	"ui-verifier/internal/infrastructure/logger"
	"ui-verifier/internal/usecase/verifier"

	"go.uber.org/zap/zapcore"
)

type Container struct {
	Logger   output.LoggerPort
	Actions  output.ActionRegistry
	Reporter output.ReporterPort
	Verifier input.Verifier
}

type Options struct {
	// Launcher overrides the rod launcher, e.g. with a fake in tests.
	Launcher output.BrowserLauncher
	// Logger overrides the file logger.
	Logger output.LoggerPort
	// Out receives console output; nil means colored stdout.
	Out      io.Writer
	LogLevel zapcore.Level
}

func NewContainer(cfg config.Config, opts Options) (*Container, error) {
	log := opts.Logger
	if log == nil {
		fileLog, err := logger.NewLoggerAdapter(cfg.LogDir, cfg.Scenario.Name, opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		log = fileLog
	}

	launcher := opts.Launcher
	if launcher == nil {
		launcher = rod.NewLauncher(cfg.Browser)
	}

	reporter := console.NewReporter()
	if opts.Out != nil {
		reporter = console.NewReporterTo(opts.Out)
	}

	capturer := service.NewCapturer(artifact.NewLocalStore(), snapshot.NewRenderer(nil), log)

	actions := service.NewActionRegistry()
	registerActions(actions, cfg, capturer, log)

	return &Container{
		Logger:   log,
		Actions:  actions,
		Reporter: reporter,
		Verifier: verifier.New(launcher, actions, capturer, reporter, log),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerActions(registry *service.ActionRegistryImpl, cfg config.Config, capturer *service.Capturer, log output.LoggerPort) {
	registry.Register(action.NewNavigateAction(cfg.ActionTimeout, log))
	registry.Register(action.NewClickAction(cfg.ActionTimeout, log))
	registry.Register(action.NewExpectVisibleAction(cfg.AssertTimeout, log))
	registry.Register(action.NewScreenshotAction(capturer, cfg.ActionTimeout))
}
