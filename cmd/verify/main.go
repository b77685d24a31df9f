package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ui-verifier/internal/config"
	"ui-verifier/internal/di"
	"ui-verifier/internal/infrastructure/env"

	"go.uber.org/zap/zapcore"
)

func main() {
	envService := env.NewEnvService()

	cfg, err := config.Load(envService)
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	level := zapcore.InfoLevel
	if envService.GetBool("VERIFY_DEBUG", false) {
		level = zapcore.DebugLevel
	}

	container, err := di.NewContainer(cfg, di.Options{LogLevel: level})
	if err != nil {
		log.Fatalf("Ошибка инициализации: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)

	container.Logger.Info("Verification started",
		"app_env", cfg.AppEnv,
		"env_files", envService.Files(),
		"scenario", cfg.Scenario.Name,
		"base_url", cfg.Scenario.BaseURL,
		"output_dir", cfg.OutputDir,
	)

	report, err := container.Verifier.Run(ctx, cfg.Scenario)
	cancel()
	stop()

	if err != nil {
		container.Logger.Error("Verification failed", "error", err)
		if report == nil {
			// до запуска браузера отчёт не печатается
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		container.Close()
		os.Exit(1)
	}

	container.Logger.Info("Verification passed", "run_id", report.RunID, "duration", report.Duration)
	container.Close()
}
