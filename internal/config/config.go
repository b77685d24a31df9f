package config

import (
	"fmt"
	"path/filepath"
	"time"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/application/service"
	"ui-verifier/internal/domain/entity"
	"ui-verifier/internal/infrastructure/browser/rod"
)

const (
	DefaultBaseURL   = "http://localhost:3000/Math-Biotech-Project/"
	DefaultOutputDir = "/home/jules/verification"

	SuccessScreenshotName = "gaussian_view.png"
	ErrorScreenshotName   = "error.png"
	ErrorSnapshotName     = "error.html"

	defaultAssertTimeout = 5 * time.Second
	defaultRunTimeout    = 2 * time.Minute
	defaultLogDir        = "log"
)

type Config struct {
	AppEnv string

	Browser       rod.BrowserConfig
	ActionTimeout time.Duration
	AssertTimeout time.Duration
	RunTimeout    time.Duration

	LogDir    string
	OutputDir string

	Scenario entity.Scenario
}

// Load читает VERIFY_* переменные. Без VERIFY_SCENARIO_FILE используется встроенный сценарий Gaussian.
func Load(env output.ConfigPort) (Config, error) {
	browser := rod.DefaultConfig()
	browser.Headless = env.GetBool("VERIFY_HEADLESS", browser.Headless)
	browser.NoSandbox = env.GetBool("VERIFY_NO_SANDBOX", browser.NoSandbox)
	browser.Bin = env.Get("VERIFY_BROWSER_BIN")
	browser.SlowMotion = env.GetDuration("VERIFY_SLOW_MOTION", browser.SlowMotion)
	browser.Timeout = env.GetDuration("VERIFY_ACTION_TIMEOUT", browser.Timeout)
	browser.ViewportWidth = env.GetInt("VERIFY_VIEWPORT_WIDTH", browser.ViewportWidth)
	browser.ViewportHeight = env.GetInt("VERIFY_VIEWPORT_HEIGHT", browser.ViewportHeight)
	browser.MaxScreenshotWidth = env.GetInt("VERIFY_SCREENSHOT_MAX_WIDTH", 0)
	// отладка: окно DevTools, трассировка CDP, отключённый CORS для локальных стендов
	browser.DevTools = env.GetBool("VERIFY_DEVTOOLS", browser.DevTools)
	browser.Trace = env.GetBool("VERIFY_TRACE", browser.Trace)
	browser.DisableSecurityFeatures = env.GetBool("VERIFY_DISABLE_WEB_SECURITY", browser.DisableSecurityFeatures)

	cfg := Config{
		AppEnv:        env.GetWithDefault("APP_ENV", "dev"),
		Browser:       browser,
		ActionTimeout: browser.Timeout,
		AssertTimeout: env.GetDuration("VERIFY_ASSERT_TIMEOUT", defaultAssertTimeout),
		RunTimeout:    env.GetDuration("VERIFY_RUN_TIMEOUT", defaultRunTimeout),
		LogDir:        env.GetWithDefault("VERIFY_LOG_DIR", defaultLogDir),
		OutputDir:     env.GetWithDefault("VERIFY_OUTPUT_DIR", DefaultOutputDir),
	}

	if cfg.ActionTimeout <= 0 || cfg.AssertTimeout <= 0 || cfg.RunTimeout <= 0 {
		return Config{}, fmt.Errorf("timeouts must be positive: action=%s assert=%s run=%s",
			cfg.ActionTimeout, cfg.AssertTimeout, cfg.RunTimeout)
	}

	baseURL := env.GetWithDefault("VERIFY_BASE_URL", DefaultBaseURL)

	if path := env.Get("VERIFY_SCENARIO_FILE"); path != "" {
		sc, err := LoadScenarioFile(path, cfg.OutputDir)
		if err != nil {
			return Config{}, err
		}
		if sc.BaseURL == "" {
			sc.BaseURL = baseURL
		}
		cfg.Scenario = sc
	} else {
		cfg.Scenario = DefaultScenario(baseURL, cfg.OutputDir)
	}

	if !env.GetBool("VERIFY_ERROR_SNAPSHOT", true) {
		cfg.Scenario.ErrorSnapshot = ""
	}

	if err := cfg.Scenario.Validate(); err != nil {
		return Config{}, err
	}
	if err := service.CheckScreenshotPaths(cfg.Scenario); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultScenario: главная → модуль Matrix → Gaussian Elimination → заголовок виден → скриншот.
func DefaultScenario(baseURL, outputDir string) entity.Scenario {
	return entity.Scenario{
		Name:    "gaussian",
		BaseURL: baseURL,
		Steps: []entity.Step{
			{
				Name:   "Navigating to home page...",
				Action: entity.ActionNavigate,
			},
			{
				Name:   "Clicking Matrix module...",
				Action: entity.ActionClick,
				Target: entity.Text("Matrix", true),
			},
			{
				Name:   "Clicking Gaussian Elimination...",
				Action: entity.ActionClick,
				Target: entity.Role("button", "Gaussian Elimination"),
			},
			{
				Name:   "Verifying page content...",
				Action: entity.ActionExpectVisible,
				Target: entity.Role("heading", "Gaussian Elimination"),
			},
		},
		SuccessScreenshot: filepath.Join(outputDir, SuccessScreenshotName),
		ErrorScreenshot:   filepath.Join(outputDir, ErrorScreenshotName),
		ErrorSnapshot:     filepath.Join(outputDir, ErrorSnapshotName),
	}
}
