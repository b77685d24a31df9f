package config

import (
	"fmt"
	"os"
	"path/filepath"

	"ui-verifier/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

type scenarioFile struct {
	Name              string     `yaml:"name"`
	BaseURL           string     `yaml:"base_url"`
	Steps             []stepFile `yaml:"steps"`
	SuccessScreenshot string     `yaml:"success_screenshot"`
	ErrorScreenshot   string     `yaml:"error_screenshot"`
	ErrorSnapshot     *string    `yaml:"error_snapshot"`
}

type stepFile struct {
	Name   string       `yaml:"name"`
	Action string       `yaml:"action"`
	URL    string       `yaml:"url"`
	Path   string       `yaml:"path"`
	Target *locatorFile `yaml:"target"`
}

type locatorFile struct {
	By    string `yaml:"by"`
	Role  string `yaml:"role"`
	Value string `yaml:"value"`
	Exact bool   `yaml:"exact"`
}

// LoadScenarioFile reads a YAML scenario. Relative artifact paths are resolved
// under outputDir; omitted artifact paths fall back to the default file names.
func LoadScenarioFile(path, outputDir string) (entity.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Scenario{}, fmt.Errorf("read scenario file: %w", err)
	}
	return ParseScenario(data, outputDir)
}

func ParseScenario(data []byte, outputDir string) (entity.Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return entity.Scenario{}, fmt.Errorf("%w: %w", entity.ErrInvalidScenario, err)
	}

	sc := entity.Scenario{
		Name:              f.Name,
		BaseURL:           f.BaseURL,
		SuccessScreenshot: resolve(outputDir, f.SuccessScreenshot, SuccessScreenshotName),
		ErrorScreenshot:   resolve(outputDir, f.ErrorScreenshot, ErrorScreenshotName),
		ErrorSnapshot:     resolve(outputDir, "", ErrorSnapshotName),
	}
	if f.ErrorSnapshot != nil {
		// явная пустая строка отключает HTML-дамп
		sc.ErrorSnapshot = resolve(outputDir, *f.ErrorSnapshot, "")
	}

	for _, s := range f.Steps {
		step := entity.Step{
			Name:   s.Name,
			Action: entity.ActionType(s.Action),
			URL:    s.URL,
		}
		if s.Path != "" {
			step.Path = resolve(outputDir, s.Path, "")
		}
		if s.Target != nil {
			step.Target = entity.Locator{
				By:    entity.LocatorStrategy(s.Target.By),
				Role:  s.Target.Role,
				Value: s.Target.Value,
				Exact: s.Target.Exact,
			}
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

func resolve(dir, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
