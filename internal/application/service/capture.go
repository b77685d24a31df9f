package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/domain/entity"

	"github.com/disintegration/imaging"
)

// Capturer takes screenshots and page snapshots and persists them as artifacts.
type Capturer struct {
	store    output.ArtifactStore
	renderer output.SnapshotRenderer
	logger   output.LoggerPort
}

func NewCapturer(store output.ArtifactStore, renderer output.SnapshotRenderer, logger output.LoggerPort) *Capturer {
	return &Capturer{store: store, renderer: renderer, logger: logger}
}

func (c *Capturer) Screenshot(ctx context.Context, browser output.BrowserPort, path string, kind entity.ArtifactKind) (entity.Artifact, error) {
	format, err := ScreenshotFormat(path)
	if err != nil {
		return entity.Artifact{}, err
	}

	shot, err := browser.Screenshot(ctx, format)
	if err != nil {
		return entity.Artifact{}, err
	}

	if err := c.store.Persist(ctx, path, bytes.NewReader(shot.Data)); err != nil {
		return entity.Artifact{}, fmt.Errorf("save screenshot: %w", err)
	}

	c.logger.Info("Screenshot saved", "path", path, "kind", kind, "width", shot.Width, "height", shot.Height, "bytes", len(shot.Data))
	return entity.Artifact{Kind: kind, Path: path, Bytes: len(shot.Data)}, nil
}

func (c *Capturer) Snapshot(ctx context.Context, browser output.BrowserPort, path string) (entity.Artifact, error) {
	snap, err := browser.Snapshot(ctx)
	if err != nil {
		return entity.Artifact{}, err
	}

	doc := c.renderer.Render(snap)
	if err := c.store.Persist(ctx, path, strings.NewReader(doc)); err != nil {
		return entity.Artifact{}, fmt.Errorf("save snapshot: %w", err)
	}

	c.logger.Info("Page snapshot saved", "path", path, "url", snap.URL, "bytes", len(doc))
	return entity.Artifact{Kind: entity.ArtifactErrorSnapshot, Path: path, Bytes: len(doc)}, nil
}

// CheckScreenshotPaths проверяет расширения всех путей скриншотов до запуска браузера.
func CheckScreenshotPaths(scenario entity.Scenario) error {
	paths := []string{scenario.SuccessScreenshot, scenario.ErrorScreenshot}
	for _, step := range scenario.Steps {
		if step.Action == entity.ActionScreenshot {
			paths = append(paths, step.Path)
		}
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := ScreenshotFormat(path); err != nil {
			return err
		}
	}
	return nil
}

// ScreenshotFormat maps the file extension of path to a browser capture format.
func ScreenshotFormat(path string) (string, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "", fmt.Errorf("%w: screenshot %q: %w", entity.ErrInvalidScenario, path, err)
	}
	switch format {
	case imaging.PNG:
		return "png", nil
	case imaging.JPEG:
		return "jpeg", nil
	default:
		return "", fmt.Errorf("%w: screenshot %q: only png and jpeg are supported, got %s",
			entity.ErrInvalidScenario, path, strings.TrimPrefix(filepath.Ext(path), "."))
	}
}
