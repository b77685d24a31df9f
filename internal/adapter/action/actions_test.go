package action

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ui-verifier/internal/application/service"
	"ui-verifier/internal/domain/entity"
	"ui-verifier/internal/infrastructure/artifact"
	"ui-verifier/internal/infrastructure/browser/fake"
	"ui-verifier/internal/infrastructure/browser/snapshot"
	"ui-verifier/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenario = entity.Scenario{
	Name:              "gaussian",
	BaseURL:           "http://localhost:3000/Math-Biotech-Project/",
	SuccessScreenshot: "gaussian_view.png",
}

func TestNavigateAction(t *testing.T) {
	log := logger.NewNop()
	ctx := context.Background()

	t.Run("base url", func(t *testing.T) {
		browser := fake.NewBrowser()
		a := NewNavigateAction(time.Second, log)

		artifacts, err := a.Execute(ctx, browser, scenario, entity.Step{Name: "open", Action: entity.ActionNavigate})
		require.NoError(t, err)
		assert.Empty(t, artifacts)
		assert.Equal(t, scenario.BaseURL, browser.CurrentURL())
	})

	t.Run("step url", func(t *testing.T) {
		browser := fake.NewBrowser()
		a := NewNavigateAction(time.Second, log)

		_, err := a.Execute(ctx, browser, scenario, entity.Step{Name: "open", Action: entity.ActionNavigate, URL: "http://localhost:3000/other"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/other", browser.CurrentURL())
	})

	t.Run("error passes through", func(t *testing.T) {
		cause := errors.New("navigation failed: net::ERR_CONNECTION_REFUSED")
		browser := fake.NewBrowser().FailOn(fake.MethodNavigate, "", cause)
		a := NewNavigateAction(time.Second, log)

		_, err := a.Execute(ctx, browser, scenario, entity.Step{Name: "open", Action: entity.ActionNavigate})
		assert.ErrorIs(t, err, cause)
	})
}

func TestClickAction(t *testing.T) {
	browser := fake.NewBrowser()
	a := NewClickAction(time.Second, logger.NewNop())
	step := entity.Step{Name: "click", Action: entity.ActionClick, Target: entity.Text("Matrix", true)}

	_, err := a.Execute(context.Background(), browser, scenario, step)
	require.NoError(t, err)
	assert.Equal(t, []fake.Call{{Method: fake.MethodClick, Arg: `text="Matrix"`}}, browser.Calls())
}

func TestExpectVisibleAction_Timeout(t *testing.T) {
	target := entity.Role("heading", "Gaussian Elimination")
	browser := fake.NewBrowser().HangOn(fake.MethodWaitVisible, target.String())
	a := NewExpectVisibleAction(50*time.Millisecond, logger.NewNop())

	start := time.Now()
	_, err := a.Execute(context.Background(), browser, scenario, entity.Step{Name: "check", Action: entity.ActionExpectVisible, Target: target})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestScreenshotAction(t *testing.T) {
	dir := t.TempDir()
	capturer := service.NewCapturer(artifact.NewLocalStore(), snapshot.NewRenderer(nil), logger.NewNop())
	a := NewScreenshotAction(capturer, time.Second)
	browser := fake.NewBrowser()

	sc := scenario
	sc.SuccessScreenshot = filepath.Join(dir, "gaussian_view.png")

	t.Run("default path", func(t *testing.T) {
		artifacts, err := a.Execute(context.Background(), browser, sc, entity.Step{Name: "shot", Action: entity.ActionScreenshot})
		require.NoError(t, err)
		require.Len(t, artifacts, 1)
		assert.Equal(t, entity.ArtifactScreenshot, artifacts[0].Kind)
		assert.Equal(t, sc.SuccessScreenshot, artifacts[0].Path)

		data, err := os.ReadFile(sc.SuccessScreenshot)
		require.NoError(t, err)
		assert.Equal(t, browser.ScreenshotData, data)
	})

	t.Run("step path as jpeg", func(t *testing.T) {
		path := filepath.Join(dir, "matrix.jpg")
		artifacts, err := a.Execute(context.Background(), browser, sc, entity.Step{Name: "shot", Action: entity.ActionScreenshot, Path: path})
		require.NoError(t, err)
		assert.Equal(t, path, artifacts[0].Path)

		calls := browser.Calls()
		assert.Equal(t, fake.Call{Method: fake.MethodScreenshot, Arg: "jpeg"}, calls[len(calls)-1])
	})
}

func TestActionNames(t *testing.T) {
	log := logger.NewNop()
	assert.Equal(t, entity.ActionNavigate, NewNavigateAction(0, log).Name())
	assert.Equal(t, entity.ActionClick, NewClickAction(0, log).Name())
	assert.Equal(t, entity.ActionExpectVisible, NewExpectVisibleAction(0, log).Name())
	assert.Equal(t, entity.ActionScreenshot, NewScreenshotAction(nil, 0).Name())
}
