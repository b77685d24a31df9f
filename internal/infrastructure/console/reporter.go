package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.ReporterPort = (*Reporter)(nil)

// Reporter печатает ход проверки в консоль.
type Reporter struct {
	out io.Writer
}

func NewReporter() *Reporter {
	return &Reporter{out: color.Output}
}

func NewReporterTo(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{out: w}
}

func (r *Reporter) RunStarted(ctx context.Context, runID string, scenario entity.Scenario, total int) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(r.out, "\n━━━ %s ━━━\n", scenario.Name)

	dim := color.New(color.Faint)
	dim.Fprintf(r.out, "   run %s, %d steps\n", runID, total)
}

func (r *Reporter) StepStarted(ctx context.Context, index, total int, step entity.Step, description string) {
	icon := actionIcon(step.Action)

	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(r.out, "\n%s [%d/%d] %s\n", icon, index, total, step.Name)

	summary := stepSummary(step)
	if summary == "" {
		summary = description
	}
	if summary != "" {
		dim := color.New(color.Faint)
		dim.Fprintf(r.out, "   %s\n", summary)
	}
}

func (r *Reporter) StepPassed(ctx context.Context, result entity.StepResult) {
	green := color.New(color.FgGreen)
	green.Fprintf(r.out, "✓ %s\n", formatDuration(result.Duration))
}

func (r *Reporter) StepFailed(ctx context.Context, result entity.StepResult) {
	red := color.New(color.FgRed)
	red.Fprint(r.out, "❌ Error: ")

	fmt.Fprintln(r.out, result.Err)
}

func (r *Reporter) ArtifactSaved(ctx context.Context, artifact entity.Artifact) {
	var label string
	switch artifact.Kind {
	case entity.ArtifactScreenshot:
		label = "Screenshot saved"
	case entity.ArtifactErrorScreenshot:
		label = "Error screenshot saved"
	case entity.ArtifactErrorSnapshot:
		label = "Page snapshot saved"
	default:
		label = string(artifact.Kind)
	}

	blue := color.New(color.FgBlue)
	blue.Fprintf(r.out, "📸 %s: %s\n", label, artifact.Path)
}

func (r *Reporter) RunFinished(ctx context.Context, report *entity.RunReport) {
	if report == nil {
		return
	}

	fmt.Fprintln(r.out)
	if report.Success() {
		green := color.New(color.FgGreen, color.Bold)
		green.Fprintf(r.out, "PASSED %s: %d/%d steps in %s\n",
			report.Scenario, passedSteps(report), len(report.Steps), formatDuration(report.Duration))
		return
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "FAILED %s: %d/%d steps in %s\n",
		report.Scenario, passedSteps(report), len(report.Steps), formatDuration(report.Duration))
	if report.Err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", report.Err)
	}
}

func actionIcon(action entity.ActionType) string {
	switch action {
	case entity.ActionNavigate:
		return "🌐"
	case entity.ActionClick:
		return "🖱️"
	case entity.ActionExpectVisible:
		return "👁️"
	case entity.ActionScreenshot:
		return "📸"
	default:
		return "🔧"
	}
}

func stepSummary(step entity.Step) string {
	switch step.Action {
	case entity.ActionNavigate:
		if step.URL != "" {
			return fmt.Sprintf("URL: %s", step.URL)
		}
	case entity.ActionClick, entity.ActionExpectVisible:
		return fmt.Sprintf("Target: %s", truncate(step.Target.String(), 80))
	case entity.ActionScreenshot:
		if step.Path != "" {
			return fmt.Sprintf("Path: %s", step.Path)
		}
	}
	return ""
}

func passedSteps(report *entity.RunReport) int {
	n := 0
	for _, s := range report.Steps {
		if s.Err == nil {
			n++
		}
	}
	return n
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
