// Package fake provides a scriptable in-memory browser for tests of code
// that depends on output.BrowserPort.
package fake

import (
	"context"
	"fmt"
	"sync"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/domain/entity"
)

var (
	_ output.BrowserPort     = (*Browser)(nil)
	_ output.BrowserLauncher = (*Launcher)(nil)
)

const (
	MethodNavigate    = "navigate"
	MethodClick       = "click"
	MethodWaitVisible = "wait_visible"
	MethodScreenshot  = "screenshot"
	MethodSnapshot    = "snapshot"
)

type Call struct {
	Method string
	Arg    string
}

type failure struct {
	err  error
	hang bool
}

type Browser struct {
	mu         sync.Mutex
	calls      []Call
	failures   map[string]failure
	closeCount int
	url        string

	ScreenshotData []byte
	SnapshotHTML   string
}

func NewBrowser() *Browser {
	return &Browser{
		failures:       make(map[string]failure),
		ScreenshotData: []byte("\x89PNG fake"),
		SnapshotHTML:   "<html><body><h1>fake</h1></body></html>",
	}
}

// FailOn makes method fail with err. arg narrows it to one URL or locator string; "" matches any.
func (b *Browser) FailOn(method, arg string, err error) *Browser {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+"|"+arg] = failure{err: err}
	return b
}

// HangOn makes method block until its context is done, like a browser wait that never succeeds.
func (b *Browser) HangOn(method, arg string) *Browser {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+"|"+arg] = failure{hang: true}
	return b
}

func (b *Browser) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

func (b *Browser) CloseCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closeCount
}

func (b *Browser) do(ctx context.Context, method, arg string) error {
	b.mu.Lock()
	if b.closeCount > 0 {
		b.mu.Unlock()
		return entity.ErrBrowserClosed
	}
	b.calls = append(b.calls, Call{Method: method, Arg: arg})
	f, ok := b.failures[method+"|"+arg]
	if !ok {
		f, ok = b.failures[method+"|"]
	}
	b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if f.hang {
		<-ctx.Done()
		return fmt.Errorf("%s %s: %w", method, arg, ctx.Err())
	}
	return f.err
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	if err := b.do(ctx, MethodNavigate, url); err != nil {
		return err
	}
	b.mu.Lock()
	b.url = url
	b.mu.Unlock()
	return nil
}

func (b *Browser) Click(ctx context.Context, target entity.Locator) error {
	return b.do(ctx, MethodClick, target.String())
}

func (b *Browser) WaitVisible(ctx context.Context, target entity.Locator) error {
	return b.do(ctx, MethodWaitVisible, target.String())
}

func (b *Browser) Screenshot(ctx context.Context, format string) (*entity.Screenshot, error) {
	if err := b.do(ctx, MethodScreenshot, format); err != nil {
		return nil, err
	}
	return &entity.Screenshot{Data: b.ScreenshotData, Format: format, Width: 1280, Height: 720}, nil
}

func (b *Browser) Snapshot(ctx context.Context) (*entity.PageSnapshot, error) {
	if err := b.do(ctx, MethodSnapshot, ""); err != nil {
		return nil, err
	}
	return &entity.PageSnapshot{URL: b.CurrentURL(), Title: "fake", HTML: b.SnapshotHTML}, nil
}

func (b *Browser) CurrentURL() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.url
}

func (b *Browser) IsReady() bool {
	return b.CloseCount() == 0
}

// Close counts every call so tests can assert a single release.
func (b *Browser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeCount++
}

type Launcher struct {
	Browser *Browser
	Err     error

	mu       sync.Mutex
	launches int
}

func NewLauncher(b *Browser) *Launcher {
	return &Launcher{Browser: b}
}

func (l *Launcher) Launch(ctx context.Context) (output.BrowserPort, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.launches++
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Browser, nil
}

func (l *Launcher) Launches() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launches
}
