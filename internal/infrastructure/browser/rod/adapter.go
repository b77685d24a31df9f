package rod

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"ui-verifier/internal/application/port/output"
	"ui-verifier/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var _ output.BrowserPort = (*BrowserAdapter)(nil)

const (
	defaultSlowMotion = 0
	defaultTimeout    = 30 * time.Second

	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
	defaultJPEGQuality    = 90

	idleAfterNavigate = 2 * time.Second
	idleAfterClick    = 1 * time.Second
	classifyTimeout   = 2 * time.Second
)

type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	timeout  time.Duration
	cfg      BrowserConfig

	mu     sync.Mutex
	closed bool
}

type BrowserConfig struct {
	Headless   bool
	SlowMotion time.Duration
	// Timeout applies when the caller's context carries no deadline.
	Timeout   time.Duration
	NoSandbox bool
	DevTools  bool
	Trace     bool
	// Bin is a path to a local Chrome. Empty lets rod download one.
	Bin string

	DisableSecurityFeatures bool

	ViewportWidth      int
	ViewportHeight     int
	MaxScreenshotWidth int
	JPEGQuality        int
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:       true,
		SlowMotion:     defaultSlowMotion,
		Timeout:        defaultTimeout,
		NoSandbox:      false,
		DevTools:       false,
		ViewportWidth:  defaultViewportWidth,
		ViewportHeight: defaultViewportHeight,
		JPEGQuality:    defaultJPEGQuality,
	}
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig) (*BrowserAdapter, error) {
	if ctx != nil && ctx.Err() != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", ctx.Err())
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.ViewportWidth <= 0 || cfg.ViewportHeight <= 0 {
		cfg.ViewportWidth, cfg.ViewportHeight = defaultViewportWidth, defaultViewportHeight
	}
	if cfg.JPEGQuality <= 0 || cfg.JPEGQuality > 100 {
		cfg.JPEGQuality = defaultJPEGQuality
	}

	l := launcher.New().
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}
	if cfg.DisableSecurityFeatures {
		l = l.Set("disable-web-security").
			Set("allow-running-insecure-content")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(controlURL).
		Trace(cfg.Trace).
		SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	adapter := &BrowserAdapter{
		browser:  browser,
		launcher: l,
		timeout:  cfg.Timeout,
		cfg:      cfg,
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	adapter.page = page

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             cfg.ViewportWidth,
		Height:            cfg.ViewportHeight,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to set viewport: %w", err)
	}

	return adapter, nil
}

func (b *BrowserAdapter) Navigate(ctx context.Context, rawURL string) error {
	if err := b.ready(); err != nil {
		return err
	}
	if err := validateURL(rawURL); err != nil {
		return err
	}

	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	page := b.page.Context(ctx)
	if err := page.Navigate(rawURL); err != nil {
		return fmt.Errorf("navigate to %s: %w", rawURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load of %s: %w", rawURL, err)
	}
	_ = page.WaitIdle(idleAfterNavigate)
	return nil
}

func (b *BrowserAdapter) Click(ctx context.Context, target entity.Locator) error {
	if err := b.ready(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	page := b.page.Context(ctx)
	el, err := b.waitVisible(page, target)
	if err != nil {
		return err
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %s: %w", target, err)
	}

	_ = page.WaitIdle(idleAfterClick)
	return nil
}

func (b *BrowserAdapter) WaitVisible(ctx context.Context, target entity.Locator) error {
	if err := b.ready(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	_, err := b.waitVisible(b.page.Context(ctx), target)
	return err
}

// waitVisible на каждой попытке заново разрешает локатор и проверяет видимость,
// так что заменённый приложением узел не держит ожидание до дедлайна.
func (b *BrowserAdapter) waitVisible(page *rod.Page, target entity.Locator) (*rod.Element, error) {
	el, err := page.ElementByJS(rod.Eval(findVisibleJS, target.By, target.Role, target.Value, target.Exact))
	if err == nil {
		return el, nil
	}
	if b.exists(page, target) {
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrNotVisible, target, err)
	}
	return nil, fmt.Errorf("%w: %s: %w", entity.ErrElementNotFound, target, err)
}

// exists checks once, outside the expired wait, whether anything matches the target at all.
func (b *BrowserAdapter) exists(page *rod.Page, target entity.Locator) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(page.GetContext()), classifyTimeout)
	defer cancel()

	res, err := page.Context(ctx).Eval(existsJS, target.By, target.Role, target.Value, target.Exact)
	if err != nil {
		return false
	}
	return res.Value.Bool()
}

// Screenshot снимает видимую область. format: "png" или "jpeg".
func (b *BrowserAdapter) Screenshot(ctx context.Context, format string) (*entity.Screenshot, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}

	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	req := &proto.PageCaptureScreenshot{Format: proto.PageCaptureScreenshotFormatPng}
	imgFormat := imaging.PNG
	if format == "jpeg" || format == "jpg" {
		req.Format = proto.PageCaptureScreenshotFormatJpeg
		req.Quality = gson.Int(b.cfg.JPEGQuality)
		imgFormat = imaging.JPEG
		format = "jpeg"
	} else {
		format = "png"
	}

	raw, err := b.page.Context(ctx).Screenshot(false, req)
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	maxWidth := b.cfg.MaxScreenshotWidth
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return &entity.Screenshot{
			Data:   raw,
			Format: format,
			Width:  img.Bounds().Dx(),
			Height: img.Bounds().Dy(),
		}, nil
	}

	img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imgFormat, imaging.JPEGQuality(b.cfg.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("%s encode failed: %w", format, err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: format,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (b *BrowserAdapter) Snapshot(ctx context.Context) (*entity.PageSnapshot, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}

	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	page := b.page.Context(ctx)
	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to get HTML: %w", err)
	}

	snapshot := &entity.PageSnapshot{HTML: html}
	if info, err := page.Info(); err == nil {
		snapshot.URL = info.URL
		snapshot.Title = info.Title
	}
	return snapshot, nil
}

func (b *BrowserAdapter) CurrentURL() string {
	if b.ready() != nil {
		return ""
	}
	info, err := b.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (b *BrowserAdapter) IsReady() bool {
	return b.ready() == nil
}

// Close безопасно вызывать несколько раз: процесс Chrome убивается один раз.
func (b *BrowserAdapter) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
}

func (b *BrowserAdapter) ready() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.page == nil {
		return entity.ErrBrowserClosed
	}
	return nil
}

func (b *BrowserAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: empty", entity.ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", entity.ErrInvalidURL, rawURL, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: %s: missing host", entity.ErrInvalidURL, rawURL)
		}
	case "file", "about":
	default:
		return fmt.Errorf("%w: %s: unsupported scheme %q", entity.ErrInvalidURL, rawURL, u.Scheme)
	}
	return nil
}
