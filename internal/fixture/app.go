// Package fixture serves a small stand-in for the Math Biotech Project web app,
// used for local verification runs and integration tests.
package fixture

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

const BasePath = "/Math-Biotech-Project/"

type Variant string

const (
	Healthy         Variant = "healthy"
	MissingHeading  Variant = "missing_heading"
	HiddenHeading   Variant = "hidden_heading"
	DuplicateLabels Variant = "duplicate_labels"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return Healthy, nil
	case Healthy, MissingHeading, HiddenHeading, DuplicateLabels:
		return v, nil
	default:
		return "", fmt.Errorf("unknown fixture variant %q", s)
	}
}

type Options struct {
	Variant Variant
	// RenderDelayMS delays every client-side view switch.
	RenderDelayMS int
	// RequestLog enables JSON access logs via httplog.
	RequestLog bool
}

func DefaultOptions() Options {
	return Options{
		Variant:       Healthy,
		RenderDelayMS: 150,
	}
}

// NewRouter builds the app. The page is rendered once; every request gets the same bytes.
func NewRouter(opts Options) (http.Handler, error) {
	if opts.Variant == "" {
		opts.Variant = Healthy
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Title:           "Math Biotech Project",
		DuplicateLabels: opts.Variant == DuplicateLabels,
		MissingHeading:  opts.Variant == MissingHeading,
		HiddenHeading:   opts.Variant == HiddenHeading,
		RenderDelayMS:   opts.RenderDelayMS,
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	page := buf.Bytes()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if opts.RequestLog {
		r.Use(httplog.RequestLogger(httplog.NewLogger("fixture", httplog.Options{
			JSON:    true,
			Concise: true,
		})))
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, BasePath, http.StatusFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get(BasePath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Fixture-Variant", string(opts.Variant))
		_, _ = w.Write(page)
	})
	r.Get(strings.TrimSuffix(BasePath, "/"), func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, BasePath, http.StatusMovedPermanently)
	})

	return r, nil
}
