package fixture

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	h, err := NewRouter(opts)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", Healthy, false},
		{"healthy", Healthy, false},
		{" Missing_Heading ", MissingHeading, false},
		{"hidden_heading", HiddenHeading, false},
		{"duplicate_labels", DuplicateLabels, false},
		{"broken", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouter_Page(t *testing.T) {
	srv := serve(t, DefaultOptions())

	resp, body := get(t, srv.URL+BasePath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Equal(t, "healthy", resp.Header.Get("X-Fixture-Variant"))

	assert.Contains(t, body, `<span class="card-title">Matrix</span>`)
	assert.Contains(t, body, `data-view="gaussian">Gaussian Elimination</button>`)
	assert.Contains(t, body, "<h2>Gaussian Elimination</h2>")
	assert.Equal(t, 1, strings.Count(body, `<span class="card-title">Matrix</span>`))
	assert.Regexp(t, `var delay =\s*150\s*;`, body)
}

func TestRouter_Variants(t *testing.T) {
	t.Run("missing heading", func(t *testing.T) {
		_, body := get(t, serve(t, Options{Variant: MissingHeading}).URL+BasePath)
		assert.NotContains(t, body, "<h2>Gaussian Elimination</h2>")
		assert.Contains(t, body, "under construction")
	})

	t.Run("hidden heading", func(t *testing.T) {
		_, body := get(t, serve(t, Options{Variant: HiddenHeading}).URL+BasePath)
		assert.Contains(t, body, `<h2 style="display: none">Gaussian Elimination</h2>`)
	})

	t.Run("duplicate labels", func(t *testing.T) {
		_, body := get(t, serve(t, Options{Variant: DuplicateLabels}).URL+BasePath)
		assert.Equal(t, 2, strings.Count(body, `<span class="card-title">Matrix</span>`))
		first := strings.Index(body, `data-module="matrix"`)
		second := strings.Index(body, `data-module="legacy"`)
		assert.Less(t, first, second, "working module card comes first")
	})
}

func TestRouter_Redirects(t *testing.T) {
	srv := serve(t, DefaultOptions())

	resp, _ := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, BasePath, resp.Header.Get("Location"))

	resp, _ = get(t, srv.URL+"/Math-Biotech-Project")
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, BasePath, resp.Header.Get("Location"))
}

func TestRouter_HealthAndNotFound(t *testing.T) {
	srv := serve(t, Options{RequestLog: true})

	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)

	resp, _ = get(t, srv.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
