package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databonnd/site/internal/companies"
	"github.com/databonnd/site/internal/rendering"
	"github.com/databonnd/site/internal/server/ratelimit"
	"github.com/databonnd/site/internal/viewport"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{
		Site:      rendering.DefaultSite,
		Companies: companies.Default(),
		Seed:      42,
		RateLimit: &ratelimit.Config{Enabled: false},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

func get(t *testing.T, s *Server, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestNew_InvalidPort(t *testing.T) {
	_, err := New(Config{Port: 70000, RateLimit: &ratelimit.Config{}})
	require.Error(t, err)
}

func TestHandleLanding(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, viewport.HintHeader, rec.Header().Get("Accept-CH"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	doc := document(t, rec)
	assert.Equal(t, "Databonnd Corp.", doc.Find("head title").Text())
	mode, _ := doc.Find("#background").Attr("data-mode")
	assert.Equal(t, "desktop", mode)
	href, _ := doc.Find(".cta a").Attr("href")
	assert.Equal(t, rendering.CompaniesPath, href)
}

func TestHandleLanding_ViewportHint(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/", map[string]string{viewport.HintHeader: "767"})

	doc := document(t, rec)
	mode, _ := doc.Find("#background").Attr("data-mode")
	assert.Equal(t, "mobile", mode)
	assert.Equal(t, 36, doc.Find("#background path").Length())
}

func TestHandleLanding_UnknownPathIsNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCompanies(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, rendering.CompaniesPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := document(t, rec)
	assert.Equal(t, "Our Companies", doc.Find("h1").Text())
	assert.Equal(t, 3, doc.Find(".card").Length())
	assert.Equal(t, 1, doc.Find(".card img.scale-125").Length())
	back, _ := doc.Find(".back-link").Attr("href")
	assert.Equal(t, rendering.HomePath, back)
}

func TestHandleBackground(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		target string
		mode   string
		paths  int
	}{
		{"default desktop", "/background.svg", "desktop", 20},
		{"explicit mobile", "/background.svg?mode=mobile", "mobile", 36},
		{"seeded desktop", "/background.svg?mode=desktop&seed=7", "desktop", 20},
		{"mobile path", "/background-mobile.svg", "mobile", 36},
		{"desktop path ignores hint", "/background-desktop.svg?vw=400", "desktop", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))

			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, "<?xml"))
			assert.Contains(t, body, `data-mode="`+tt.mode+`"`)
			assert.Equal(t, tt.paths, strings.Count(body, "<path "))
		})
	}
}

func TestHandleBackground_SameSeedSameSVG(t *testing.T) {
	s := newTestServer(t)
	a := get(t, s, "/background.svg?seed=9", nil).Body.String()
	b := get(t, s, "/background.svg?seed=9", nil).Body.String()
	assert.Equal(t, a, b)
}

func TestHandleBackground_BadQuery(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/background.svg?mode=tablet", "/background.svg?seed=abc"} {
		rec := get(t, s, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	}
}

func TestHandleImage(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/images/kaj-logo.png", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = get(t, s, "/images/missing.png", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestHandleStatic(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, rendering.ScriptPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")
	assert.Contains(t, rec.Body.String(), "/ws/viewport")

	rec = get(t, s, "/static/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 0, body["sessions"])
}

func TestRateLimit(t *testing.T) {
	s, err := New(Config{
		Companies: companies.Default(),
		RateLimit: &ratelimit.Config{
			Enabled:       true,
			DefaultLimit:  2,
			DefaultWindow: time.Minute,
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	for i := 0; i < 2; i++ {
		rec := get(t, s, "/", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := get(t, s, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate_limit_exceeded", body["error"])
}

func TestExtractClientID(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "203.0.113.5:5050"
	assert.Equal(t, "203.0.113.5", s.extractClientID(req))

	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", s.extractClientID(req))
}
