package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devsecops-demo/api/internal/config"
	"github.com/devsecops-demo/api/internal/platform/logger"
)

// testConfig returns a valid configuration with defaults suitable for tests.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			IdleTimeoutSeconds:     5,
			ShutdownTimeoutSeconds: 5,
		},
		App: config.AppConfig{Name: config.DefaultAppName},
		RateLimit: config.RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: config.DefaultRateLimitRPS,
			Burst:             config.DefaultRateLimitBurst,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	return newApplication(cfg, logger.New(io.Discard, slog.LevelDebug))
}

// newTestServer starts an httptest server backed by the application router.
func newTestServer(t *testing.T, app *application) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

func postSuma(t *testing.T, srv *httptest.Server, body, contentType string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/suma", reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
