package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mathops/internal/api/middleware"
	"github.com/GriffinCanCode/mathops/internal/infrastructure/config"
	"github.com/GriffinCanCode/mathops/internal/infrastructure/logging"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Logging.Development = true
	cfg.RateLimit.Enabled = false
	cfg.Data.Dir = t.TempDir()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Server.ShutdownTimeout = 1
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	srv, err := newServer(cfg, logging.NewNop())
	require.NoError(t, err)
	return srv
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestRouting(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	t.Run("Health carries request ID", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Unknown route", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/cube/3", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
	})

	t.Run("Wrong method", func(t *testing.T) {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/power", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		serve(srv, httptest.NewRequest(http.MethodGet, "/square/4", nil))

		w := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mathops_operation_calls_total")
		assert.Contains(t, w.Body.String(), `route="/square/:number"`)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/stats", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		w := serve(srv, req)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRegistersProviders(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Data.Dir, "scores.csv"),
		[]byte("name,score\nann,90\nbob,70\n"), 0o644))

	srv := newTestServer(t, cfg)

	_, ok := srv.Registry().Get("math")
	assert.True(t, ok)
	_, ok = srv.Registry().Get("data")
	assert.True(t, ok)

	req := httptest.NewRequest(http.MethodPost, "/services/execute",
		strings.NewReader(`{"tool_id": "data.summary", "params": {"path": "scores.csv"}}`))
	req.Header.Set("Content-Type", "application/json")

	w := serve(srv, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"row_count":2`)
}

func TestRateLimitFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 1

	srv := newTestServer(t, cfg)

	first := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	second := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
