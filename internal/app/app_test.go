package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/frc-scores/internal/config"
	"github.com/riskibarqy/frc-scores/internal/infrastructure/blob"
	"github.com/riskibarqy/frc-scores/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:           config.EnvDev,
		ServiceName:      "frc-scores-api-test",
		HTTPAddr:         ":0",
		CurrentSeason:    2024,
		CacheEnabled:     true,
		CacheTTL:         time.Minute,
		FanoutMaxWorkers: 2,
		DemoTeamMin:      9970,
		DemoTeamMax:      9999,
		BlobBackend:      config.BlobBackendMemory,
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	t.Parallel()

	server, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""
	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestOpenBlobStore(t *testing.T) {
	t.Parallel()

	t.Run("memory", func(t *testing.T) {
		store, cleanup, err := openBlobStore(context.Background(), testConfig(), logging.NewNop())
		require.NoError(t, err)
		defer cleanup()
		assert.IsType(t, &blob.MemoryStore{}, store)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := testConfig()
		cfg.BlobBackend = "redis"
		_, _, err := openBlobStore(context.Background(), cfg, logging.NewNop())
		require.Error(t, err)
	})
}

func TestNewHTTPServer_ExposesMetricsWhenEnabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.MetricsEnabled = true
	server, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "frc_scores_http_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNewHTTPServer_NoMetricsRouteWhenDisabled(t *testing.T) {
	t.Parallel()

	server, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
