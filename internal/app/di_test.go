package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/allisson/moviecatalog/internal/auth/service"
	"github.com/allisson/moviecatalog/internal/cache"
	"github.com/allisson/moviecatalog/internal/config"
	"github.com/allisson/moviecatalog/internal/metrics"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		LogLevel:                "error",
		ServerHost:              "localhost",
		ServerPort:              8080,
		DBDriver:                "sqlite3",
		DBConnectionString:      "file::memory:?_foreign_keys=on",
		DBMaxOpenConnections:    1,
		DBMaxIdleConnections:    1,
		AuthSecret:              "secret",
		AuthPasswordSalt:        "salt",
		AuthPasswordIterations:  100000,
		AuthAccessTokenTTL:      30 * time.Minute,
		AuthRefreshTokenTTL:     130 * 24 * time.Hour,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 10,
		RateLimitBurst:          20,
		MetricsNamespace:        "moviecatalog",
		MetricsPort:             8081,
		CacheTTL:                time.Minute,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := sqliteConfig()
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainerLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			container := NewContainer(&config.Config{LogLevel: level})
			assert.Nil(t, container.logger)

			logger := container.Logger()
			require.NotNil(t, logger)
			assert.Same(t, logger, container.Logger())
		})
	}
}

func TestContainerInitializationErrors(t *testing.T) {
	container := NewContainer(&config.Config{DBDriver: "invalid_driver"})

	_, err := container.DB()
	require.Error(t, err)

	_, err = container.DB()
	require.Error(t, err, "a failed init is remembered")

	_, err = container.HTTPServer()
	assert.Error(t, err)
}

func TestContainerUsesPostgres(t *testing.T) {
	tests := []struct {
		driver   string
		postgres bool
		wantErr  bool
	}{
		{driver: "postgres", postgres: true},
		{driver: "mysql"},
		{driver: "sqlite3"},
		{driver: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			container := NewContainer(&config.Config{DBDriver: tt.driver})
			postgres, err := container.usesPostgres()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.postgres, postgres)
		})
	}
}

func TestContainerHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	container := NewContainer(sqliteConfig())
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	server, err := container.HTTPServer()
	require.NoError(t, err)

	again, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, again)

	for path, status := range map[string]int{
		"/health":    http.StatusOK,
		"/ready":     http.StatusOK,
		"/directors": http.StatusUnauthorized,
		"/metrics":   http.StatusNotFound,
	} {
		w := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
	}

	businessMetrics, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

	catalogCache, err := container.Cache()
	require.NoError(t, err)
	assert.IsType(t, &cache.NoOpCache{}, catalogCache)
}

func TestContainerMetricsEnabled(t *testing.T) {
	cfg := sqliteConfig()
	cfg.MetricsEnabled = true
	container := NewContainer(cfg)
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	_, err = container.MovieUseCase()
	require.NoError(t, err)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContainerRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := sqliteConfig()
	cfg.CacheEnabled = true
	cfg.RedisURL = "redis://" + mr.Addr() + "/0"
	container := NewContainer(cfg)
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	catalogCache, err := container.Cache()
	require.NoError(t, err)
	assert.IsType(t, &cache.RedisCache{}, catalogCache)
}

func TestContainerRedisCache_Unreachable(t *testing.T) {
	cfg := sqliteConfig()
	cfg.CacheEnabled = true
	cfg.RedisURL = "redis://127.0.0.1:1/0"
	container := NewContainer(cfg)

	_, err := container.DirectorUseCase()
	assert.Error(t, err)
}

func TestContainerTokenCodec(t *testing.T) {
	t.Run("configured-secret", func(t *testing.T) {
		container := NewContainer(sqliteConfig())
		codec, err := container.TokenCodec()
		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("empty-secret", func(t *testing.T) {
		cfg := sqliteConfig()
		cfg.AuthSecret = ""
		container := NewContainer(cfg)
		defer func() {
			assert.NoError(t, container.Shutdown(context.Background()))
		}()

		_, err := container.TokenCodec()
		require.ErrorIs(t, err, authService.ErrEmptySecret)

		_, err = container.AuthUseCase()
		assert.ErrorIs(t, err, authService.ErrEmptySecret)

		_, err = container.HTTPServer()
		assert.ErrorIs(t, err, authService.ErrEmptySecret)
	})
}

func TestContainerShutdown(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "info"})
	assert.NoError(t, container.Shutdown(context.Background()))
}
