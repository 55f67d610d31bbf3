// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/moviecatalog/internal/cache"
	"github.com/allisson/moviecatalog/internal/config"
	"github.com/allisson/moviecatalog/internal/database"
	"github.com/allisson/moviecatalog/internal/http"
	"github.com/allisson/moviecatalog/internal/metrics"

	authHTTP "github.com/allisson/moviecatalog/internal/auth/http"
	authService "github.com/allisson/moviecatalog/internal/auth/service"
	authUseCase "github.com/allisson/moviecatalog/internal/auth/usecase"
	directorHTTP "github.com/allisson/moviecatalog/internal/director/http"
	directorUseCase "github.com/allisson/moviecatalog/internal/director/usecase"
	genreHTTP "github.com/allisson/moviecatalog/internal/genre/http"
	genreUseCase "github.com/allisson/moviecatalog/internal/genre/usecase"
	movieHTTP "github.com/allisson/moviecatalog/internal/movie/http"
	movieUseCase "github.com/allisson/moviecatalog/internal/movie/usecase"
	userHTTP "github.com/allisson/moviecatalog/internal/user/http"
	userUseCase "github.com/allisson/moviecatalog/internal/user/usecase"
)

const cachePrefix = "moviecatalog"

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// ctx bounds background work owned by the container (rate limiter cleanup).
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	redisClient     *redis.Client
	cache           cache.Cache

	// Auth
	passwordHasher *authService.PasswordHasher
	tokenCodec     *authService.TokenCodec
	authUseCase    authUseCase.AuthUseCase
	authHandler    *authHTTP.AuthHandler

	// Users
	userRepository userUseCase.UserRepository
	userUseCase    userUseCase.UseCase
	userHandler    *userHTTP.UserHandler

	// Catalog
	directorRepository directorUseCase.DirectorRepository
	directorUseCase    directorUseCase.UseCase
	directorHandler    *directorHTTP.DirectorHandler
	genreRepository    genreUseCase.GenreRepository
	genreUseCase       genreUseCase.UseCase
	genreHandler       *genreHTTP.GenreHandler
	movieRepository    movieUseCase.MovieRepository
	movieUseCase       movieUseCase.UseCase
	movieHandler       *movieHTTP.MovieHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                     sync.Mutex
	loggerInit             sync.Once
	dbInit                 sync.Once
	txManagerInit          sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	cacheInit              sync.Once
	passwordHasherInit     sync.Once
	tokenCodecInit         sync.Once
	authUseCaseInit        sync.Once
	authHandlerInit        sync.Once
	userRepositoryInit     sync.Once
	userUseCaseInit        sync.Once
	userHandlerInit        sync.Once
	directorRepositoryInit sync.Once
	directorUseCaseInit    sync.Once
	directorHandlerInit    sync.Once
	genreRepositoryInit    sync.Once
	genreUseCaseInit       sync.Once
	genreHandlerInit       sync.Once
	movieRepositoryInit    sync.Once
	movieUseCaseInit       sync.Once
	movieHandlerInit       sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once
	initErrors             map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// A no-op recorder is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Cache returns the catalog cache: Redis when enabled, a no-op cache otherwise.
func (c *Container) Cache() (cache.Cache, error) {
	var err error
	c.cacheInit.Do(func() {
		c.cache, err = c.initCache()
		if err != nil {
			c.initErrors["cache"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cache"]; exists {
		return nil, storedErr
	}
	return c.cache, nil
}

// HTTPServer returns the API server with its router fully configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("redis close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initCache connects to Redis when caching is enabled.
func (c *Container) initCache() (cache.Cache, error) {
	if !c.config.CacheEnabled {
		return cache.NewNoOpCache(), nil
	}

	client, err := cache.NewRedisClient(c.ctx, c.config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client for cache: %w", err)
	}
	c.redisClient = client

	c.Logger().Info("catalog cache enabled", slog.Duration("ttl", c.config.CacheTTL))

	return cache.NewRedisCache(client, cachePrefix, c.config.CacheTTL), nil
}

// initHTTPServer creates the API server and wires every handler into its router.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	authHandler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for http server: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}

	directorHandler, err := c.DirectorHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get director handler for http server: %w", err)
	}

	genreHandler, err := c.GenreHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get genre handler for http server: %w", err)
	}

	movieHandler, err := c.MovieHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get movie handler for http server: %w", err)
	}

	users, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(
		c.ctx,
		c.config,
		authHandler,
		userHandler,
		directorHandler,
		genreHandler,
		movieHandler,
		codec,
		users,
		metricsProvider,
		c.config.MetricsNamespace,
	)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}

// usesPostgres selects the repository dialect for the configured driver.
// MySQL and SQLite share the "?" placeholder repositories.
func (c *Container) usesPostgres() (bool, error) {
	switch c.config.DBDriver {
	case "postgres":
		return true, nil
	case "mysql", "sqlite3":
		return false, nil
	default:
		return false, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}
