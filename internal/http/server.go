// Package http provides the API server, its router and the metrics server.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/moviecatalog/internal/auth/http"
	"github.com/allisson/moviecatalog/internal/config"
	directorHTTP "github.com/allisson/moviecatalog/internal/director/http"
	genreHTTP "github.com/allisson/moviecatalog/internal/genre/http"
	"github.com/allisson/moviecatalog/internal/metrics"
	movieHTTP "github.com/allisson/moviecatalog/internal/movie/http"
	userHTTP "github.com/allisson/moviecatalog/internal/user/http"
)

// Server is the catalog API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers every route with its access gate.
//
// The context bounds the lifetime of the rate limiter cleanup goroutines.
// When metricsProvider is nil the HTTP metrics middleware is not installed.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	authHandler *authHTTP.AuthHandler,
	userHandler *userHTTP.UserHandler,
	directorHandler *directorHTTP.DirectorHandler,
	genreHandler *genreHTTP.GenreHandler,
	movieHandler *movieHTTP.MovieHandler,
	tokenDecoder authHTTP.TokenDecoder,
	userGetter authHTTP.UserGetter,
	metricsProvider *metrics.Provider,
	metricsNamespace string,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	authGroup := router.Group("/auth")
	if cfg.RateLimitAuthEnabled {
		authGroup.Use(authHTTP.TokenRateLimitMiddleware(
			ctx,
			cfg.RateLimitAuthRequestsPerSec,
			cfg.RateLimitAuthBurst,
			s.logger,
		))
	}
	authGroup.POST("", authHandler.LoginHandler)
	authGroup.PUT("", authHandler.RefreshHandler)

	router.POST(
		"/users",
		authHTTP.RegistrationMiddleware(tokenDecoder, s.logger),
		userHandler.CreateHandler,
	)

	authenticated := router.Group("")
	authenticated.Use(authHTTP.AuthenticationMiddleware(tokenDecoder, s.logger))
	if cfg.RateLimitEnabled {
		authenticated.Use(authHTTP.RateLimitMiddleware(
			ctx,
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		))
	}

	adminOnly := authHTTP.AdminOnlyMiddleware(s.logger)
	selfOrAdmin := authHTTP.SelfOrAdminMiddleware(userGetter, s.logger)

	users := authenticated.Group("/users")
	{
		users.GET("", adminOnly, userHandler.ListHandler)
		users.GET("/:id", selfOrAdmin, userHandler.GetHandler)
		users.PUT("/:id", selfOrAdmin, userHandler.UpdateHandler)
		users.DELETE("/:id", selfOrAdmin, userHandler.DeleteHandler)
	}

	registerCatalogRoutes(authenticated.Group("/directors"), adminOnly, directorHandler)
	registerCatalogRoutes(authenticated.Group("/genres"), adminOnly, genreHandler)
	registerCatalogRoutes(authenticated.Group("/movies"), adminOnly, movieHandler)

	s.router = router
}

type catalogHandler interface {
	ListHandler(c *gin.Context)
	GetHandler(c *gin.Context)
	CreateHandler(c *gin.Context)
	UpdateHandler(c *gin.Context)
	DeleteHandler(c *gin.Context)
}

// registerCatalogRoutes mounts the admin-managed CRUD routes of a catalog resource.
// Reading a single entry only requires authentication.
func registerCatalogRoutes(group *gin.RouterGroup, adminOnly gin.HandlerFunc, h catalogHandler) {
	group.GET("", adminOnly, h.ListHandler)
	group.POST("", adminOnly, h.CreateHandler)
	group.GET("/:id", h.GetHandler)
	group.PUT("/:id", adminOnly, h.UpdateHandler)
	group.DELETE("/:id", adminOnly, h.DeleteHandler)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// GetHandler returns the configured router.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
