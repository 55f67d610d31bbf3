package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/moviecatalog/internal/app"
	"github.com/allisson/moviecatalog/internal/config"
)

const shutdownTimeout = 15 * time.Second

// RunServer starts the API server, and the metrics server when metrics are enabled.
// It blocks until SIGINT/SIGTERM or until one of the servers fails, then shuts
// both down gracefully.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	type runnable interface {
		Start(ctx context.Context) error
		Shutdown(ctx context.Context) error
	}

	servers := map[string]runnable{"api": server}
	if cfg.MetricsEnabled {
		metricsServer, err := container.MetricsServer()
		if err != nil {
			return fmt.Errorf("failed to initialize metrics server: %w", err)
		}
		servers["metrics"] = metricsServer
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	for name, s := range servers {
		g.Go(func() error {
			if err := s.Start(gctx); err != nil {
				return fmt.Errorf("%s server error: %w", name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var shutdownErrors []error
		for name, s := range servers {
			if err := s.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("%s server shutdown: %w", name, err))
			}
		}
		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
