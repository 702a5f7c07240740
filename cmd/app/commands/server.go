package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Arpan-gl/mirfa-test-app/internal/app"
	"github.com/Arpan-gl/mirfa-test-app/internal/config"
)

// RunServer boots the dependency container and runs the API and metrics
// listeners until a termination signal arrives or a listener fails. Shutdown
// is graceful and bounded by the configured timeout.
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

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	listenErr := make(chan error, 2)
	go func() {
		if err := server.Start(ctx); err != nil {
			listenErr <- fmt.Errorf("api server: %w", err)
		}
	}()
	if metricsServer != nil {
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				listenErr <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	stopAll := func() []error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("api server shutdown: %w", err))
		}
		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
			}
		}
		return errs
	}

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return errors.Join(stopAll()...)
	case err := <-listenErr:
		logger.Error("server error, initiating shutdown", slog.Any("error", err))
		return errors.Join(append([]error{err}, stopAll()...)...)
	}
}
