// Package commands implements the CLI subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/Arpan-gl/mirfa-test-app/internal/app"
)

// closeContainer releases container resources, logging rather than
// returning any shutdown error.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
