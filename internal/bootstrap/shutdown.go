package bootstrap

import (
	"context"
	"log/slog"

	"github.com/greenpatch/sprout/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	CloseStore func()
}

// GracefulShutdown performs graceful shutdown of all application
// components: the HTTP server first so no new requests arrive, then the
// save store connection. Errors during shutdown are logged but do not
// stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info("Shutting down server")

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	if components.CloseStore != nil {
		components.CloseStore()
	}

	slog.Info("Server stopped")
}
