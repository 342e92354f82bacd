package bootstrap

import (
	"context"
	"log/slog"

	"github.com/br0k3x/osul-bot/internal/server"
)

// ShutdownComponents holds everything that needs graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  *Store
}

// GracefulShutdown stops accepting requests first, then releases the database pool.
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
