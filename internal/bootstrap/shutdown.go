package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/repository"
	"github.com/osse101/TextRealm_Go/internal/server"
	"github.com/osse101/TextRealm_Go/internal/sse"
	"github.com/osse101/TextRealm_Go/internal/telemetry"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Feed      *sse.Hub
	Server    *server.Server
	Telemetry *telemetry.Provider
	Store     repository.Store
}

// GracefulShutdown ends feed streams, then stops the HTTP server so in-flight
// actions finish, then flushes spans and closes the store. Errors are logged
// and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Feed != nil {
		c.Feed.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Telemetry != nil {
		if err := c.Telemetry.Shutdown(ctx); err != nil {
			slog.Error(LogMsgTracerShutdownFailed, "error", err)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
