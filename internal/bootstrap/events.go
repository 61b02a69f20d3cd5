package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/metrics"
)

// loggedEvents are echoed at debug level for operators tailing the log.
var loggedEvents = []event.Type{
	event.PlayerCreated,
	event.PlayerLeveledUp,
	event.ListingSold,
	event.ListingCancelled,
	event.ExpeditionStarted,
}

// InitializeEventSystem creates the event bus and subscribes the metrics
// collector and the event logger.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range loggedEvents {
		bus.Subscribe(t, logEvent)
	}

	slog.Info(LogMsgEventSystemInitialized, "logged_types", len(loggedEvents))
	return bus
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgGameEvent,
		"type", evt.Type,
		logger.AttrKeyPlayerID, evt.PlayerID,
		"version", evt.Version)
	return nil
}
