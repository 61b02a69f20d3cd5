package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/event"
)

// FeedTypes are the game events mirrored onto the feed.
var FeedTypes = []event.Type{
	event.PlayerCreated,
	event.PlayerLeveledUp,
	event.CombatFinished,
	event.GachaPulled,
	event.ItemSold,
	event.ItemUpgraded,
	event.ListingCreated,
	event.ListingSold,
	event.ListingCancelled,
	event.WheelSpun,
	event.DailyClaimed,
	event.ExpeditionStarted,
	event.ExpeditionFinished,
	event.QuestClaimed,
}

// Subscribe bridges bus to hub for every feed type.
func Subscribe(bus event.Bus, hub *Hub) {
	handler := func(_ context.Context, evt event.Event) error {
		hub.Publish(evt)
		return nil
	}
	for _, t := range FeedTypes {
		bus.Subscribe(t, handler)
	}
	slog.Info(LogMsgSubscribed, "types", len(FeedTypes))
}
