package metrics

import (
	"context"

	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.PlayerLeveledUp,
		event.CombatFinished,
		event.GachaPulled,
		event.ItemSold,
		event.ItemUpgraded,
		event.ListingCreated,
		event.ListingSold,
		event.WheelSpun,
		event.DailyClaimed,
		event.ExpeditionFinished,
		event.QuestClaimed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsHandled.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PlayerLeveledUp:
		var p event.LevelUpPayloadV1
		if p, err = event.DecodePayload[event.LevelUpPayloadV1](evt.Payload); err == nil {
			LevelUps.Add(float64(len(p.Levels)))
		}

	case event.CombatFinished:
		var p event.CombatPayloadV1
		if p, err = event.DecodePayload[event.CombatPayloadV1](evt.Payload); err == nil {
			result := "lost"
			if p.Won {
				result = "won"
			}
			Combats.WithLabelValues(p.Mode, result).Inc()
		}

	case event.GachaPulled:
		var p event.GachaPayloadV1
		if p, err = event.DecodePayload[event.GachaPayloadV1](evt.Payload); err == nil {
			for _, r := range p.Rarities {
				GachaItems.WithLabelValues(string(p.Tier), string(r)).Inc()
			}
		}

	case event.ItemSold:
		var p event.ItemSoldPayloadV1
		if p, err = event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(string(p.Rarity)).Inc()
		}

	case event.ItemUpgraded:
		var p event.ItemUpgradedPayloadV1
		if p, err = event.DecodePayload[event.ItemUpgradedPayloadV1](evt.Payload); err == nil {
			ItemsUpgraded.WithLabelValues(string(p.From), string(p.To)).Inc()
		}

	case event.ListingCreated:
		AuctionListings.Inc()

	case event.ListingSold:
		var p event.ListingPayloadV1
		if p, err = event.DecodePayload[event.ListingPayloadV1](evt.Payload); err == nil {
			AuctionSales.WithLabelValues(string(p.Rarity)).Inc()
			AuctionFeesBurned.Add(float64(p.Price - p.SellerProceeds))
		}

	case event.WheelSpun, event.DailyClaimed, event.ExpeditionFinished, event.QuestClaimed:
		var p event.RewardPayloadV1
		if p, err = event.DecodePayload[event.RewardPayloadV1](evt.Payload); err == nil {
			GoldGranted.WithLabelValues(p.Source).Add(float64(p.Rewards.Gold))
			CrystalsGranted.WithLabelValues(p.Source).Add(float64(p.Rewards.Crystals))
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
