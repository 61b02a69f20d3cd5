package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a committed game fact. Events are published only after
// the transaction that produced them commits.
type Event struct {
	Version  string `json:"version"`
	Type     Type   `json:"type"`
	PlayerID string `json:"player_id"`
	Payload  any    `json:"payload"`
}

// Game event types
const (
	PlayerCreated      Type = "player.created"
	PlayerLeveledUp    Type = "player.leveled_up"
	CombatFinished     Type = "combat.finished"
	GachaPulled        Type = "gacha.pulled"
	ItemSold           Type = "item.sold"
	ItemUpgraded       Type = "item.upgraded"
	ListingCreated     Type = "auction.listing_created"
	ListingSold        Type = "auction.listing_sold"
	ListingCancelled   Type = "auction.listing_cancelled"
	WheelSpun          Type = "wheel.spun"
	DailyClaimed       Type = "daily.claimed"
	ExpeditionStarted  Type = "expedition.started"
	ExpeditionFinished Type = "expedition.collected"
	QuestClaimed       Type = "quest.claimed"
)

// PlayerCreatedPayloadV1 is published when a player picks a class.
type PlayerCreatedPayloadV1 struct {
	Name  string       `json:"name"`
	Class domain.Class `json:"class"`
}

// ExpeditionStartedPayloadV1 is published when a player sets out.
type ExpeditionStartedPayloadV1 struct {
	ExpeditionID int64     `json:"expedition_id"`
	TypeID       string    `json:"type_id"`
	StartedAt    time.Time `json:"started_at"`
	EndsAt       time.Time `json:"ends_at"`
}

// LevelUpPayloadV1 is published once per action that crossed levels.
type LevelUpPayloadV1 struct {
	Levels []int `json:"levels"`
}

// CombatPayloadV1 describes a finished hunt, arena or tower fight.
type CombatPayloadV1 struct {
	Mode   string `json:"mode"`
	Won    bool   `json:"won"`
	Rounds int    `json:"rounds"`
	Boss   bool   `json:"boss"`
}

// GachaPayloadV1 lists the rarities of one paid pull or batch.
type GachaPayloadV1 struct {
	Tier       domain.GachaTier `json:"tier"`
	Rarities   []domain.Rarity  `json:"rarities"`
	Guaranteed bool             `json:"guaranteed"`
}

// ItemSoldPayloadV1 is published when an item is sold to the shop.
type ItemSoldPayloadV1 struct {
	Rarity domain.Rarity `json:"rarity"`
	Price  int           `json:"price"`
}

// ItemUpgradedPayloadV1 is published when three items merge into one.
type ItemUpgradedPayloadV1 struct {
	From domain.Rarity `json:"from"`
	To   domain.Rarity `json:"to"`
	Cost int           `json:"cost"`
}

// ListingPayloadV1 describes an auction book change.
type ListingPayloadV1 struct {
	ListingID      int64         `json:"listing_id"`
	SellerID       string        `json:"seller_id"`
	Rarity         domain.Rarity `json:"rarity"`
	Price          int           `json:"price"`
	SellerProceeds int           `json:"seller_proceeds,omitempty"`
}

// RewardPayloadV1 carries the rewards of wheel, daily, expedition and quest
// claims.
type RewardPayloadV1 struct {
	Source  string         `json:"source"`
	Rewards domain.Rewards `json:"rewards"`
}

// New builds an event with the current schema version.
func New(t Type, playerID string, payload any) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		PlayerID: playerID,
		Payload:  payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event's type synchronously and joins
// their errors.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
