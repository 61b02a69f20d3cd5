package engine

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/osse101/TextRealm_Go/internal/catalog"
	"github.com/osse101/TextRealm_Go/internal/clock"
	"github.com/osse101/TextRealm_Go/internal/concurrency"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/economy"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/gate"
	"github.com/osse101/TextRealm_Go/internal/loot"
	"github.com/osse101/TextRealm_Go/internal/random"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// Service is the game engine. Every mutating call is one unit of work on
// one player: it either commits completely or leaves no trace.
type Service interface {
	// Players
	CreatePlayer(ctx context.Context, id, name string, class domain.Class) (*domain.PlayerState, error)
	GetPlayerState(ctx context.Context, id string) (*domain.PlayerState, error)

	// Combat
	PerformHunt(ctx context.Context, id string, zoneID int) (*domain.HuntResult, error)
	PerformArenaFight(ctx context.Context, id string) (*domain.ArenaResult, error)
	PerformTowerFloor(ctx context.Context, id string) (*domain.TowerResult, error)

	// Loot
	PullGacha(ctx context.Context, id string, tier domain.GachaTier) (*domain.GachaResult, error)
	PullGacha10x(ctx context.Context, id string) (*domain.GachaResult, error)
	SpinWheel(ctx context.Context, id string) (*domain.WheelResult, error)

	// Expeditions
	StartExpedition(ctx context.Context, id, typeID string) (*domain.ExpeditionStatus, error)
	CollectExpedition(ctx context.Context, id string) (*domain.ExpeditionCollectResult, error)
	GetExpedition(ctx context.Context, id string) (*domain.ExpeditionStatus, error)

	// Inventory
	ListInventory(ctx context.Context, id string) ([]domain.InventoryItem, error)
	EquipItem(ctx context.Context, id string, itemID int64) (*domain.InventoryItem, error)
	UnequipItem(ctx context.Context, id string, itemID int64) (*domain.InventoryItem, error)
	SellItem(ctx context.Context, id string, itemID int64) (*domain.SellResult, error)
	UpgradeRarity(ctx context.Context, id string, tier domain.Rarity) (*domain.UpgradeResult, error)

	// Auction
	ListAuction(ctx context.Context, limit, offset int) ([]domain.Listing, error)
	ListMyListings(ctx context.Context, id string) ([]domain.Listing, error)
	CreateListing(ctx context.Context, id string, itemID int64, price int) (*domain.Listing, error)
	BuyListing(ctx context.Context, id string, listingID int64) (*domain.PurchaseResult, error)
	CancelListing(ctx context.Context, id string, listingID int64) (*domain.InventoryItem, error)

	// Daily
	ClaimDailyLogin(ctx context.Context, id string) (*domain.DailyLoginResult, error)
	GetDailyQuests(ctx context.Context, id string) ([]domain.Quest, error)
	ClaimQuest(ctx context.Context, id string, questID int64) (*domain.QuestClaimResult, error)

	// Rankings
	GetLeaderboard(ctx context.Context, by domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error)
	GetPlayerRank(ctx context.Context, id string, by domain.LeaderboardKind) (int, error)
}

// Options carries the optional collaborators of the engine. Zero values
// fall back to UTC days, a private event bus, a no-op tracer and the
// default leaderboard cache.
type Options struct {
	Calendar        gate.Calendar
	Bus             event.Bus
	TracerProvider  trace.TracerProvider
	LeaderboardSize int
	LeaderboardTTL  time.Duration
}

type service struct {
	store   repository.Store
	catalog *catalog.Catalog
	clock   clock.Clock
	rng     random.Factory

	ledger *economy.Ledger
	gates  *gate.Gates
	roller *loot.Roller

	locks  *concurrency.LockManager
	bus    event.Bus
	tracer trace.Tracer

	leaderboards *expirable.LRU[string, []domain.LeaderboardEntry]
}

// NewService creates the game engine over store and cat.
func NewService(store repository.Store, cat *catalog.Catalog, clk clock.Clock, rng random.Factory, opts Options) Service {
	if clk == nil {
		clk = clock.Real{}
	}
	if rng == nil {
		rng = random.NewFactory()
	}
	if opts.Bus == nil {
		opts.Bus = event.NewMemoryBus()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = noop.NewTracerProvider()
	}
	if opts.LeaderboardSize <= 0 {
		opts.LeaderboardSize = DefaultLeaderboardCacheSize
	}
	if opts.LeaderboardTTL <= 0 {
		opts.LeaderboardTTL = DefaultLeaderboardCacheTTL
	}

	return &service{
		store:        store,
		catalog:      cat,
		clock:        clk,
		rng:          rng,
		ledger:       economy.NewLedger(cat.Rules.EnergyRegenPeriod()),
		gates:        gate.New(opts.Calendar, cat.Rules),
		roller:       loot.NewRoller(cat),
		locks:        concurrency.NewLockManager(),
		bus:          opts.Bus,
		tracer:       opts.TracerProvider.Tracer(TracerName),
		leaderboards: expirable.NewLRU[string, []domain.LeaderboardEntry](opts.LeaderboardSize, nil, opts.LeaderboardTTL),
	}
}
