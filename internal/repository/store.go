package repository

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// ErrTxClosed is returned when a transaction has already been committed or
// rolled back.
var ErrTxClosed = errors.New("transaction already closed")

// Store defines the persistence contract of the game engine. Reads on Store
// are unlocked snapshots; every mutation goes through a Tx.
type Store interface {
	BeginTx(ctx context.Context) (Tx, error)

	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
	ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	ListAuction(ctx context.Context, limit, offset int) ([]domain.Listing, error)
	ListListingsBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error)
	GetActiveExpedition(ctx context.Context, playerID string) (*domain.Expedition, error)
	Leaderboard(ctx context.Context, by domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error)
	PlayerRank(ctx context.Context, playerID string, by domain.LeaderboardKind) (int, error)

	Ping(ctx context.Context) error
	Close() error
}

// Tx is one unit of work. The player loaded with GetPlayerForUpdate stays
// locked against other writers until Commit or Rollback.
type Tx interface {
	// Players
	CreatePlayer(ctx context.Context, p *domain.Player) error
	GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, p *domain.Player) error
	AddGold(ctx context.Context, playerID string, amount int) error
	CountOpponents(ctx context.Context, excludeID string, minLevel, maxLevel int) (int, error)
	// FindOpponents pages through the players in the level range, ordered by id.
	FindOpponents(ctx context.Context, excludeID string, minLevel, maxLevel, limit, offset int) ([]domain.Player, error)

	// Inventory
	ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	AddItem(ctx context.Context, item *domain.InventoryItem) error
	SetEquipped(ctx context.Context, itemID int64, equipped bool) error
	DeleteItems(ctx context.Context, itemIDs ...int64) error

	// Auction
	CountListings(ctx context.Context, sellerID string) (int, error)
	CreateListing(ctx context.Context, l *domain.Listing) error
	// TakeListing deletes and returns a listing in one step. An empty
	// sellerID matches any seller. It returns nil when nothing matched.
	TakeListing(ctx context.Context, listingID int64, sellerID string) (*domain.Listing, error)

	// Expeditions
	GetActiveExpedition(ctx context.Context, playerID string) (*domain.Expedition, error)
	CreateExpedition(ctx context.Context, e *domain.Expedition) error
	MarkExpeditionCollected(ctx context.Context, id int64) error

	// Quests. CreateQuests fills in the ids of the given slice.
	ListQuests(ctx context.Context, playerID string, day time.Time) ([]domain.Quest, error)
	CreateQuests(ctx context.Context, quests []domain.Quest) error
	UpdateQuest(ctx context.Context, q domain.Quest) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
