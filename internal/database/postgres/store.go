// Package postgres implements the game store on PostgreSQL with pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/TextRealm_Go/internal/database"
	"github.com/osse101/TextRealm_Go/internal/database/postgres/migrations"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Migrate brings the schema up to date.
func (s *Store) Migrate(ctx context.Context) error {
	sqlDB := stdlib.OpenDBFromPool(s.db)
	defer sqlDB.Close()
	return database.Migrate(ctx, sqlDB, goose.DialectPostgres, migrations.FS)
}

// BeginTx starts a read-committed transaction. Player rows are locked with
// SELECT ... FOR UPDATE as they are loaded.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &pgTx{tx: tx}, nil
}

func (s *Store) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	return getPlayer(ctx, s.db, id, false)
}

func (s *Store) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	return listInventory(ctx, s.db, playerID)
}

func (s *Store) ListAuction(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	return listAuction(ctx, s.db, limit, offset)
}

func (s *Store) ListListingsBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error) {
	return listListingsBySeller(ctx, s.db, sellerID)
}

func (s *Store) GetActiveExpedition(ctx context.Context, playerID string) (*domain.Expedition, error) {
	return getActiveExpedition(ctx, s.db, playerID)
}

func (s *Store) Leaderboard(ctx context.Context, by domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error) {
	return leaderboard(ctx, s.db, by, limit)
}

func (s *Store) PlayerRank(ctx context.Context, playerID string, by domain.LeaderboardKind) (int, error) {
	return playerRank(ctx, s.db, playerID, by)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.db.Close()
	return nil
}

// pgTx implements repository.Tx on a pgx transaction.
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) CreatePlayer(ctx context.Context, p *domain.Player) error {
	return createPlayer(ctx, t.tx, p)
}

func (t *pgTx) GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, id, true)
}

func (t *pgTx) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	return updatePlayer(ctx, t.tx, p)
}

func (t *pgTx) AddGold(ctx context.Context, playerID string, amount int) error {
	return addGold(ctx, t.tx, playerID, amount)
}

func (t *pgTx) CountOpponents(ctx context.Context, excludeID string, minLevel, maxLevel int) (int, error) {
	return countOpponents(ctx, t.tx, excludeID, minLevel, maxLevel)
}

func (t *pgTx) FindOpponents(ctx context.Context, excludeID string, minLevel, maxLevel, limit, offset int) ([]domain.Player, error) {
	return findOpponents(ctx, t.tx, excludeID, minLevel, maxLevel, limit, offset)
}

func (t *pgTx) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	return listInventory(ctx, t.tx, playerID)
}

func (t *pgTx) AddItem(ctx context.Context, item *domain.InventoryItem) error {
	return addItem(ctx, t.tx, item)
}

func (t *pgTx) SetEquipped(ctx context.Context, itemID int64, equipped bool) error {
	return setEquipped(ctx, t.tx, itemID, equipped)
}

func (t *pgTx) DeleteItems(ctx context.Context, itemIDs ...int64) error {
	return deleteItems(ctx, t.tx, itemIDs)
}

func (t *pgTx) CountListings(ctx context.Context, sellerID string) (int, error) {
	return countListings(ctx, t.tx, sellerID)
}

func (t *pgTx) CreateListing(ctx context.Context, l *domain.Listing) error {
	return createListing(ctx, t.tx, l)
}

func (t *pgTx) TakeListing(ctx context.Context, listingID int64, sellerID string) (*domain.Listing, error) {
	return takeListing(ctx, t.tx, listingID, sellerID)
}

func (t *pgTx) GetActiveExpedition(ctx context.Context, playerID string) (*domain.Expedition, error) {
	return getActiveExpedition(ctx, t.tx, playerID)
}

func (t *pgTx) CreateExpedition(ctx context.Context, e *domain.Expedition) error {
	return createExpedition(ctx, t.tx, e)
}

func (t *pgTx) MarkExpeditionCollected(ctx context.Context, id int64) error {
	return markExpeditionCollected(ctx, t.tx, id)
}

func (t *pgTx) ListQuests(ctx context.Context, playerID string, day time.Time) ([]domain.Quest, error) {
	return listQuests(ctx, t.tx, playerID, day)
}

func (t *pgTx) CreateQuests(ctx context.Context, quests []domain.Quest) error {
	return createQuests(ctx, t.tx, quests)
}

func (t *pgTx) UpdateQuest(ctx context.Context, q domain.Quest) error {
	return updateQuest(ctx, t.tx, q)
}

func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
