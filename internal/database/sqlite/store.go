// Package sqlite implements the game store on an embedded SQLite file with
// sqlx and the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/osse101/TextRealm_Go/internal/database"
	"github.com/osse101/TextRealm_Go/internal/database/sqlite/migrations"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

const (
	driverName = "sqlite"
	// sqlx picks its bindvar style by driver name
	sqlxDriverName = "sqlite3"

	// Every write transaction starts with BEGIN IMMEDIATE and a single
	// connection serializes writers, so the player read at the start of a
	// unit of work cannot change underneath it.
	dsnParams = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_txlock=immediate"
)

// Store implements repository.Store for SQLite
type Store struct {
	db *sqlx.DB
}

var _ repository.Store = (*Store)(nil)

// Open opens (creating if needed) the database file at path and applies
// embedded migrations. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if path != ":memory:" {
		path = filepath.Clean(path)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	sqlDB, err := otelsql.Open(driverName, path+dsnParams,
		otelsql.WithAttributes(semconv.DBSystemSqlite))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToPingDatabase, err)
	}
	if err := database.Migrate(ctx, sqlDB, goose.DialectSQLite3, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return &Store{db: sqlx.NewDb(sqlDB, sqlxDriverName)}, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}

// BeginTx starts an immediate (write-locking) transaction.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *Store) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	return getPlayer(ctx, s.db, id)
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
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// sqliteTx implements repository.Tx on a sqlx transaction.
type sqliteTx struct {
	tx *sqlx.Tx
}

func (t *sqliteTx) Commit(context.Context) error {
	if err := t.tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *sqliteTx) Rollback(context.Context) error {
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return repository.ErrTxClosed
		}
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}
