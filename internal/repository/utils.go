package repository

import (
	"context"
	"errors"

	"github.com/osse101/TextRealm_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Rolling back after a commit is expected in deferred cleanup
		if !errors.Is(err, ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}

// LeaderboardLimit clamps a requested leaderboard size.
func LeaderboardLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	}
	return limit
}

// Leaderboard and page sizes
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 50
	DefaultPageSize         = 20
	MaxPageSize             = 100
)

// PageLimit clamps a requested page size.
func PageLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	}
	return limit
}
