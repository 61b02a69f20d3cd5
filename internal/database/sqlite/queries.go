package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

const playerColumns = `id, name, class, level, xp, gold, crystals, energy, max_energy, energy_updated_at,
	arena_rating, arena_wins, arena_losses, arena_fights_today, arena_reset_date,
	tower_floor, tower_attempts_today, tower_reset_date,
	login_streak, last_login_date, last_wheel_date,
	total_hunts, total_kills, created_at`

const itemColumns = `id, player_id, name, type, rarity, attack, defense, hp, crit, equipped, created_at`

const listingColumns = `id, seller_id, seller_name, item_name, item_type, rarity, attack, defense, hp, crit, price, created_at`

const expeditionColumns = `id, player_id, type_id, started_at, duration_ms,
	reward_gold, reward_xp, reward_crystals, reward_item_rarity, collected`

const questColumns = `id, player_id, day, type, description, target, progress, completed, claimed,
	reward_gold, reward_crystals, reward_xp`

var leaderboardOrder = map[domain.LeaderboardKind]string{
	domain.LeaderboardLevel: `level DESC, xp DESC, id`,
	domain.LeaderboardArena: `arena_rating DESC, id`,
	domain.LeaderboardTower: `tower_floor DESC, id`,
}

func getPlayer(ctx context.Context, q sqlx.QueryerContext, id string) (*domain.Player, error) {
	var row playerRow
	err := sqlx.GetContext(ctx, q, &row, `SELECT `+playerColumns+` FROM players WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	p := row.toDomain()
	return &p, nil
}

func listInventory(ctx context.Context, q sqlx.QueryerContext, playerID string) ([]domain.InventoryItem, error) {
	var rows []itemRow
	err := sqlx.SelectContext(ctx, q, &rows,
		`SELECT `+itemColumns+` FROM items WHERE player_id = ? ORDER BY created_at, id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	items := make([]domain.InventoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toDomain())
	}
	return items, nil
}

func listAuction(ctx context.Context, q sqlx.QueryerContext, limit, offset int) ([]domain.Listing, error) {
	var rows []listingRow
	err := sqlx.SelectContext(ctx, q, &rows, `
		SELECT `+listingColumns+` FROM listings
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list auction: %w", err)
	}
	listings := make([]domain.Listing, 0, len(rows))
	for _, r := range rows {
		listings = append(listings, r.toDomain())
	}
	return listings, nil
}

func listListingsBySeller(ctx context.Context, q sqlx.QueryerContext, sellerID string) ([]domain.Listing, error) {
	var rows []listingRow
	err := sqlx.SelectContext(ctx, q, &rows, `
		SELECT `+listingColumns+` FROM listings
		WHERE seller_id = ?
		ORDER BY created_at DESC, id DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller listings: %w", err)
	}
	listings := make([]domain.Listing, 0, len(rows))
	for _, r := range rows {
		listings = append(listings, r.toDomain())
	}
	return listings, nil
}

func getActiveExpedition(ctx context.Context, q sqlx.QueryerContext, playerID string) (*domain.Expedition, error) {
	var row expeditionRow
	err := sqlx.GetContext(ctx, q, &row,
		`SELECT `+expeditionColumns+` FROM expeditions WHERE player_id = ? AND collected = 0`, playerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expedition: %w", err)
	}
	return row.toDomain(), nil
}

func listQuests(ctx context.Context, q sqlx.QueryerContext, playerID string, day time.Time) ([]domain.Quest, error) {
	var rows []questRow
	err := sqlx.SelectContext(ctx, q, &rows,
		`SELECT `+questColumns+` FROM quests WHERE player_id = ? AND day = ? ORDER BY id`, playerID, toMillis(day))
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	quests := make([]domain.Quest, 0, len(rows))
	for _, r := range rows {
		quests = append(quests, r.toDomain())
	}
	return quests, nil
}

func leaderboard(ctx context.Context, q sqlx.QueryerContext, by domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error) {
	order, ok := leaderboardOrder[by]
	if !ok {
		return nil, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}
	var rows []leaderboardRow
	err := sqlx.SelectContext(ctx, q, &rows, `
		SELECT id, name, class, level, xp, arena_rating, tower_floor
		FROM players
		ORDER BY `+order+`
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			PlayerID:    r.ID,
			Name:        r.Name,
			Class:       domain.Class(r.Class),
			Level:       r.Level,
			XP:          r.XP,
			ArenaRating: r.ArenaRating,
			TowerFloor:  r.TowerFloor,
		})
	}
	return entries, nil
}

func playerRank(ctx context.Context, q sqlx.QueryerContext, playerID string, by domain.LeaderboardKind) (int, error) {
	p, err := getPlayer(ctx, q, playerID)
	if err != nil {
		return 0, err
	}

	var (
		query string
		args  []any
	)
	switch by {
	case domain.LeaderboardLevel:
		query = `SELECT COUNT(*) FROM players WHERE level > ? OR (level = ? AND xp > ?)`
		args = []any{p.Level, p.Level, p.XP}
	case domain.LeaderboardArena:
		query = `SELECT COUNT(*) FROM players WHERE arena_rating > ?`
		args = []any{p.ArenaRating}
	case domain.LeaderboardTower:
		query = `SELECT COUNT(*) FROM players WHERE tower_floor > ?`
		args = []any{p.TowerFloor}
	default:
		return 0, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}

	var ahead int
	if err := sqlx.GetContext(ctx, q, &ahead, query, args...); err != nil {
		return 0, fmt.Errorf("failed to rank player: %w", err)
	}
	return ahead + 1, nil
}
