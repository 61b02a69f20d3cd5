package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func getPlayer(ctx context.Context, q querier, id string, forUpdate bool) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	p, err := scanPlayer(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

func createPlayer(ctx context.Context, q querier, p *domain.Player) error {
	_, err := q.Exec(ctx, `
		INSERT INTO players (`+playerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		        $19, $20, $21, $22, $23, $24)`,
		p.ID, p.Name, p.Class, p.Level, p.XP, p.Gold, p.Crystals, p.Energy, p.MaxEnergy, p.EnergyUpdatedAt,
		p.ArenaRating, p.ArenaWins, p.ArenaLosses, p.ArenaFightsToday, p.ArenaResetDate,
		p.TowerFloor, p.TowerAttemptsToday, p.TowerResetDate,
		p.LoginStreak, p.LastLoginDate, p.LastWheelDate,
		p.TotalHunts, p.TotalKills, p.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrPlayerExists, p.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func updatePlayer(ctx context.Context, q querier, p *domain.Player) error {
	tag, err := q.Exec(ctx, `
		UPDATE players SET
			name = $2, level = $3, xp = $4, gold = $5, crystals = $6, energy = $7, max_energy = $8,
			energy_updated_at = $9, arena_rating = $10, arena_wins = $11, arena_losses = $12,
			arena_fights_today = $13, arena_reset_date = $14, tower_floor = $15,
			tower_attempts_today = $16, tower_reset_date = $17, login_streak = $18,
			last_login_date = $19, last_wheel_date = $20, total_hunts = $21, total_kills = $22
		WHERE id = $1`,
		p.ID, p.Name, p.Level, p.XP, p.Gold, p.Crystals, p.Energy, p.MaxEnergy,
		p.EnergyUpdatedAt, p.ArenaRating, p.ArenaWins, p.ArenaLosses,
		p.ArenaFightsToday, p.ArenaResetDate, p.TowerFloor,
		p.TowerAttemptsToday, p.TowerResetDate, p.LoginStreak,
		p.LastLoginDate, p.LastWheelDate, p.TotalHunts, p.TotalKills,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.ID)
	}
	return nil
}

func addGold(ctx context.Context, q querier, playerID string, amount int) error {
	tag, err := q.Exec(ctx, `UPDATE players SET gold = gold + $2 WHERE id = $1`, playerID, amount)
	if err != nil {
		return fmt.Errorf("failed to add gold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return nil
}

func countOpponents(ctx context.Context, q querier, excludeID string, minLevel, maxLevel int) (int, error) {
	var n int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM players
		WHERE id <> $1 AND level BETWEEN $2 AND $3`,
		excludeID, minLevel, maxLevel).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count opponents: %w", err)
	}
	return n, nil
}

func findOpponents(ctx context.Context, q querier, excludeID string, minLevel, maxLevel, limit, offset int) ([]domain.Player, error) {
	rows, err := q.Query(ctx, `
		SELECT `+playerColumns+` FROM players
		WHERE id <> $1 AND level BETWEEN $2 AND $3
		ORDER BY id
		LIMIT $4 OFFSET $5`,
		excludeID, minLevel, maxLevel, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find opponents: %w", err)
	}
	players, err := collect(rows, func(r pgx.Row) (domain.Player, error) {
		p, err := scanPlayer(r)
		if err != nil {
			return domain.Player{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan opponents: %w", err)
	}
	return players, nil
}
