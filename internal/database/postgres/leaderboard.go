package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

var leaderboardOrder = map[domain.LeaderboardKind]string{
	domain.LeaderboardLevel: `level DESC, xp DESC, id`,
	domain.LeaderboardArena: `arena_rating DESC, id`,
	domain.LeaderboardTower: `tower_floor DESC, id`,
}

// ahead counts players strictly better than p in the given ranking.
var leaderboardAhead = map[domain.LeaderboardKind]string{
	domain.LeaderboardLevel: `level > $1 OR (level = $1 AND xp > $2)`,
	domain.LeaderboardArena: `arena_rating > $1`,
	domain.LeaderboardTower: `tower_floor > $1`,
}

func leaderboard(ctx context.Context, q querier, by domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error) {
	order, ok := leaderboardOrder[by]
	if !ok {
		return nil, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}
	rows, err := q.Query(ctx, `
		SELECT id, name, class, level, xp, arena_rating, tower_floor
		FROM players
		ORDER BY `+order+`
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.Name, &e.Class, &e.Level, &e.XP, &e.ArenaRating, &e.TowerFloor); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard: %w", err)
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return entries, nil
}

func playerRank(ctx context.Context, q querier, playerID string, by domain.LeaderboardKind) (int, error) {
	cond, ok := leaderboardAhead[by]
	if !ok {
		return 0, fmt.Errorf("%w: leaderboard %q", domain.ErrInvalidInput, by)
	}
	p, err := getPlayer(ctx, q, playerID, false)
	if err != nil {
		return 0, err
	}

	var ahead int
	err = q.QueryRow(ctx,
		`SELECT COUNT(*) FROM players WHERE `+cond,
		rankArgs(by, p)...,
	).Scan(&ahead)
	if err != nil {
		return 0, fmt.Errorf("failed to rank player: %w", err)
	}
	return ahead + 1, nil
}

func rankArgs(by domain.LeaderboardKind, p *domain.Player) []any {
	switch by {
	case domain.LeaderboardArena:
		return []any{p.ArenaRating}
	case domain.LeaderboardTower:
		return []any{p.TowerFloor}
	}
	return []any{p.Level, p.XP}
}
