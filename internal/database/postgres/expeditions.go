package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func getActiveExpedition(ctx context.Context, q querier, playerID string) (*domain.Expedition, error) {
	e, err := scanExpedition(q.QueryRow(ctx,
		`SELECT `+expeditionColumns+` FROM expeditions WHERE player_id = $1 AND NOT collected`, playerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expedition: %w", err)
	}
	return e, nil
}

func createExpedition(ctx context.Context, q querier, e *domain.Expedition) error {
	err := q.QueryRow(ctx, `
		INSERT INTO expeditions (player_id, type_id, started_at, duration_ms,
			reward_gold, reward_xp, reward_crystals, reward_item_rarity, collected)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		e.PlayerID, e.TypeID, e.StartedAt, e.Duration.Milliseconds(),
		e.Reward.Gold, e.Reward.XP, e.Reward.Crystals, rarityParam(e.Reward.ItemRarity), e.Collected,
	).Scan(&e.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: player %s", domain.ErrExpeditionActive, e.PlayerID)
	}
	if err != nil {
		return fmt.Errorf("failed to create expedition: %w", err)
	}
	return nil
}

func markExpeditionCollected(ctx context.Context, q querier, id int64) error {
	tag, err := q.Exec(ctx, `UPDATE expeditions SET collected = TRUE WHERE id = $1 AND NOT collected`, id)
	if err != nil {
		return fmt.Errorf("failed to collect expedition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNoExpedition, id)
	}
	return nil
}
