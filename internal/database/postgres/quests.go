package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func listQuests(ctx context.Context, q querier, playerID string, day time.Time) ([]domain.Quest, error) {
	rows, err := q.Query(ctx,
		`SELECT `+questColumns+` FROM quests WHERE player_id = $1 AND day = $2 ORDER BY id`, playerID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	quests, err := collect(rows, scanQuest)
	if err != nil {
		return nil, fmt.Errorf("failed to scan quests: %w", err)
	}
	return quests, nil
}

// createQuests inserts quests in one round trip and fills in their ids.
func createQuests(ctx context.Context, tx pgx.Tx, quests []domain.Quest) error {
	if len(quests) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, qu := range quests {
		batch.Queue(`
			INSERT INTO quests (player_id, day, type, description, target, progress, completed, claimed,
				reward_gold, reward_crystals, reward_xp)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			qu.PlayerID, qu.Day, qu.Type, qu.Description, qu.Target, qu.Progress, qu.Completed, qu.Claimed,
			qu.Reward.Gold, qu.Reward.Crystals, qu.Reward.XP)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range quests {
		if err := br.QueryRow().Scan(&quests[i].ID); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to create quests: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to create quests: %w", err)
	}
	return nil
}

func updateQuest(ctx context.Context, q querier, qu domain.Quest) error {
	tag, err := q.Exec(ctx,
		`UPDATE quests SET progress = $2, completed = $3, claimed = $4 WHERE id = $1`,
		qu.ID, qu.Progress, qu.Completed, qu.Claimed)
	if err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrQuestNotFound, qu.ID)
	}
	return nil
}
