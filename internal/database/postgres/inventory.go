package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

func listInventory(ctx context.Context, q querier, playerID string) ([]domain.InventoryItem, error) {
	rows, err := q.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE player_id = $1 ORDER BY created_at, id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	items, err := collect(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory: %w", err)
	}
	return items, nil
}

func addItem(ctx context.Context, q querier, it *domain.InventoryItem) error {
	err := q.QueryRow(ctx, `
		INSERT INTO items (player_id, name, type, rarity, attack, defense, hp, crit, equipped, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		it.PlayerID, it.Name, it.Type, it.Rarity,
		it.Bonuses.Attack, it.Bonuses.Defense, it.Bonuses.HP, it.Bonuses.Crit,
		it.Equipped, it.CreatedAt,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}
	return nil
}

func setEquipped(ctx context.Context, q querier, itemID int64, equipped bool) error {
	tag, err := q.Exec(ctx, `UPDATE items SET equipped = $2 WHERE id = $1`, itemID, equipped)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: item %d", domain.ErrDoubleEquip, itemID)
	}
	if err != nil {
		return fmt.Errorf("failed to set equipped: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

func deleteItems(ctx context.Context, q querier, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	tag, err := q.Exec(ctx, `DELETE FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	if int(tag.RowsAffected()) != len(ids) {
		return fmt.Errorf("%w: deleted %d of %d items", domain.ErrItemNotFound, tag.RowsAffected(), len(ids))
	}
	return nil
}
