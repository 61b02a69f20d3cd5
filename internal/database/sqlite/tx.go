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

// GetPlayerForUpdate needs no row lock: the immediate transaction already
// holds the database write lock.
func (t *sqliteTx) GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, id)
}

func (t *sqliteTx) CreatePlayer(ctx context.Context, p *domain.Player) error {
	_, err := t.tx.NamedExecContext(ctx, `
		INSERT INTO players (`+playerColumns+`)
		VALUES (:id, :name, :class, :level, :xp, :gold, :crystals, :energy, :max_energy, :energy_updated_at,
			:arena_rating, :arena_wins, :arena_losses, :arena_fights_today, :arena_reset_date,
			:tower_floor, :tower_attempts_today, :tower_reset_date,
			:login_streak, :last_login_date, :last_wheel_date,
			:total_hunts, :total_kills, :created_at)`,
		newPlayerRow(p))
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrPlayerExists, p.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (t *sqliteTx) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	res, err := t.tx.NamedExecContext(ctx, `
		UPDATE players SET
			name = :name, level = :level, xp = :xp, gold = :gold, crystals = :crystals,
			energy = :energy, max_energy = :max_energy, energy_updated_at = :energy_updated_at,
			arena_rating = :arena_rating, arena_wins = :arena_wins, arena_losses = :arena_losses,
			arena_fights_today = :arena_fights_today, arena_reset_date = :arena_reset_date,
			tower_floor = :tower_floor, tower_attempts_today = :tower_attempts_today,
			tower_reset_date = :tower_reset_date, login_streak = :login_streak,
			last_login_date = :last_login_date, last_wheel_date = :last_wheel_date,
			total_hunts = :total_hunts, total_kills = :total_kills
		WHERE id = :id`,
		newPlayerRow(p))
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return requireRows(res, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, p.ID))
}

func (t *sqliteTx) AddGold(ctx context.Context, playerID string, amount int) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE players SET gold = gold + ? WHERE id = ?`, amount, playerID)
	if err != nil {
		return fmt.Errorf("failed to add gold: %w", err)
	}
	return requireRows(res, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID))
}

func (t *sqliteTx) CountOpponents(ctx context.Context, excludeID string, minLevel, maxLevel int) (int, error) {
	var n int
	err := t.tx.GetContext(ctx, &n, `
		SELECT COUNT(*) FROM players
		WHERE id <> ? AND level BETWEEN ? AND ?`,
		excludeID, minLevel, maxLevel)
	if err != nil {
		return 0, fmt.Errorf("failed to count opponents: %w", err)
	}
	return n, nil
}

func (t *sqliteTx) FindOpponents(ctx context.Context, excludeID string, minLevel, maxLevel, limit, offset int) ([]domain.Player, error) {
	var rows []playerRow
	err := t.tx.SelectContext(ctx, &rows, `
		SELECT `+playerColumns+` FROM players
		WHERE id <> ? AND level BETWEEN ? AND ?
		ORDER BY id
		LIMIT ? OFFSET ?`,
		excludeID, minLevel, maxLevel, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find opponents: %w", err)
	}
	players := make([]domain.Player, 0, len(rows))
	for _, r := range rows {
		players = append(players, r.toDomain())
	}
	return players, nil
}

func (t *sqliteTx) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	return listInventory(ctx, t.tx, playerID)
}

func (t *sqliteTx) AddItem(ctx context.Context, item *domain.InventoryItem) error {
	res, err := t.tx.NamedExecContext(ctx, `
		INSERT INTO items (player_id, name, type, rarity, attack, defense, hp, crit, equipped, created_at)
		VALUES (:player_id, :name, :type, :rarity, :attack, :defense, :hp, :crit, :equipped, :created_at)`,
		newItemRow(item))
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read item id: %w", err)
	}
	item.ID = id
	return nil
}

func (t *sqliteTx) SetEquipped(ctx context.Context, itemID int64, equipped bool) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE items SET equipped = ? WHERE id = ?`, equipped, itemID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: item %d", domain.ErrDoubleEquip, itemID)
	}
	if err != nil {
		return fmt.Errorf("failed to set equipped: %w", err)
	}
	return requireRows(res, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID))
}

func (t *sqliteTx) DeleteItems(ctx context.Context, itemIDs ...int64) error {
	if len(itemIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM items WHERE id IN (?)`, itemIDs)
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}
	res, err := t.tx.ExecContext(ctx, t.tx.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	if int(n) != len(itemIDs) {
		return fmt.Errorf("%w: deleted %d of %d items", domain.ErrItemNotFound, n, len(itemIDs))
	}
	return nil
}

func (t *sqliteTx) CountListings(ctx context.Context, sellerID string) (int, error) {
	var n int
	if err := t.tx.GetContext(ctx, &n, `SELECT COUNT(*) FROM listings WHERE seller_id = ?`, sellerID); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

func (t *sqliteTx) CreateListing(ctx context.Context, l *domain.Listing) error {
	res, err := t.tx.NamedExecContext(ctx, `
		INSERT INTO listings (seller_id, seller_name, item_name, item_type, rarity, attack, defense, hp, crit, price, created_at)
		VALUES (:seller_id, :seller_name, :item_name, :item_type, :rarity, :attack, :defense, :hp, :crit, :price, :created_at)`,
		newListingRow(l))
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read listing id: %w", err)
	}
	l.ID = id
	return nil
}

func (t *sqliteTx) TakeListing(ctx context.Context, listingID int64, sellerID string) (*domain.Listing, error) {
	var row listingRow
	err := t.tx.GetContext(ctx, &row, `
		DELETE FROM listings
		WHERE id = ? AND (? = '' OR seller_id = ?)
		RETURNING `+listingColumns, listingID, sellerID, sellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to take listing: %w", err)
	}
	l := row.toDomain()
	return &l, nil
}

func (t *sqliteTx) GetActiveExpedition(ctx context.Context, playerID string) (*domain.Expedition, error) {
	return getActiveExpedition(ctx, t.tx, playerID)
}

func (t *sqliteTx) CreateExpedition(ctx context.Context, e *domain.Expedition) error {
	res, err := t.tx.NamedExecContext(ctx, `
		INSERT INTO expeditions (player_id, type_id, started_at, duration_ms,
			reward_gold, reward_xp, reward_crystals, reward_item_rarity, collected)
		VALUES (:player_id, :type_id, :started_at, :duration_ms,
			:reward_gold, :reward_xp, :reward_crystals, :reward_item_rarity, :collected)`,
		newExpeditionRow(e))
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: player %s", domain.ErrExpeditionActive, e.PlayerID)
	}
	if err != nil {
		return fmt.Errorf("failed to create expedition: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expedition id: %w", err)
	}
	e.ID = id
	return nil
}

func (t *sqliteTx) MarkExpeditionCollected(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE expeditions SET collected = 1 WHERE id = ? AND collected = 0`, id)
	if err != nil {
		return fmt.Errorf("failed to collect expedition: %w", err)
	}
	return requireRows(res, fmt.Errorf("%w: id %d", domain.ErrNoExpedition, id))
}

func (t *sqliteTx) ListQuests(ctx context.Context, playerID string, day time.Time) ([]domain.Quest, error) {
	return listQuests(ctx, t.tx, playerID, day)
}

func (t *sqliteTx) CreateQuests(ctx context.Context, quests []domain.Quest) error {
	for i := range quests {
		res, err := t.tx.NamedExecContext(ctx, `
			INSERT INTO quests (player_id, day, type, description, target, progress, completed, claimed,
				reward_gold, reward_crystals, reward_xp)
			VALUES (:player_id, :day, :type, :description, :target, :progress, :completed, :claimed,
				:reward_gold, :reward_crystals, :reward_xp)`,
			newQuestRow(&quests[i]))
		if err != nil {
			return fmt.Errorf("failed to create quests: %w", err)
		}
		if quests[i].ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to read quest id: %w", err)
		}
	}
	return nil
}

func (t *sqliteTx) UpdateQuest(ctx context.Context, q domain.Quest) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE quests SET progress = ?, completed = ?, claimed = ? WHERE id = ?`,
		q.Progress, q.Completed, q.Claimed, q.ID)
	if err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
	}
	return requireRows(res, fmt.Errorf("%w: id %d", domain.ErrQuestNotFound, q.ID))
}

func requireRows(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
