package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so reads can run
// inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID, &p.Name, &p.Class, &p.Level, &p.XP, &p.Gold, &p.Crystals, &p.Energy, &p.MaxEnergy, &p.EnergyUpdatedAt,
		&p.ArenaRating, &p.ArenaWins, &p.ArenaLosses, &p.ArenaFightsToday, &p.ArenaResetDate,
		&p.TowerFloor, &p.TowerAttemptsToday, &p.TowerResetDate,
		&p.LoginStreak, &p.LastLoginDate, &p.LastWheelDate,
		&p.TotalHunts, &p.TotalKills, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.EnergyUpdatedAt = p.EnergyUpdatedAt.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

func scanItem(row pgx.Row) (domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := row.Scan(&it.ID, &it.PlayerID, &it.Name, &it.Type, &it.Rarity,
		&it.Bonuses.Attack, &it.Bonuses.Defense, &it.Bonuses.HP, &it.Bonuses.Crit,
		&it.Equipped, &it.CreatedAt)
	it.CreatedAt = it.CreatedAt.UTC()
	return it, err
}

func scanListing(row pgx.Row) (domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(&l.ID, &l.SellerID, &l.SellerName, &l.ItemName, &l.ItemType, &l.Rarity,
		&l.Bonuses.Attack, &l.Bonuses.Defense, &l.Bonuses.HP, &l.Bonuses.Crit,
		&l.Price, &l.CreatedAt)
	l.CreatedAt = l.CreatedAt.UTC()
	return l, err
}

func scanExpedition(row pgx.Row) (*domain.Expedition, error) {
	var (
		e          domain.Expedition
		durationMS int64
		rarity     *string
	)
	err := row.Scan(&e.ID, &e.PlayerID, &e.TypeID, &e.StartedAt, &durationMS,
		&e.Reward.Gold, &e.Reward.XP, &e.Reward.Crystals, &rarity, &e.Collected)
	if err != nil {
		return nil, err
	}
	e.StartedAt = e.StartedAt.UTC()
	e.Duration = time.Duration(durationMS) * time.Millisecond
	if rarity != nil {
		r := domain.Rarity(*rarity)
		e.Reward.ItemRarity = &r
	}
	return &e, nil
}

func scanQuest(row pgx.Row) (domain.Quest, error) {
	var q domain.Quest
	err := row.Scan(&q.ID, &q.PlayerID, &q.Day, &q.Type, &q.Description, &q.Target, &q.Progress,
		&q.Completed, &q.Claimed, &q.Reward.Gold, &q.Reward.Crystals, &q.Reward.XP)
	return q, err
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func rarityParam(r *domain.Rarity) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}
