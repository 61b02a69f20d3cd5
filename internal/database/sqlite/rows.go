package sqlite

import (
	"database/sql"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Times are stored as unix milliseconds; 0 is the zero time.
func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

type playerRow struct {
	ID                 string `db:"id"`
	Name               string `db:"name"`
	Class              string `db:"class"`
	Level              int    `db:"level"`
	XP                 int    `db:"xp"`
	Gold               int    `db:"gold"`
	Crystals           int    `db:"crystals"`
	Energy             int    `db:"energy"`
	MaxEnergy          int    `db:"max_energy"`
	EnergyUpdatedAt    int64  `db:"energy_updated_at"`
	ArenaRating        int    `db:"arena_rating"`
	ArenaWins          int    `db:"arena_wins"`
	ArenaLosses        int    `db:"arena_losses"`
	ArenaFightsToday   int    `db:"arena_fights_today"`
	ArenaResetDate     int64  `db:"arena_reset_date"`
	TowerFloor         int    `db:"tower_floor"`
	TowerAttemptsToday int    `db:"tower_attempts_today"`
	TowerResetDate     int64  `db:"tower_reset_date"`
	LoginStreak        int    `db:"login_streak"`
	LastLoginDate      int64  `db:"last_login_date"`
	LastWheelDate      int64  `db:"last_wheel_date"`
	TotalHunts         int    `db:"total_hunts"`
	TotalKills         int    `db:"total_kills"`
	CreatedAt          int64  `db:"created_at"`
}

func newPlayerRow(p *domain.Player) playerRow {
	return playerRow{
		ID:                 p.ID,
		Name:               p.Name,
		Class:              string(p.Class),
		Level:              p.Level,
		XP:                 p.XP,
		Gold:               p.Gold,
		Crystals:           p.Crystals,
		Energy:             p.Energy,
		MaxEnergy:          p.MaxEnergy,
		EnergyUpdatedAt:    toMillis(p.EnergyUpdatedAt),
		ArenaRating:        p.ArenaRating,
		ArenaWins:          p.ArenaWins,
		ArenaLosses:        p.ArenaLosses,
		ArenaFightsToday:   p.ArenaFightsToday,
		ArenaResetDate:     toMillis(p.ArenaResetDate),
		TowerFloor:         p.TowerFloor,
		TowerAttemptsToday: p.TowerAttemptsToday,
		TowerResetDate:     toMillis(p.TowerResetDate),
		LoginStreak:        p.LoginStreak,
		LastLoginDate:      toMillis(p.LastLoginDate),
		LastWheelDate:      toMillis(p.LastWheelDate),
		TotalHunts:         p.TotalHunts,
		TotalKills:         p.TotalKills,
		CreatedAt:          toMillis(p.CreatedAt),
	}
}

func (r playerRow) toDomain() domain.Player {
	return domain.Player{
		ID:                 r.ID,
		Name:               r.Name,
		Class:              domain.Class(r.Class),
		Level:              r.Level,
		XP:                 r.XP,
		Gold:               r.Gold,
		Crystals:           r.Crystals,
		Energy:             r.Energy,
		MaxEnergy:          r.MaxEnergy,
		EnergyUpdatedAt:    fromMillis(r.EnergyUpdatedAt),
		ArenaRating:        r.ArenaRating,
		ArenaWins:          r.ArenaWins,
		ArenaLosses:        r.ArenaLosses,
		ArenaFightsToday:   r.ArenaFightsToday,
		ArenaResetDate:     fromMillis(r.ArenaResetDate),
		TowerFloor:         r.TowerFloor,
		TowerAttemptsToday: r.TowerAttemptsToday,
		TowerResetDate:     fromMillis(r.TowerResetDate),
		LoginStreak:        r.LoginStreak,
		LastLoginDate:      fromMillis(r.LastLoginDate),
		LastWheelDate:      fromMillis(r.LastWheelDate),
		TotalHunts:         r.TotalHunts,
		TotalKills:         r.TotalKills,
		CreatedAt:          fromMillis(r.CreatedAt),
	}
}

type itemRow struct {
	ID        int64   `db:"id"`
	PlayerID  string  `db:"player_id"`
	Name      string  `db:"name"`
	Type      string  `db:"type"`
	Rarity    string  `db:"rarity"`
	Attack    int     `db:"attack"`
	Defense   int     `db:"defense"`
	HP        int     `db:"hp"`
	Crit      float64 `db:"crit"`
	Equipped  bool    `db:"equipped"`
	CreatedAt int64   `db:"created_at"`
}

func newItemRow(it *domain.InventoryItem) itemRow {
	return itemRow{
		ID:        it.ID,
		PlayerID:  it.PlayerID,
		Name:      it.Name,
		Type:      string(it.Type),
		Rarity:    string(it.Rarity),
		Attack:    it.Bonuses.Attack,
		Defense:   it.Bonuses.Defense,
		HP:        it.Bonuses.HP,
		Crit:      it.Bonuses.Crit,
		Equipped:  it.Equipped,
		CreatedAt: toMillis(it.CreatedAt),
	}
}

func (r itemRow) toDomain() domain.InventoryItem {
	return domain.InventoryItem{
		ID:        r.ID,
		PlayerID:  r.PlayerID,
		Name:      r.Name,
		Type:      domain.ItemType(r.Type),
		Rarity:    domain.Rarity(r.Rarity),
		Bonuses:   domain.Bonuses{Attack: r.Attack, Defense: r.Defense, HP: r.HP, Crit: r.Crit},
		Equipped:  r.Equipped,
		CreatedAt: fromMillis(r.CreatedAt),
	}
}

type listingRow struct {
	ID         int64   `db:"id"`
	SellerID   string  `db:"seller_id"`
	SellerName string  `db:"seller_name"`
	ItemName   string  `db:"item_name"`
	ItemType   string  `db:"item_type"`
	Rarity     string  `db:"rarity"`
	Attack     int     `db:"attack"`
	Defense    int     `db:"defense"`
	HP         int     `db:"hp"`
	Crit       float64 `db:"crit"`
	Price      int     `db:"price"`
	CreatedAt  int64   `db:"created_at"`
}

func newListingRow(l *domain.Listing) listingRow {
	return listingRow{
		ID:         l.ID,
		SellerID:   l.SellerID,
		SellerName: l.SellerName,
		ItemName:   l.ItemName,
		ItemType:   string(l.ItemType),
		Rarity:     string(l.Rarity),
		Attack:     l.Bonuses.Attack,
		Defense:    l.Bonuses.Defense,
		HP:         l.Bonuses.HP,
		Crit:       l.Bonuses.Crit,
		Price:      l.Price,
		CreatedAt:  toMillis(l.CreatedAt),
	}
}

func (r listingRow) toDomain() domain.Listing {
	return domain.Listing{
		ID:         r.ID,
		SellerID:   r.SellerID,
		SellerName: r.SellerName,
		ItemName:   r.ItemName,
		ItemType:   domain.ItemType(r.ItemType),
		Rarity:     domain.Rarity(r.Rarity),
		Bonuses:    domain.Bonuses{Attack: r.Attack, Defense: r.Defense, HP: r.HP, Crit: r.Crit},
		Price:      r.Price,
		CreatedAt:  fromMillis(r.CreatedAt),
	}
}

type expeditionRow struct {
	ID               int64          `db:"id"`
	PlayerID         string         `db:"player_id"`
	TypeID           string         `db:"type_id"`
	StartedAt        int64          `db:"started_at"`
	DurationMS       int64          `db:"duration_ms"`
	RewardGold       int            `db:"reward_gold"`
	RewardXP         int            `db:"reward_xp"`
	RewardCrystals   int            `db:"reward_crystals"`
	RewardItemRarity sql.NullString `db:"reward_item_rarity"`
	Collected        bool           `db:"collected"`
}

func newExpeditionRow(e *domain.Expedition) expeditionRow {
	row := expeditionRow{
		ID:             e.ID,
		PlayerID:       e.PlayerID,
		TypeID:         e.TypeID,
		StartedAt:      toMillis(e.StartedAt),
		DurationMS:     e.Duration.Milliseconds(),
		RewardGold:     e.Reward.Gold,
		RewardXP:       e.Reward.XP,
		RewardCrystals: e.Reward.Crystals,
		Collected:      e.Collected,
	}
	if e.Reward.ItemRarity != nil {
		row.RewardItemRarity = sql.NullString{String: string(*e.Reward.ItemRarity), Valid: true}
	}
	return row
}

func (r expeditionRow) toDomain() *domain.Expedition {
	e := &domain.Expedition{
		ID:        r.ID,
		PlayerID:  r.PlayerID,
		TypeID:    r.TypeID,
		StartedAt: fromMillis(r.StartedAt),
		Duration:  time.Duration(r.DurationMS) * time.Millisecond,
		Reward: domain.ExpeditionReward{
			Gold:     r.RewardGold,
			XP:       r.RewardXP,
			Crystals: r.RewardCrystals,
		},
		Collected: r.Collected,
	}
	if r.RewardItemRarity.Valid {
		rarity := domain.Rarity(r.RewardItemRarity.String)
		e.Reward.ItemRarity = &rarity
	}
	return e
}

type questRow struct {
	ID             int64  `db:"id"`
	PlayerID       string `db:"player_id"`
	Day            int64  `db:"day"`
	Type           string `db:"type"`
	Description    string `db:"description"`
	Target         int    `db:"target"`
	Progress       int    `db:"progress"`
	Completed      bool   `db:"completed"`
	Claimed        bool   `db:"claimed"`
	RewardGold     int    `db:"reward_gold"`
	RewardCrystals int    `db:"reward_crystals"`
	RewardXP       int    `db:"reward_xp"`
}

func newQuestRow(q *domain.Quest) questRow {
	return questRow{
		ID:             q.ID,
		PlayerID:       q.PlayerID,
		Day:            toMillis(q.Day),
		Type:           string(q.Type),
		Description:    q.Description,
		Target:         q.Target,
		Progress:       q.Progress,
		Completed:      q.Completed,
		Claimed:        q.Claimed,
		RewardGold:     q.Reward.Gold,
		RewardCrystals: q.Reward.Crystals,
		RewardXP:       q.Reward.XP,
	}
}

func (r questRow) toDomain() domain.Quest {
	return domain.Quest{
		ID:          r.ID,
		PlayerID:    r.PlayerID,
		Day:         fromMillis(r.Day),
		Type:        domain.QuestType(r.Type),
		Description: r.Description,
		Target:      r.Target,
		Progress:    r.Progress,
		Completed:   r.Completed,
		Claimed:     r.Claimed,
		Reward:      domain.Rewards{Gold: r.RewardGold, Crystals: r.RewardCrystals, XP: r.RewardXP},
	}
}

type leaderboardRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Class       string `db:"class"`
	Level       int    `db:"level"`
	XP          int    `db:"xp"`
	ArenaRating int    `db:"arena_rating"`
	TowerFloor  int    `db:"tower_floor"`
}
