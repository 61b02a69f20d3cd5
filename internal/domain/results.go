package domain

// HuntResult is returned by a hunt action.
type HuntResult struct {
	Zone     string         `json:"zone"`
	Monster  string         `json:"monster"`
	Boss     bool           `json:"boss"`
	Combat   CombatResult   `json:"combat"`
	CritLoot bool           `json:"crit_loot"`
	Rewards  Rewards        `json:"rewards"`
	Drop     *InventoryItem `json:"drop,omitempty"`
	LevelUps []int          `json:"level_ups,omitempty"`
	Energy   int            `json:"energy"`
}

// Opponent summarizes the other side of an arena fight.
type Opponent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Class  Class  `json:"class"`
	Level  int    `json:"level"`
	Rating int    `json:"rating"`
}

// ArenaResult is returned by an arena fight.
type ArenaResult struct {
	Opponent     Opponent     `json:"opponent"`
	Combat       CombatResult `json:"combat"`
	RatingChange int          `json:"rating_change"`
	Rating       int          `json:"rating"`
	Rewards      Rewards      `json:"rewards"`
	FightsLeft   int          `json:"fights_left"`
}

// TowerResult is returned by a tower attempt.
type TowerResult struct {
	Floor        int            `json:"floor"`
	Boss         bool           `json:"boss"`
	Monster      string         `json:"monster"`
	Combat       CombatResult   `json:"combat"`
	Rewards      Rewards        `json:"rewards"`
	Drop         *InventoryItem `json:"drop,omitempty"`
	LevelUps     []int          `json:"level_ups,omitempty"`
	AttemptsLeft int            `json:"attempts_left"`
}

// GachaTier selects the rarity table and price of a single pull.
type GachaTier string

const (
	GachaStandard GachaTier = "standard"
	GachaPremium  GachaTier = "premium"
)

// GachaResult is returned by single and batch pulls.
type GachaResult struct {
	Tier       GachaTier       `json:"tier"`
	Cost       Rewards         `json:"cost"`
	Items      []InventoryItem `json:"items"`
	Guaranteed bool            `json:"guaranteed"`
}

// PrizeKind is what a wheel segment pays out.
type PrizeKind string

const (
	PrizeGold     PrizeKind = "gold"
	PrizeCrystals PrizeKind = "crystals"
	PrizeEnergy   PrizeKind = "energy"
	PrizeItem     PrizeKind = "item"
	PrizeNothing  PrizeKind = "nothing"
)

// WheelResult is returned by a wheel spin.
type WheelResult struct {
	PrizeID string         `json:"prize_id"`
	Name    string         `json:"name"`
	Kind    PrizeKind      `json:"kind"`
	Rewards Rewards        `json:"rewards"`
	Item    *InventoryItem `json:"item,omitempty"`
}

// ExpeditionCollectResult is returned when an expedition is cashed in.
type ExpeditionCollectResult struct {
	Expedition Expedition     `json:"expedition"`
	Rewards    Rewards        `json:"rewards"`
	Item       *InventoryItem `json:"item,omitempty"`
	LevelUps   []int          `json:"level_ups,omitempty"`
}

// SellResult is returned by selling an item.
type SellResult struct {
	ItemID  int64 `json:"item_id"`
	Price   int   `json:"price"`
	Balance int   `json:"balance"`
}

// UpgradeResult is returned by a rarity upgrade.
type UpgradeResult struct {
	Consumed []int64       `json:"consumed"`
	Cost     int           `json:"cost"`
	Item     InventoryItem `json:"item"`
}

// PurchaseResult is returned by buying a listing.
type PurchaseResult struct {
	Listing        Listing       `json:"listing"`
	Item           InventoryItem `json:"item"`
	SellerProceeds int           `json:"seller_proceeds"`
}

// DailyLoginResult is returned by claiming the daily reward.
type DailyLoginResult struct {
	Streak  int     `json:"streak"`
	Rewards Rewards `json:"rewards"`
}

// QuestClaimResult is returned by claiming a completed quest.
type QuestClaimResult struct {
	Quest    Quest   `json:"quest"`
	Rewards  Rewards `json:"rewards"`
	LevelUps []int   `json:"level_ups,omitempty"`
}

// LeaderboardKind selects the ranking order.
type LeaderboardKind string

const (
	LeaderboardLevel LeaderboardKind = "level"
	LeaderboardArena LeaderboardKind = "arena"
	LeaderboardTower LeaderboardKind = "tower"
)

// Valid reports whether k is a known ranking.
func (k LeaderboardKind) Valid() bool {
	switch k {
	case LeaderboardLevel, LeaderboardArena, LeaderboardTower:
		return true
	}
	return false
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	Class       Class  `json:"class"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	ArenaRating int    `json:"arena_rating"`
	TowerFloor  int    `json:"tower_floor"`
}
