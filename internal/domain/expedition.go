package domain

import "time"

// ExpeditionReward is rolled when an expedition starts and paid out unchanged
// on collection.
type ExpeditionReward struct {
	Gold       int     `json:"gold"`
	XP         int     `json:"xp"`
	Crystals   int     `json:"crystals"`
	ItemRarity *Rarity `json:"item_rarity,omitempty"`
}

// Expedition is a timed errand a player sends their hero on.
type Expedition struct {
	ID        int64            `json:"id"`
	PlayerID  string           `json:"player_id"`
	TypeID    string           `json:"type_id"`
	StartedAt time.Time        `json:"started_at"`
	Duration  time.Duration    `json:"duration"`
	Reward    ExpeditionReward `json:"reward"`
	Collected bool             `json:"collected"`
}

// EndsAt returns the moment the expedition completes.
func (e Expedition) EndsAt() time.Time {
	return e.StartedAt.Add(e.Duration)
}

// ExpeditionStatus describes the active expedition at read time.
type ExpeditionStatus struct {
	Expedition *Expedition   `json:"expedition,omitempty"`
	Done       bool          `json:"done"`
	Remaining  time.Duration `json:"remaining"`
}
