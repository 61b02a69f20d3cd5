package domain

import "time"

// QuestType names the action a daily quest counts.
type QuestType string

const (
	QuestTypeHunt       QuestType = "hunt"
	QuestTypeArena      QuestType = "arena"
	QuestTypeTower      QuestType = "tower"
	QuestTypeGacha      QuestType = "gacha"
	QuestTypeSell       QuestType = "sell"
	QuestTypeExpedition QuestType = "expedition"
)

// Quest is a daily quest assigned to a player for one calendar day.
type Quest struct {
	ID          int64     `json:"id"`
	PlayerID    string    `json:"player_id"`
	Day         time.Time `json:"day"`
	Type        QuestType `json:"type"`
	Description string    `json:"description"`
	Target      int       `json:"target"`
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	Claimed     bool      `json:"claimed"`
	Reward      Rewards   `json:"reward"`
}
