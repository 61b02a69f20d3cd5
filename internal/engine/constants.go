package engine

import "time"

// TracerName is the instrumentation scope of engine spans.
const TracerName = "github.com/osse101/TextRealm_Go/internal/engine"

// Action names, used for span names, metrics labels and log attributes.
const (
	ActionCreatePlayer      = "create_player"
	ActionHunt              = "hunt"
	ActionArena             = "arena"
	ActionTower             = "tower"
	ActionGacha             = "gacha"
	ActionGacha10x          = "gacha_10x"
	ActionWheel             = "wheel"
	ActionStartExpedition   = "start_expedition"
	ActionCollectExpedition = "collect_expedition"
	ActionEquip             = "equip"
	ActionUnequip           = "unequip"
	ActionSell              = "sell"
	ActionUpgrade           = "upgrade"
	ActionCreateListing     = "create_listing"
	ActionBuyListing        = "buy_listing"
	ActionCancelListing     = "cancel_listing"
	ActionDailyLogin        = "daily_login"
	ActionDailyQuests       = "daily_quests"
	ActionClaimQuest        = "claim_quest"
)

// Combat modes reported in events.
const (
	ModeHunt  = "hunt"
	ModeArena = "arena"
	ModeTower = "tower"
)

// Reward sources reported in events.
const (
	SourceWheel      = "wheel"
	SourceDaily      = "daily"
	SourceExpedition = "expedition"
	SourceQuest      = "quest"
	SourceLevelUp    = "level_up"
)

// Leaderboard cache defaults.
const (
	DefaultLeaderboardCacheSize = 64
	DefaultLeaderboardCacheTTL  = 30 * time.Second
)

// MaxNameLength caps display names, in runes.
const MaxNameLength = 32

// Log messages
const (
	LogMsgActionCompleted   = "Action completed"
	LogMsgActionRejected    = "Action rejected"
	LogMsgActionFailed      = "Action failed"
	LogMsgActionRetry       = "Retrying action after storage error"
	LogMsgInvariantViolated = "Invariant violated, transaction aborted"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgLeaderboardCached = "Leaderboard served from cache"
)
