package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameActionsTotal   = "game_actions_total"
	MetricNameActionDuration = "game_action_duration_seconds"
	MetricNameActionRetries  = "game_action_retries_total"
	MetricNameEventsHandled  = "game_events_total"
)

// Business metric names
const (
	MetricNameLevelUps        = "game_level_ups_total"
	MetricNameCombats         = "game_combats_total"
	MetricNameGachaItems      = "game_gacha_items_total"
	MetricNameItemsSold       = "game_items_sold_total"
	MetricNameItemsUpgraded   = "game_items_upgraded_total"
	MetricNameAuctionListings = "game_auction_listings_total"
	MetricNameAuctionSales    = "game_auction_sales_total"
	MetricNameAuctionFees     = "game_auction_fees_burned_total"
	MetricNameGoldGranted     = "game_gold_granted_total"
	MetricNameCrystalsGranted = "game_crystals_granted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextActionsTotal   = "Game actions by outcome"
	HelpTextActionDuration = "Game action latency in seconds, including lock wait"
	HelpTextActionRetries  = "Game actions retried after a storage error"
	HelpTextEventsHandled  = "Committed game events seen by the metrics collector"
)

// Business metric help text
const (
	HelpTextLevelUps        = "Levels gained by players"
	HelpTextCombats         = "Fights resolved by mode and result"
	HelpTextGachaItems      = "Items produced by gacha pulls by tier and rarity"
	HelpTextItemsSold       = "Items sold to the shop by rarity"
	HelpTextItemsUpgraded   = "Rarity upgrades by source and result rarity"
	HelpTextAuctionListings = "Auction listings created"
	HelpTextAuctionSales    = "Auction listings sold by rarity"
	HelpTextAuctionFees     = "Gold destroyed as auction fees"
	HelpTextGoldGranted     = "Gold granted by reward source"
	HelpTextCrystalsGranted = "Crystals granted by reward source"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelMode    = "mode"
	LabelResult  = "result"
	LabelTier    = "tier"
	LabelRarity  = "rarity"
	LabelFrom    = "from"
	LabelTo      = "to"
	LabelSource  = "source"
)

// Action outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ActionLatencyBuckets covers in-process actions from 100µs to 2.5s.
var ActionLatencyBuckets = []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
