package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Engine Metrics
var (
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsTotal,
			Help: HelpTextActionsTotal,
		},
		[]string{LabelAction, LabelOutcome},
	)

	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameActionDuration,
			Help:    HelpTextActionDuration,
			Buckets: ActionLatencyBuckets,
		},
		[]string{LabelAction},
	)

	ActionRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionRetries,
			Help: HelpTextActionRetries,
		},
		[]string{LabelAction},
	)

	EventsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsHandled,
			Help: HelpTextEventsHandled,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	Combats = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombats,
			Help: HelpTextCombats,
		},
		[]string{LabelMode, LabelResult},
	)

	GachaItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGachaItems,
			Help: HelpTextGachaItems,
		},
		[]string{LabelTier, LabelRarity},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelRarity},
	)

	ItemsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpgraded,
			Help: HelpTextItemsUpgraded,
		},
		[]string{LabelFrom, LabelTo},
	)

	AuctionListings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuctionListings,
			Help: HelpTextAuctionListings,
		},
	)

	AuctionSales = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAuctionSales,
			Help: HelpTextAuctionSales,
		},
		[]string{LabelRarity},
	)

	AuctionFeesBurned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuctionFees,
			Help: HelpTextAuctionFees,
		},
	)

	GoldGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGoldGranted,
			Help: HelpTextGoldGranted,
		},
		[]string{LabelSource},
	)

	CrystalsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrystalsGranted,
			Help: HelpTextCrystalsGranted,
		},
		[]string{LabelSource},
	)
)
