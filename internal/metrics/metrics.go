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

// Business Metrics
var (
	BattlesFought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesFought,
			Help: HelpTextBattlesFought,
		},
		[]string{LabelDifficulty, LabelVictory},
	)

	GladiatorsRecruited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGladiatorsRecruited,
			Help: HelpTextGladiatorsRecruited,
		},
		[]string{LabelArchetype},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelCategory},
	)

	BuildingsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildingsUpgraded,
			Help: HelpTextBuildingsUpgraded,
		},
		[]string{LabelBuilding},
	)

	DailyRewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRewardsClaimed,
			Help: HelpTextDailyRewardsClaimed,
		},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	EnergyRestoredAccounts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEnergyRestored,
			Help: HelpTextEnergyRestored,
		},
	)

	DailyResetAccounts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResets,
			Help: HelpTextDailyResets,
		},
	)
)
