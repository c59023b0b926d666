package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameBattlesFought       = "battles_fought_total"
	MetricNameGladiatorsRecruited = "gladiators_recruited_total"
	MetricNameItemsBought         = "items_bought_total"
	MetricNameBuildingsUpgraded   = "buildings_upgraded_total"
	MetricNameDailyRewardsClaimed = "daily_rewards_claimed_total"
	MetricNameGoldEarned          = "gold_earned_total"
	MetricNameGoldSpent           = "gold_spent_total"
	MetricNameEnergyRestored      = "energy_restored_accounts_total"
	MetricNameDailyResets         = "daily_reward_resets_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextBattlesFought       = "Total number of battles fought"
	HelpTextGladiatorsRecruited = "Total number of gladiators recruited"
	HelpTextItemsBought         = "Total number of shop items bought"
	HelpTextBuildingsUpgraded   = "Total number of building upgrades"
	HelpTextDailyRewardsClaimed = "Total number of daily rewards claimed"
	HelpTextGoldEarned          = "Total gold earned from battles and rewards"
	HelpTextGoldSpent           = "Total gold spent on recruits, items and upgrades"
	HelpTextEnergyRestored      = "Total accounts touched by energy restore runs"
	HelpTextDailyResets         = "Total accounts touched by daily reward resets"
)

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelDifficulty = "difficulty"
	LabelVictory    = "victory"
	LabelArchetype  = "archetype"
	LabelCategory   = "category"
	LabelBuilding   = "building"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
