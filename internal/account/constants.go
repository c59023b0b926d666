package account

import "time"

// Query limits
const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 100
	DefaultBattleLimit      = 20
	MaxBattleLimit          = 100
)

// Leaderboard cache tuning
const (
	leaderboardCacheSize = 32
	leaderboardCacheTTL  = 30 * time.Second
)

// Starter roster values
const (
	StarterGladiatorName = "Spartacus"
	StarterGladiatorID   = 1
)
