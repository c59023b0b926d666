package domain

import "time"

// Account is the aggregate root for one player's persistent progression state.
// All engine operations read and mutate a single Account snapshot; persistence
// happens outside the core.
type Account struct {
	PlayerID           string     `json:"player_id"`
	Username           string     `json:"username"`
	Gold               int        `json:"gold"`
	Gems               int        `json:"gems"`
	Fame               int        `json:"fame"`
	Energy             int        `json:"energy"`
	MaxEnergy          int        `json:"max_energy"`
	Level              int        `json:"level"`
	Experience         int        `json:"experience"`
	DailyRewardClaimed bool       `json:"daily_reward_claimed"`
	LastDailyReward    *time.Time `json:"last_daily_reward,omitempty"`
	DailyStreak        int        `json:"daily_streak"`
	LastActive         time.Time  `json:"last_active"`
	CreatedAt          time.Time  `json:"created_at"`
	Game               GameData   `json:"game_data"`
}

// GameData is the embedded mutable sub-structure owned exclusively by one
// Account. Persisted as a JSONB column alongside the scalar account fields.
type GameData struct {
	Gladiators         []Gladiator `json:"gladiators"`
	Buildings          Buildings   `json:"buildings"`
	Inventory          Inventory   `json:"inventory"`
	UnlockedArchetypes []Archetype `json:"unlocked_types"`
	TutorialCompleted  bool        `json:"tutorial_completed"`
}

// FindGladiator returns a pointer into the account's gladiator slice, or nil
// if the id is unknown.
func (g *GameData) FindGladiator(id int) *Gladiator {
	for i := range g.Gladiators {
		if g.Gladiators[i].ID == id {
			return &g.Gladiators[i]
		}
	}
	return nil
}

// NextGladiatorID assigns ids as max-existing-id + 1.
func (g *GameData) NextGladiatorID() int {
	maxID := 0
	for _, gl := range g.Gladiators {
		if gl.ID > maxID {
			maxID = gl.ID
		}
	}
	return maxID + 1
}

// HasArchetype reports whether the archetype has been unlocked. The unlocked
// set only ever grows.
func (g *GameData) HasArchetype(a Archetype) bool {
	for _, t := range g.UnlockedArchetypes {
		if t == a {
			return true
		}
	}
	return false
}

// LeaderboardEntry is one ranked row of a leaderboard query.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	Username   string `json:"username"`
	Gold       int    `json:"gold"`
	Gems       int    `json:"gems"`
	Fame       int    `json:"fame"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Wins       int    `json:"wins"`
}

// LeaderboardSort selects the ranking key for leaderboard queries.
type LeaderboardSort string

const (
	LeaderboardByFame  LeaderboardSort = "fame"
	LeaderboardByGold  LeaderboardSort = "gold"
	LeaderboardByLevel LeaderboardSort = "level"
)

// Normalize falls back to the fame ranking for unknown sort keys.
func (s LeaderboardSort) Normalize() LeaderboardSort {
	switch s {
	case LeaderboardByFame, LeaderboardByGold, LeaderboardByLevel:
		return s
	default:
		return LeaderboardByFame
	}
}
