package domain

import "time"

// Difficulty selects the enemy roster and energy cost of an encounter.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Normalize falls back to easy for unknown tiers.
func (d Difficulty) Normalize() Difficulty {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	default:
		return DifficultyEasy
	}
}

// BattleReward is the payload granted for defeating an enemy.
type BattleReward struct {
	Gold int `json:"gold"`
	Exp  int `json:"exp"`
	Gems int `json:"gems,omitempty"`
}

// BattleRecord is an immutable append-only log entry for one fight. Never
// mutated after creation.
type BattleRecord struct {
	ID          string       `json:"id"`
	PlayerID    string       `json:"player_id"`
	GladiatorID int          `json:"gladiator_id"`
	EnemyName   string       `json:"enemy_name"`
	Difficulty  Difficulty   `json:"difficulty"`
	Victory     bool         `json:"victory"`
	DamageDealt int          `json:"damage_dealt"`
	DamageTaken int          `json:"damage_taken"`
	Rewards     BattleReward `json:"rewards"`
	FoughtAt    time.Time    `json:"battle_time"`
}
