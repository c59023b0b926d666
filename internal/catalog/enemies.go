// Package catalog holds the static reference data of the game: enemy rosters,
// shop listings, archetype templates and building cost curves. Everything here
// is immutable; lookups never fail, unknown keys resolve to defined defaults.
package catalog

import "github.com/virelli/ArenaForge_Go/internal/domain"

// Enemy is one scripted opponent of an encounter tier.
type Enemy struct {
	Name   string              `json:"name"`
	Health int                 `json:"health"`
	Damage int                 `json:"damage"`
	Reward domain.BattleReward `json:"reward"`
}

var enemyRosters = map[domain.Difficulty][]Enemy{
	domain.DifficultyEasy: {
		{Name: "Rookie Gladiator", Health: 50, Damage: 8, Reward: domain.BattleReward{Gold: 50, Exp: 10}},
		{Name: "Town Militiaman", Health: 60, Damage: 6, Reward: domain.BattleReward{Gold: 60, Exp: 12}},
		{Name: "Conscript", Health: 45, Damage: 9, Reward: domain.BattleReward{Gold: 45, Exp: 9}},
	},
	domain.DifficultyMedium: {
		{Name: "Arena Veteran", Health: 100, Damage: 15, Reward: domain.BattleReward{Gold: 100, Exp: 25, Gems: 1}},
		{Name: "Sellsword", Health: 120, Damage: 12, Reward: domain.BattleReward{Gold: 120, Exp: 30, Gems: 1}},
		{Name: "Patrician's Guard", Health: 90, Damage: 18, Reward: domain.BattleReward{Gold: 90, Exp: 22, Gems: 1}},
	},
	domain.DifficultyHard: {
		{Name: "Champion of the Colosseum", Health: 200, Damage: 25, Reward: domain.BattleReward{Gold: 200, Exp: 50, Gems: 2}},
		{Name: "Living Legend", Health: 180, Damage: 30, Reward: domain.BattleReward{Gold: 220, Exp: 55, Gems: 3}},
		{Name: "Provincial Brawler", Health: 160, Damage: 28, Reward: domain.BattleReward{Gold: 180, Exp: 45, Gems: 2}},
	},
}

var energyCosts = map[domain.Difficulty]int{
	domain.DifficultyEasy:   10,
	domain.DifficultyMedium: 15,
	domain.DifficultyHard:   20,
}

// DefaultEnergyCost applies when the tier is unknown.
const DefaultEnergyCost = 10

// EnemiesFor returns the ordered roster for a tier. Unknown tiers fall back
// to the easy roster.
func EnemiesFor(d domain.Difficulty) []Enemy {
	if roster, ok := enemyRosters[d]; ok {
		return roster
	}
	return enemyRosters[domain.DifficultyEasy]
}

// EnergyCost returns the energy price of fighting at a tier.
func EnergyCost(d domain.Difficulty) int {
	if cost, ok := energyCosts[d]; ok {
		return cost
	}
	return DefaultEnergyCost
}
