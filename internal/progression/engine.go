// Package progression applies battle outcomes to gladiators and accounts:
// currency awards, experience, looped level-up cascades and post-battle
// health changes. All functions are pure computation over the snapshot passed
// in; persistence and battle logging belong to the caller.
package progression

import (
	"github.com/virelli/ArenaForge_Go/internal/combat"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// Applied summarizes what one battle resolution changed.
type Applied struct {
	GoldGained            int `json:"gold_gained"`
	GemsGained            int `json:"gems_gained"`
	FameGained            int `json:"fame_gained"`
	GladiatorExpGained    int `json:"gladiator_exp_gained"`
	PlayerExpGained       int `json:"player_exp_gained"`
	GladiatorLevelsGained int `json:"gladiator_levels_gained"`
	PlayerLevelsGained    int `json:"player_levels_gained"`
	EnergySpent           int `json:"energy_spent"`
}

// Apply mutates the gladiator and account for one resolved battle.
//
// Energy is deducted unconditionally; the caller rejects the fight upstream
// when the balance is short. On victory the account collects the full reward
// and the gladiator recovers a little health; on defeat the gladiator keeps
// consolation experience and takes the outcome's damage, floored at 1 HP.
// Level-ups cascade: a large enough experience grant levels a unit several
// times in one resolution.
func Apply(acc *domain.Account, g *domain.Gladiator, out combat.Outcome, reward domain.BattleReward, energyCost int) Applied {
	applied := Applied{EnergySpent: energyCost}
	acc.Energy -= energyCost

	if out.Victory {
		applied.GoldGained = reward.Gold
		applied.GemsGained = reward.Gems
		applied.FameGained = reward.Exp / domain.FameExpDivisor
		applied.GladiatorExpGained = reward.Exp
		applied.PlayerExpGained = reward.Exp

		acc.Gold += applied.GoldGained
		acc.Gems += applied.GemsGained
		acc.Fame += applied.FameGained
		g.Experience += applied.GladiatorExpGained

		applied.GladiatorLevelsGained = levelUpGladiator(g)

		// Post-battle recovery, after any max-health growth from leveling.
		g.Health += domain.VictoryHealthRecovery
		g.ClampHealth()
	} else {
		applied.GladiatorExpGained = reward.Exp / domain.DefeatExpDivisor
		applied.PlayerExpGained = reward.Exp / domain.DefeatPlayerDivisor

		g.Experience += applied.GladiatorExpGained
		g.Health -= out.DamageTaken
		g.ClampHealth()

		applied.GladiatorLevelsGained = levelUpGladiator(g)
	}

	acc.Experience += applied.PlayerExpGained
	applied.PlayerLevelsGained = levelUpPlayer(acc)

	return applied
}

// levelUpGladiator consumes experience thresholds until the gladiator can no
// longer level, granting the fixed stat growth each step.
func levelUpGladiator(g *domain.Gladiator) int {
	levels := 0
	for g.Experience >= g.Level*domain.GladiatorLevelExpStep {
		g.Experience -= g.Level * domain.GladiatorLevelExpStep
		g.Level++
		g.Strength += domain.LevelUpStrengthGain
		g.Agility += domain.LevelUpAgilityGain
		g.Endurance += domain.LevelUpEnduranceGain
		g.MaxHealth += domain.LevelUpMaxHealthGain
		levels++
	}
	return levels
}

// levelUpPlayer consumes account experience thresholds the same way.
func levelUpPlayer(acc *domain.Account) int {
	levels := 0
	for acc.Experience >= acc.Level*domain.PlayerLevelExpStep {
		acc.Experience -= acc.Level * domain.PlayerLevelExpStep
		acc.Level++
		levels++
	}
	return levels
}
