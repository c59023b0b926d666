package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/virelli/ArenaForge_Go/internal/combat"
	"github.com/virelli/ArenaForge_Go/internal/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		PlayerID: "tg-1",
		Gold:     1000,
		Gems:     10,
		Energy:   100,
		Level:    1,
	}
}

func testGladiator() *domain.Gladiator {
	return &domain.Gladiator{
		ID:        1,
		Level:     1,
		Health:    100,
		MaxHealth: 100,
		Strength:  12,
	}
}

func TestApplyVictory(t *testing.T) {
	acc := testAccount()
	g := testGladiator()
	g.Health = 85

	out := combat.Outcome{Victory: true, DamageTaken: 10}
	reward := domain.BattleReward{Gold: 50, Exp: 10}

	applied := Apply(acc, g, out, reward, 10)

	assert.Equal(t, 10, applied.EnergySpent)
	assert.Equal(t, 90, acc.Energy)
	assert.Equal(t, 1050, acc.Gold)
	assert.Equal(t, 2, applied.FameGained) // 10 exp / 5
	assert.Equal(t, 2, acc.Fame)
	assert.Equal(t, 10, g.Experience)
	assert.Equal(t, 10, acc.Experience)
	assert.Equal(t, 95, g.Health) // 85 + 10 recovery
	assert.Zero(t, applied.GladiatorLevelsGained)
}

func TestApplyVictoryRecoveryClampsAtMax(t *testing.T) {
	acc := testAccount()
	g := testGladiator()
	g.Health = 97

	applied := Apply(acc, g, combat.Outcome{Victory: true}, domain.BattleReward{Exp: 10}, 10)

	assert.Equal(t, g.MaxHealth, g.Health)
	assert.Zero(t, applied.GoldGained)
}

func TestApplyVictoryLevelCascade(t *testing.T) {
	acc := testAccount()
	g := testGladiator()

	// 310 exp: level 1 needs 100, level 2 needs 200; two levels, 10 left.
	applied := Apply(acc, g, combat.Outcome{Victory: true}, domain.BattleReward{Exp: 310}, 10)

	assert.Equal(t, 2, applied.GladiatorLevelsGained)
	assert.Equal(t, 3, g.Level)
	assert.Equal(t, 10, g.Experience)
	assert.Equal(t, 12+2*domain.LevelUpStrengthGain, g.Strength)
	assert.Equal(t, 100+2*domain.LevelUpMaxHealthGain, g.MaxHealth)
}

func TestApplyDefeat(t *testing.T) {
	acc := testAccount()
	g := testGladiator()

	out := combat.Outcome{Victory: false, DamageTaken: 100}
	reward := domain.BattleReward{Gold: 200, Exp: 50, Gems: 2}

	applied := Apply(acc, g, out, reward, 20)

	// No currency on defeat; consolation exp only.
	assert.Equal(t, 1000, acc.Gold)
	assert.Equal(t, 10, acc.Gems)
	assert.Zero(t, acc.Fame)
	assert.Equal(t, 50/domain.DefeatExpDivisor, applied.GladiatorExpGained)
	assert.Equal(t, 50/domain.DefeatPlayerDivisor, applied.PlayerExpGained)
	assert.Equal(t, 80, acc.Energy)

	// Full damage taken but never below 1 HP.
	assert.Equal(t, 1, g.Health)
}

func TestApplyPlayerLevelUp(t *testing.T) {
	acc := testAccount()
	acc.Experience = 495
	g := testGladiator()

	applied := Apply(acc, g, combat.Outcome{Victory: true}, domain.BattleReward{Exp: 10}, 10)

	// 495 + 10 crosses the 500 threshold for level 1.
	assert.Equal(t, 1, applied.PlayerLevelsGained)
	assert.Equal(t, 2, acc.Level)
	assert.Equal(t, 5, acc.Experience)
}
