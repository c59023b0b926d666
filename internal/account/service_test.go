package account

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virelli/ArenaForge_Go/internal/concurrency"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/economy"
)

func newTestService(repo *FakeRepository) *service {
	return &service{
		repo:    repo,
		battles: repo,
		locks:   concurrency.NewLockManager(),
		board:   newLeaderboardCache(leaderboardCacheSize, leaderboardCacheTTL),
		rnd:     func() float64 { return 0 }, // always picks the first enemy
		now:     func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func mustInit(t *testing.T, svc Service, playerID string) *domain.Account {
	t.Helper()
	res, err := svc.InitAccount(context.Background(), playerID, "tester")
	require.NoError(t, err)
	return res.Player
}

func TestInitAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewFakeRepository())

	t.Run("creates starter account on first init", func(t *testing.T) {
		res, err := svc.InitAccount(ctx, "player-1", "tester")

		require.NoError(t, err)
		assert.True(t, res.NewPlayer)
		acc := res.Player
		assert.Equal(t, domain.StarterGold, acc.Gold)
		assert.Equal(t, domain.StarterGems, acc.Gems)
		assert.Equal(t, domain.StarterEnergy, acc.Energy)
		assert.Equal(t, 1, acc.Level)
		require.Len(t, acc.Game.Gladiators, 1)
		assert.Equal(t, StarterGladiatorName, acc.Game.Gladiators[0].Name)
		assert.Equal(t, domain.ArchetypeMurmillo, acc.Game.Gladiators[0].Type)
		assert.Equal(t, []domain.Archetype{domain.ArchetypeMurmillo}, acc.Game.UnlockedArchetypes)
		assert.Equal(t, 5, acc.Game.Buildings.Barracks.Capacity)
		assert.NotEmpty(t, acc.Game.Inventory.Potions)
	})

	t.Run("second init loads the same account", func(t *testing.T) {
		res, err := svc.InitAccount(ctx, "player-1", "tester")

		require.NoError(t, err)
		assert.False(t, res.NewPlayer)
		assert.Equal(t, "player-1", res.Player.PlayerID)
		require.Len(t, res.Player.Game.Gladiators, 1)
	})

	t.Run("rejects empty player id", func(t *testing.T) {
		_, err := svc.InitAccount(ctx, "", "tester")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetAccount_NotFound(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	_, err := svc.GetAccount(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetAccountRefreshesLastActive(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRepository()
	svc := newTestService(repo)
	mustInit(t, svc, "player-1")

	// Two days pass with no mutations; a plain read still counts as
	// activity for the energy restoration window.
	later := time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	acc, err := svc.GetAccount(ctx, "player-1")

	require.NoError(t, err)
	assert.Equal(t, later, acc.LastActive)
	stored, err := repo.GetAccount(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, later, stored.LastActive)
}

func TestStartBattle(t *testing.T) {
	ctx := context.Background()

	t.Run("starter gladiator beats first easy enemy", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		// Starter murmillo: 12 str + 5 weapon = 17 per hit vs Rookie
		// Gladiator (50 HP, 8 dmg). Three hits to kill, two return blows
		// of 5 each taken, then fully recovered by the victory heal.
		res, err := svc.StartBattle(ctx, "player-1", 1, domain.DifficultyEasy)

		require.NoError(t, err)
		assert.True(t, res.Victory)
		assert.Equal(t, "Rookie Gladiator", res.Battle.Enemy)
		assert.Equal(t, 17, res.Battle.GladiatorDamage)
		assert.Equal(t, 3, res.Battle.HitsToKillEnemy)
		assert.Equal(t, 20, res.Battle.HitsToKillGladiator)
		assert.Equal(t, 50, res.Battle.DamageDealt)
		assert.Equal(t, 10, res.Battle.DamageTaken)

		assert.Equal(t, domain.StarterGold+50, res.Player.Gold)
		assert.Equal(t, domain.StarterEnergy-10, res.Player.Energy)
		assert.Equal(t, 2, res.Progress.FameGained)
		assert.Equal(t, 10, res.Progress.GladiatorExpGained)
		assert.Equal(t, 100, res.Gladiator.Health, "victory heal covers the chip damage")

		// Changes must be persisted, not just reported.
		acc, err := svc.GetAccount(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StarterGold+50, acc.Gold)
		assert.Equal(t, domain.StarterEnergy-10, acc.Energy)
	})

	t.Run("battle is logged to history", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.StartBattle(ctx, "player-1", 1, domain.DifficultyEasy)
		require.NoError(t, err)

		history, err := svc.GetBattleHistory(ctx, "player-1", 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "Rookie Gladiator", history[0].EnemyName)
		assert.True(t, history[0].Victory)
		assert.NotEmpty(t, history[0].ID)
	})

	t.Run("unknown difficulty falls back to easy", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		res, err := svc.StartBattle(ctx, "player-1", 1, domain.Difficulty("nightmare"))

		require.NoError(t, err)
		assert.Equal(t, "Rookie Gladiator", res.Battle.Enemy)
		assert.Equal(t, 10, res.Progress.EnergySpent)
	})

	t.Run("rejects unknown gladiator", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.StartBattle(ctx, "player-1", 99, domain.DifficultyEasy)

		assert.ErrorIs(t, err, domain.ErrGladiatorNotFound)
	})

	t.Run("rejects battle without enough energy", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")
		acc.Energy = 5
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		_, err := svc.StartBattle(ctx, "player-1", 1, domain.DifficultyEasy)

		assert.ErrorIs(t, err, domain.ErrInsufficientEnergy)

		// Rejection must leave the account untouched.
		after, err := svc.GetAccount(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, 5, after.Energy)
		assert.Equal(t, domain.StarterGold, after.Gold)
	})

	t.Run("hard difficulty costs more energy", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		res, err := svc.StartBattle(ctx, "player-1", 1, domain.DifficultyHard)

		require.NoError(t, err)
		assert.Equal(t, 20, res.Progress.EnergySpent)
		assert.Equal(t, "Champion of the Colosseum", res.Battle.Enemy)
	})
}

func TestPurchaseGladiator(t *testing.T) {
	ctx := context.Background()

	t.Run("recruits an unlocked archetype", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		res, err := svc.PurchaseGladiator(ctx, "player-1", domain.ArchetypeMurmillo, "Crixus")

		require.NoError(t, err)
		assert.Equal(t, "Crixus", res.Gladiator.Name)
		assert.Equal(t, 2, res.Gladiator.ID)
		assert.Equal(t, domain.StarterGold-500, res.NewGold)

		acc, err := svc.GetAccount(ctx, "player-1")
		require.NoError(t, err)
		assert.Len(t, acc.Game.Gladiators, 2)
	})

	t.Run("rejects locked archetype", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.PurchaseGladiator(ctx, "player-1", domain.ArchetypeProvocator, "")

		assert.ErrorIs(t, err, domain.ErrArchetypeLocked)
	})

	t.Run("rejects recruitment at barracks capacity", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")
		acc.Gold = 100000
		for len(acc.Game.Gladiators) < acc.Game.Buildings.Barracks.Capacity {
			id := acc.Game.NextGladiatorID()
			acc.Game.Gladiators = append(acc.Game.Gladiators, domain.Gladiator{
				ID: id, Name: fmt.Sprintf("Filler %d", id), Type: domain.ArchetypeMurmillo,
				Level: 1, Health: 100, MaxHealth: 100,
			})
		}
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		_, err := svc.PurchaseGladiator(ctx, "player-1", domain.ArchetypeMurmillo, "")

		assert.ErrorIs(t, err, domain.ErrBarracksFull)
	})

	t.Run("rejects purchase without enough gold", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")
		acc.Gold = 100
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		_, err := svc.PurchaseGladiator(ctx, "player-1", domain.ArchetypeMurmillo, "")

		assert.ErrorIs(t, err, domain.ErrInsufficientGold)
	})
}

func TestHealGladiator(t *testing.T) {
	ctx := context.Background()

	t.Run("heals with a starter potion", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")
		acc.Game.Gladiators[0].Health = 50
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		res, err := svc.HealGladiator(ctx, "player-1", 1)

		require.NoError(t, err)
		assert.Equal(t, 80, res.Health, "starter potion heals 30")
		assert.Equal(t, 30, res.HealedFor)
		assert.Equal(t, 2, res.PotionsLeft)
	})

	t.Run("rejects healing at full health", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.HealGladiator(ctx, "player-1", 1)

		assert.ErrorIs(t, err, domain.ErrAlreadyFullHealth)
	})

	t.Run("rejects healing without potions", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")
		acc.Game.Gladiators[0].Health = 50
		acc.Game.Inventory.Potions = nil
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		_, err := svc.HealGladiator(ctx, "player-1", 1)

		assert.ErrorIs(t, err, domain.ErrNoHealingPotion)
	})
}

func TestBuyShopItem(t *testing.T) {
	ctx := context.Background()

	t.Run("buys a weapon into the inventory", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		res, err := svc.BuyShopItem(ctx, "player-1", domain.CategoryWeapons, 2)

		require.NoError(t, err)
		assert.Equal(t, "Iron Sword", res.Item.Name)
		assert.Equal(t, domain.StarterGold-200, res.NewGold)

		idx := domain.FindStack(res.Inventory.Weapons, 2)
		require.NotEqual(t, -1, idx)
		assert.Equal(t, 1, res.Inventory.Weapons[idx].Quantity)
	})

	t.Run("repeat buy increments the stack", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.BuyShopItem(ctx, "player-1", domain.CategoryPotions, 3)
		require.NoError(t, err)
		res, err := svc.BuyShopItem(ctx, "player-1", domain.CategoryPotions, 3)
		require.NoError(t, err)

		idx := domain.FindStack(res.Inventory.Potions, 3)
		require.NotEqual(t, -1, idx)
		assert.Equal(t, 2, res.Inventory.Potions[idx].Quantity, "should stack, not duplicate")
	})

	t.Run("rejects unknown item", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.BuyShopItem(ctx, "player-1", domain.CategoryWeapons, 99)

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("rejects purchase without enough gold", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")
		acc.Gold = 10
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		_, err := svc.BuyShopItem(ctx, "player-1", domain.CategoryWeapons, 2)

		assert.ErrorIs(t, err, domain.ErrInsufficientGold)
	})
}

func TestEquipItem(t *testing.T) {
	ctx := context.Background()

	t.Run("equips a bought weapon", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.BuyShopItem(ctx, "player-1", domain.CategoryWeapons, 2)
		require.NoError(t, err)

		res, err := svc.EquipItem(ctx, "player-1", 1, economy.SlotWeapon, 2)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Gladiator.Equipment.Weapon.ID)
		assert.Equal(t, 10, res.Gladiator.Equipment.Weapon.Damage)

		// Starter weapon is not returned to the inventory; the bought sword
		// stack is consumed.
		assert.Equal(t, -1, domain.FindStack(res.Inventory.Weapons, 2))
	})

	t.Run("swapped non-starter gear returns to inventory", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.BuyShopItem(ctx, "player-1", domain.CategoryWeapons, 2)
		require.NoError(t, err)
		_, err = svc.BuyShopItem(ctx, "player-1", domain.CategoryWeapons, 3)
		require.NoError(t, err)

		_, err = svc.EquipItem(ctx, "player-1", 1, economy.SlotWeapon, 2)
		require.NoError(t, err)
		res, err := svc.EquipItem(ctx, "player-1", 1, economy.SlotWeapon, 3)
		require.NoError(t, err)

		assert.Equal(t, 3, res.Gladiator.Equipment.Weapon.ID)
		idx := domain.FindStack(res.Inventory.Weapons, 2)
		require.NotEqual(t, -1, idx, "iron sword should be back in the inventory")
		assert.Equal(t, 1, res.Inventory.Weapons[idx].Quantity)
	})

	t.Run("rejects item not in inventory", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.EquipItem(ctx, "player-1", 1, economy.SlotWeapon, 5)

		assert.ErrorIs(t, err, domain.ErrNotInInventory)
	})
}

func TestUpgradeBuilding(t *testing.T) {
	ctx := context.Background()

	t.Run("upgrades barracks and grows capacity", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		res, err := svc.UpgradeBuilding(ctx, "player-1", domain.BuildingBarracks)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Level)
		assert.Equal(t, 1000, res.Cost)
		assert.Equal(t, domain.StarterGold-1000, res.NewGold)

		acc, err := svc.GetAccount(ctx, "player-1")
		require.NoError(t, err)
		assert.Equal(t, 9, acc.Game.Buildings.Barracks.Capacity)
	})

	t.Run("rejects unknown building", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.UpgradeBuilding(ctx, "player-1", domain.BuildingType("tavern"))

		assert.ErrorIs(t, err, domain.ErrBuildingNotFound)
	})

	t.Run("rejects upgrade without enough gold", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")
		acc.Gold = 500
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		_, err := svc.UpgradeBuilding(ctx, "player-1", domain.BuildingArena)

		assert.ErrorIs(t, err, domain.ErrInsufficientGold)
	})
}

func TestClaimDailyReward(t *testing.T) {
	ctx := context.Background()

	t.Run("first claim starts a streak", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		res, err := svc.ClaimDailyReward(ctx, "player-1")

		require.NoError(t, err)
		assert.Equal(t, 1, res.Reward.Streak)
		assert.Equal(t, 120, res.Reward.Gold, "base 100 plus one streak day")
		assert.Equal(t, 0, res.Reward.Gems)
		assert.Equal(t, domain.StarterGold+120, res.NewGold)
	})

	t.Run("second claim same day is rejected", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		mustInit(t, svc, "player-1")

		_, err := svc.ClaimDailyReward(ctx, "player-1")
		require.NoError(t, err)
		_, err = svc.ClaimDailyReward(ctx, "player-1")

		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	})

	t.Run("consecutive days extend the streak", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")

		yesterday := time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC)
		acc.LastDailyReward = &yesterday
		acc.DailyStreak = 6
		acc.DailyRewardClaimed = false
		require.NoError(t, repo.UpdateAccount(ctx, *acc))

		res, err := svc.ClaimDailyReward(ctx, "player-1")

		require.NoError(t, err)
		assert.Equal(t, 7, res.Reward.Streak)
		assert.Equal(t, 240, res.Reward.Gold, "100 base + 7*20 bonus")
		assert.Equal(t, 1, res.Reward.Gems, "one gem per full streak week")
	})
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks accounts by fame", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		for i := 1; i <= 3; i++ {
			acc := mustInit(t, svc, fmt.Sprintf("player-%d", i))
			acc.Fame = i * 100
			require.NoError(t, repo.UpdateAccount(ctx, *acc))
		}

		entries, err := svc.GetLeaderboard(ctx, domain.LeaderboardByFame, 10)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "player-3", entries[0].PlayerID)
		assert.Equal(t, "player-1", entries[2].PlayerID)
	})

	t.Run("serves repeated queries from cache", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")

		first, err := svc.GetLeaderboard(ctx, domain.LeaderboardByGold, 10)
		require.NoError(t, err)

		// A change inside the TTL is not visible until the cache expires.
		acc.Gold = 99999
		require.NoError(t, repo.UpdateAccount(ctx, *acc))
		second, err := svc.GetLeaderboard(ctx, domain.LeaderboardByGold, 10)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("battle victory invalidates cached rankings", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)
		acc := mustInit(t, svc, "player-1")

		before, err := svc.GetLeaderboard(ctx, domain.LeaderboardByGold, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.StarterGold, before[0].Gold)

		// Starter murmillo beats the first easy enemy; gold and fame move.
		_, err = svc.StartBattle(ctx, "player-1", acc.Game.Gladiators[0].ID, domain.DifficultyEasy)
		require.NoError(t, err)

		after, err := svc.GetLeaderboard(ctx, domain.LeaderboardByGold, 10)
		require.NoError(t, err)
		assert.Greater(t, after[0].Gold, before[0].Gold)
	})
}

func TestGetBattleHistory_UnknownPlayer(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	_, err := svc.GetBattleHistory(context.Background(), "ghost", 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAccountNotFound))
}
