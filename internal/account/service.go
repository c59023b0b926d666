// Package account is the orchestration shell over the pure game engines. It
// owns the lock-load-mutate-save cycle for every player operation: combat and
// progression, economy actions and the daily reward. All mutations for one
// player are serialized through a per-account lock, so the read-modify-write
// against the database can never interleave for the same account.
package account

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/virelli/ArenaForge_Go/internal/catalog"
	"github.com/virelli/ArenaForge_Go/internal/combat"
	"github.com/virelli/ArenaForge_Go/internal/concurrency"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/economy"
	"github.com/virelli/ArenaForge_Go/internal/logger"
	"github.com/virelli/ArenaForge_Go/internal/progression"
	"github.com/virelli/ArenaForge_Go/internal/repository"
)

// Service defines the player-facing game operations
type Service interface {
	// InitAccount loads an existing account or creates a fresh one with the
	// starter kit. The only operation that does not require the account to
	// already exist.
	InitAccount(ctx context.Context, playerID, username string) (*InitResult, error)
	GetAccount(ctx context.Context, playerID string) (*domain.Account, error)

	// StartBattle resolves one fight for a gladiator against a random enemy
	// of the requested difficulty and applies the outcome.
	StartBattle(ctx context.Context, playerID string, gladiatorID int, difficulty domain.Difficulty) (*BattleResult, error)
	GetBattleHistory(ctx context.Context, playerID string, limit int) ([]domain.BattleRecord, error)

	PurchaseGladiator(ctx context.Context, playerID string, archetype domain.Archetype, name string) (*PurchaseResult, error)
	HealGladiator(ctx context.Context, playerID string, gladiatorID int) (*HealOutcome, error)
	BuyShopItem(ctx context.Context, playerID string, category domain.ItemCategory, itemID int) (*ShopPurchase, error)
	EquipItem(ctx context.Context, playerID string, gladiatorID int, slot economy.EquipSlot, itemID int) (*EquipOutcome, error)
	UpgradeBuilding(ctx context.Context, playerID string, building domain.BuildingType) (*UpgradeOutcome, error)
	ClaimDailyReward(ctx context.Context, playerID string) (*DailyRewardResult, error)

	GetLeaderboard(ctx context.Context, sort domain.LeaderboardSort, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo    repository.Account
	battles repository.Battle
	locks   *concurrency.LockManager
	board   *leaderboardCache

	// Injectable for deterministic tests.
	rnd func() float64
	now func() time.Time
}

// NewService creates a new account service
func NewService(repo repository.Account, battles repository.Battle, locks *concurrency.LockManager) Service {
	return &service{
		repo:    repo,
		battles: battles,
		locks:   locks,
		board:   newLeaderboardCache(leaderboardCacheSize, leaderboardCacheTTL),
		rnd:     rand.Float64,
		now:     time.Now,
	}
}

// InitAccount loads an existing account or creates a fresh starter account.
func (s *service) InitAccount(ctx context.Context, playerID, username string) (*InitResult, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	unlock := s.locks.LockAccount(playerID)
	defer unlock()

	acc, err := s.repo.GetAccount(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc != nil {
		if err := s.repo.TouchLastActive(ctx, playerID, s.now()); err != nil {
			return nil, fmt.Errorf("failed to update last active: %w", err)
		}
		acc.LastActive = s.now()
		return &InitResult{Player: acc, NewPlayer: false}, nil
	}

	acc = starterAccount(playerID, username, s.now())
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info("New account created", "playerID", playerID, "username", username)
	return &InitResult{Player: acc, NewPlayer: true}, nil
}

// GetAccount returns the full account snapshot. Every read counts as
// activity: the last-active timestamp is refreshed so that a player who only
// checks their state keeps qualifying for energy restoration.
func (s *service) GetAccount(ctx context.Context, playerID string) (*domain.Account, error) {
	acc, err := s.loadAccount(ctx, playerID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := s.repo.TouchLastActive(ctx, playerID, now); err != nil {
		return nil, fmt.Errorf("failed to update last active: %w", err)
	}
	acc.LastActive = now
	return acc, nil
}

// StartBattle resolves one fight and applies its outcome to the account.
func (s *service) StartBattle(ctx context.Context, playerID string, gladiatorID int, difficulty domain.Difficulty) (*BattleResult, error) {
	log := logger.FromContext(ctx)
	difficulty = difficulty.Normalize()

	unlock := s.locks.LockAccount(playerID)
	defer unlock()

	acc, err := s.loadAccount(ctx, playerID)
	if err != nil {
		return nil, err
	}

	g := acc.Game.FindGladiator(gladiatorID)
	if g == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrGladiatorNotFound, gladiatorID)
	}
	if g.Health <= 0 {
		return nil, domain.ErrGladiatorInjured
	}

	energyCost := catalog.EnergyCost(difficulty)
	if acc.Energy < energyCost {
		return nil, fmt.Errorf("%w: need %d", domain.ErrInsufficientEnergy, energyCost)
	}

	enemy := s.pickEnemy(difficulty)
	out := combat.Resolve(*g, enemy)
	applied := progression.Apply(acc, g, out, enemy.Reward, energyCost)

	acc.LastActive = s.now()
	if err := s.repo.UpdateAccount(ctx, *acc); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	if out.Victory {
		// Fame and gold moved; cached rankings are stale.
		s.board.Clear()
	}

	record := domain.BattleRecord{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		GladiatorID: gladiatorID,
		EnemyName:   enemy.Name,
		Difficulty:  difficulty,
		Victory:     out.Victory,
		DamageDealt: out.DamageDealt,
		DamageTaken: out.DamageTaken,
		Rewards:     enemy.Reward,
		FoughtAt:    s.now(),
	}
	// The battle log is advisory history; a failed insert must not undo an
	// already-applied battle.
	if err := s.battles.InsertBattle(ctx, record); err != nil {
		log.Warn("Failed to log battle", "playerID", playerID, "error", err)
	}

	rewards := enemy.Reward
	if !out.Victory {
		rewards = domain.BattleReward{Exp: enemy.Reward.Exp / domain.DefeatExpDivisor}
	}

	log.Info("Battle resolved",
		"playerID", playerID, "gladiatorID", gladiatorID,
		"enemy", enemy.Name, "difficulty", difficulty, "victory", out.Victory)

	return &BattleResult{
		Victory: out.Victory,
		Battle: BattleDetail{
			Enemy:               enemy.Name,
			EnemyHealth:         enemy.Health,
			GladiatorDamage:     out.AttackerDamage,
			EnemyDamage:         out.EnemyDamage,
			Defense:             g.Equipment.Armor.Defense,
			HitsToKillEnemy:     out.HitsToKillEnemy,
			HitsToKillGladiator: out.HitsToKillAttacker,
			DamageDealt:         out.DamageDealt,
			DamageTaken:         out.DamageTaken,
		},
		Rewards:   rewards,
		Progress:  applied,
		Player:    summarize(acc),
		Gladiator: *g,
	}, nil
}

// GetBattleHistory returns the most recent battles, newest first.
func (s *service) GetBattleHistory(ctx context.Context, playerID string, limit int) ([]domain.BattleRecord, error) {
	if _, err := s.loadAccount(ctx, playerID); err != nil {
		return nil, err
	}
	limit = clampLimit(limit, DefaultBattleLimit, MaxBattleLimit)
	records, err := s.battles.ListBattles(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list battles: %w", err)
	}
	return records, nil
}

// PurchaseGladiator recruits a new gladiator into the barracks.
func (s *service) PurchaseGladiator(ctx context.Context, playerID string, archetype domain.Archetype, name string) (*PurchaseResult, error) {
	var result *PurchaseResult
	err := s.mutateAccount(ctx, playerID, func(acc *domain.Account) error {
		g, err := economy.PurchaseGladiator(acc, archetype, name)
		if err != nil {
			return err
		}
		result = &PurchaseResult{Gladiator: *g, NewGold: acc.Gold}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Gladiator purchased",
		"playerID", playerID, "archetype", archetype, "gladiatorID", result.Gladiator.ID)
	return result, nil
}

// HealGladiator consumes a healing potion on a wounded gladiator.
func (s *service) HealGladiator(ctx context.Context, playerID string, gladiatorID int) (*HealOutcome, error) {
	var result *HealOutcome
	err := s.mutateAccount(ctx, playerID, func(acc *domain.Account) error {
		heal, err := economy.HealGladiator(acc, gladiatorID)
		if err != nil {
			return err
		}
		result = &HealOutcome{GladiatorID: gladiatorID, HealResult: *heal}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BuyShopItem purchases a catalog item into the inventory.
func (s *service) BuyShopItem(ctx context.Context, playerID string, category domain.ItemCategory, itemID int) (*ShopPurchase, error) {
	var result *ShopPurchase
	err := s.mutateAccount(ctx, playerID, func(acc *domain.Account) error {
		item, err := economy.BuyShopItem(acc, category, itemID)
		if err != nil {
			return err
		}
		result = &ShopPurchase{Item: *item, NewGold: acc.Gold, Inventory: acc.Game.Inventory}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Shop purchase",
		"playerID", playerID, "category", category, "itemID", itemID)
	return result, nil
}

// EquipItem moves an inventory item into a gladiator's equipment slot.
func (s *service) EquipItem(ctx context.Context, playerID string, gladiatorID int, slot economy.EquipSlot, itemID int) (*EquipOutcome, error) {
	var result *EquipOutcome
	err := s.mutateAccount(ctx, playerID, func(acc *domain.Account) error {
		g, err := economy.EquipItem(acc, gladiatorID, slot, itemID)
		if err != nil {
			return err
		}
		result = &EquipOutcome{Gladiator: *g, Inventory: acc.Game.Inventory}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpgradeBuilding raises a building one level for its scaled cost.
func (s *service) UpgradeBuilding(ctx context.Context, playerID string, building domain.BuildingType) (*UpgradeOutcome, error) {
	var result *UpgradeOutcome
	err := s.mutateAccount(ctx, playerID, func(acc *domain.Account) error {
		up, err := economy.UpgradeBuilding(acc, building)
		if err != nil {
			return err
		}
		result = &UpgradeOutcome{UpgradeResult: *up, NewGold: acc.Gold}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Building upgraded",
		"playerID", playerID, "building", building, "level", result.Level)
	return result, nil
}

// ClaimDailyReward grants the once-per-day login reward.
func (s *service) ClaimDailyReward(ctx context.Context, playerID string) (*DailyRewardResult, error) {
	var result *DailyRewardResult
	err := s.mutateAccount(ctx, playerID, func(acc *domain.Account) error {
		reward, err := economy.ClaimDailyReward(acc, s.now())
		if err != nil {
			return err
		}
		result = &DailyRewardResult{Reward: *reward, NewGold: acc.Gold, NewGems: acc.Gems}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Daily reward claimed",
		"playerID", playerID, "streak", result.Reward.Streak, "gold", result.Reward.Gold)
	return result, nil
}

// GetLeaderboard returns the ranked top accounts, served from a short-TTL
// cache when possible.
func (s *service) GetLeaderboard(ctx context.Context, sort domain.LeaderboardSort, limit int) ([]domain.LeaderboardEntry, error) {
	sort = sort.Normalize()
	limit = clampLimit(limit, DefaultLeaderboardLimit, MaxLeaderboardLimit)

	if entries, ok := s.board.Get(sort, limit); ok {
		return entries, nil
	}

	entries, err := s.repo.ListTopAccounts(ctx, sort, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top accounts: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.board.Set(sort, limit, entries)
	return entries, nil
}

// loadAccount fetches an account and turns an unknown player into a domain
// error.
func (s *service) loadAccount(ctx context.Context, playerID string) (*domain.Account, error) {
	acc, err := s.repo.GetAccount(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acc == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, playerID)
	}
	return acc, nil
}

// mutateAccount runs fn over the loaded account under the per-account lock
// and persists the result. When fn fails nothing is written, so a rejected
// precondition leaves the stored account untouched.
func (s *service) mutateAccount(ctx context.Context, playerID string, fn func(acc *domain.Account) error) error {
	unlock := s.locks.LockAccount(playerID)
	defer unlock()

	acc, err := s.loadAccount(ctx, playerID)
	if err != nil {
		return err
	}
	if err := fn(acc); err != nil {
		return err
	}

	acc.LastActive = s.now()
	if err := s.repo.UpdateAccount(ctx, *acc); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (s *service) pickEnemy(difficulty domain.Difficulty) catalog.Enemy {
	enemies := catalog.EnemiesFor(difficulty)
	idx := int(s.rnd() * float64(len(enemies)))
	if idx >= len(enemies) {
		idx = len(enemies) - 1
	}
	return enemies[idx]
}

func summarize(acc *domain.Account) PlayerSummary {
	return PlayerSummary{
		Gold:       acc.Gold,
		Gems:       acc.Gems,
		Fame:       acc.Fame,
		Energy:     acc.Energy,
		Level:      acc.Level,
		Experience: acc.Experience,
	}
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// starterAccount builds the initial account state for a new player: starter
// currencies, one murmillo, level-1 buildings and the starter inventory.
func starterAccount(playerID, username string, now time.Time) *domain.Account {
	stats := catalog.ArchetypeBaseStats(domain.ArchetypeMurmillo)
	starter := domain.Gladiator{
		ID:        StarterGladiatorID,
		Name:      StarterGladiatorName,
		Type:      domain.ArchetypeMurmillo,
		Level:     1,
		Health:    domain.GladiatorBaseHealth,
		MaxHealth: domain.GladiatorBaseHealth,
		Strength:  stats.Strength,
		Agility:   stats.Agility,
		Endurance: stats.Endurance,
		Equipment: domain.Equipment{
			Weapon: catalog.StarterWeapon(),
			Armor:  catalog.StarterArmor(),
		},
		Skills: []string{domain.GladiatorBaseSkill},
		Status: domain.GladiatorStatusReady,
	}

	return &domain.Account{
		PlayerID:   playerID,
		Username:   username,
		Gold:       domain.StarterGold,
		Gems:       domain.StarterGems,
		Energy:     domain.StarterEnergy,
		MaxEnergy:  domain.StarterMaxEnergy,
		Level:      1,
		LastActive: now,
		CreatedAt:  now,
		Game: domain.GameData{
			Gladiators:         []domain.Gladiator{starter},
			Buildings:          catalog.StarterBuildings(),
			Inventory:          catalog.StarterInventory(),
			UnlockedArchetypes: []domain.Archetype{domain.ArchetypeMurmillo},
		},
	}
}
