package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/virelli/ArenaForge_Go/internal/account"
	"github.com/virelli/ArenaForge_Go/internal/domain"
	"github.com/virelli/ArenaForge_Go/internal/economy"
)

// MockAccountService is a testify mock of account.Service.
type MockAccountService struct {
	mock.Mock
}

var _ account.Service = (*MockAccountService)(nil)

func (m *MockAccountService) InitAccount(ctx context.Context, playerID, username string) (*account.InitResult, error) {
	args := m.Called(ctx, playerID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.InitResult), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, playerID string) (*domain.Account, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) StartBattle(ctx context.Context, playerID string, gladiatorID int, difficulty domain.Difficulty) (*account.BattleResult, error) {
	args := m.Called(ctx, playerID, gladiatorID, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.BattleResult), args.Error(1)
}

func (m *MockAccountService) GetBattleHistory(ctx context.Context, playerID string, limit int) ([]domain.BattleRecord, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BattleRecord), args.Error(1)
}

func (m *MockAccountService) PurchaseGladiator(ctx context.Context, playerID string, archetype domain.Archetype, name string) (*account.PurchaseResult, error) {
	args := m.Called(ctx, playerID, archetype, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.PurchaseResult), args.Error(1)
}

func (m *MockAccountService) HealGladiator(ctx context.Context, playerID string, gladiatorID int) (*account.HealOutcome, error) {
	args := m.Called(ctx, playerID, gladiatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.HealOutcome), args.Error(1)
}

func (m *MockAccountService) BuyShopItem(ctx context.Context, playerID string, category domain.ItemCategory, itemID int) (*account.ShopPurchase, error) {
	args := m.Called(ctx, playerID, category, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.ShopPurchase), args.Error(1)
}

func (m *MockAccountService) EquipItem(ctx context.Context, playerID string, gladiatorID int, slot economy.EquipSlot, itemID int) (*account.EquipOutcome, error) {
	args := m.Called(ctx, playerID, gladiatorID, slot, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.EquipOutcome), args.Error(1)
}

func (m *MockAccountService) UpgradeBuilding(ctx context.Context, playerID string, building domain.BuildingType) (*account.UpgradeOutcome, error) {
	args := m.Called(ctx, playerID, building)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.UpgradeOutcome), args.Error(1)
}

func (m *MockAccountService) ClaimDailyReward(ctx context.Context, playerID string) (*account.DailyRewardResult, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.DailyRewardResult), args.Error(1)
}

func (m *MockAccountService) GetLeaderboard(ctx context.Context, sort domain.LeaderboardSort, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, sort, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}
