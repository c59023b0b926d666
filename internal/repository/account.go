package repository

import (
	"context"
	"time"

	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// Account defines the interface for account persistence. Get returns nil
// without an error when the player is unknown.
type Account interface {
	GetAccount(ctx context.Context, playerID string) (*domain.Account, error)
	CreateAccount(ctx context.Context, acc *domain.Account) error
	UpdateAccount(ctx context.Context, acc domain.Account) error
	TouchLastActive(ctx context.Context, playerID string, at time.Time) error
	ListTopAccounts(ctx context.Context, sort domain.LeaderboardSort, limit int) ([]domain.LeaderboardEntry, error)

	// Bulk maintenance updates, each a single atomic statement over the
	// whole population. Both return the number of rows affected.
	RestoreEnergy(ctx context.Context, amount int, activeSince time.Time) (int64, error)
	ResetDailyRewards(ctx context.Context) (int64, error)
}

// Battle defines the interface for the append-only battle log.
type Battle interface {
	InsertBattle(ctx context.Context, record domain.BattleRecord) error
	ListBattles(ctx context.Context, playerID string, limit int) ([]domain.BattleRecord, error)
}
