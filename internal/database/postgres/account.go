package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// AccountRepository implements the account repository for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `player_id, username, gold, gems, fame, energy, max_energy,
	level, experience, daily_reward_claimed, last_daily_reward, daily_streak,
	game_data, last_active, created_at`

// GetAccount loads one account with its embedded game data. Returns nil
// without an error when the player is unknown.
func (r *AccountRepository) GetAccount(ctx context.Context, playerID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE player_id = $1`

	var acc domain.Account
	var gameData []byte
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&acc.PlayerID, &acc.Username, &acc.Gold, &acc.Gems, &acc.Fame,
		&acc.Energy, &acc.MaxEnergy, &acc.Level, &acc.Experience,
		&acc.DailyRewardClaimed, &acc.LastDailyReward, &acc.DailyStreak,
		&gameData, &acc.LastActive, &acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if err := json.Unmarshal(gameData, &acc.Game); err != nil {
		return nil, fmt.Errorf("failed to decode game data: %w", err)
	}
	return &acc, nil
}

// CreateAccount inserts a fresh account row.
func (r *AccountRepository) CreateAccount(ctx context.Context, acc *domain.Account) error {
	gameData, err := json.Marshal(acc.Game)
	if err != nil {
		return fmt.Errorf("failed to encode game data: %w", err)
	}

	query := `
		INSERT INTO accounts (
			player_id, username, gold, gems, fame, energy, max_energy,
			level, experience, daily_reward_claimed, last_daily_reward,
			daily_streak, game_data, last_active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.db.Exec(ctx, query,
		acc.PlayerID, acc.Username, acc.Gold, acc.Gems, acc.Fame,
		acc.Energy, acc.MaxEnergy, acc.Level, acc.Experience,
		acc.DailyRewardClaimed, acc.LastDailyReward, acc.DailyStreak,
		gameData, acc.LastActive, acc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// UpdateAccount writes back the full account state in one statement.
func (r *AccountRepository) UpdateAccount(ctx context.Context, acc domain.Account) error {
	gameData, err := json.Marshal(acc.Game)
	if err != nil {
		return fmt.Errorf("failed to encode game data: %w", err)
	}

	query := `
		UPDATE accounts SET
			username = $2, gold = $3, gems = $4, fame = $5, energy = $6,
			max_energy = $7, level = $8, experience = $9,
			daily_reward_claimed = $10, last_daily_reward = $11,
			daily_streak = $12, game_data = $13, last_active = $14
		WHERE player_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		acc.PlayerID, acc.Username, acc.Gold, acc.Gems, acc.Fame,
		acc.Energy, acc.MaxEnergy, acc.Level, acc.Experience,
		acc.DailyRewardClaimed, acc.LastDailyReward, acc.DailyStreak,
		gameData, acc.LastActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// TouchLastActive refreshes the activity timestamp without rewriting state.
func (r *AccountRepository) TouchLastActive(ctx context.Context, playerID string, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE accounts SET last_active = $2 WHERE player_id = $1`, playerID, at)
	if err != nil {
		return fmt.Errorf("failed to touch last active: %w", err)
	}
	return nil
}

// ListTopAccounts returns the ranked leaderboard rows. Sort keys map to
// fixed ORDER BY clauses; ties break by creation order so ranks are stable.
func (r *AccountRepository) ListTopAccounts(ctx context.Context, sort domain.LeaderboardSort, limit int) ([]domain.LeaderboardEntry, error) {
	var orderBy string
	switch sort.Normalize() {
	case domain.LeaderboardByGold:
		orderBy = "gold DESC"
	case domain.LeaderboardByLevel:
		orderBy = "level DESC, experience DESC"
	default:
		orderBy = "fame DESC"
	}

	query := fmt.Sprintf(`
		SELECT a.player_id, a.username, a.gold, a.gems, a.fame, a.level, a.experience,
			(SELECT COUNT(*) FROM battles b WHERE b.player_id = a.player_id AND b.victory) AS wins
		FROM accounts a
		ORDER BY %s, a.created_at ASC
		LIMIT $1
	`, orderBy)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.Username, &e.Gold, &e.Gems, &e.Fame, &e.Level, &e.Experience, &e.Wins); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RestoreEnergy tops up energy for recently active accounts in one statement.
func (r *AccountRepository) RestoreEnergy(ctx context.Context, amount int, activeSince time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET energy = LEAST(max_energy, energy + $1)
		WHERE last_active > $2 AND energy < max_energy
	`, amount, activeSince)
	if err != nil {
		return 0, fmt.Errorf("failed to restore energy: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ResetDailyRewards clears the claimed flag for the whole population.
func (r *AccountRepository) ResetDailyRewards(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET daily_reward_claimed = FALSE
		WHERE daily_reward_claimed
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset daily rewards: %w", err)
	}
	return tag.RowsAffected(), nil
}
