package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/virelli/ArenaForge_Go/internal/domain"
)

// BattleRepository implements the append-only battle log for PostgreSQL
type BattleRepository struct {
	db *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository
func NewBattleRepository(db *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{db: db}
}

// InsertBattle appends one battle record. Records are never updated.
func (r *BattleRepository) InsertBattle(ctx context.Context, record domain.BattleRecord) error {
	rewards, err := json.Marshal(record.Rewards)
	if err != nil {
		return fmt.Errorf("failed to encode rewards: %w", err)
	}

	query := `
		INSERT INTO battles (
			battle_id, player_id, gladiator_id, enemy_name, difficulty,
			victory, damage_dealt, damage_taken, rewards, battle_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		record.ID, record.PlayerID, record.GladiatorID, record.EnemyName,
		record.Difficulty, record.Victory, record.DamageDealt,
		record.DamageTaken, rewards, record.FoughtAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert battle: %w", err)
	}
	return nil
}

// ListBattles returns a player's battle history, most recent first.
func (r *BattleRepository) ListBattles(ctx context.Context, playerID string, limit int) ([]domain.BattleRecord, error) {
	query := `
		SELECT battle_id, player_id, gladiator_id, enemy_name, difficulty,
			victory, damage_dealt, damage_taken, rewards, battle_time
		FROM battles
		WHERE player_id = $1
		ORDER BY battle_time DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query battles: %w", err)
	}
	defer rows.Close()

	var records []domain.BattleRecord
	for rows.Next() {
		var rec domain.BattleRecord
		var rewards []byte
		if err := rows.Scan(
			&rec.ID, &rec.PlayerID, &rec.GladiatorID, &rec.EnemyName,
			&rec.Difficulty, &rec.Victory, &rec.DamageDealt, &rec.DamageTaken,
			&rewards, &rec.FoughtAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan battle row: %w", err)
		}
		if err := json.Unmarshal(rewards, &rec.Rewards); err != nil {
			return nil, fmt.Errorf("failed to decode rewards: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
