package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/virelli/ArenaForge_Go/internal/database/schema"
)

// InitSchema applies the schema bootstrap script. All statements are
// idempotent, so running it on every startup is safe.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema.SchemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
