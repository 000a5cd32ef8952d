// Package migrations provides embedded SQL migration files.
package migrations

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed sql/001_dataset_cache.sql
var DatasetCacheSQL string

// Apply runs every migration in order. Statements are idempotent.
func Apply(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, DatasetCacheSQL); err != nil {
		return fmt.Errorf("migrate dataset_cache: %w", err)
	}
	return nil
}
