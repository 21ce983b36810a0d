package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// runMigrations applies the schema. Every statement is idempotent
// (CREATE TABLE IF NOT EXISTS), so re-running against an existing database
// is safe.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	log.Info().Msg("Applying database schema")

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is safe to call after commit

	if _, err := tx.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema SQL: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}

	log.Info().Msg("Schema applied successfully")
	return nil
}
