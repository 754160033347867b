// Package migrations holds the PostgreSQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// FS contains the versioned PostgreSQL migration files.
//
//go:embed *.sql
var FS embed.FS

// upMigrations is a seam so callers can be tested without a live server.
var upMigrations = func(ctx context.Context, db *sql.DB) ([]*goose.MigrationResult, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider.Up(ctx)
}

// Run applies all pending migrations to db.
func Run(ctx context.Context, db *sql.DB) error {
	results, err := upMigrations(ctx, db)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		slog.Info("migration applied", "file", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
