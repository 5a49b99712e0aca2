package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// migrate applies every schema step up to target and returns the resulting version.
// A target below the recorded version leaves the database untouched.
func migrate(ctx context.Context, db *sql.DB, target int64) (int64, error) {
	provider, err := goose.NewProvider(
		goose.DialectSQLite3,
		db,
		nil,
		goose.WithDisableGlobalRegistry(true),
		goose.WithGoMigrations(goMigrations()...),
	)
	if err != nil {
		return 0, fmt.Errorf("migration provider: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if current >= target {
		return current, nil
	}

	if _, err := provider.UpTo(ctx, target); err != nil {
		return 0, fmt.Errorf("apply migrations up to %d: %w", target, err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func goMigrations() []*goose.Migration {
	migrations := make([]*goose.Migration, 0, len(schemaSteps))
	for _, step := range schemaSteps {
		migrations = append(migrations, goose.NewGoMigration(
			step.version,
			&goose.GoFunc{RunTx: step.apply},
			nil,
		))
	}
	return migrations
}
