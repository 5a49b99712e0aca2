package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"courier-sync/pkg/logger"
	retrierconfig "courier-sync/pkg/retrier"
	"courier-sync/pkg/retrier/backoff_adapter"

	_ "modernc.org/sqlite"
)

const (
	driverName    = "sqlite"
	busyTimeoutMS = 5000

	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 15 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

// Open opens the device database file with a single connection.
// SQLite allows one writer, so the pool is capped to avoid SQLITE_BUSY churn.
func Open(ctx context.Context, log logger.Logger, path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, newDsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	dbLog := log.With(logger.NewField("path", path))

	if err := pingDatabase(ctx, dbLog, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return db, nil
}

func newDsn(path string) string {
	params := url.Values{}
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	params.Add("_pragma", "journal_mode(WAL)")
	params.Add("_pragma", "synchronous(NORMAL)")
	params.Add("_txlock", "immediate")

	return "file:" + path + "?" + params.Encode()
}

func pingDatabase(ctx context.Context, log logger.Logger, db *sql.DB) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(logger.NewField("attempt", attempt)).Debug("attempting store connection")

		return db.PingContext(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("store connection failed after retries")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.With(logger.NewField("attempts", attempt)).Info("store connection established")
	return nil
}
