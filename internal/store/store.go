package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"courier-sync/internal/pkg/config"
	"courier-sync/internal/pkg/sqlite"
	"courier-sync/pkg/logger"
	"courier-sync/pkg/querier"
	"courier-sync/pkg/tx"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/sql"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var columns = []string{"key", "kind", "version", "data", "updated_at"}

// Store is the durable, partitioned local store.
// It must be opened before use and can be reopened after Close.
type Store struct {
	path   string
	target int64
	log    logger.Logger
	now    func() time.Time

	mu      sync.RWMutex
	db      *sql.DB
	querier *querier.Querier
	tx      *tx.Manager
	version int64
	catalog catalog
}

func New(cfg *config.Store, log logger.Logger) *Store {
	return &Store{
		path:   cfg.Path,
		target: int64(cfg.SchemaVersion),
		log:    log.With(logger.NewField("component", "store")),
		now:    time.Now,
	}
}

// Open connects to the database file and migrates it to the configured version.
// Calling Open on an open store is a no-op.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := sqlite.Open(ctx, s.log, s.path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	version, err := migrate(ctx, db, s.target)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("open store: %w", err)
	}

	s.db = db
	s.querier = querier.New(db, trmsql.DefaultCtxGetter)
	s.tx = tx.New(db)
	s.version = version
	s.catalog = catalogAt(version)

	s.log.With(
		logger.NewField("schema_version", version),
		logger.NewField("target_version", s.target),
	).Info("store opened")
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.querier = nil
	s.tx = nil
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// Version returns the applied schema version.
func (s *Store) Version() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, ErrNotOpen
	}
	return s.version, nil
}

// Do runs fn in one transaction. Store calls made with the ctx passed to fn join it,
// across partitions.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.RLock()
	manager := s.tx
	s.mu.RUnlock()

	if manager == nil {
		return ErrNotOpen
	}
	return manager.Do(ctx, fn)
}

func (s *Store) Put(ctx context.Context, partition Partition, record Record) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrNotOpen
	}
	return s.put(ctx, partition, record)
}

// PutMany upserts all records in one transaction.
func (s *Store) PutMany(ctx context.Context, partition Partition, records []Record) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrNotOpen
	}
	if len(records) == 0 {
		return nil
	}

	return s.tx.Do(ctx, func(ctx context.Context) error {
		for _, record := range records {
			if err := s.put(ctx, partition, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Get(ctx context.Context, partition Partition, key string) (Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return Raw{}, ErrNotOpen
	}
	if _, err := s.catalog.kind(partition); err != nil {
		return Raw{}, err
	}

	query, args, err := qb.Select(columns...).
		From(partition.table()).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return Raw{}, fmt.Errorf("build get query: %w", err)
	}

	raw, err := scanRaw(s.querier.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Raw{}, fmt.Errorf("%w: %s/%s", ErrNotFound, partition, key)
		}
		return Raw{}, fmt.Errorf("get %s/%s: %w", partition, key, err)
	}
	return raw, nil
}

// GetAll returns every record of the partition ordered by key.
func (s *Store) GetAll(ctx context.Context, partition Partition) ([]Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	if _, err := s.catalog.kind(partition); err != nil {
		return nil, err
	}

	return s.selectRaw(ctx, qb.Select(columns...).From(partition.table()).OrderBy("key"))
}

func (s *Store) GetByIndex(ctx context.Context, partition Partition, index string, value any) ([]Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	idx, err := s.catalog.index(partition, index)
	if err != nil {
		return nil, err
	}

	return s.selectRaw(ctx, qb.Select(columns...).
		From(partition.table()).
		Where(sq.Eq{idx.expr(): value}).
		OrderBy(idx.expr(), "key"))
}

// GetByIndexRange returns records whose indexed value is in [from, to).
// A nil bound is open. Records without the indexed field never match.
func (s *Store) GetByIndexRange(ctx context.Context, partition Partition, index string, from, to any) ([]Raw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotOpen
	}
	idx, err := s.catalog.index(partition, index)
	if err != nil {
		return nil, err
	}

	where := sq.And{sq.NotEq{idx.expr(): nil}}
	if from != nil {
		where = append(where, sq.GtOrEq{idx.expr(): from})
	}
	if to != nil {
		where = append(where, sq.Lt{idx.expr(): to})
	}

	return s.selectRaw(ctx, qb.Select(columns...).
		From(partition.table()).
		Where(where).
		OrderBy(idx.expr(), "key"))
}

// Delete removes the record. Deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, partition Partition, key string) error {
	return s.DeleteMany(ctx, partition, []string{key})
}

func (s *Store) DeleteMany(ctx context.Context, partition Partition, keys []string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrNotOpen
	}
	if _, err := s.catalog.kind(partition); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	query, args, err := qb.Delete(partition.table()).Where(sq.Eq{"key": keys}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := s.querier.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete from %s: %w", partition, err)
	}
	return nil
}

// Clear removes every record of the partition.
func (s *Store) Clear(ctx context.Context, partition Partition) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrNotOpen
	}
	if _, err := s.catalog.kind(partition); err != nil {
		return err
	}

	query, args, err := qb.Delete(partition.table()).ToSql()
	if err != nil {
		return fmt.Errorf("build clear query: %w", err)
	}
	if _, err := s.querier.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear %s: %w", partition, err)
	}
	return nil
}

func (s *Store) Count(ctx context.Context, partition Partition) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return 0, ErrNotOpen
	}
	if _, err := s.catalog.kind(partition); err != nil {
		return 0, err
	}

	query, args, err := qb.Select("COUNT(*)").From(partition.table()).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := s.querier.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", partition, err)
	}
	return count, nil
}

func (s *Store) put(ctx context.Context, partition Partition, record Record) error {
	kind, err := s.catalog.kind(partition)
	if err != nil {
		return err
	}
	if record.Kind() != kind {
		return fmt.Errorf("%w: %s into %s", ErrKindMismatch, record.Kind(), partition)
	}
	if record.Key() == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidRecord)
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s %q: %w", kind, record.Key(), err)
	}

	query, args, err := qb.Insert(partition.table()).
		Columns(columns...).
		Values(record.Key(), kind, record.SchemaVersion(), string(data), s.now().UnixNano()).
		Suffix(`ON CONFLICT(key) DO UPDATE SET
			kind = excluded.kind,
			version = excluded.version,
			data = excluded.data,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	if _, err := s.querier.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("put %s/%s: %w", partition, record.Key(), err)
	}
	return nil
}

func (s *Store) selectRaw(ctx context.Context, builder sq.SelectBuilder) ([]Raw, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := s.querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	var result []Raw
	for rows.Next() {
		raw, err := scanRaw(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		result = append(result, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRaw(row scanner) (Raw, error) {
	var (
		raw       Raw
		data      string
		updatedAt int64
	)
	if err := row.Scan(&raw.Key, &raw.Kind, &raw.Version, &data, &updatedAt); err != nil {
		return Raw{}, err
	}
	raw.Data = []byte(data)
	raw.UpdatedAt = time.Unix(0, updatedAt)
	return raw, nil
}
