package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courier-sync/internal/repository"
	"courier-sync/internal/store"
)

// Repository keeps JSON values with an optional expiry in the cache partition.
type Repository struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Repository {
	return NewWithClock(store, time.Now)
}

func NewWithClock(store Store, now func() time.Time) *Repository {
	return &Repository{
		store: store,
		now:   now,
	}
}

// Set stores value under key. A zero ttl never expires.
func (r *Repository) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value %q: %w", key, err)
	}

	now := r.now()
	record := &EntryRecord{
		ID:       key,
		Value:    data,
		StoredAt: now,
	}
	if ttl > 0 {
		expiresAt := now.Add(ttl).UnixNano()
		record.ExpiresAt = &expiresAt
	}

	if err := r.store.Put(ctx, store.PartitionCache, record); err != nil {
		return fmt.Errorf("cache repository set: %w", err)
	}
	return nil
}

// Get decodes the value into dst. It reports false for a missing or expired key.
func (r *Repository) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := r.store.Get(ctx, store.PartitionCache, key)
	if err != nil {
		if repository.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("cache repository get: %w", err)
	}

	var record EntryRecord
	if err := raw.Decode(&record); err != nil {
		return false, fmt.Errorf("cache repository get: %w", err)
	}
	if record.expired(r.now()) {
		return false, nil
	}

	if err := json.Unmarshal(record.Value, dst); err != nil {
		return false, fmt.Errorf("decode cache value %q: %w", key, err)
	}
	return true, nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	if err := r.store.DeleteMany(ctx, store.PartitionCache, []string{key}); err != nil {
		return fmt.Errorf("cache repository delete: %w", err)
	}
	return nil
}

// DeleteExpired removes entries whose expiry has passed and returns how many were removed.
func (r *Repository) DeleteExpired(ctx context.Context) (int, error) {
	rows, err := r.store.GetByIndexRange(ctx, store.PartitionCache, store.IndexByExpiry, nil, r.now().UnixNano()+1)
	if err != nil {
		return 0, fmt.Errorf("cache repository expired: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.Key)
	}
	if err := r.store.DeleteMany(ctx, store.PartitionCache, keys); err != nil {
		return 0, fmt.Errorf("cache repository delete expired: %w", err)
	}
	return len(keys), nil
}
