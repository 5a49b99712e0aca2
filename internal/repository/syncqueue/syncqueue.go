package syncqueue

import (
	"context"
	"fmt"
	"sort"

	"courier-sync/internal/entities"
	"courier-sync/internal/store"
)

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

// Save inserts the item or overwrites it by id.
func (r *Repository) Save(ctx context.Context, item entities.SyncQueueItem) error {
	if err := r.store.Put(ctx, store.PartitionSyncQueue, FromDomain(&item)); err != nil {
		return fmt.Errorf("sync queue repository save: %w", err)
	}
	return nil
}

// List returns every queued item by timestamp, ties broken by id.
func (r *Repository) List(ctx context.Context) ([]entities.SyncQueueItem, error) {
	rows, err := r.store.GetByIndexRange(ctx, store.PartitionSyncQueue, store.IndexByTimestamp, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("sync queue repository list: %w", err)
	}

	records, err := store.DecodeAll[ItemRecord](rows)
	if err != nil {
		return nil, fmt.Errorf("sync queue repository list: %w", err)
	}

	items := make([]entities.SyncQueueItem, 0, len(records))
	for i := range records {
		items = append(items, ToDomain(&records[i]))
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Timestamp != items[j].Timestamp {
			return items[i].Timestamp < items[j].Timestamp
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, store.PartitionSyncQueue, id); err != nil {
		return fmt.Errorf("sync queue repository delete: %w", err)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.store.Count(ctx, store.PartitionSyncQueue)
	if err != nil {
		return 0, fmt.Errorf("sync queue repository count: %w", err)
	}
	return count, nil
}
