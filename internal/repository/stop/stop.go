package stop

import (
	"context"
	"fmt"
	"sort"

	"courier-sync/internal/entities"
	"courier-sync/internal/repository"
	"courier-sync/internal/service/stop"
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

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Stop, error) {
	raw, err := r.store.Get(ctx, store.PartitionStops, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, stop.ErrStopNotFound
		}
		return nil, fmt.Errorf("stop repository get: %w", err)
	}

	var record StopRecord
	if err := raw.Decode(&record); err != nil {
		return nil, fmt.Errorf("stop repository get: %w", err)
	}
	return ToDomain(&record), nil
}

// ListByItinerary returns the stops of the itinerary ordered by sequenceOrder.
func (r *Repository) ListByItinerary(ctx context.Context, itineraryID string) ([]entities.Stop, error) {
	rows, err := r.store.GetByIndex(ctx, store.PartitionStops, store.IndexByItinerary, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("stop repository list: %w", err)
	}
	return decodeSorted(rows)
}

// ListPendingSync returns stops with local changes not yet confirmed by the remote.
func (r *Repository) ListPendingSync(ctx context.Context) ([]entities.Stop, error) {
	rows, err := r.store.GetByIndex(ctx, store.PartitionStops, store.IndexBySyncStatus, entities.SyncPending.String())
	if err != nil {
		return nil, fmt.Errorf("stop repository list pending: %w", err)
	}
	return decodeSorted(rows)
}

// SaveMany writes all stops in one atomic call.
func (r *Repository) SaveMany(ctx context.Context, stops []entities.Stop) error {
	records := make([]store.Record, 0, len(stops))
	for i := range stops {
		records = append(records, FromDomain(&stops[i]))
	}

	if err := r.store.PutMany(ctx, store.PartitionStops, records); err != nil {
		return fmt.Errorf("stop repository save: %w", err)
	}
	return nil
}

func (r *Repository) DeleteMany(ctx context.Context, ids []string) error {
	if err := r.store.DeleteMany(ctx, store.PartitionStops, ids); err != nil {
		return fmt.Errorf("stop repository delete: %w", err)
	}
	return nil
}

func decodeSorted(rows []store.Raw) ([]entities.Stop, error) {
	records, err := store.DecodeAll[StopRecord](rows)
	if err != nil {
		return nil, fmt.Errorf("decode stops: %w", err)
	}

	stops := make([]entities.Stop, 0, len(records))
	for i := range records {
		stops = append(stops, *ToDomain(&records[i]))
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].SequenceOrder < stops[j].SequenceOrder
	})
	return stops, nil
}
