package itinerary

import (
	"context"
	"fmt"

	"courier-sync/internal/entities"
	"courier-sync/internal/service/itinerary"
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

// Active returns the single active itinerary.
func (r *Repository) Active(ctx context.Context) (*entities.Itinerary, error) {
	rows, err := r.store.GetByIndex(ctx, store.PartitionItineraries, store.IndexByStatus, entities.ItineraryActive.String())
	if err != nil {
		return nil, fmt.Errorf("itinerary repository active: %w", err)
	}
	if len(rows) == 0 {
		return nil, itinerary.ErrNoActiveItinerary
	}

	// Rows come ordered by key; ids are UUIDv7 so the last one is the newest.
	var record ItineraryRecord
	if err := rows[len(rows)-1].Decode(&record); err != nil {
		return nil, fmt.Errorf("itinerary repository active: %w", err)
	}
	return ToDomain(&record)
}

func (r *Repository) Save(ctx context.Context, it entities.Itinerary) error {
	if err := r.store.Put(ctx, store.PartitionItineraries, FromDomain(&it)); err != nil {
		return fmt.Errorf("itinerary repository save: %w", err)
	}
	return nil
}
