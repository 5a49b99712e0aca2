package tiles

import (
	"context"
	"errors"
	"fmt"

	"courier-sync/internal/entities"
	"courier-sync/internal/repository"
	"courier-sync/internal/store"
)

var ErrTileNotFound = errors.New("tile not found")

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

func (r *Repository) GetTile(ctx context.Context, zoom, x, y int) (*entities.MapTile, error) {
	raw, err := r.store.Get(ctx, store.PartitionTiles, entities.TileKey(zoom, x, y))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTileNotFound
		}
		return nil, fmt.Errorf("tile repository get: %w", err)
	}

	var record TileRecord
	if err := raw.Decode(&record); err != nil {
		return nil, fmt.Errorf("tile repository get: %w", err)
	}
	return TileToDomain(&record), nil
}

func (r *Repository) SaveTile(ctx context.Context, tile entities.MapTile) error {
	if err := r.store.Put(ctx, store.PartitionTiles, TileFromDomain(&tile)); err != nil {
		return fmt.Errorf("tile repository save: %w", err)
	}
	return nil
}

func (r *Repository) CountByZoom(ctx context.Context, zoom int) (int, error) {
	rows, err := r.store.GetByIndex(ctx, store.PartitionTiles, store.IndexByZoom, zoom)
	if err != nil {
		return 0, fmt.Errorf("tile repository count: %w", err)
	}
	return len(rows), nil
}

func (r *Repository) ListCities(ctx context.Context) ([]entities.OfflineCity, error) {
	rows, err := r.store.GetAll(ctx, store.PartitionOfflineCities)
	if err != nil {
		return nil, fmt.Errorf("offline city repository list: %w", err)
	}

	records, err := store.DecodeAll[CityRecord](rows)
	if err != nil {
		return nil, fmt.Errorf("offline city repository list: %w", err)
	}

	cities := make([]entities.OfflineCity, 0, len(records))
	for i := range records {
		cities = append(cities, CityToDomain(&records[i]))
	}
	return cities, nil
}

func (r *Repository) SaveCity(ctx context.Context, city entities.OfflineCity) error {
	if err := r.store.Put(ctx, store.PartitionOfflineCities, CityFromDomain(&city)); err != nil {
		return fmt.Errorf("offline city repository save: %w", err)
	}
	return nil
}
