package cache

import (
	"context"

	"courier-sync/internal/entities"
)

// Sectors are kept as one ordered list so creation order survives.
func (r *Repository) Sectors(ctx context.Context) ([]entities.Sector, error) {
	var stored []SectorDB
	if _, err := r.Get(ctx, keySectors, &stored); err != nil {
		return nil, err
	}

	sectors := make([]entities.Sector, 0, len(stored))
	for i := range stored {
		sectors = append(sectors, SectorToDomain(&stored[i]))
	}
	return sectors, nil
}

func (r *Repository) SaveSectors(ctx context.Context, sectors []entities.Sector) error {
	stored := make([]SectorDB, 0, len(sectors))
	for i := range sectors {
		stored = append(stored, SectorFromDomain(&sectors[i]))
	}
	return r.Set(ctx, keySectors, stored, 0)
}
