package sequencing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courier-sync/internal/entities"

	"github.com/google/uuid"
)

func (e *Engine) ListSectors(ctx context.Context) ([]entities.Sector, error) {
	sectors, err := e.sectors.Sectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	return sectors, nil
}

// CreateSector appends a sector. Earlier sectors win for stops inside several.
func (e *Engine) CreateSector(ctx context.Context, name string, polygon []entities.Coordinates) (*entities.Sector, error) {
	if !validPolygon(polygon) {
		return nil, ErrInvalidPolygon
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("create sector: generate id: %w", err)
	}

	sectors, err := e.sectors.Sectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("create sector: %w", err)
	}

	sector := entities.Sector{
		ID:        id.String(),
		Name:      strings.TrimSpace(name),
		Polygon:   polygon,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.sectors.SaveSectors(ctx, append(sectors, sector)); err != nil {
		return nil, fmt.Errorf("create sector: %w", err)
	}
	return &sector, nil
}

func (e *Engine) DeleteSector(ctx context.Context, id string) error {
	sectors, err := e.sectors.Sectors(ctx)
	if err != nil {
		return fmt.Errorf("delete sector: %w", err)
	}

	kept := make([]entities.Sector, 0, len(sectors))
	for _, sector := range sectors {
		if sector.ID != id {
			kept = append(kept, sector)
		}
	}
	if len(kept) == len(sectors) {
		return ErrSectorNotFound
	}

	if err := e.sectors.SaveSectors(ctx, kept); err != nil {
		return fmt.Errorf("delete sector: %w", err)
	}
	return nil
}

func (e *Engine) ClearSectors(ctx context.Context) error {
	if err := e.sectors.SaveSectors(ctx, []entities.Sector{}); err != nil {
		return fmt.Errorf("clear sectors: %w", err)
	}
	return nil
}
