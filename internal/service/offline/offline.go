package offline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courier-sync/internal/entities"

	"github.com/google/uuid"
)

const (
	MaxZoom     = 19
	maxTileSize = 1 << 20
)

// Service caches map tiles and the cities downloaded for offline use.
type Service struct {
	tiles  TileRepository
	cities CityRepository
}

func New(tiles TileRepository, cities CityRepository) *Service {
	return &Service{
		tiles:  tiles,
		cities: cities,
	}
}

func (s *Service) GetTile(ctx context.Context, zoom, x, y int) (*entities.MapTile, error) {
	if !validTile(zoom, x, y) {
		return nil, ErrInvalidTile
	}
	tile, err := s.tiles.GetTile(ctx, zoom, x, y)
	if err != nil {
		return nil, fmt.Errorf("get tile %s: %w", entities.TileKey(zoom, x, y), err)
	}
	return tile, nil
}

func (s *Service) SaveTile(ctx context.Context, zoom, x, y int, data []byte) (*entities.MapTile, error) {
	if !validTile(zoom, x, y) {
		return nil, ErrInvalidTile
	}
	if len(data) == 0 || len(data) > maxTileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidTile, len(data))
	}

	tile := entities.MapTile{
		Zoom:      zoom,
		X:         x,
		Y:         y,
		Data:      data,
		FetchedAt: time.Now().UTC(),
	}
	if err := s.tiles.SaveTile(ctx, tile); err != nil {
		return nil, fmt.Errorf("save tile %s: %w", entities.TileKey(zoom, x, y), err)
	}
	return &tile, nil
}

func (s *Service) ListCities(ctx context.Context) ([]entities.OfflineCity, error) {
	cities, err := s.cities.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offline cities: %w", err)
	}
	return cities, nil
}

// RegisterCity records a downloaded city. TileCount is the number of tiles
// cached across its zoom range.
func (s *Service) RegisterCity(ctx context.Context, city entities.OfflineCity) (*entities.OfflineCity, error) {
	city.Name = strings.TrimSpace(city.Name)
	if err := validateCity(city); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("register city: generate id: %w", err)
	}

	count := 0
	for zoom := city.MinZoom; zoom <= city.MaxZoom; zoom++ {
		n, err := s.tiles.CountByZoom(ctx, zoom)
		if err != nil {
			return nil, fmt.Errorf("register city: %w", err)
		}
		count += n
	}

	city.ID = id.String()
	city.TileCount = count
	city.DownloadedAt = time.Now().UTC()

	if err := s.cities.SaveCity(ctx, city); err != nil {
		return nil, fmt.Errorf("register city: %w", err)
	}
	return &city, nil
}

func validTile(zoom, x, y int) bool {
	if zoom < 0 || zoom > MaxZoom {
		return false
	}
	side := 1 << zoom
	return x >= 0 && x < side && y >= 0 && y < side
}

func validateCity(city entities.OfflineCity) error {
	if city.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCity)
	}
	if city.MinZoom < 0 || city.MaxZoom > MaxZoom || city.MinZoom > city.MaxZoom {
		return fmt.Errorf("%w: zoom range %d..%d", ErrInvalidCity, city.MinZoom, city.MaxZoom)
	}
	if len(city.Bounds) < 2 {
		return fmt.Errorf("%w: bounds need at least 2 points", ErrInvalidCity)
	}
	for _, point := range city.Bounds {
		if point.Latitude < -90 || point.Latitude > 90 || point.Longitude < -180 || point.Longitude > 180 {
			return fmt.Errorf("%w: bound out of range", ErrInvalidCity)
		}
	}
	return nil
}
