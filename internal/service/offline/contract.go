package offline

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offline_test

import (
	"context"

	"courier-sync/internal/entities"
)

type TileRepository interface {
	GetTile(ctx context.Context, zoom, x, y int) (*entities.MapTile, error)
	SaveTile(ctx context.Context, tile entities.MapTile) error
	CountByZoom(ctx context.Context, zoom int) (int, error)
}

type CityRepository interface {
	ListCities(ctx context.Context) ([]entities.OfflineCity, error)
	SaveCity(ctx context.Context, city entities.OfflineCity) error
}
