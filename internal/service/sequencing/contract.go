//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sequencing_test
package sequencing

import (
	"context"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

type StopService interface {
	ListStops(ctx context.Context) []entities.Stop
	Reorder(ctx context.Context, orderedIDs []string) ([]entities.Stop, error)
	AdoptOrder(ctx context.Context, remote []entities.Stop) ([]entities.Stop, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*entities.Settings, error)
}

type LocationProvider interface {
	Fresh(ctx context.Context) (*entities.DeviceLocation, error)
	Last(ctx context.Context) (*entities.DeviceLocation, error)
}

type SectorRepository interface {
	Sectors(ctx context.Context) ([]entities.Sector, error)
	SaveSectors(ctx context.Context, sectors []entities.Sector) error
}

type RemoteOptimizer interface {
	Optimize(ctx context.Context, start *entities.Coordinates) ([]entities.Stop, error)
}

type Connectivity interface {
	IsOnline() bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
