//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"
	"time"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

type Repository interface {
	SaveLocation(ctx context.Context, location entities.DeviceLocation, ttl time.Duration) error
	LastLocation(ctx context.Context) (*entities.DeviceLocation, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
