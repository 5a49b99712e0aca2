//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_put_test
package location_put

import (
	"context"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Tracker interface {
	Report(ctx context.Context, location entities.DeviceLocation) error
}
