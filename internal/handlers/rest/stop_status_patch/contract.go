//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_status_patch_test
package stop_status_patch

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

type Service interface {
	UpdateStatus(ctx context.Context, id string, update entities.StopStatusUpdate) (*entities.Stop, error)
}
