//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_delete_test
package stop_delete

import (
	"context"

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
	DeleteStop(ctx context.Context, id string) error
}
