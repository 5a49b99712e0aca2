//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_packages_post_test
package stop_packages_post

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
	IncrementPackageCount(ctx context.Context, id string, delta int) (*entities.Stop, error)
}
