//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_drain_post_test
package sync_drain_post

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

type Queue interface {
	Drain(ctx context.Context) (*entities.DrainReport, error)
}
