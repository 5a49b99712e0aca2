//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sector_post_test
package sector_post

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
	CreateSector(ctx context.Context, name string, polygon []entities.Coordinates) (*entities.Sector, error)
}
