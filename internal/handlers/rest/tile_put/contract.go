//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tile_put_test
package tile_put

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
	SaveTile(ctx context.Context, zoom int, x int, y int, data []byte) (*entities.MapTile, error)
}
