//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offline_cities_get_test
package offline_cities_get

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
	ListCities(ctx context.Context) ([]entities.OfflineCity, error)
}
