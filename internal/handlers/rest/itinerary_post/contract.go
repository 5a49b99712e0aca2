//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=itinerary_post_test
package itinerary_post

import (
	"context"
	"time"

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
	Create(ctx context.Context, name string, date time.Time) (*entities.Itinerary, error)
}
