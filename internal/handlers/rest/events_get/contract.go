//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_get_test
package events_get

import (
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

type Hub interface {
	Subscribe() (<-chan entities.Event, func())
}
