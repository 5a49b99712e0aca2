//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connectivity_test
package connectivity

import (
	"context"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

// Prober reports whether the remote answered at all.
type Prober interface {
	Ping(ctx context.Context) error
}

type Publisher interface {
	Publish(event entities.Event)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
