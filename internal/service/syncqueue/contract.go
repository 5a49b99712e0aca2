//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=syncqueue_test
package syncqueue

import (
	"context"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

type Repository interface {
	Save(ctx context.Context, item entities.SyncQueueItem) error
	List(ctx context.Context) ([]entities.SyncQueueItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Sender performs one attempt against the remote. A returned error means no response was received.
type Sender interface {
	Send(ctx context.Context, req entities.RemoteRequest) (int, error)
}

type Connectivity interface {
	IsOnline() bool
}

type Publisher interface {
	Publish(event entities.Event)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
