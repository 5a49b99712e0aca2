//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stop_test
package stop

import (
	"context"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Stop, error)
	ListByItinerary(ctx context.Context, itineraryID string) ([]entities.Stop, error)
	SaveMany(ctx context.Context, stops []entities.Stop) error
	DeleteMany(ctx context.Context, ids []string) error
}

type ItineraryRepository interface {
	Active(ctx context.Context) (*entities.Itinerary, error)
}

type SyncQueue interface {
	Submit(ctx context.Context, req entities.RemoteRequest) (*entities.SubmitResult, error)
	Len(ctx context.Context) (int, error)
}

type RequestFactory interface {
	Build(op entities.SyncOperation, subject entities.SyncSubject) (entities.RemoteRequest, error)
}

type RemoteStops interface {
	FetchStops(ctx context.Context) ([]entities.Stop, error)
}

type Publisher interface {
	Publish(event entities.Event)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
