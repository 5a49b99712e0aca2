//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=itinerary_test
package itinerary

import (
	"context"

	"courier-sync/internal/entities"
)

type Repository interface {
	Active(ctx context.Context) (*entities.Itinerary, error)
	Save(ctx context.Context, itinerary entities.Itinerary) error
}

type StopRepository interface {
	ListByItinerary(ctx context.Context, itineraryID string) ([]entities.Stop, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*entities.Settings, error)
}

type EarningsFactory interface {
	Calculate(settings entities.Settings, stops []entities.Stop) float64
}

type RequestFactory interface {
	Build(op entities.SyncOperation, subject entities.SyncSubject) (entities.RemoteRequest, error)
}

type SyncQueue interface {
	Submit(ctx context.Context, req entities.RemoteRequest) (*entities.SubmitResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
