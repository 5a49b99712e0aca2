package settings

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_test

import (
	"context"

	"courier-sync/internal/entities"
)

type Repository interface {
	GetSettings(ctx context.Context) (*entities.Settings, error)
	SaveSettings(ctx context.Context, settings entities.Settings) error
	GetSession(ctx context.Context) (*entities.Session, error)
	SaveSession(ctx context.Context, session entities.Session) error
	ClearSession(ctx context.Context) error
}
