package queue_drain

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=queue_drain_test

import (
	"context"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

type Queue interface {
	Drain(ctx context.Context) (*entities.DrainReport, error)
}

type Refresher interface {
	Refresh(ctx context.Context) ([]entities.Stop, error)
}

type Connectivity interface {
	IsOnline() bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
