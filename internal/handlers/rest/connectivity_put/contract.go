//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connectivity_put_test
package connectivity_put

import (
	"context"

	"courier-sync/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Connectivity interface {
	Report(ctx context.Context, online bool)
}
