package tiles

import (
	"context"

	"courier-sync/internal/store"
)

type Store interface {
	Put(ctx context.Context, partition store.Partition, record store.Record) error
	Get(ctx context.Context, partition store.Partition, key string) (store.Raw, error)
	GetAll(ctx context.Context, partition store.Partition) ([]store.Raw, error)
	GetByIndex(ctx context.Context, partition store.Partition, index string, value any) ([]store.Raw, error)
}
