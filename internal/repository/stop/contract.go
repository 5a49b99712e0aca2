package stop

import (
	"context"

	"courier-sync/internal/store"
)

type Store interface {
	PutMany(ctx context.Context, partition store.Partition, records []store.Record) error
	Get(ctx context.Context, partition store.Partition, key string) (store.Raw, error)
	GetByIndex(ctx context.Context, partition store.Partition, index string, value any) ([]store.Raw, error)
	DeleteMany(ctx context.Context, partition store.Partition, keys []string) error
}
