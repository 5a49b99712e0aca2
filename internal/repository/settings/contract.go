package settings

import (
	"context"

	"courier-sync/internal/store"
)

type Store interface {
	Put(ctx context.Context, partition store.Partition, record store.Record) error
	Get(ctx context.Context, partition store.Partition, key string) (store.Raw, error)
	Delete(ctx context.Context, partition store.Partition, key string) error
}
