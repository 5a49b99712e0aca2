package cache

import (
	"context"

	"courier-sync/internal/store"
)

type Store interface {
	Put(ctx context.Context, partition store.Partition, record store.Record) error
	Get(ctx context.Context, partition store.Partition, key string) (store.Raw, error)
	GetByIndexRange(ctx context.Context, partition store.Partition, index string, from, to any) ([]store.Raw, error)
	DeleteMany(ctx context.Context, partition store.Partition, keys []string) error
}
