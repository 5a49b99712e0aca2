package syncqueue

import (
	"context"

	"courier-sync/internal/store"
)

type Store interface {
	Put(ctx context.Context, partition store.Partition, record store.Record) error
	GetByIndexRange(ctx context.Context, partition store.Partition, index string, from, to any) ([]store.Raw, error)
	Delete(ctx context.Context, partition store.Partition, key string) error
	Count(ctx context.Context, partition store.Partition) (int, error)
}
