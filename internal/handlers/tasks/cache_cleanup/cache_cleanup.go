package cache_cleanup

import (
	"context"
	"time"

	"courier-sync/pkg/logger"
)

type Cache interface {
	DeleteExpired(ctx context.Context) (int, error)
}

type CacheCleanup struct {
	log      logger.Logger
	cache    Cache
	interval time.Duration
}

func NewCacheCleanup(log logger.Logger, cache Cache, interval time.Duration) *CacheCleanup {
	return &CacheCleanup{
		log:      log,
		cache:    cache,
		interval: interval,
	}
}

func (c *CacheCleanup) TTL() time.Duration {
	return c.interval
}

func (c *CacheCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	removed, err := c.cache.DeleteExpired(ctxWithTimeout)

	if removed > 0 {
		c.log.With(
			logger.NewField("expired_entries", removed),
		).Info("cache cleanup")
	}

	return err
}

func (c *CacheCleanup) Info() string {
	return "cache cleanup"
}
