package cache

import (
	"context"
	"time"

	"courier-sync/internal/entities"
)

func (r *Repository) SaveLocation(ctx context.Context, location entities.DeviceLocation, ttl time.Duration) error {
	return r.Set(ctx, keyDeviceLocation, LocationFromDomain(&location), ttl)
}

// LastLocation returns nil when no unexpired location is cached.
func (r *Repository) LastLocation(ctx context.Context) (*entities.DeviceLocation, error) {
	var location LocationDB
	found, err := r.Get(ctx, keyDeviceLocation, &location)
	if err != nil || !found {
		return nil, err
	}
	return LocationToDomain(&location), nil
}
