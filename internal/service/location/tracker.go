package location

import (
	"context"
	"fmt"
	"sync"
	"time"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

// lastKnownTTL bounds how long a last-known location survives in the cache.
const lastKnownTTL = 24 * time.Hour

// Tracker keeps the device location reported by the UI shell.
type Tracker struct {
	repository Repository
	log        handlerLogger
	maxAge     time.Duration
	timeout    time.Duration
	now        func() time.Time

	mu      sync.Mutex
	updated chan struct{}
}

func New(repository Repository, log handlerLogger, maxAge, timeout time.Duration) *Tracker {
	return NewWithClock(repository, log, maxAge, timeout, time.Now)
}

func NewWithClock(repository Repository, log handlerLogger, maxAge, timeout time.Duration, now func() time.Time) *Tracker {
	return &Tracker{
		repository: repository,
		log:        log,
		maxAge:     maxAge,
		timeout:    timeout,
		now:        now,
		updated:    make(chan struct{}),
	}
}

// Report stores a location fix and wakes callers waiting in Fresh.
func (t *Tracker) Report(ctx context.Context, location entities.DeviceLocation) error {
	if location.Latitude < -90 || location.Latitude > 90 ||
		location.Longitude < -180 || location.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	if location.RecordedAt.IsZero() {
		location.RecordedAt = t.now().UTC()
	}

	if err := t.repository.SaveLocation(ctx, location, lastKnownTTL); err != nil {
		return fmt.Errorf("report location: %w", err)
	}

	t.mu.Lock()
	close(t.updated)
	t.updated = make(chan struct{})
	t.mu.Unlock()

	t.log.Debug("device location updated", logger.NewField("accuracy", location.Accuracy))
	return nil
}

// Last returns the last-known location regardless of age.
func (t *Tracker) Last(ctx context.Context) (*entities.DeviceLocation, error) {
	location, err := t.repository.LastLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("last location: %w", err)
	}
	if location == nil {
		return nil, ErrNoLocation
	}
	return location, nil
}

// Fresh returns a location no older than the configured max age. When the
// cached one is stale it waits for the next report, up to the configured timeout.
func (t *Tracker) Fresh(ctx context.Context) (*entities.DeviceLocation, error) {
	t.mu.Lock()
	updated := t.updated
	t.mu.Unlock()

	if location, err := t.repository.LastLocation(ctx); err == nil && t.isFresh(location) {
		return location, nil
	}

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case <-updated:
	case <-timer.C:
		return nil, fmt.Errorf("%w: no fix within %s", ErrNoLocation, t.timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	location, err := t.repository.LastLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("fresh location: %w", err)
	}
	if !t.isFresh(location) {
		return nil, ErrNoLocation
	}
	return location, nil
}

func (t *Tracker) isFresh(location *entities.DeviceLocation) bool {
	return location != nil && t.now().Sub(location.RecordedAt) <= t.maxAge
}
