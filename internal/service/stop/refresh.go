package stop

import (
	"context"
	"fmt"
	"sort"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"
)

const refreshKey = "refresh"

// Refresh replaces local stops with the remote snapshot. It is deferred while
// mutations are still queued, so the snapshot cannot hide them. Local stops
// the remote does not know and that still await sync are kept at the end.
// Concurrent calls share one remote fetch.
func (c *Controller) Refresh(ctx context.Context) ([]entities.Stop, error) {
	result, err, shared := c.refresh.Do(refreshKey, func() (any, error) {
		return c.doRefresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.log.Info("refresh joined an in-flight fetch")
	}
	return result.([]entities.Stop), nil
}

func (c *Controller) doRefresh(ctx context.Context) ([]entities.Stop, error) {
	queued, err := c.queue.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if queued > 0 {
		return nil, fmt.Errorf("%w: %d queued", ErrRefreshDeferred, queued)
	}

	itinerary, err := c.itineraries.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	remote, err := c.remote.FetchStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	local, err := c.repository.ListByItinerary(ctx, itinerary.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	merged, removed := merge(itinerary.ID, local, remote)

	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		if len(removed) > 0 {
			if err := c.repository.DeleteMany(ctx, removed); err != nil {
				return err
			}
		}
		if len(merged) > 0 {
			return c.repository.SaveMany(ctx, merged)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}

	c.log.Info("stops refreshed",
		logger.NewField("remote", len(remote)),
		logger.NewField("stops", len(merged)),
		logger.NewField("removed", len(removed)),
	)
	c.notify("refresh")

	return merged, nil
}

// merge adopts the remote stops and overlays local stops pending sync that the
// remote does not know. It returns the merged stops and the ids to delete.
func merge(itineraryID string, local, remote []entities.Stop) ([]entities.Stop, []string) {
	merged := make([]entities.Stop, 0, len(remote)+len(local))
	known := make(map[string]bool, len(remote))
	for _, stop := range remote {
		if known[stop.ID] {
			continue
		}
		known[stop.ID] = true
		stop.ItineraryID = itineraryID
		stop.SyncStatus = entities.SyncSynced
		merged = append(merged, stop)
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].SequenceOrder < merged[j].SequenceOrder })

	var removed []string
	for _, stop := range local {
		switch {
		case known[stop.ID]:
			if idx := indexOf(merged, stop.ID); idx >= 0 {
				merged[idx].CreatedAt = stop.CreatedAt
			}
		case stop.SyncStatus == entities.SyncPending:
			merged = append(merged, stop)
		default:
			removed = append(removed, stop.ID)
		}
	}

	renumber(merged)
	normalizeCurrent(merged)

	return merged, removed
}
