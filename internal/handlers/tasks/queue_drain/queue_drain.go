package queue_drain

import (
	"context"
	"errors"
	"time"

	"courier-sync/internal/service/stop"
	"courier-sync/pkg/logger"
)

// QueueDrain replays the sync queue while online and pulls a fresh snapshot
// once nothing is left to send.
type QueueDrain struct {
	log       handlerLogger
	queue     Queue
	refresher Refresher
	online    Connectivity
	interval  time.Duration
	trigger   chan struct{}
}

func NewQueueDrain(
	log handlerLogger,
	queue Queue,
	refresher Refresher,
	online Connectivity,
	interval time.Duration,
) *QueueDrain {
	return &QueueDrain{
		log:       log,
		queue:     queue,
		refresher: refresher,
		online:    online,
		interval:  interval,
		trigger:   make(chan struct{}, 1),
	}
}

// Trigger asks for a run ahead of schedule. Requests made while one is already
// pending collapse into it.
func (q *QueueDrain) Trigger() {
	select {
	case q.trigger <- struct{}{}:
	default:
	}
}

// OnReconnect matches the connectivity listener signature.
func (q *QueueDrain) OnReconnect(context.Context) {
	q.Trigger()
}

func (q *QueueDrain) Triggers() <-chan struct{} {
	return q.trigger
}

func (q *QueueDrain) TTL() time.Duration {
	return q.interval
}

func (q *QueueDrain) Info() string {
	return "sync queue drain"
}

// Do fails only on local store errors. Remote trouble is left for the next run.
func (q *QueueDrain) Do(ctx context.Context) error {
	if !q.online.IsOnline() {
		return nil
	}

	report, err := q.queue.Drain(ctx)
	if err != nil {
		return err
	}
	if report.Skipped || report.Remaining > 0 {
		return nil
	}

	stops, err := q.refresher.Refresh(ctx)
	switch {
	case errors.Is(err, stop.ErrRefreshDeferred):
		return nil
	case err != nil:
		q.log.Warn("stop refresh failed", logger.NewField("error", err))
		return nil
	}

	q.log.Info("stops refreshed", logger.NewField("count", len(stops)))
	return nil
}
