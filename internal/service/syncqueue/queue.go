package syncqueue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"

	"github.com/google/uuid"
)

const (
	skipReasonDraining = "drain in progress"
	skipReasonOffline  = "offline"
)

type Queue struct {
	repository   Repository
	sender       Sender
	connectivity Connectivity
	publisher    Publisher
	log          handlerLogger
	maxRetries   int
	now          func() time.Time

	draining atomic.Bool

	mu            sync.Mutex
	lastTimestamp int64
	loaded        bool
}

func New(
	repository Repository,
	sender Sender,
	connectivity Connectivity,
	publisher Publisher,
	log handlerLogger,
	maxRetries int,
) *Queue {
	return NewWithClock(repository, sender, connectivity, publisher, log, maxRetries, time.Now)
}

func NewWithClock(
	repository Repository,
	sender Sender,
	connectivity Connectivity,
	publisher Publisher,
	log handlerLogger,
	maxRetries int,
	now func() time.Time,
) *Queue {
	return &Queue{
		repository:   repository,
		sender:       sender,
		connectivity: connectivity,
		publisher:    publisher,
		log:          log,
		maxRetries:   maxRetries,
		now:          now,
	}
}

// Enqueue persists the request for later replay. It never touches the network.
func (q *Queue) Enqueue(ctx context.Context, req entities.RemoteRequest) (*entities.SyncQueueItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.loaded {
		items, err := q.repository.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("enqueue: %w", err)
		}
		for _, item := range items {
			if item.Timestamp > q.lastTimestamp {
				q.lastTimestamp = item.Timestamp
			}
		}
		q.loaded = true
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("enqueue: generate id: %w", err)
	}

	ts := q.now().UnixNano()
	if ts <= q.lastTimestamp {
		ts = q.lastTimestamp + 1
	}

	item := entities.SyncQueueItem{
		ID:        id.String(),
		Operation: req.Operation,
		Method:    req.Method,
		Endpoint:  req.Endpoint,
		Payload:   req.Payload,
		Timestamp: ts,
	}
	if err := q.repository.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("enqueue: %w", err)
	}
	q.lastTimestamp = ts

	SyncQueueDepth.Inc()
	q.log.Debug("mutation queued",
		logger.NewField("id", item.ID),
		logger.NewField("operation", item.Operation.String()),
	)

	return &item, nil
}

// Submit sends the request directly when online with nothing queued ahead of it,
// and queues it otherwise.
func (q *Queue) Submit(ctx context.Context, req entities.RemoteRequest) (*entities.SubmitResult, error) {
	if !q.connectivity.IsOnline() {
		return q.enqueueDeferred(ctx, req)
	}

	queued, err := q.repository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	if queued > 0 {
		return q.enqueueDeferred(ctx, req)
	}

	code, sendErr := q.sender.Send(ctx, req)
	result := classify(req.Method, code, sendErr)
	SyncOutcomesTotal.WithLabelValues(req.Operation.String(), string(result)).Inc()

	switch {
	case result.resolved():
		q.logResolved(result, req.Operation, code)
		return &entities.SubmitResult{Delivered: true}, nil
	case result == outcomeTransient:
		q.log.Info("direct send failed, queueing",
			logger.NewField("operation", req.Operation.String()),
			logger.NewField("code", code),
			logger.NewField("error", sendErr),
		)
		return q.enqueueDeferred(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %s %s returned %d", ErrRemoteRejected, req.Method, req.Endpoint, code)
	}
}

func (q *Queue) enqueueDeferred(ctx context.Context, req entities.RemoteRequest) (*entities.SubmitResult, error) {
	item, err := q.Enqueue(ctx, req)
	if err != nil {
		return nil, err
	}
	return &entities.SubmitResult{ItemID: item.ID}, nil
}

// Drain replays queued items in timestamp order. Only one drain runs at a time;
// a concurrent call or a call while offline reports Skipped.
func (q *Queue) Drain(ctx context.Context) (*entities.DrainReport, error) {
	if !q.connectivity.IsOnline() {
		return &entities.DrainReport{Skipped: true, SkipReason: skipReasonOffline}, nil
	}
	if !q.draining.CompareAndSwap(false, true) {
		return &entities.DrainReport{Skipped: true, SkipReason: skipReasonDraining}, nil
	}
	defer q.draining.Store(false)

	start := time.Now()
	defer func() {
		SyncDrainDuration.Observe(time.Since(start).Seconds())
	}()

	items, err := q.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("drain: %w", err)
	}

	report := &entities.DrainReport{}
	for _, item := range items {
		if ctx.Err() != nil {
			report.Halted = true
			break
		}

		halt, err := q.replay(ctx, item, report)
		if err != nil {
			return nil, fmt.Errorf("drain: %w", err)
		}
		if halt {
			report.Halted = true
			break
		}
	}
	report.Remaining = report.Retried + len(items) - report.Processed

	SyncQueueDepth.Set(float64(report.Remaining))
	q.log.Info("sync queue drained",
		logger.NewField("processed", report.Processed),
		logger.NewField("succeeded", report.Succeeded),
		logger.NewField("retried", report.Retried),
		logger.NewField("dropped", report.Dropped),
		logger.NewField("remaining", report.Remaining),
	)
	q.publisher.Publish(entities.Event{Type: entities.EventSyncDrained, At: q.now(), Payload: *report})

	return report, nil
}

// replay sends one item and applies its outcome. It reports whether the drain must stop.
func (q *Queue) replay(ctx context.Context, item entities.SyncQueueItem, report *entities.DrainReport) (bool, error) {
	report.Processed++

	code, sendErr := q.sender.Send(ctx, item.Request())
	result := classify(item.Method, code, sendErr)
	SyncOutcomesTotal.WithLabelValues(item.Operation.String(), string(result)).Inc()

	if result.resolved() {
		if err := q.repository.Delete(ctx, item.ID); err != nil {
			return false, err
		}
		q.logResolved(result, item.Operation, code)
		switch result {
		case outcomeConflict:
			report.Conflicts++
		case outcomeInvalid:
			report.Invalid++
		default:
			report.Succeeded++
		}
		return false, nil
	}

	log := q.log.With(
		logger.NewField("id", item.ID),
		logger.NewField("operation", item.Operation.String()),
		logger.NewField("code", code),
		logger.NewField("retries", item.Retries),
	)

	if item.Retries >= q.maxRetries {
		if err := q.repository.Delete(ctx, item.ID); err != nil {
			return false, err
		}
		report.Dropped++
		log.Warn("retry ceiling reached, mutation dropped", logger.NewField("error", sendErr))
		// a dropped item no longer blocks those behind it
		return false, nil
	}

	item.Retries++
	if err := q.repository.Save(ctx, item); err != nil {
		return false, err
	}
	report.Retried++

	if result == outcomeTransient {
		log.Info("transient failure, drain halted", logger.NewField("error", sendErr))
		return true, nil
	}

	log.Warn("mutation rejected, will retry")
	return false, nil
}

func (q *Queue) logResolved(result outcome, op entities.SyncOperation, code int) {
	fields := []logger.Field{
		logger.NewField("operation", op.String()),
		logger.NewField("code", code),
	}
	switch result {
	case outcomeConflict:
		q.log.Warn("remote conflict, server state wins", fields...)
	case outcomeInvalid:
		q.log.Warn("remote refused payload, mutation discarded", fields...)
	default:
		q.log.Debug("mutation synced", fields...)
	}
}

func (q *Queue) Len(ctx context.Context) (int, error) {
	count, err := q.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("queue length: %w", err)
	}
	return count, nil
}

func (q *Queue) Pending(ctx context.Context) ([]entities.SyncQueueItem, error) {
	items, err := q.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("pending items: %w", err)
	}
	return items, nil
}

func (q *Queue) IsDraining() bool {
	return q.draining.Load()
}
