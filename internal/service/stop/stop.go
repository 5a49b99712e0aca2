package stop

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"courier-sync/internal/entities"
	"courier-sync/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Controller owns the stop lifecycle of the active itinerary. Mutations are
// written locally first and then submitted to the sync queue.
type Controller struct {
	repository  Repository
	itineraries ItineraryRepository
	queue       SyncQueue
	requests    RequestFactory
	remote      RemoteStops
	publisher   Publisher
	txManager   TxManager
	log         handlerLogger

	mu      sync.Mutex
	refresh singleflight.Group
}

func New(
	repository Repository,
	itineraries ItineraryRepository,
	queue SyncQueue,
	requests RequestFactory,
	remote RemoteStops,
	publisher Publisher,
	txManager TxManager,
	log handlerLogger,
) *Controller {
	return &Controller{
		repository:  repository,
		itineraries: itineraries,
		queue:       queue,
		requests:    requests,
		remote:      remote,
		publisher:   publisher,
		txManager:   txManager,
		log:         log,
	}
}

// ListStops returns the stops of the active itinerary. Store failures are
// logged and yield an empty list.
func (c *Controller) ListStops(ctx context.Context) []entities.Stop {
	stops, err := c.activeStops(ctx)
	if err != nil {
		c.log.Error("list stops", logger.NewField("error", err))
		return []entities.Stop{}
	}
	return stops
}

func (c *Controller) GetStop(ctx context.Context, id string) (*entities.Stop, error) {
	stop, err := c.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get stop: %w", err)
	}
	return stop, nil
}

func (c *Controller) CreateStop(ctx context.Context, create entities.StopCreate) (*entities.Stop, error) {
	if err := validateCreate(create); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("create stop: generate id: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	itinerary, err := c.itineraries.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("create stop: %w", err)
	}
	stops, err := c.repository.ListByItinerary(ctx, itinerary.ID)
	if err != nil {
		return nil, fmt.Errorf("create stop: %w", err)
	}

	now := time.Now().UTC()
	stop := entities.Stop{
		ID:            id.String(),
		ItineraryID:   itinerary.ID,
		SequenceOrder: len(stops) + 1,
		Status:        entities.StopPending,
		PackageCount:  create.PackageCount,
		Address:       create.Address,
		Latitude:      create.Latitude,
		Longitude:     create.Longitude,
		CreatedAt:     now,
	}

	saved, err := c.commit(ctx, entities.OpStopCreate, entities.SyncSubject{Stop: &stop}, nil, []entities.Stop{stop})
	if err != nil {
		return nil, fmt.Errorf("create stop: %w", err)
	}
	return &saved[0], nil
}

func (c *Controller) EditStop(ctx context.Context, id string, modify entities.StopModify) (*entities.Stop, error) {
	if err := validateModify(modify); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stop, err := c.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("edit stop: %w", err)
	}

	if modify.Address != nil {
		stop.Address = *modify.Address
	}
	if modify.Latitude != nil {
		stop.Latitude = *modify.Latitude
		stop.Longitude = *modify.Longitude
	}
	if modify.PackageCount != nil {
		if !isValidDeliveredCount(stop.DeliveredPackageCount, *modify.PackageCount) {
			return nil, ErrInvalidPackageCount
		}
		stop.PackageCount = *modify.PackageCount
	}

	subject := entities.SyncSubject{StopID: id, Modify: &modify}
	saved, err := c.commit(ctx, entities.OpStopEdit, subject, nil, []entities.Stop{*stop})
	if err != nil {
		return nil, fmt.Errorf("edit stop: %w", err)
	}
	return &saved[0], nil
}

// UpdateStatus applies a status transition. Entering delivered or failed stamps
// the delivery time and advances the current pointer; undo to pending clears
// the delivery data and leaves every other stop untouched.
func (c *Controller) UpdateStatus(ctx context.Context, id string, update entities.StopStatusUpdate) (*entities.Stop, error) {
	if !update.Status.IsValid() {
		return nil, ErrInvalidTransition
	}
	if update.DeliveredPackageCount != nil && update.Status != entities.StopDelivered {
		return nil, ErrInvalidPackageCount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stops, err := c.activeStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	idx := indexOf(stops, id)
	if idx < 0 {
		return nil, ErrStopNotFound
	}

	target := &stops[idx]
	if err := checkTransition(target.Status, update.Status); err != nil {
		return nil, fmt.Errorf("%s -> %s: %w", target.Status, update.Status, err)
	}
	if !isValidDeliveredCount(update.DeliveredPackageCount, target.PackageCount) {
		return nil, ErrInvalidPackageCount
	}

	var promoted []int
	target.Status = update.Status
	if update.Status.IsTerminal() {
		deliveredAt := time.Now().UTC()
		target.DeliveryTime = &deliveredAt
		target.DeliveredPackageCount = update.DeliveredPackageCount
		promoted = advance(stops)
	} else {
		target.DeliveryTime = nil
		target.DeliveredPackageCount = nil
	}

	subject := entities.SyncSubject{
		StopID:       id,
		Stop:         target,
		StatusUpdate: &update,
	}
	saved, err := c.commit(ctx, entities.OpStopStatus, subject, nil, pick(stops, []int{idx}, promoted))
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return findSaved(saved, id), nil
}

// SetCurrent makes a pending stop current and demotes the previous one.
func (c *Controller) SetCurrent(ctx context.Context, id string) (*entities.Stop, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stops, err := c.activeStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("set current: %w", err)
	}
	idx := indexOf(stops, id)
	if idx < 0 {
		return nil, ErrStopNotFound
	}
	if stops[idx].Status != entities.StopPending {
		return nil, ErrStopNotPending
	}

	changed := []int{idx}
	for i := range stops {
		if stops[i].Status == entities.StopCurrent {
			stops[i].Status = entities.StopPending
			changed = append(changed, i)
		}
	}
	stops[idx].Status = entities.StopCurrent

	saved, err := c.commit(ctx, entities.OpStopSetCurrent, entities.SyncSubject{StopID: id}, nil, pick(stops, changed))
	if err != nil {
		return nil, fmt.Errorf("set current: %w", err)
	}
	return findSaved(saved, id), nil
}

// DeleteStop removes the stop, closes the gap in the sequence and promotes the
// next pending stop if the removed one was current. Deleting a missing stop succeeds.
func (c *Controller) DeleteStop(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stops, err := c.activeStops(ctx)
	if err != nil {
		return fmt.Errorf("delete stop: %w", err)
	}
	idx := indexOf(stops, id)
	if idx < 0 {
		return nil
	}

	wasCurrent := stops[idx].Status == entities.StopCurrent
	rest := append(stops[:idx:idx], stops[idx+1:]...)
	var promoted []int
	if wasCurrent {
		promoted = advance(rest)
	}
	changed := pick(rest, renumber(rest), promoted)

	if _, err := c.commit(ctx, entities.OpStopDelete, entities.SyncSubject{StopID: id}, []string{id}, changed); err != nil {
		return fmt.Errorf("delete stop: %w", err)
	}
	return nil
}

// IncrementPackageCount adjusts the package count by delta. It runs outside the
// controller lock; a concurrent increment of the same stop may be lost.
func (c *Controller) IncrementPackageCount(ctx context.Context, id string, delta int) (*entities.Stop, error) {
	stop, err := c.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("increment packages: %w", err)
	}

	count := stop.PackageCount + delta
	if !isValidPackageCount(count) || !isValidDeliveredCount(stop.DeliveredPackageCount, count) {
		return nil, ErrInvalidPackageCount
	}
	stop.PackageCount = count

	subject := entities.SyncSubject{StopID: id, Modify: &entities.StopModify{PackageCount: &count}}
	saved, err := c.commit(ctx, entities.OpStopEdit, subject, nil, []entities.Stop{*stop})
	if err != nil {
		return nil, fmt.Errorf("increment packages: %w", err)
	}
	return &saved[0], nil
}

// Reorder assigns sequenceOrder 1..n following orderedIDs, which must name
// every stop of the active itinerary exactly once.
func (c *Controller) Reorder(ctx context.Context, orderedIDs []string) ([]entities.Stop, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stops, err := c.activeStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("reorder: %w", err)
	}
	ordered, err := arrange(stops, orderedIDs)
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		return ordered, nil
	}

	changed := pick(ordered, renumber(ordered))
	if len(changed) == 0 {
		return ordered, nil
	}

	subject := entities.SyncSubject{OrderedIDs: orderedIDs}
	if _, err := c.commit(ctx, entities.OpStopReorder, subject, nil, changed); err != nil {
		return nil, fmt.Errorf("reorder: %w", err)
	}
	return c.reload(ctx, "reorder")
}

// AdoptOrder stores an order computed by the remote. Nothing is submitted.
// Delivered and failed stops stay first in their current order. Open stops the
// remote did not mention keep their relative order at the end.
func (c *Controller) AdoptOrder(ctx context.Context, remote []entities.Stop) ([]entities.Stop, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stops, err := c.activeStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("adopt order: %w", err)
	}

	ranked := make([]entities.Stop, len(remote))
	copy(ranked, remote)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].SequenceOrder < ranked[j].SequenceOrder })

	done, open := splitTerminal(stops)
	ordered := make([]entities.Stop, 0, len(stops))
	ordered = append(ordered, done...)
	used := make(map[string]bool, len(open))
	for _, r := range ranked {
		if idx := indexOf(open, r.ID); idx >= 0 && !used[r.ID] {
			ordered = append(ordered, open[idx])
			used[r.ID] = true
		}
	}
	for _, stop := range open {
		if !used[stop.ID] {
			ordered = append(ordered, stop)
		}
	}

	changed := pick(ordered, renumber(ordered), normalizeCurrent(ordered))
	if len(changed) > 0 {
		if err := c.repository.SaveMany(ctx, changed); err != nil {
			return nil, fmt.Errorf("adopt order: %w", err)
		}
		c.notify("adopt_order")
	}
	return ordered, nil
}

func (c *Controller) activeStops(ctx context.Context) ([]entities.Stop, error) {
	itinerary, err := c.itineraries.Active(ctx)
	if err != nil {
		return nil, err
	}
	return c.repository.ListByItinerary(ctx, itinerary.ID)
}

func (c *Controller) reload(ctx context.Context, op string) ([]entities.Stop, error) {
	stops, err := c.activeStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stops, nil
}

// commit writes the affected stops as pending sync, then submits the remote
// request. Directly delivered requests flip the stops back to synced.
func (c *Controller) commit(
	ctx context.Context,
	op entities.SyncOperation,
	subject entities.SyncSubject,
	deleted []string,
	changed []entities.Stop,
) ([]entities.Stop, error) {
	req, err := c.requests.Build(op, subject)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range changed {
		changed[i].SyncStatus = entities.SyncPending
		changed[i].UpdatedAt = now
	}

	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		if len(deleted) > 0 {
			if err := c.repository.DeleteMany(ctx, deleted); err != nil {
				return err
			}
		}
		if len(changed) > 0 {
			return c.repository.SaveMany(ctx, changed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer c.notify(string(op))

	result, err := c.queue.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	if result.Delivered && len(changed) > 0 {
		for i := range changed {
			changed[i].SyncStatus = entities.SyncSynced
		}
		if err := c.repository.SaveMany(ctx, changed); err != nil {
			c.log.Warn("mark stops synced", logger.NewField("operation", op.String()), logger.NewField("error", err))
		}
	}
	return changed, nil
}

func (c *Controller) notify(reason string) {
	c.publisher.Publish(entities.Event{
		Type:    entities.EventStopsChanged,
		At:      time.Now().UTC(),
		Payload: map[string]string{"reason": reason},
	})
}

// arrange orders stops by ids, which must be a permutation of the stop ids.
func arrange(stops []entities.Stop, ids []string) ([]entities.Stop, error) {
	if len(ids) != len(stops) {
		return nil, ErrOrderMismatch
	}

	ordered := make([]entities.Stop, 0, len(stops))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		idx := indexOf(stops, id)
		if idx < 0 || seen[id] {
			return nil, ErrOrderMismatch
		}
		seen[id] = true
		ordered = append(ordered, stops[idx])
	}
	return ordered, nil
}

func findSaved(saved []entities.Stop, id string) *entities.Stop {
	idx := indexOf(saved, id)
	if idx < 0 {
		return nil
	}
	return &saved[idx]
}
