package itinerary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"courier-sync/internal/entities"

	"github.com/google/uuid"
)

type Itinerary struct {
	repository Repository
	stops      StopRepository
	settings   SettingsRepository
	earnings   EarningsFactory
	requests   RequestFactory
	queue      SyncQueue
	txManager  TxManager

	mu sync.Mutex
}

func New(
	repository Repository,
	stops StopRepository,
	settings SettingsRepository,
	earnings EarningsFactory,
	requests RequestFactory,
	queue SyncQueue,
	txManager TxManager,
) *Itinerary {
	return &Itinerary{
		repository: repository,
		stops:      stops,
		settings:   settings,
		earnings:   earnings,
		requests:   requests,
		queue:      queue,
		txManager:  txManager,
	}
}

func (s *Itinerary) Active(ctx context.Context) (*entities.Itinerary, error) {
	itinerary, err := s.repository.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("active itinerary: %w", err)
	}
	return itinerary, nil
}

// Create starts a new route. Only one itinerary may be active.
func (s *Itinerary) Create(ctx context.Context, name string, date time.Time) (*entities.Itinerary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("create itinerary: generate id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.repository.Active(ctx)
	switch {
	case err == nil:
		return nil, ErrActiveItineraryExists
	case !errors.Is(err, ErrNoActiveItinerary):
		return nil, fmt.Errorf("create itinerary: %w", err)
	}

	itinerary := entities.Itinerary{
		ID:        id.String(),
		Name:      name,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Status:    entities.ItineraryActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commit(ctx, entities.OpItineraryCreate, itinerary); err != nil {
		return nil, fmt.Errorf("create itinerary: %w", err)
	}
	return &itinerary, nil
}

// Finalize closes the active route once no stop is pending or current and
// records its earnings.
func (s *Itinerary) Finalize(ctx context.Context) (*entities.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var itinerary *entities.Itinerary
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		active, err := s.repository.Active(ctx)
		if err != nil {
			return err
		}

		stops, err := s.stops.ListByItinerary(ctx, active.ID)
		if err != nil {
			return err
		}
		for _, stop := range stops {
			if !stop.Status.IsTerminal() {
				return ErrItineraryHasOpenStops
			}
		}

		settings, err := s.settings.GetSettings(ctx)
		if err != nil {
			return err
		}

		completedAt := time.Now().UTC()
		active.Status = entities.ItineraryCompleted
		active.TotalEarnings = s.earnings.Calculate(*settings, stops)
		active.CompletedAt = &completedAt

		if err := s.repository.Save(ctx, *active); err != nil {
			return err
		}
		itinerary = active
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finalize itinerary: %w", err)
	}

	req, err := s.requests.Build(entities.OpItineraryFinalize, entities.SyncSubject{Itinerary: itinerary})
	if err != nil {
		return nil, fmt.Errorf("finalize itinerary: %w", err)
	}
	if _, err := s.queue.Submit(ctx, req); err != nil {
		return nil, fmt.Errorf("finalize itinerary: %w", err)
	}
	return itinerary, nil
}

func (s *Itinerary) commit(ctx context.Context, op entities.SyncOperation, itinerary entities.Itinerary) error {
	req, err := s.requests.Build(op, entities.SyncSubject{Itinerary: &itinerary})
	if err != nil {
		return err
	}
	if err := s.repository.Save(ctx, itinerary); err != nil {
		return err
	}
	if _, err := s.queue.Submit(ctx, req); err != nil {
		return err
	}
	return nil
}
