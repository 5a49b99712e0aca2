package settings

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"courier-sync/internal/entities"
)

// Service owns the courier's earnings settings and the cached session.
type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) Get(ctx context.Context) (*entities.Settings, error) {
	settings, err := s.repository.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Update replaces the settings. Bonus thresholds are stored in ascending
// order of deliveries.
func (s *Service) Update(ctx context.Context, settings entities.Settings) (*entities.Settings, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	settings.StartAddress = strings.TrimSpace(settings.StartAddress)
	settings.BonusThresholds = slices.Clone(settings.BonusThresholds)
	slices.SortFunc(settings.BonusThresholds, func(a, b entities.BonusThreshold) int {
		return a.Deliveries - b.Deliveries
	})
	settings.UpdatedAt = time.Now().UTC()

	if err := s.repository.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return &settings, nil
}

func (s *Service) Session(ctx context.Context) (*entities.Session, error) {
	session, err := s.repository.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// SetSession caches the signed-in user. An empty token signs the user out.
func (s *Service) SetSession(ctx context.Context, session entities.Session) (*entities.Session, error) {
	if strings.TrimSpace(session.Token) == "" {
		if err := s.repository.ClearSession(ctx); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return nil, nil
	}

	session.UpdatedAt = time.Now().UTC()
	if err := s.repository.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

func validateSettings(settings entities.Settings) error {
	if settings.RatePerPackage < 0 || math.IsNaN(settings.RatePerPackage) || math.IsInf(settings.RatePerPackage, 0) {
		return ErrInvalidRate
	}

	seen := make(map[int]struct{}, len(settings.BonusThresholds))
	for _, threshold := range settings.BonusThresholds {
		if threshold.Deliveries <= 0 || threshold.Bonus < 0 || math.IsNaN(threshold.Bonus) {
			return fmt.Errorf("%w: %d deliveries, bonus %v", ErrInvalidThreshold, threshold.Deliveries, threshold.Bonus)
		}
		if _, ok := seen[threshold.Deliveries]; ok {
			return fmt.Errorf("%w: duplicate threshold at %d deliveries", ErrInvalidThreshold, threshold.Deliveries)
		}
		seen[threshold.Deliveries] = struct{}{}
	}

	if loc := settings.StartLocation; loc != nil {
		if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
			return ErrInvalidStartLocation
		}
	}
	return nil
}
