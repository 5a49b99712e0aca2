package settings

import (
	"context"
	"fmt"

	"courier-sync/internal/entities"
	"courier-sync/internal/repository"
	"courier-sync/internal/store"
)

type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

// GetSettings returns the cached settings, or zero settings when none were saved yet.
func (r *Repository) GetSettings(ctx context.Context) (*entities.Settings, error) {
	raw, err := r.store.Get(ctx, store.PartitionSettings, settingsKey)
	if err != nil {
		if repository.IsNotFound(err) {
			return &entities.Settings{}, nil
		}
		return nil, fmt.Errorf("settings repository get: %w", err)
	}

	var record SettingsRecord
	if err := raw.Decode(&record); err != nil {
		return nil, fmt.Errorf("settings repository get: %w", err)
	}
	return SettingsToDomain(&record), nil
}

func (r *Repository) SaveSettings(ctx context.Context, settings entities.Settings) error {
	if err := r.store.Put(ctx, store.PartitionSettings, SettingsFromDomain(&settings)); err != nil {
		return fmt.Errorf("settings repository save: %w", err)
	}
	return nil
}

// GetSession returns nil without error when no user is signed in.
func (r *Repository) GetSession(ctx context.Context) (*entities.Session, error) {
	raw, err := r.store.Get(ctx, store.PartitionSession, sessionKey)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("session repository get: %w", err)
	}

	var record SessionRecord
	if err := raw.Decode(&record); err != nil {
		return nil, fmt.Errorf("session repository get: %w", err)
	}
	return SessionToDomain(&record), nil
}

func (r *Repository) SaveSession(ctx context.Context, session entities.Session) error {
	if err := r.store.Put(ctx, store.PartitionSession, SessionFromDomain(&session)); err != nil {
		return fmt.Errorf("session repository save: %w", err)
	}
	return nil
}

func (r *Repository) ClearSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.PartitionSession, sessionKey); err != nil {
		return fmt.Errorf("session repository clear: %w", err)
	}
	return nil
}
