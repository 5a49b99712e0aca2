package settings

import "courier-sync/internal/entities"

func SettingsToDomain(r *SettingsRecord) *entities.Settings {
	settings := &entities.Settings{
		RatePerPackage: r.RatePerPackage,
		StartAddress:   r.StartAddress,
		UpdatedAt:      r.UpdatedAt,
	}
	for _, t := range r.BonusThresholds {
		settings.BonusThresholds = append(settings.BonusThresholds, entities.BonusThreshold{
			Deliveries: t.Deliveries,
			Bonus:      t.Bonus,
		})
	}
	if r.StartLatitude != nil && r.StartLongitude != nil {
		settings.StartLocation = &entities.Coordinates{
			Latitude:  *r.StartLatitude,
			Longitude: *r.StartLongitude,
		}
	}
	return settings
}

func SettingsFromDomain(s *entities.Settings) *SettingsRecord {
	record := &SettingsRecord{
		RatePerPackage: s.RatePerPackage,
		StartAddress:   s.StartAddress,
		UpdatedAt:      s.UpdatedAt,
	}
	for _, t := range s.BonusThresholds {
		record.BonusThresholds = append(record.BonusThresholds, BonusThresholdDB{
			Deliveries: t.Deliveries,
			Bonus:      t.Bonus,
		})
	}
	if s.StartLocation != nil {
		lat, lon := s.StartLocation.Latitude, s.StartLocation.Longitude
		record.StartLatitude = &lat
		record.StartLongitude = &lon
	}
	return record
}

func SessionToDomain(r *SessionRecord) *entities.Session {
	return &entities.Session{
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Token:       r.Token,
		UpdatedAt:   r.UpdatedAt,
	}
}

func SessionFromDomain(s *entities.Session) *SessionRecord {
	return &SessionRecord{
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
		Token:       s.Token,
		UpdatedAt:   s.UpdatedAt,
	}
}
