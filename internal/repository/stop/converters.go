package stop

import "courier-sync/internal/entities"

func ToDomain(r *StopRecord) *entities.Stop {
	if r == nil {
		return nil
	}
	return &entities.Stop{
		ID:                    r.ID,
		ItineraryID:           r.ItineraryID,
		SequenceOrder:         r.SequenceOrder,
		Status:                entities.StopStatus(r.Status),
		PackageCount:          r.PackageCount,
		DeliveredPackageCount: r.DeliveredPackageCount,
		Address:               r.Address,
		Latitude:              r.Latitude,
		Longitude:             r.Longitude,
		DeliveryTime:          r.DeliveryTime,
		SyncStatus:            entities.SyncStatus(r.SyncStatus),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func FromDomain(s *entities.Stop) *StopRecord {
	if s == nil {
		return nil
	}
	syncStatus := s.SyncStatus
	if syncStatus == "" {
		syncStatus = entities.SyncSynced
	}
	return &StopRecord{
		ID:                    s.ID,
		ItineraryID:           s.ItineraryID,
		SequenceOrder:         s.SequenceOrder,
		Status:                s.Status.String(),
		PackageCount:          s.PackageCount,
		DeliveredPackageCount: s.DeliveredPackageCount,
		Address:               s.Address,
		Latitude:              s.Latitude,
		Longitude:             s.Longitude,
		DeliveryTime:          s.DeliveryTime,
		SyncStatus:            syncStatus.String(),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}
