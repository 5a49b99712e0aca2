package converters

import (
	"courier-sync/internal/entities"
	"courier-sync/internal/generated/dto"

	"github.com/AlekSi/pointer"
)

func StopToDTO(s *entities.Stop) dto.Stop {
	return dto.Stop{
		Id:                    s.ID,
		ItineraryId:           s.ItineraryID,
		SequenceOrder:         s.SequenceOrder,
		Status:                dto.StopStatus(s.Status),
		PackageCount:          s.PackageCount,
		DeliveredPackageCount: s.DeliveredPackageCount,
		Address:               s.Address,
		Latitude:              s.Latitude,
		Longitude:             s.Longitude,
		DeliveryTime:          s.DeliveryTime,
		SyncStatus:            dto.StopSyncStatus(s.SyncStatus),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func StopsToDTO(stops []entities.Stop) []dto.Stop {
	res := make([]dto.Stop, 0, len(stops))
	for i := range stops {
		res = append(res, StopToDTO(&stops[i]))
	}
	return res
}

func CoordinatesToDTO(c entities.Coordinates) dto.Coordinates {
	return dto.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func CoordinatesFromDTO(c dto.Coordinates) entities.Coordinates {
	return entities.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func PolygonToDTO(points []entities.Coordinates) []dto.Coordinates {
	res := make([]dto.Coordinates, 0, len(points))
	for _, p := range points {
		res = append(res, CoordinatesToDTO(p))
	}
	return res
}

func PolygonFromDTO(points []dto.Coordinates) []entities.Coordinates {
	res := make([]entities.Coordinates, 0, len(points))
	for _, p := range points {
		res = append(res, CoordinatesFromDTO(p))
	}
	return res
}

func SectorToDTO(s *entities.Sector) dto.Sector {
	return dto.Sector{
		Id:        s.ID,
		Name:      s.Name,
		Polygon:   PolygonToDTO(s.Polygon),
		CreatedAt: s.CreatedAt,
	}
}

func ItineraryToDTO(it *entities.Itinerary) dto.Itinerary {
	return dto.Itinerary{
		Id:            it.ID,
		Name:          it.Name,
		Date:          it.Date.Format(entities.ItineraryDateLayout),
		Status:        dto.ItineraryStatus(it.Status),
		TotalEarnings: it.TotalEarnings,
		CreatedAt:     it.CreatedAt,
		CompletedAt:   it.CompletedAt,
	}
}

func DrainReportToDTO(r *entities.DrainReport) dto.DrainReport {
	res := dto.DrainReport{
		Skipped:   r.Skipped,
		Processed: r.Processed,
		Succeeded: r.Succeeded,
		Conflicts: r.Conflicts,
		Invalid:   r.Invalid,
		Retried:   r.Retried,
		Dropped:   r.Dropped,
		Halted:    r.Halted,
		Remaining: r.Remaining,
	}
	if r.SkipReason != "" {
		res.SkipReason = pointer.To(r.SkipReason)
	}
	return res
}

func SyncStateToDTO(s *entities.SyncState) dto.SyncStatus {
	items := make([]dto.SyncQueueItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.SyncQueueItem{
			Id:        item.ID,
			Operation: item.Operation.String(),
			Method:    item.Method,
			Endpoint:  item.Endpoint,
			Timestamp: item.Timestamp,
			Retries:   item.Retries,
		})
	}
	return dto.SyncStatus{
		Online:      s.Online,
		Draining:    s.Draining,
		QueueLength: s.QueueLength,
		Items:       items,
	}
}

func SettingsToDTO(s *entities.Settings) dto.Settings {
	thresholds := make([]dto.BonusThreshold, 0, len(s.BonusThresholds))
	for _, t := range s.BonusThresholds {
		thresholds = append(thresholds, dto.BonusThreshold{Deliveries: t.Deliveries, Bonus: t.Bonus})
	}

	res := dto.Settings{
		RatePerPackage:  s.RatePerPackage,
		BonusThresholds: thresholds,
	}
	if s.StartAddress != "" {
		res.StartAddress = pointer.To(s.StartAddress)
	}
	if s.StartLocation != nil {
		loc := CoordinatesToDTO(*s.StartLocation)
		res.StartLocation = &loc
	}
	if !s.UpdatedAt.IsZero() {
		res.UpdatedAt = pointer.To(s.UpdatedAt)
	}
	return res
}

func SettingsFromDTO(s dto.Settings) entities.Settings {
	thresholds := make([]entities.BonusThreshold, 0, len(s.BonusThresholds))
	for _, t := range s.BonusThresholds {
		thresholds = append(thresholds, entities.BonusThreshold{Deliveries: t.Deliveries, Bonus: t.Bonus})
	}

	res := entities.Settings{
		RatePerPackage:  s.RatePerPackage,
		BonusThresholds: thresholds,
		StartAddress:    pointer.Get(s.StartAddress),
	}
	if s.StartLocation != nil {
		loc := CoordinatesFromDTO(*s.StartLocation)
		res.StartLocation = &loc
	}
	return res
}

func CityToDTO(c *entities.OfflineCity) dto.OfflineCity {
	return dto.OfflineCity{
		Id:           c.ID,
		Name:         c.Name,
		Bounds:       PolygonToDTO(c.Bounds),
		MinZoom:      c.MinZoom,
		MaxZoom:      c.MaxZoom,
		TileCount:    c.TileCount,
		DownloadedAt: c.DownloadedAt,
	}
}

func EventToDTO(e entities.Event) dto.Event {
	return dto.Event{
		Type:    dto.EventType(e.Type),
		At:      e.At,
		Payload: e.Payload,
	}
}
