package delivery

import (
	"time"

	"courier-sync/internal/entities"
)

type remoteStop struct {
	ID                    string     `json:"id"`
	ItineraryID           string     `json:"itineraryId"`
	SequenceOrder         int        `json:"sequenceOrder"`
	Status                string     `json:"status"`
	PackageCount          int        `json:"packageCount"`
	DeliveredPackageCount *int       `json:"deliveredPackageCount,omitempty"`
	Address               string     `json:"address"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	DeliveryTime          *time.Time `json:"deliveryTime,omitempty"`
}

type optimizeRequest struct {
	StartLatitude  *float64 `json:"startLatitude,omitempty"`
	StartLongitude *float64 `json:"startLongitude,omitempty"`
}

// Remote stops are canonical, so they arrive already synced.
func toDomain(r *remoteStop) entities.Stop {
	return entities.Stop{
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
		SyncStatus:            entities.SyncSynced,
	}
}

func toDomainList(stops []remoteStop) []entities.Stop {
	result := make([]entities.Stop, 0, len(stops))
	for i := range stops {
		result = append(result, toDomain(&stops[i]))
	}
	return result
}

func fromStart(start *entities.Coordinates) optimizeRequest {
	if start == nil {
		return optimizeRequest{}
	}
	lat, lon := start.Latitude, start.Longitude
	return optimizeRequest{StartLatitude: &lat, StartLongitude: &lon}
}
