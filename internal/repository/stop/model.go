package stop

import (
	"errors"
	"time"
)

const (
	recordKind    = "stop"
	recordVersion = 1
)

type StopRecord struct {
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
	SyncStatus            string     `json:"syncStatus"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func (r *StopRecord) Key() string        { return r.ID }
func (r *StopRecord) Kind() string       { return recordKind }
func (r *StopRecord) SchemaVersion() int { return recordVersion }

func (r *StopRecord) Validate() error {
	if r.ItineraryID == "" {
		return errors.New("itineraryId is required")
	}
	if r.SequenceOrder < 1 {
		return errors.New("sequenceOrder must be positive")
	}
	if r.PackageCount < 1 {
		return errors.New("packageCount must be at least 1")
	}
	if r.DeliveredPackageCount != nil &&
		(*r.DeliveredPackageCount < 0 || *r.DeliveredPackageCount > r.PackageCount) {
		return errors.New("deliveredPackageCount out of range")
	}
	switch r.Status {
	case "pending", "current", "delivered", "failed":
	default:
		return errors.New("unknown status " + r.Status)
	}
	return nil
}
