package entities

import "time"

type Stop struct {
	ID                    string
	ItineraryID           string
	SequenceOrder         int
	Status                StopStatus
	PackageCount          int
	DeliveredPackageCount *int
	Address               string
	Latitude              float64
	Longitude             float64
	DeliveryTime          *time.Time
	SyncStatus            SyncStatus
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (s Stop) Coordinates() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}

// DeliveredPackages is the package count used for earnings.
func (s Stop) DeliveredPackages() int {
	if s.Status != StopDelivered {
		return 0
	}
	if s.DeliveredPackageCount != nil {
		return *s.DeliveredPackageCount
	}
	return s.PackageCount
}

type StopStatus string

const (
	StopPending   StopStatus = "pending"
	StopCurrent   StopStatus = "current"
	StopDelivered StopStatus = "delivered"
	StopFailed    StopStatus = "failed"
)

func (s StopStatus) String() string {
	return string(s)
}

func (s StopStatus) IsTerminal() bool {
	return s == StopDelivered || s == StopFailed
}

func (s StopStatus) IsValid() bool {
	switch s {
	case StopPending, StopCurrent, StopDelivered, StopFailed:
		return true
	default:
		return false
	}
}

type SyncStatus string

const (
	SyncSynced  SyncStatus = "synced"
	SyncPending SyncStatus = "pending"
)

func (s SyncStatus) String() string {
	return string(s)
}

type StopCreate struct {
	Address      string
	Latitude     float64
	Longitude    float64
	PackageCount int
}

type StopModify struct {
	Address      *string
	Latitude     *float64
	Longitude    *float64
	PackageCount *int
}

func (m StopModify) IsEmpty() bool {
	return m.Address == nil && m.Latitude == nil && m.Longitude == nil && m.PackageCount == nil
}

type StopStatusUpdate struct {
	Status                StopStatus
	DeliveredPackageCount *int
}
