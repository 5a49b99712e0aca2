package itinerary

import (
	"errors"
	"time"
)

type ItineraryRecord struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Date          string     `json:"date"`
	Status        string     `json:"status"`
	TotalEarnings float64    `json:"totalEarnings"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func (r *ItineraryRecord) Key() string        { return r.ID }
func (r *ItineraryRecord) Kind() string       { return "itinerary" }
func (r *ItineraryRecord) SchemaVersion() int { return 1 }

func (r *ItineraryRecord) Validate() error {
	if r.Status != "active" && r.Status != "completed" {
		return errors.New("unknown status " + r.Status)
	}
	if r.Date == "" {
		return errors.New("date is required")
	}
	return nil
}
