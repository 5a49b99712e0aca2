package itinerary

import (
	"fmt"
	"time"

	"courier-sync/internal/entities"
)

func ToDomain(r *ItineraryRecord) (*entities.Itinerary, error) {
	if r == nil {
		return nil, nil
	}
	date, err := time.Parse(entities.ItineraryDateLayout, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse itinerary date %q: %w", r.Date, err)
	}
	return &entities.Itinerary{
		ID:            r.ID,
		Name:          r.Name,
		Date:          date,
		Status:        entities.ItineraryStatus(r.Status),
		TotalEarnings: r.TotalEarnings,
		CreatedAt:     r.CreatedAt,
		CompletedAt:   r.CompletedAt,
	}, nil
}

func FromDomain(i *entities.Itinerary) *ItineraryRecord {
	if i == nil {
		return nil
	}
	return &ItineraryRecord{
		ID:            i.ID,
		Name:          i.Name,
		Date:          i.Date.Format(entities.ItineraryDateLayout),
		Status:        i.Status.String(),
		TotalEarnings: i.TotalEarnings,
		CreatedAt:     i.CreatedAt,
		CompletedAt:   i.CompletedAt,
	}
}
