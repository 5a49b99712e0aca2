package entities

import "time"

type Itinerary struct {
	ID            string
	Name          string
	Date          time.Time
	Status        ItineraryStatus
	TotalEarnings float64
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

type ItineraryStatus string

const (
	ItineraryActive    ItineraryStatus = "active"
	ItineraryCompleted ItineraryStatus = "completed"
)

func (s ItineraryStatus) String() string {
	return string(s)
}

const ItineraryDateLayout = "2006-01-02"
