package itinerary

import "errors"

var (
	ErrNoActiveItinerary     = errors.New("no active itinerary")
	ErrActiveItineraryExists = errors.New("an active itinerary already exists")
	ErrItineraryHasOpenStops = errors.New("itinerary has pending or current stops")
	ErrInvalidName           = errors.New("invalid itinerary name")
)
