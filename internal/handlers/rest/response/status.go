package response

import (
	"errors"
	"net/http"

	"courier-sync/internal/repository/tiles"
	"courier-sync/internal/service/itinerary"
	"courier-sync/internal/service/location"
	"courier-sync/internal/service/offline"
	"courier-sync/internal/service/sequencing"
	"courier-sync/internal/service/settings"
	"courier-sync/internal/service/stop"
	"courier-sync/internal/service/syncqueue"
)

// StatusOf maps domain errors to HTTP status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, stop.ErrStopNotFound),
		errors.Is(err, itinerary.ErrNoActiveItinerary),
		errors.Is(err, sequencing.ErrSectorNotFound),
		errors.Is(err, tiles.ErrTileNotFound),
		errors.Is(err, location.ErrNoLocation):
		return http.StatusNotFound

	case errors.Is(err, stop.ErrStopNotPending),
		errors.Is(err, stop.ErrInvalidTransition),
		errors.Is(err, stop.ErrRefreshDeferred),
		errors.Is(err, itinerary.ErrActiveItineraryExists),
		errors.Is(err, itinerary.ErrItineraryHasOpenStops):
		return http.StatusConflict

	case errors.Is(err, stop.ErrInvalidPackageCount),
		errors.Is(err, stop.ErrInvalidAddress),
		errors.Is(err, stop.ErrInvalidCoordinates),
		errors.Is(err, stop.ErrMissingFields),
		errors.Is(err, stop.ErrOrderMismatch),
		errors.Is(err, itinerary.ErrInvalidName),
		errors.Is(err, sequencing.ErrUnknownStrategy),
		errors.Is(err, sequencing.ErrInvalidPolygon),
		errors.Is(err, location.ErrInvalidCoordinates),
		errors.Is(err, settings.ErrInvalidRate),
		errors.Is(err, settings.ErrInvalidThreshold),
		errors.Is(err, settings.ErrInvalidStartLocation),
		errors.Is(err, offline.ErrInvalidTile),
		errors.Is(err, offline.ErrInvalidCity):
		return http.StatusUnprocessableEntity

	case errors.Is(err, syncqueue.ErrRemoteRejected):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
