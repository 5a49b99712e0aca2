package stop

import "errors"

var (
	ErrStopNotFound        = errors.New("stop not found")
	ErrStopNotPending      = errors.New("stop is not pending")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidPackageCount = errors.New("invalid package count")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrMissingFields       = errors.New("no fields to update")
	ErrOrderMismatch       = errors.New("order does not match the stops of the itinerary")
	ErrRefreshDeferred     = errors.New("refresh deferred until the sync queue is drained")
)
