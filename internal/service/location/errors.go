package location

import "errors"

var (
	ErrNoLocation         = errors.New("no device location available")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
