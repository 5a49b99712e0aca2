package sequencing

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown sequencing strategy")
	ErrInvalidPolygon  = errors.New("polygon needs at least 3 distinct vertices")
	ErrSectorNotFound  = errors.New("sector not found")
)
