package offline

import "errors"

var (
	ErrInvalidTile = errors.New("invalid tile")
	ErrInvalidCity = errors.New("invalid offline city")
)
