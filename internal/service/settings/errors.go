package settings

import "errors"

var (
	ErrInvalidRate          = errors.New("rate per package must be a non-negative number")
	ErrInvalidThreshold     = errors.New("invalid bonus threshold")
	ErrInvalidStartLocation = errors.New("invalid start location")
)
