package store

import "errors"

var (
	ErrNotOpen          = errors.New("store is not open")
	ErrNotFound         = errors.New("record not found")
	ErrUnknownPartition = errors.New("unknown partition")
	ErrUnknownIndex     = errors.New("unknown index")
	ErrKindMismatch     = errors.New("record kind does not match partition")
	ErrInvalidRecord    = errors.New("invalid record")
	ErrRecordVersion    = errors.New("record written by a newer schema")
)
