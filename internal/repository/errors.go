package repository

import (
	"errors"

	"courier-sync/internal/store"
)

// IsNotFound reports whether err means the key is absent from its partition.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
