package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is a typed value persisted in exactly one partition.
type Record interface {
	Key() string
	Kind() string
	SchemaVersion() int
	Validate() error
}

// Raw is a stored row before decoding.
type Raw struct {
	Key       string
	Kind      string
	Version   int
	Data      []byte
	UpdatedAt time.Time
}

// Decode unmarshals the row into dst after checking its kind and version.
func (r Raw) Decode(dst Record) error {
	if r.Kind != dst.Kind() {
		return fmt.Errorf("%w: stored %q, want %q", ErrKindMismatch, r.Kind, dst.Kind())
	}
	if r.Version > dst.SchemaVersion() {
		return fmt.Errorf("%w: %s v%d", ErrRecordVersion, r.Kind, r.Version)
	}
	if err := json.Unmarshal(r.Data, dst); err != nil {
		return fmt.Errorf("decode %s %q: %w", r.Kind, r.Key, err)
	}
	return nil
}

// DecodeAll decodes every row into a value of T.
func DecodeAll[T any, PT interface {
	*T
	Record
}](rows []Raw) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var v T
		if err := row.Decode(PT(&v)); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
