package cache

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	keyDeviceLocation = "device_location"
	keySectors        = "sectors"
)

type EntryRecord struct {
	ID        string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	ExpiresAt *int64          `json:"expiresAt,omitempty"`
	StoredAt  time.Time       `json:"storedAt"`
}

func (r *EntryRecord) Key() string        { return r.ID }
func (r *EntryRecord) Kind() string       { return "cache_entry" }
func (r *EntryRecord) SchemaVersion() int { return 1 }

func (r *EntryRecord) Validate() error {
	if len(r.Value) == 0 {
		return errors.New("value is required")
	}
	return nil
}

func (r *EntryRecord) expired(now time.Time) bool {
	return r.ExpiresAt != nil && *r.ExpiresAt <= now.UnixNano()
}

type LocationDB struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

type SectorDB struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Polygon   [][2]float64 `json:"polygon"`
	CreatedAt time.Time    `json:"createdAt"`
}
