package syncqueue

import (
	"encoding/json"
	"errors"
)

type ItemRecord struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Method    string          `json:"method"`
	Endpoint  string          `json:"endpoint"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Retries   int             `json:"retries"`
}

func (r *ItemRecord) Key() string        { return r.ID }
func (r *ItemRecord) Kind() string       { return "sync_item" }
func (r *ItemRecord) SchemaVersion() int { return 1 }

func (r *ItemRecord) Validate() error {
	if r.Method == "" || r.Endpoint == "" {
		return errors.New("method and endpoint are required")
	}
	if r.Timestamp <= 0 {
		return errors.New("timestamp must be positive")
	}
	if r.Retries < 0 {
		return errors.New("retries must not be negative")
	}
	return nil
}
