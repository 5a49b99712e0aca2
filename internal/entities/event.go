package entities

import "time"

type EventType string

const (
	EventConnectivityChanged EventType = "connectivity.changed"
	EventSyncDrained         EventType = "sync.drained"
	EventStopsChanged        EventType = "stops.changed"
)

type Event struct {
	Type    EventType
	At      time.Time
	Payload any
}
